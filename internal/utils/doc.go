// Package utils provides request validation and source fingerprinting.
//
// Validation:
//   - Script source size limits
//   - Structure kind tags
//   - Replay operation counts
//
// Fingerprints are short SHA-256 digests of script source, logged with each
// run so repeated submissions can be correlated without logging the source.
//
// Example Usage:
//
//	if err := utils.ValidateSource(src, 64*1024); err != nil {
//		return err
//	}
//	kind, err := utils.ValidateKind("bst")
package utils
