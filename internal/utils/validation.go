package utils

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
)

// Request limits
const (
	DefaultMaxSourceBytes = 64 * 1024 // 64KB - script source size limit
	MaxReplayOps          = 500       // operations per replay request
	MaxStreamMessageSize  = 128 * 1024
)

// ErrInvalidInput is wrapped by every validation failure
var ErrInvalidInput = errors.New("invalid input")

// ValidateSource checks that source is valid UTF-8 within maxBytes
func ValidateSource(source string, maxBytes int) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxSourceBytes
	}
	if len(source) > maxBytes {
		return fmt.Errorf("%w: source size %d bytes exceeds maximum %d bytes", ErrInvalidInput, len(source), maxBytes)
	}
	if !utf8.ValidString(source) {
		return fmt.Errorf("%w: source is not valid UTF-8", ErrInvalidInput)
	}
	return nil
}

// ValidateKind parses a structure kind tag. An empty tag defaults to array.
func ValidateKind(kind string) (types.Kind, error) {
	if kind == "" {
		return types.KindArray, nil
	}
	k, err := types.ParseKind(kind)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return k, nil
}

// ValidateOpCount checks a replay request size
func ValidateOpCount(n int) error {
	if n == 0 {
		return fmt.Errorf("%w: ops is required", ErrInvalidInput)
	}
	if n > MaxReplayOps {
		return fmt.Errorf("%w: %d operations exceeds maximum %d", ErrInvalidInput, n, MaxReplayOps)
	}
	return nil
}
