// Package types provides shared data structures for the visualizer backend.
//
// Core Types:
//   - Kind: Structure kind selected by the learner (array, stack, bst, ...)
//   - Capture: Tag of the structure the evaluator captured from a script
//
// The kind tags are the values the UI sends with every run request. Capture
// tags are coarser: the three linked list kinds all capture as "linkedlist"
// and hashmap captures as "map".
//
// Example Usage:
//
//	kind, err := types.ParseKind("bst")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(kind.DisplayName())
package types
