// Command vizrun evaluates one script file outside the server and prints
// the ExecutionResult as JSON, the same document POST /run returns.
//
// Usage:
//
//	vizrun -kind bst tree.js
//	cat stack.js | vizrun -kind stack -pretty -
//
// Exit status is 0 for a clean run, 1 when the script failed and 2 when
// the input could not be evaluated at all.
package main
