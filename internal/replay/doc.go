// Package replay drives a structure engine directly from a list of named
// operations, without running a script. It backs the operation panel of
// the UI: each step reports the engine's display message and the final
// snapshot is returned for rendering.
//
// Operation names follow the engines: insert, insertAt, delete, deleteAt,
// search, update, get for arrays and lists; push, pop, peek for stacks;
// enqueue, dequeue, front, rear for queues; put, get, delete, has for hash
// maps; insert, delete, find, search, inorder, preorder, postorder, min,
// max, height for trees; addVertex, addEdge, removeVertex, removeEdge,
// hasVertex, hasEdge, getNeighbors, bfs, dfs, components for graphs.
// Every kind also accepts traverse, size and isEmpty.
//
// A request is validated in full before the first operation runs. Replay
// stops at the first failing operation; earlier steps stay applied.
package replay
