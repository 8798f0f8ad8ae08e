/*
Package facade provides the learner-facing adapters over the structure
engines that have no native collection counterpart in scripts.

Each adapter owns exactly one engine and exposes convenience names (Add,
Contains, ToArray, Neighbors...) returning typed values read straight from
the engine accessors. Snapshots are forwarded unchanged.

	list := facade.NewLinkedList(engine.Singly)
	list.Add(10)
	list.Add(20)
	state := list.Snapshot()
*/
package facade
