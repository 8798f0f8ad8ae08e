/*
Package sandbox runs learner scripts inside an embedded goja JavaScript VM.

# Overview

Each run evaluates the learner's source as the body of a function so that
top-level let/const bindings stay reachable for capture. The scope exposes:

  - console.log/info/warn/error, captured in call order
  - LinkedList, BinarySearchTree and Graph constructors backed by the
    structure engines
  - no-op setTimeout/setInterval; require, process, module and exports are
    undefined

After the body returns, the first of the well-known bindings arr, stack,
queue, map, list, bst and graph that is defined is captured. Every facade
constructor also registers its instance with the run, so a script that
builds a structure under another name is still captured by the first facade
it created.

# Limits

  - Execution deadline enforced with Runtime.Interrupt from a timer
    goroutine; tight loops are preempted
  - The caller stops waiting after deadline + grace; a runtime abandoned
    that way is discarded and never reused
  - Context cancellation interrupts the run
  - Call stack depth limit turns runaway recursion into a script fault
  - Console output is capped

# Security Model

The sandbox is a cooperative trust boundary, not an isolation boundary.
Learner code runs in-process with the privileges of the host. The only
restriction is which names are injected into scope; ambient ECMAScript
built-ins such as globalThis, Function and eval remain reachable, and
memory use is not bounded.

# Usage Example

	pool, err := sandbox.NewPool(sandbox.DefaultConfig(), 4)
	if err != nil {
		return err
	}
	defer pool.Close()

	result, err := pool.Execute(ctx, "let arr = [1, 2, 3];", types.KindArray)
*/
package sandbox
