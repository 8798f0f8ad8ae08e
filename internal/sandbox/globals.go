package sandbox

import (
	"github.com/dop251/goja"
)

var blockedGlobals = []string{"require", "process", "module", "exports"}

var noopTimers = []string{"setTimeout", "setInterval", "clearTimeout", "clearInterval"}

// install configures the global scope for one run
func (rn *run) install(enableConsole bool) {
	vm := rn.vm

	for _, name := range blockedGlobals {
		_ = vm.Set(name, goja.Undefined())
	}

	if enableConsole {
		console := vm.NewObject()
		for _, level := range []string{"log", "info", "warn", "error"} {
			_ = console.Set(level, rn.makeConsoleFunc(level))
		}
		_ = vm.Set("console", console)
	}

	for _, name := range noopTimers {
		_ = vm.Set(name, func(goja.FunctionCall) goja.Value {
			return goja.Undefined()
		})
	}

	_ = vm.Set("LinkedList", rn.linkedListConstructor)
	_ = vm.Set("BinarySearchTree", rn.bstConstructor)
	_ = vm.Set("Graph", rn.graphConstructor)
}
