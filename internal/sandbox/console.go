package sandbox

import (
	"strings"
	"time"

	"github.com/dop251/goja"
)

const truncatedLine = "... output truncated"

// makeConsoleFunc creates a console function
func (rn *run) makeConsoleFunc(level string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = rn.format(arg)
		}
		rn.appendLine(level, strings.Join(parts, " "))
		return goja.Undefined()
	}
}

func (rn *run) appendLine(level, msg string) {
	rn.consoleMu.Lock()
	defer rn.consoleMu.Unlock()

	if rn.maxLines > 0 && len(rn.console) >= rn.maxLines {
		rn.truncated = true
		return
	}
	rn.console = append(rn.console, LogEntry{
		Level:   level,
		Message: msg,
		Time:    time.Now(),
	})
}

// format renders objects and null with JSON.stringify, everything else
// with String()
func (rn *run) format(arg goja.Value) string {
	if goja.IsNull(arg) {
		return "null"
	}
	obj, ok := arg.(*goja.Object)
	if !ok {
		return arg.String()
	}
	if _, isFunc := goja.AssertFunction(arg); isFunc {
		return arg.String()
	}

	json := rn.vm.Get("JSON")
	if json == nil {
		return obj.String()
	}
	stringify, ok := goja.AssertFunction(json.ToObject(rn.vm).Get("stringify"))
	if !ok {
		return obj.String()
	}
	out, err := stringify(goja.Undefined(), arg)
	if err != nil || out == nil || goja.IsUndefined(out) {
		// cyclic structures and values JSON cannot represent
		return obj.String()
	}
	return out.String()
}

// output returns a copy of the console lines, with the truncation marker
// when the cap was hit
func (rn *run) output() ([]LogEntry, bool) {
	rn.consoleMu.Lock()
	defer rn.consoleMu.Unlock()

	out := make([]LogEntry, len(rn.console), len(rn.console)+1)
	copy(out, rn.console)
	if rn.truncated {
		out = append(out, LogEntry{Level: "log", Message: truncatedLine, Time: time.Now()})
	}
	return out, rn.truncated
}
