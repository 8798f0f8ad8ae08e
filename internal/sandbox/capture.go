package sandbox

import (
	"fmt"
	"strconv"

	"github.com/dop251/goja"

	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
)

var facadeNames = map[types.Capture]string{
	types.CaptureLinkedList: "LinkedList",
	types.CaptureBST:        "BinarySearchTree",
	types.CaptureGraph:      "Graph",
}

// capture converts the probe result into a Capture. A nil probe falls back
// to the first facade the script constructed.
func (rn *run) capture(probe goja.Value) Capture {
	if probe == nil || goja.IsNull(probe) || goja.IsUndefined(probe) {
		return rn.registryCapture()
	}
	obj := probe.ToObject(rn.vm)
	name := obj.Get("binding").String()
	data := obj.Get("data")

	tag := types.CaptureNone
	for _, b := range types.Bindings {
		if b.Name == name {
			tag = b.Capture
			break
		}
	}

	c := Capture{Tag: tag, Binding: name}
	switch tag {
	case types.CaptureArray, types.CaptureStack, types.CaptureQueue:
		items, ok := rn.arrayItems(data)
		if !ok {
			c.Message = fmt.Sprintf("%s is not an array", name)
			return c
		}
		c.Items = items
	case types.CaptureMap:
		entries, ok := rn.mapEntries(data)
		if !ok {
			c.Message = fmt.Sprintf("%s is not an object", name)
			return c
		}
		c.Entries = entries
	case types.CaptureLinkedList, types.CaptureBST, types.CaptureGraph:
		target, _ := data.(*goja.Object)
		a, ok := rn.adapters[target]
		if !ok || a.Capture() != tag {
			c.Message = fmt.Sprintf("%s is not a %s instance", name, facadeNames[tag])
			return c
		}
		c.Structure = a
	}
	return c
}

func (rn *run) registryCapture() Capture {
	if len(rn.created) == 0 {
		return Capture{Tag: types.CaptureNone}
	}
	a := rn.created[0]
	return Capture{Tag: a.Capture(), Structure: a}
}

func (rn *run) arrayItems(v goja.Value) ([]any, bool) {
	obj, ok := v.(*goja.Object)
	if !ok || obj.ClassName() != "Array" {
		return nil, false
	}
	n := int(obj.Get("length").ToInteger())
	items := make([]any, n)
	for i := 0; i < n; i++ {
		items[i] = export(obj.Get(strconv.Itoa(i)))
	}
	return items, true
}

// mapEntries lists own enumerable properties of a plain object, or the
// entries of a Map, in insertion order
func (rn *run) mapEntries(v goja.Value) ([]Entry, bool) {
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil, false
	}

	if rn.isMap(obj) {
		forEach, ok := goja.AssertFunction(obj.Get("forEach"))
		if !ok {
			return nil, false
		}
		var entries []Entry
		visit := rn.vm.ToValue(func(call goja.FunctionCall) goja.Value {
			key := call.Argument(1).String()
			value := call.Argument(0)
			entries = append(entries, Entry{Key: key, Value: export(value), Label: key + ":" + value.String()})
			return goja.Undefined()
		})
		if _, err := forEach(obj, visit); err != nil {
			return nil, false
		}
		return entries, true
	}

	keys := obj.Keys()
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		value := obj.Get(key)
		entries = append(entries, Entry{Key: key, Value: export(value), Label: key + ":" + value.String()})
	}
	return entries, true
}

func (rn *run) isMap(obj *goja.Object) bool {
	ctor := rn.vm.Get("Map")
	if ctor == nil || goja.IsUndefined(ctor) {
		return false
	}
	return rn.vm.InstanceOf(obj, ctor.ToObject(rn.vm))
}

// export converts a script value into plain Go data; integral numbers stay
// float64 like every other number
func export(v goja.Value) any {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	switch x := v.Export().(type) {
	case int64:
		return float64(x)
	default:
		return x
	}
}
