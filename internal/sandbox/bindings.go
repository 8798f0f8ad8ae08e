package sandbox

import (
	"github.com/dop251/goja"

	"github.com/GriffinCanCode/dsaviz/internal/facade"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
)

// method must stay an alias: goja passes FunctionCall through only for the
// unnamed signature
type method = func(goja.FunctionCall) goja.Value

// register records a facade constructed by the script
func (rn *run) register(obj *goja.Object, a facade.Adapter) {
	rn.adapters[obj] = a
	rn.created = append(rn.created, a)
}

// throw raises err as a script exception the learner can catch
func (rn *run) throw(err error) {
	exc := rn.vm.NewGoError(err)
	rn.thrown[exc] = err
	panic(exc)
}

func (rn *run) check(err error) {
	if err != nil {
		rn.throw(err)
	}
}

func (rn *run) define(obj *goja.Object, methods map[string]method) {
	for name, fn := range methods {
		_ = obj.Set(name, fn)
	}
}

// property defines a read-only enumerable getter
func (rn *run) property(obj *goja.Object, name string, get func() any) {
	getter := rn.vm.ToValue(func(goja.FunctionCall) goja.Value {
		return rn.vm.ToValue(get())
	})
	_ = obj.DefineAccessorProperty(name, getter, nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
}

func (rn *run) undefined() goja.Value { return goja.Undefined() }

func (rn *run) numbers(values []float64) goja.Value {
	items := make([]any, len(values))
	for i, v := range values {
		items[i] = v
	}
	return rn.vm.NewArray(items...)
}

func (rn *run) strings(values []string) goja.Value {
	items := make([]any, len(values))
	for i, v := range values {
		items[i] = v
	}
	return rn.vm.NewArray(items...)
}

func (rn *run) optional(v float64, ok bool) goja.Value {
	if !ok {
		return goja.Null()
	}
	return rn.vm.ToValue(v)
}

func (rn *run) snapshotMethod(a facade.Adapter) method {
	return func(goja.FunctionCall) goja.Value {
		return rn.vm.ToValue(a.Snapshot().Normalize())
	}
}

func (rn *run) stringMethod(a facade.Adapter) method {
	return func(goja.FunctionCall) goja.Value {
		return rn.vm.ToValue(a.String())
	}
}

// num reads argument i as a number, throwing a TypeError for any other type
func (rn *run) num(call goja.FunctionCall, i int) float64 {
	arg := call.Argument(i)
	if !isNumber(arg) {
		panic(rn.vm.NewTypeError("argument %d must be a number, got %s", i+1, typeName(arg)))
	}
	return arg.ToFloat()
}

func (rn *run) index(call goja.FunctionCall, i int) int {
	return int(rn.num(call, i))
}

func isNumber(v goja.Value) bool {
	switch v.Export().(type) {
	case int64, float64:
		return true
	}
	return false
}

func typeName(v goja.Value) string {
	switch {
	case goja.IsUndefined(v):
		return "undefined"
	case goja.IsNull(v):
		return "null"
	}
	switch v.Export().(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	}
	return "object"
}

func str(call goja.FunctionCall, i int) string {
	return call.Argument(i).String()
}

func (rn *run) listVariantKind() types.Kind {
	switch rn.kind {
	case types.KindDoublyLinkedList, types.KindCircularLinkedList:
		return rn.kind
	}
	return types.KindLinkedList
}

func (rn *run) linkedListConstructor(call goja.ConstructorCall) *goja.Object {
	l := facade.NewLinkedList(facade.VariantFor(rn.listVariantKind()))
	this := call.This
	rn.register(this, l)

	rn.define(this, map[string]method{
		"add": func(c goja.FunctionCall) goja.Value {
			l.Add(rn.num(c, 0))
			return rn.undefined()
		},
		"addAt": func(c goja.FunctionCall) goja.Value {
			rn.check(l.AddAt(rn.index(c, 0), rn.num(c, 1)))
			return rn.undefined()
		},
		"remove": func(c goja.FunctionCall) goja.Value {
			rn.check(l.Remove(rn.num(c, 0)))
			return rn.undefined()
		},
		"removeAt": func(c goja.FunctionCall) goja.Value {
			v, err := l.RemoveAt(rn.index(c, 0))
			rn.check(err)
			return rn.vm.ToValue(v)
		},
		"contains": func(c goja.FunctionCall) goja.Value {
			return rn.vm.ToValue(l.Contains(rn.num(c, 0)))
		},
		"indexOf": func(c goja.FunctionCall) goja.Value {
			return rn.vm.ToValue(l.IndexOf(rn.num(c, 0)))
		},
		"toArray": func(goja.FunctionCall) goja.Value {
			return rn.numbers(l.ToArray())
		},
		"toString":              rn.stringMethod(l),
		"getVisualizationState": rn.snapshotMethod(l),
	})
	rn.property(this, "size", func() any { return l.Size() })
	return this
}

func (rn *run) bstConstructor(call goja.ConstructorCall) *goja.Object {
	b := facade.NewBinarySearchTree()
	this := call.This
	rn.register(this, b)

	rn.define(this, map[string]method{
		"insert": func(c goja.FunctionCall) goja.Value {
			rn.check(b.Insert(rn.num(c, 0)))
			return rn.undefined()
		},
		"remove": func(c goja.FunctionCall) goja.Value {
			rn.check(b.Remove(rn.num(c, 0)))
			return rn.undefined()
		},
		"contains": func(c goja.FunctionCall) goja.Value {
			return rn.vm.ToValue(b.Contains(rn.num(c, 0)))
		},
		"inorder": func(goja.FunctionCall) goja.Value {
			return rn.numbers(b.Inorder())
		},
		"preorder": func(goja.FunctionCall) goja.Value {
			return rn.numbers(b.Preorder())
		},
		"postorder": func(goja.FunctionCall) goja.Value {
			return rn.numbers(b.Postorder())
		},
		"min": func(goja.FunctionCall) goja.Value {
			return rn.optional(b.Min())
		},
		"max": func(goja.FunctionCall) goja.Value {
			return rn.optional(b.Max())
		},
		"height": func(goja.FunctionCall) goja.Value {
			return rn.vm.ToValue(b.Height())
		},
		"toString":              rn.stringMethod(b),
		"getVisualizationState": rn.snapshotMethod(b),
	})
	rn.property(this, "size", func() any { return b.Size() })
	return this
}

func (rn *run) graphConstructor(call goja.ConstructorCall) *goja.Object {
	g := facade.NewGraph()
	this := call.This
	rn.register(this, g)

	rn.define(this, map[string]method{
		"addVertex": func(c goja.FunctionCall) goja.Value {
			rn.check(g.AddVertex(str(c, 0)))
			return rn.undefined()
		},
		"addEdge": func(c goja.FunctionCall) goja.Value {
			g.AddEdge(str(c, 0), str(c, 1))
			return rn.undefined()
		},
		"removeVertex": func(c goja.FunctionCall) goja.Value {
			rn.check(g.RemoveVertex(str(c, 0)))
			return rn.undefined()
		},
		"removeEdge": func(c goja.FunctionCall) goja.Value {
			rn.check(g.RemoveEdge(str(c, 0), str(c, 1)))
			return rn.undefined()
		},
		"hasVertex": func(c goja.FunctionCall) goja.Value {
			return rn.vm.ToValue(g.HasVertex(str(c, 0)))
		},
		"hasEdge": func(c goja.FunctionCall) goja.Value {
			return rn.vm.ToValue(g.HasEdge(str(c, 0), str(c, 1)))
		},
		"getNeighbors": func(c goja.FunctionCall) goja.Value {
			ns, err := g.Neighbors(str(c, 0))
			rn.check(err)
			return rn.strings(ns)
		},
		"getVertices": func(goja.FunctionCall) goja.Value {
			return rn.strings(g.Vertices())
		},
		"bfs": func(c goja.FunctionCall) goja.Value {
			order, err := g.BFS(str(c, 0))
			rn.check(err)
			return rn.strings(order)
		},
		"dfs": func(c goja.FunctionCall) goja.Value {
			order, err := g.DFS(str(c, 0))
			rn.check(err)
			return rn.strings(order)
		},
		"components": func(goja.FunctionCall) goja.Value {
			groups := g.Components()
			items := make([]any, len(groups))
			for i, group := range groups {
				items[i] = rn.strings(group)
			}
			return rn.vm.NewArray(items...)
		},
		"toString":              rn.stringMethod(g),
		"getVisualizationState": rn.snapshotMethod(g),
	})
	rn.property(this, "vertices", func() any { return g.VertexCount() })
	return this
}
