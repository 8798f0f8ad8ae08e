package replay

import (
	"fmt"
	"strings"

	"github.com/GriffinCanCode/dsaviz/internal/engine"
	"github.com/GriffinCanCode/dsaviz/internal/facade"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
)

// operation is one named engine call
type operation struct {
	params []param
	apply  func(a args) (engine.Result, error)
}

// machine binds an engine instance to its operation table
type machine struct {
	structure engine.Structure
	ops       map[string]operation
}

func ok(r engine.Result) (engine.Result, error) { return r, nil }

func info(op string, data any, format string, a ...any) (engine.Result, error) {
	return engine.Result{Op: op, Message: fmt.Sprintf(format, a...), Data: data}, nil
}

func newMachine(kind types.Kind) (*machine, error) {
	var m *machine
	switch kind {
	case types.KindArray:
		m = arrayMachine()
	case types.KindStack:
		m = stackMachine()
	case types.KindQueue:
		m = queueMachine()
	case types.KindHashMap:
		m = hashMapMachine()
	case types.KindLinkedList, types.KindDoublyLinkedList, types.KindCircularLinkedList:
		m = linkedListMachine(facade.VariantFor(kind))
	case types.KindBST:
		m = bstMachine()
	case types.KindGraph:
		m = graphMachine()
	default:
		return nil, fmt.Errorf("unknown structure kind %q", kind)
	}

	s := m.structure
	m.ops["traverse"] = operation{apply: func(args) (engine.Result, error) {
		return info("traverse", nil, "%s", s.Traverse())
	}}
	m.ops["size"] = operation{apply: func(args) (engine.Result, error) {
		return info("size", s.Size(), "Size: %d", s.Size())
	}}
	m.ops["isEmpty"] = operation{apply: func(args) (engine.Result, error) {
		return info("isEmpty", s.IsEmpty(), "Is empty: %t", s.IsEmpty())
	}}
	return m, nil
}

func arrayMachine() *machine {
	a := engine.NewArray()
	return &machine{structure: a, ops: map[string]operation{
		"insert": {[]param{number}, func(x args) (engine.Result, error) { return a.Insert(x.num(0)) }},
		"insertAt": {[]param{index, number}, func(x args) (engine.Result, error) {
			return a.InsertAt(x.idx(0), x.num(1))
		}},
		"delete":   {[]param{number}, func(x args) (engine.Result, error) { return a.Delete(x.num(0)) }},
		"deleteAt": {[]param{index}, func(x args) (engine.Result, error) { return a.DeleteAt(x.idx(0)) }},
		"update": {[]param{index, number}, func(x args) (engine.Result, error) {
			return a.Update(x.idx(0), x.num(1))
		}},
		"search": {[]param{number}, func(x args) (engine.Result, error) { return ok(a.Search(x.num(0))) }},
		"get": {[]param{index}, func(x args) (engine.Result, error) {
			v, err := a.Get(x.idx(0))
			if err != nil {
				return engine.Result{}, err
			}
			return info("get", v, "Element at index %d: %s", x.idx(0), engine.FormatNumber(v))
		}},
	}}
}

func stackMachine() *machine {
	s := engine.NewStack()
	return &machine{structure: s, ops: map[string]operation{
		"push":   {[]param{number}, func(x args) (engine.Result, error) { return s.Push(x.num(0)) }},
		"pop":    {nil, func(args) (engine.Result, error) { return s.Pop() }},
		"peek":   {nil, func(args) (engine.Result, error) { return s.Peek() }},
		"search": {[]param{number}, func(x args) (engine.Result, error) { return ok(s.Search(x.num(0))) }},
	}}
}

func queueMachine() *machine {
	q := engine.NewQueue()
	return &machine{structure: q, ops: map[string]operation{
		"enqueue": {[]param{number}, func(x args) (engine.Result, error) { return q.Enqueue(x.num(0)) }},
		"dequeue": {nil, func(args) (engine.Result, error) { return q.Dequeue() }},
		"front":   {nil, func(args) (engine.Result, error) { return q.Front() }},
		"rear":    {nil, func(args) (engine.Result, error) { return q.Rear() }},
		"search":  {[]param{number}, func(x args) (engine.Result, error) { return ok(q.Search(x.num(0))) }},
	}}
}

func hashMapMachine() *machine {
	m := engine.NewHashMap()
	return &machine{structure: m, ops: map[string]operation{
		"put": {[]param{text, anyValue}, func(x args) (engine.Result, error) {
			return ok(m.Put(x.str(0), x.val(1)))
		}},
		"get":    {[]param{text}, func(x args) (engine.Result, error) { return ok(m.Get(x.str(0))) }},
		"delete": {[]param{text}, func(x args) (engine.Result, error) { return m.Delete(x.str(0)) }},
		"has": {[]param{text}, func(x args) (engine.Result, error) {
			return info("has", m.Has(x.str(0)), "Has key \"%s\": %t", x.str(0), m.Has(x.str(0)))
		}},
	}}
}

func linkedListMachine(variant engine.ListVariant) *machine {
	l := engine.NewLinkedList(variant)
	return &machine{structure: l, ops: map[string]operation{
		"insert": {[]param{number}, func(x args) (engine.Result, error) { return ok(l.Insert(x.num(0))) }},
		"insertAt": {[]param{index, number}, func(x args) (engine.Result, error) {
			return l.InsertAt(x.idx(0), x.num(1))
		}},
		"delete":   {[]param{number}, func(x args) (engine.Result, error) { return l.Delete(x.num(0)) }},
		"deleteAt": {[]param{index}, func(x args) (engine.Result, error) { return l.DeleteAt(x.idx(0)) }},
		"search":   {[]param{number}, func(x args) (engine.Result, error) { return ok(l.Search(x.num(0))) }},
	}}
}

func bstMachine() *machine {
	t := engine.NewBST()
	extreme := func(op, label string, get func() (float64, bool)) operation {
		return operation{apply: func(args) (engine.Result, error) {
			v, found := get()
			if !found {
				return info(op, nil, "BST is empty")
			}
			return info(op, v, "%s: %s", label, engine.FormatNumber(v))
		}}
	}
	return &machine{structure: t, ops: map[string]operation{
		"insert": {[]param{number}, func(x args) (engine.Result, error) { return t.Insert(x.num(0)) }},
		"delete": {[]param{number}, func(x args) (engine.Result, error) { return t.Delete(x.num(0)) }},
		"find":   {[]param{number}, func(x args) (engine.Result, error) { return ok(t.Find(x.num(0))) }},
		"search": {[]param{number}, func(x args) (engine.Result, error) {
			found := t.Contains(x.num(0))
			return info("search", found, "Contains %s: %t", engine.FormatNumber(x.num(0)), found)
		}},
		"inorder":   {nil, func(args) (engine.Result, error) { return ok(t.InorderResult()) }},
		"preorder":  {nil, func(args) (engine.Result, error) { return ok(t.PreorderResult()) }},
		"postorder": {nil, func(args) (engine.Result, error) { return ok(t.PostorderResult()) }},
		"min":       extreme("min", "Minimum", t.Min),
		"max":       extreme("max", "Maximum", t.Max),
		"height": {nil, func(args) (engine.Result, error) {
			return info("height", t.Height(), "Height: %d", t.Height())
		}},
	}}
}

func graphMachine() *machine {
	g := engine.NewGraph()
	walk := func(op, label string, visit func(string) ([]string, error)) operation {
		return operation{[]param{text}, func(x args) (engine.Result, error) {
			order, err := visit(x.str(0))
			if err != nil {
				return engine.Result{}, err
			}
			return info(op, order, "%s from \"%s\": [%s]", label, x.str(0), strings.Join(order, ", "))
		}}
	}
	return &machine{structure: g, ops: map[string]operation{
		"addVertex": {[]param{text}, func(x args) (engine.Result, error) { return g.AddVertex(x.str(0)) }},
		"addEdge": {[]param{text, text}, func(x args) (engine.Result, error) {
			return ok(g.AddEdge(x.str(0), x.str(1)))
		}},
		"removeVertex": {[]param{text}, func(x args) (engine.Result, error) { return g.RemoveVertex(x.str(0)) }},
		"removeEdge": {[]param{text, text}, func(x args) (engine.Result, error) {
			return g.RemoveEdge(x.str(0), x.str(1))
		}},
		"hasVertex": {[]param{text}, func(x args) (engine.Result, error) {
			found := g.HasVertex(x.str(0))
			return info("hasVertex", found, "Has vertex \"%s\": %t", x.str(0), found)
		}},
		"hasEdge": {[]param{text, text}, func(x args) (engine.Result, error) {
			found := g.HasEdge(x.str(0), x.str(1))
			return info("hasEdge", found, "Has edge \"%s\"-\"%s\": %t", x.str(0), x.str(1), found)
		}},
		"getNeighbors": {[]param{text}, func(x args) (engine.Result, error) { return g.NeighborsResult(x.str(0)) }},
		"bfs":          walk("bfs", "BFS", g.BFS),
		"dfs":          walk("dfs", "DFS", g.DFS),
		"components": {nil, func(args) (engine.Result, error) {
			groups := g.ConnectedComponents()
			parts := make([]string, len(groups))
			for i, c := range groups {
				parts[i] = "[" + strings.Join(c, ", ") + "]"
			}
			return info("components", groups, "Components: %s", strings.Join(parts, ", "))
		}},
	}}
}
