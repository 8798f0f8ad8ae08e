package sandbox

import (
	"context"
	"reflect"
	"testing"

	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
)

func capture(t *testing.T, script string, kind types.Kind) Capture {
	t.Helper()
	runtime := newRuntime(t, DefaultConfig())
	result, err := runtime.Execute(context.Background(), script, kind)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	return result.Capture
}

func TestCaptureArray(t *testing.T) {
	runtime := newRuntime(t, DefaultConfig())
	result, err := runtime.Execute(context.Background(), "let arr = [1,2,3];", types.KindArray)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(result.Console) != 0 {
		t.Errorf("Expected no output, got %v", result.Console)
	}

	c := result.Capture
	if c.Tag != types.CaptureArray || c.Binding != "arr" {
		t.Fatalf("Unexpected capture %+v", c)
	}
	if want := []any{1.0, 2.0, 3.0}; !reflect.DeepEqual(c.Items, want) {
		t.Errorf("Items = %v, want %v", c.Items, want)
	}
}

func TestCaptureOrder(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   types.Capture
	}{
		{"arr before list", "let list = new LinkedList(); let arr = [1];", types.CaptureArray},
		{"stack before queue", "let queue = [1]; let stack = [2];", types.CaptureStack},
		{"queue", "let queue = []; queue.push(1); queue.shift();", types.CaptureQueue},
		{"map before bst", "let bst = new BinarySearchTree(); let map = {};", types.CaptureMap},
		{"list before graph", "let graph = new Graph(); let list = new LinkedList();", types.CaptureLinkedList},
		{"var bindings", "var graph = new Graph();", types.CaptureGraph},
		{"nothing", "let x = 1;", types.CaptureNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := capture(t, tt.script, types.KindArray).Tag; got != tt.want {
				t.Errorf("Tag = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCaptureFacade(t *testing.T) {
	c := capture(t, "let list = new LinkedList(); list.add(1); list.add(2);", types.KindDoublyLinkedList)
	if c.Structure == nil {
		t.Fatal("Expected a captured structure")
	}
	if c.Structure.Kind() != types.KindDoublyLinkedList {
		t.Errorf("Kind = %q, want the requested variant", c.Structure.Kind())
	}
	if n := len(c.Structure.Snapshot().Nodes); n != 2 {
		t.Errorf("Expected 2 nodes, got %d", n)
	}
}

func TestCaptureRegistryFallback(t *testing.T) {
	c := capture(t, "let tree = new BinarySearchTree(); tree.insert(5); let g = new Graph();", types.KindBST)
	if c.Tag != types.CaptureBST {
		t.Fatalf("Tag = %q, want the first constructed facade", c.Tag)
	}
	if c.Binding != "" {
		t.Errorf("Binding = %q, want empty for registry captures", c.Binding)
	}
	if c.Structure == nil || c.Structure.String() != "Inorder: [5]" {
		t.Errorf("Unexpected structure %v", c.Structure)
	}
}

func TestCaptureMismatch(t *testing.T) {
	tests := []struct {
		script  string
		message string
	}{
		{"let list = [1, 2];", "list is not a LinkedList instance"},
		{"let bst = new Graph();", "bst is not a BinarySearchTree instance"},
		{"let arr = 5;", "arr is not an array"},
		{"let stack = {top: 1};", "stack is not an array"},
		{"let map = 'text';", "map is not an object"},
	}

	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			c := capture(t, tt.script, types.KindArray)
			if c.Message != tt.message {
				t.Errorf("Message = %q, want %q", c.Message, tt.message)
			}
			if c.Structure != nil || c.Items != nil || c.Entries != nil {
				t.Errorf("Mismatched capture should carry no data: %+v", c)
			}
		})
	}
}

func TestCaptureMap(t *testing.T) {
	c := capture(t, "let map = {}; map['name'] = 'John'; map.age = 25;", types.KindHashMap)
	if len(c.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %v", c.Entries)
	}
	if c.Entries[0].Label != "name:John" || c.Entries[1].Label != "age:25" {
		t.Errorf("Unexpected labels %v", c.Entries)
	}
	if c.Entries[1].Value != 25.0 {
		t.Errorf("Value = %v, want 25", c.Entries[1].Value)
	}

	c = capture(t, "let map = new Map(); map.set('k', 1); map.set('j', true);", types.KindHashMap)
	if len(c.Entries) != 2 || c.Entries[0].Label != "k:1" || c.Entries[1].Label != "j:true" {
		t.Fatalf("Unexpected Map entries %v", c.Entries)
	}
	if c.Entries[0].Key != "k" || c.Entries[0].Value != 1.0 {
		t.Errorf("Unexpected first Map entry %v", c.Entries[0])
	}

	// Map entries are not own properties, so an object-key walk would miss them
	c = capture(t, "let map = new Map([['a', 1]]); map.extra = 2;", types.KindHashMap)
	if len(c.Entries) != 1 || c.Entries[0].Label != "a:1" {
		t.Errorf("Unexpected Map entries %v", c.Entries)
	}
}
