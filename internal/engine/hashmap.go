package engine

import (
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/GriffinCanCode/dsaviz/internal/visual"
)

// HashMapBuckets is the fixed bucket count
const HashMapBuckets = 10

var hashMapLayout = visual.Grid{OriginX: 100, OriginY: 100, StepX: 120, StepY: 80, PerRow: 5}

// Entry is one key/value pair
type Entry struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// HashMap is a separate-chaining hash table with a fixed bucket table.
// An empty bucket is nil.
type HashMap struct {
	buckets [HashMapBuckets][]Entry
	size    int
}

// NewHashMap creates an empty map
func NewHashMap() *HashMap {
	return &HashMap{}
}

// Hash is the polynomial rolling hash of key over its UTF-16 code units,
// reduced modulo the bucket count at every step.
func Hash(key string) int {
	h := 0
	for _, unit := range utf16.Encode([]rune(key)) {
		h = (h*31 + int(unit)) % HashMapBuckets
	}
	return h
}

func (m *HashMap) find(key string) (bucket, index int) {
	bucket = Hash(key)
	index = slices.IndexFunc(m.buckets[bucket], func(e Entry) bool { return e.Key == key })
	return bucket, index
}

// Put inserts or overwrites key. Data holds the previous value on overwrite.
func (m *HashMap) Put(key string, value any) Result {
	b, i := m.find(key)
	if i >= 0 {
		old := m.buckets[b][i].Value
		m.buckets[b][i].Value = value
		return result("put", old, "Updated key \"%s\" from %s to %s", key, FormatValue(old), FormatValue(value))
	}
	m.buckets[b] = append(m.buckets[b], Entry{Key: key, Value: value})
	m.size++
	return result("put", nil, "Inserted key \"%s\" with value %s", key, FormatValue(value))
}

// Get describes the value stored under key; Data holds the value when present
func (m *HashMap) Get(key string) Result {
	v, ok := m.Lookup(key)
	if !ok {
		return result("get", nil, "Key \"%s\" not found", key)
	}
	return result("get", v, "Value for key \"%s\": %s", key, FormatValue(v))
}

// Lookup returns the value stored under key
func (m *HashMap) Lookup(key string) (any, bool) {
	b, i := m.find(key)
	if i < 0 {
		return nil, false
	}
	return m.buckets[b][i].Value, true
}

// Delete removes key; Data holds the removed value
func (m *HashMap) Delete(key string) (Result, error) {
	b, i := m.find(key)
	if i < 0 {
		return Result{}, opError("delete", ErrNotFound, "Key \"%s\" not found", key)
	}
	v := m.buckets[b][i].Value
	m.buckets[b] = slices.Delete(m.buckets[b], i, i+1)
	if len(m.buckets[b]) == 0 {
		m.buckets[b] = nil
	}
	m.size--
	return result("delete", v, "Deleted key \"%s\" with value %s", key, FormatValue(v)), nil
}

// Has reports whether key is present
func (m *HashMap) Has(key string) bool {
	_, i := m.find(key)
	return i >= 0
}

// Entries returns every pair in bucket order
func (m *HashMap) Entries() []Entry {
	out := make([]Entry, 0, m.size)
	for _, bucket := range m.buckets {
		out = append(out, bucket...)
	}
	return out
}

// BucketSizes returns the chain length of every bucket
func (m *HashMap) BucketSizes() []int {
	sizes := make([]int, HashMapBuckets)
	for i, bucket := range m.buckets {
		sizes[i] = len(bucket)
	}
	return sizes
}

// Traverse summarizes the contents in bucket order
func (m *HashMap) Traverse() string {
	if m.size == 0 {
		return "HashMap is empty"
	}
	parts := make([]string, 0, m.size)
	for _, e := range m.Entries() {
		parts = append(parts, `"`+e.Key+`" => `+FormatValue(e.Value))
	}
	return "HashMap: {" + strings.Join(parts, ", ") + "}"
}

func (m *HashMap) Size() int     { return m.size }
func (m *HashMap) IsEmpty() bool { return m.size == 0 }

// Snapshot lays entries out in a grid labelled key:value
func (m *HashMap) Snapshot() visual.State {
	entries := m.Entries()
	labels := make([]any, len(entries))
	for i, e := range entries {
		labels[i] = e.Key + ":" + FormatValue(e.Value)
	}
	return visual.State{Nodes: visual.Sequence(labels, hashMapLayout.At)}
}
