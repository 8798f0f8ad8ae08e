package id

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUnique(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		s := gen.GenerateString()
		require.Len(t, s, 26)
		require.False(t, seen[s], "duplicate id %s", s)
		seen[s] = true
	}
}

func TestGenerateMonotonic(t *testing.T) {
	gen := NewGenerator()
	prev := gen.GenerateString()
	for i := 0; i < 100; i++ {
		next := gen.GenerateString()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestTypedIDs(t *testing.T) {
	tests := []struct {
		id     string
		prefix string
	}{
		{NewRunID().String(), RunPrefix},
		{NewRequestID().String(), RequestPrefix},
		{NewConnectionID().String(), ConnectionPrefix},
		{NewSpanID().String(), SpanPrefix},
	}

	for _, tt := range tests {
		assert.True(t, strings.HasPrefix(tt.id, tt.prefix+"_"), tt.id)
		assert.True(t, IsValid(tt.id), tt.id)
	}
}

func TestParseAndTimestamp(t *testing.T) {
	before := time.Now().Add(-time.Second)
	run := NewRunID()

	ts, err := Timestamp(run.String())
	require.NoError(t, err)
	assert.True(t, ts.After(before))

	assert.False(t, IsValid("run_not-a-ulid"))
	_, err = Timestamp("garbage")
	assert.Error(t, err)
}

func TestDeterministicEntropy(t *testing.T) {
	seed := bytes.Repeat([]byte{1}, 64)
	a := NewGeneratorWithEntropy(bytes.NewReader(seed)).Generate()
	b := NewGeneratorWithEntropy(bytes.NewReader(seed)).Generate()
	assert.Equal(t, a.Entropy(), b.Entropy())
}

func TestConcurrentGeneration(t *testing.T) {
	gen := NewGenerator()
	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s := gen.GenerateString()
				mu.Lock()
				seen[s] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 800)
}
