package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
)

func TestLoad(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	all := set.All()
	require.Len(t, all, len(types.Kinds))
	for i, k := range types.Kinds {
		assert.Equal(t, k, all[i].Kind, "display order")
		assert.NotEmpty(t, all[i].Title)
		assert.NotEmpty(t, all[i].Source)
	}
}

func TestGet(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	bst, err := set.Get(types.KindBST)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(bst.Source, "// Create a binary search tree\nlet bst = new BinarySearchTree();"))
	assert.Contains(t, bst.Source, "bst.insert(80);")

	_, err = set.Get(types.Kind("heap"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSourceKeepsLayout(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	arr, err := set.Get(types.KindArray)
	require.NoError(t, err)
	assert.Contains(t, arr.Source, "arr.push(40);      // Add at end\n")
	assert.Contains(t, arr.Source, "\n\n// Access elements\n")
	assert.True(t, strings.HasSuffix(arr.Source, "console.log('Final array:', arr);\n"))
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown kind",
			doc:  "templates:\n  - kind: heap\n    source: x\n",
			want: "unknown kind",
		},
		{
			name: "missing source",
			doc:  "templates:\n  - kind: array\n",
			want: "has no source",
		},
		{
			name: "duplicate",
			doc:  "templates:\n  - kind: array\n    source: a\n  - kind: array\n    source: b\n",
			want: "duplicate template",
		},
		{
			name: "missing kind",
			doc:  "templates:\n  - kind: array\n    source: a\n",
			want: "missing template",
		},
		{
			name: "malformed",
			doc:  "templates: [",
			want: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
