package ogen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystneuro/ndx-patterned-ogen/pkg/schema"
)

// The committed documents under spec/ are the published artifact; they must
// stay equivalent to the in-code declarations they were exported from.
func TestCommittedSpecMatchesDeclarations(t *testing.T) {
	nsPath := filepath.Join("..", "..", "spec", NamespaceName+".namespace.yaml")

	committed, err := schema.LoadDocument(nsPath)
	require.NoError(t, err)

	declared := Document()
	assert.Equal(t, declared.Namespace.Name, committed.Namespace.Name)
	assert.Equal(t, declared.Namespace.Version, committed.Namespace.Version)
	require.Equal(t, declared.TypeNames(), committed.TypeNames())

	for _, name := range declared.TypeNames() {
		a, b := declared.Type(name), committed.Type(name)
		require.NotNil(t, b, "type %s missing from committed spec", name)
		assert.True(t, schema.EquivalentGroups(*a, *b), "type %s diverged from the committed spec", name)
	}
	assert.True(t, schema.EquivalentDocuments(declared, committed))
}
