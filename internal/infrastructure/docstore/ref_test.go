package docstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefPath(t *testing.T) {
	ref := Ref{Collection: "authors", ID: "a1"}
	assert.Equal(t, "authors/a1", ref.Path())
}

func TestRefMarshalsAsPathString(t *testing.T) {
	fields := map[string]any{
		"title":  "Dune",
		"author": Ref{Collection: "authors", ID: "a1"},
	}

	raw, err := json.Marshal(fields)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "authors/a1", decoded["author"])
}
