package hook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSiteRebuildTask(t *testing.T) {
	task, err := NewSiteRebuildTask("book-1")
	require.NoError(t, err)

	assert.Equal(t, TypeSiteRebuild, task.Type())

	var payload SiteRebuildPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "book-1", payload.BookID)
}
