package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eoapi/internal/models"
)

func TestWrap(t *testing.T) {
	env := Wrap(DataSourceChange{DataSourceType: models.DataSourceRemote})

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"onDataSourceChange","data":{"dataSourceType":"remote"}}`, string(raw))
}

func TestWindowContext(t *testing.T) {
	ctx := WithWindow(context.Background(), "main")
	assert.Equal(t, "main", WindowFromContext(ctx))
	assert.Equal(t, "", WindowFromContext(WithWindow(context.Background(), "  ")))
	assert.Equal(t, "", WindowFromContext(nil))
}

func TestNotificationHelpers(t *testing.T) {
	n := NewWarn("careful")
	assert.Equal(t, EventWarn, n.Type)
	assert.Equal(t, "careful", n.Message)
	assert.NotEqual(t, NewInfo("a").ID, NewInfo("a").ID)
	assert.Equal(t, EventError, NewError("x").Type)
	assert.Equal(t, EventSuccess, NewSuccess("x").Type)
}
