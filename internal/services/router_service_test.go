package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eoapi/internal/events"
	"eoapi/internal/services"
	"eoapi/internal/tests/mocks"
)

func TestRouterService_RefreshLeavesAndReturns(t *testing.T) {
	emitter := &mocks.EmitterMock{}
	router := services.NewRouterService(emitter)
	router.Startup(context.Background())
	router.SetCurrentRoute("/home/api/edit?uuid=42&tab=mock")

	require.NoError(t, router.Refresh())

	sent := emitter.Named(events.AppEventNavigate)
	require.Len(t, sent, 2)
	assert.Equal(t, services.NavigateEvent{Path: "**"}, sent[0].Data)
	assert.Equal(t, services.NavigateEvent{
		Path:        "/home/api/edit",
		QueryParams: map[string]string{"uuid": "42", "tab": "mock"},
	}, sent[1].Data)
	assert.Equal(t, "/home/api/edit?tab=mock&uuid=42", router.CurrentRoute())
}

func TestRouterService_NoFrontendNoEvents(t *testing.T) {
	emitter := &mocks.EmitterMock{}
	router := services.NewRouterService(emitter)

	require.NoError(t, router.Navigate("/settings", nil))

	assert.Empty(t, emitter.Events)
	assert.Equal(t, "/settings", router.CurrentRoute())
}

func TestRouterService_NavigateRequiresPath(t *testing.T) {
	router := services.NewRouterService(nil)
	assert.Error(t, router.Navigate("", nil))
}
