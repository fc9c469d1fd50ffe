package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eoapi/internal/models"
	"eoapi/internal/services"
	"eoapi/internal/tests/mocks"
)

type staticMockServer string

func (s staticMockServer) URL() string { return string(s) }

func TestFeatureRegistry_Register(t *testing.T) {
	r := services.NewFeatureRegistry()

	require.NoError(t, r.Register(services.ExportFeatureNamespace, services.Feature{Key: "b"}, nil))
	require.NoError(t, r.Register(services.ExportFeatureNamespace, services.Feature{Key: "a"}, services.OpenAPIFeature{}))

	assert.Error(t, r.Register(services.ExportFeatureNamespace, services.Feature{Key: "a"}, nil))
	assert.Error(t, r.Register("", services.Feature{Key: "c"}, nil))
	assert.Error(t, r.Register(services.ExportFeatureNamespace, services.Feature{}, nil))

	features := r.Features(services.ExportFeatureNamespace)
	require.Len(t, features, 2)
	assert.Equal(t, "b", features[0].Key)
	assert.Equal(t, "a", features[1].Key)
	assert.Empty(t, r.Features("unknown"))

	_, ok := r.Module("b")
	assert.False(t, ok)
	m, ok := r.Module("a")
	require.True(t, ok)
	assert.Equal(t, services.OpenAPIExportAction, m.Action())
}

func TestHostService(t *testing.T) {
	r := services.NewFeatureRegistry()
	require.NoError(t, r.Register(services.ExportFeatureNamespace, services.OpenAPIFeature{}.Descriptor(), services.OpenAPIFeature{}))
	settings := services.NewAppSettingsService(mocks.InMemoryAppSettings(models.AppSettings{
		Modules: `{"eoapi-common":{"remoteServer":{"url":"http://remote"}}}`,
	}), nil)
	host := services.NewHostService(r, settings, staticMockServer("http://127.0.0.1:13928/mock/"))

	assert.Len(t, host.GetFeature(services.ExportFeatureNamespace), 1)
	assert.Equal(t, "http://remote", host.GetModuleSettings("eoapi-common.remoteServer.url"))
	assert.Equal(t, "http://127.0.0.1:13928/mock/", host.GetMockURL())
	_, ok := host.LoadFeatureModule(services.OpenAPIFeatureKey)
	assert.True(t, ok)
}

func TestHostService_Empty(t *testing.T) {
	host := services.NewHostService(nil, nil, nil)

	assert.Empty(t, host.GetFeature(services.ExportFeatureNamespace))
	assert.Nil(t, host.GetModuleSettings("x"))
	assert.Empty(t, host.GetMockURL())
}
