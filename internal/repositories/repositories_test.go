package repositories_test

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eoapi/internal/database"
	"eoapi/internal/models"
	"eoapi/internal/repositories"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init(database.Config{Path: filepath.Join(t.TempDir(), "eoapi-test.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestKeyValueRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewKeyValueRepository(openTestDB(t))

	_, ok, err := repo.Get(ctx, "DATA_SOURCE_TYPE")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "DATA_SOURCE_TYPE", "remote"))
	require.NoError(t, repo.Set(ctx, "DATA_SOURCE_TYPE", "local"))

	v, ok, err := repo.Get(ctx, "DATA_SOURCE_TYPE")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "local", v)

	require.NoError(t, repo.Delete(ctx, "DATA_SOURCE_TYPE"))
	require.NoError(t, repo.Delete(ctx, "DATA_SOURCE_TYPE"))
	_, ok, err = repo.Get(ctx, "DATA_SOURCE_TYPE")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAppSettingsRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewAppSettingsRepository(openTestDB(t))

	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "system", settings.Theme)
	assert.Equal(t, "{}", settings.Modules)

	settings.Theme = "dark"
	settings.Modules = `{"eoapi-common":{"remoteServer":{"url":"http://remote"}}}`
	require.NoError(t, repo.Update(ctx, settings))

	reloaded, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), reloaded.ID)
	assert.Equal(t, "dark", reloaded.Theme)
	assert.JSONEq(t, settings.Modules, reloaded.Modules)
}

func TestProjectAndApiDataRepositories(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	projects := repositories.NewProjectRepository(db)
	apis := repositories.NewApiDataRepository(db)

	first, err := projects.First(ctx)
	require.NoError(t, err)
	assert.Nil(t, first)

	project := &models.Project{UUID: "p-1", Name: "Petstore"}
	require.NoError(t, projects.Create(ctx, project))
	require.NoError(t, db.Create(&models.Environment{ProjectID: project.ID, Name: "dev", HostURI: "http://localhost"}).Error)

	api := &models.ApiData{
		ProjectID:    project.ID,
		Name:         "Get pet",
		URI:          "/pets/{id}",
		RestParams:   []models.ApiParam{{Name: "id", Required: true}},
		MockResponse: `{"id":1}`,
	}
	require.NoError(t, apis.Create(ctx, api))
	assert.NotEmpty(t, api.UUID)
	require.NoError(t, apis.Create(ctx, &models.ApiData{ProjectID: project.ID, Name: "List pets", URI: "/pets"}))

	list, err := apis.List(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "GET", list[0].Method)
	assert.Equal(t, http.StatusOK, list[0].MockStatus)

	found, err := apis.FindByUUID(ctx, api.UUID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, []models.ApiParam{{Name: "id", Required: true}}, found.RestParams)

	missing, err := apis.FindByUUID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	first, err = projects.First(ctx)
	require.NoError(t, err)
	assert.Equal(t, project.ID, first.ID)

	export, err := projects.Export(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Petstore", export.Project.Name)
	assert.Len(t, export.APIData, 2)
	require.Len(t, export.Environments, 1)
	assert.Equal(t, "http://localhost", export.Environments[0].HostURI)

	_, err = projects.Export(ctx, 999)
	assert.Error(t, err)
}
