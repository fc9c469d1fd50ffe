package services_test

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eoapi/internal/services"
)

func TestKeyringService_StoreGetDelete(t *testing.T) {
	s := services.NewKeyringService(keyring.NewArrayKeyring(nil))

	token, err := s.GetToken("remote")
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.StoreToken("remote", "abc"))
	token, err = s.GetToken("remote")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, s.DeleteToken("remote"))
	require.NoError(t, s.DeleteToken("remote"))
	token, err = s.GetToken("remote")
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestKeyringService_Validation(t *testing.T) {
	s := services.NewKeyringService(nil)

	assert.EqualError(t, s.StoreToken("", "x"), "key is required")
	assert.EqualError(t, s.StoreToken("k", ""), "token is empty")
	_, err := s.GetToken("")
	assert.Error(t, err)
	assert.Error(t, s.DeleteToken(""))
}

func TestKeyringService_ListTokensSorted(t *testing.T) {
	s := services.NewKeyringService(nil)
	require.NoError(t, s.StoreToken("b", "2"))
	require.NoError(t, s.StoreToken("a", "1"))

	list, err := s.ListTokens()

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0]["key"])
	assert.Equal(t, "b", list[1]["key"])
	assert.NotContains(t, list[0], "token")
}
