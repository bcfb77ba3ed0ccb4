package storage_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glowify/ecommerce-api/storage"
)

func TestCreateUserAndLookup(t *testing.T) {
	store := newTestStore(t)

	user, err := store.CreateUser("Ada", "ada@example.com", "hashed-secret")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)

	byID, err := store.UserByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", byID.Email)

	byEmail, err := store.UserByEmail("ada@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
	require.Equal(t, "hashed-secret", byEmail.Password)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateUser("Ada", "ada@example.com", "h1")
	require.NoError(t, err)
	_, err = store.CreateUser("Imposter", "ada@example.com", "h2")
	require.ErrorIs(t, err, storage.ErrEmailTaken)
}

func TestSanitizedOmitsPasswordKey(t *testing.T) {
	store := newTestStore(t)

	user, err := store.CreateUser("Ada", "ada@example.com", "hashed-secret")
	require.NoError(t, err)

	data, err := json.Marshal(user.Sanitized())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotContains(t, decoded, "password")
}

func TestAllUsersStripped(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateUser("Ada", "ada@example.com", "h1")
	require.NoError(t, err)
	_, err = store.CreateUser("Bob", "bob@example.com", "h2")
	require.NoError(t, err)

	users, err := store.AllUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		require.Empty(t, u.Password)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	store := newTestStore(t)

	user, err := store.CreateUser("Ada", "ada@example.com", "hashed-secret")
	require.NoError(t, err)

	name := "Ada Lovelace"
	updated, err := store.UpdateProfile(user.ID, storage.ProfileUpdate{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", updated.Name)
	require.Equal(t, "ada@example.com", updated.Email)
	// The stored hash survives profile edits untouched.
	require.Equal(t, "hashed-secret", updated.Password)
	require.Equal(t, user.ID, updated.ID)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	store := newTestStore(t)

	name := "Ghost"
	_, err := store.UpdateProfile("missing", storage.ProfileUpdate{Name: &name})
	require.ErrorIs(t, err, storage.ErrNotFound)
}
