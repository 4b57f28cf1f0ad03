package session_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ics-security/hrm-chat-gateway/internal/application/session"
	"github.com/ics-security/hrm-chat-gateway/internal/domain"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
	"github.com/ics-security/hrm-chat-gateway/internal/infrastructure/sqlite"
	"github.com/ics-security/hrm-chat-gateway/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func openRepo(t *testing.T, path string) *sqlite.Store {
	t.Helper()
	repo, err := sqlite.New(path, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func adminSession(id string) *entity.Session {
	return &entity.Session{
		ID:       id,
		UserID:   1,
		FullName: "Nguyễn Văn An",
		Email:    "an.nguyen@icss.com.vn",
		Role:     entity.RoleAdmin,
	}
}

func TestLoginThenGet(t *testing.T) {
	repo := openRepo(t, filepath.Join(t.TempDir(), "s.db"))
	store, err := session.NewStore(repo, testLogger())
	require.NoError(t, err)

	require.NoError(t, store.Login(adminSession("s1")))

	got := store.Get("s1")
	require.NotNil(t, got)
	assert.Equal(t, "Nguyễn Văn An", got.FullName)
	assert.True(t, store.IsAuthenticated("s1"))
	assert.False(t, store.IsAuthenticated("unknown"))
}

func TestLogin_RejectsInvalidSession(t *testing.T) {
	repo := openRepo(t, filepath.Join(t.TempDir(), "s.db"))
	store, err := session.NewStore(repo, testLogger())
	require.NoError(t, err)

	err = store.Login(&entity.Session{ID: "s1", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
	assert.Nil(t, store.Get("s1"))
}

func TestLogout_RemovesEverywhere(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.db")
	repo := openRepo(t, path)
	store, err := session.NewStore(repo, testLogger())
	require.NoError(t, err)

	require.NoError(t, store.Login(adminSession("s1")))
	require.NoError(t, store.Logout("s1"))
	assert.Nil(t, store.Get("s1"))
	require.NoError(t, store.Logout("s1"), "logging out twice is a no-op")

	// A fresh store over the same file must not resurrect the session.
	fresh, err := session.NewStore(repo, testLogger())
	require.NoError(t, err)
	assert.Nil(t, fresh.Get("s1"))
}

func TestRestore_SessionsSurviveRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.db")
	repo := openRepo(t, path)

	store, err := session.NewStore(repo, testLogger())
	require.NoError(t, err)
	require.NoError(t, store.Login(adminSession("s1")))

	// Simulate a process restart: new store over the same storage.
	restarted, err := session.NewStore(repo, testLogger())
	require.NoError(t, err)

	got := restarted.Get("s1")
	require.NotNil(t, got, "persisted sessions are restored at startup")
	assert.Equal(t, entity.RoleAdmin, got.Role)
}

func TestRestore_DropsStoredSessionWithUnknownRole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.db")
	repo := openRepo(t, path)

	// Save bypassing the store's validation, as if an old or tampered
	// process version had written it.
	bad := &entity.Session{ID: "bad", UserID: 9, FullName: "X", Role: "root"}
	require.NoError(t, repo.Save(bad))
	require.NoError(t, repo.Save(adminSession("good")))

	store, err := session.NewStore(repo, testLogger())
	require.NoError(t, err, "an invalid stored session must not fail startup")

	assert.Nil(t, store.Get("bad"))
	assert.NotNil(t, store.Get("good"))

	// The invalid entry is gone from storage as well.
	stored, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "good", stored[0].ID)
}
