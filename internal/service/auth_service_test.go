package service

import (
	"backend/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *fakeSessionRepo) {
	t.Helper()
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	require.NoError(t, users.Create(context.Background(), &model.User{
		Login:        "petrov",
		PasswordHash: mustHash(t, "secret"),
		Role:         model.RoleAccounter,
	}))
	return NewAuthService(sessions, users), users, sessions
}

func TestLoginUnknownUser(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	session, user, err := auth.Login(context.Background(), "nobody", "secret", "127.0.0.1")
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, session)
	assert.Nil(t, user)
}

func TestLoginWrongPassword(t *testing.T) {
	auth, _, sessions := newAuthFixture(t)

	session, user, err := auth.Login(context.Background(), "petrov", "wrong", "127.0.0.1")
	require.ErrorIs(t, err, ErrWrongPassword)
	assert.Nil(t, session)
	require.NotNil(t, user)
	assert.Equal(t, "petrov", user.Login)
	assert.Empty(t, sessions.sessions)
}

func TestLoginCaseInsensitive(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	session, user, err := auth.Login(context.Background(), "PETROV", "secret", "127.0.0.1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "petrov", user.Login)
}

func TestLoginCreatesDayLongSession(t *testing.T) {
	auth, _, sessions := newAuthFixture(t)

	session, user, err := auth.Login(context.Background(), "petrov", "secret", "10.0.0.7")
	require.NoError(t, err)
	require.NotNil(t, session)
	require.NotNil(t, user)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, "10.0.0.7", session.IP)
	assert.Equal(t, SessionTTL, session.ExpiresAt.Sub(session.CreatedAt))

	stored, ok := sessions.sessions[session.ID]
	require.True(t, ok)
	assert.Equal(t, session.UserID, stored.UserID)
	assert.True(t, auth.ValidateSession(context.Background(), session.ID))
}

func TestValidateSessionExpiry(t *testing.T) {
	auth, _, sessions := newAuthFixture(t)
	ctx := context.Background()

	expired := &model.Session{ID: "expired", UserID: 1, CreatedAt: time.Now().Add(-25 * time.Hour), ExpiresAt: time.Now().Add(-time.Hour)}
	require.NoError(t, sessions.Create(ctx, expired))
	assert.False(t, auth.ValidateSession(ctx, "expired"), "expired session must not validate")

	// A session expiring this instant counts as expired
	boundary := &model.Session{ID: "boundary", UserID: 1, CreatedAt: time.Now().Add(-SessionTTL), ExpiresAt: time.Now()}
	require.NoError(t, sessions.Create(ctx, boundary))
	assert.False(t, auth.ValidateSession(ctx, "boundary"))

	assert.False(t, auth.ValidateSession(ctx, ""))
	assert.False(t, auth.ValidateSession(ctx, "missing"))
}

func TestLogout(t *testing.T) {
	auth, _, sessions := newAuthFixture(t)
	ctx := context.Background()

	session, _, err := auth.Login(ctx, "petrov", "secret", "127.0.0.1")
	require.NoError(t, err)

	assert.True(t, auth.Logout(ctx, session.ID))
	assert.Empty(t, sessions.sessions)
	assert.False(t, auth.Logout(ctx, session.ID), "second logout finds nothing to remove")
}

func TestRemoveExpiredSessions(t *testing.T) {
	auth, _, sessions := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, sessions.Create(ctx, &model.Session{ID: "old", UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)}))
	live, err := auth.CreateSession(ctx, 1, "127.0.0.1")
	require.NoError(t, err)

	assert.True(t, auth.RemoveExpiredSessions(ctx))
	_, ok := sessions.sessions["old"]
	assert.False(t, ok)
	_, ok = sessions.sessions[live.ID]
	assert.True(t, ok, "live session survives the sweep")
}

func TestGetSessionByUserID(t *testing.T) {
	auth, _, _ := newAuthFixture(t)
	ctx := context.Background()

	assert.Nil(t, auth.GetSessionByUserID(ctx, 1))

	created, err := auth.CreateSession(ctx, 1, "127.0.0.1")
	require.NoError(t, err)

	found := auth.GetSessionByUserID(ctx, 1)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}
