package database

import (
	"backend/internal/model"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type seedUserRepo struct {
	users []model.User
}

func (r *seedUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = uint(len(r.users) + 1)
	r.users = append(r.users, *user)
	return nil
}

func (r *seedUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			clone := r.users[i]
			return &clone, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *seedUserRepo) GetByLogin(_ context.Context, login string) (*model.User, error) {
	for i := range r.users {
		if strings.EqualFold(r.users[i].Login, login) {
			clone := r.users[i]
			return &clone, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *seedUserRepo) List(_ context.Context) ([]model.User, error) {
	return append([]model.User(nil), r.users...), nil
}

func (r *seedUserRepo) Update(_ context.Context, _ *model.User) error { return nil }

func (r *seedUserRepo) Delete(_ context.Context, _ uint) (bool, error) { return false, nil }

func (r *seedUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func TestSeedAdminOnEmptyStore(t *testing.T) {
	repo := &seedUserRepo{}

	require.NoError(t, SeedAdmin(context.Background(), repo, "admin", "admin"))
	require.Len(t, repo.users, 1)

	admin := repo.users[0]
	assert.Equal(t, "admin", admin.Login)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin")))
}

func TestSeedAdminSkipsPopulatedStore(t *testing.T) {
	repo := &seedUserRepo{users: []model.User{
		{ID: 1, Login: "petrov", Role: model.RoleAccounter},
	}}

	require.NoError(t, SeedAdmin(context.Background(), repo, "admin", "admin"))
	assert.Len(t, repo.users, 1, "existing users must not be touched")
}
