package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrSelfDelete is returned when a user tries to delete their own account
var ErrSelfDelete = errors.New("Роскомнадзор запрещает делать это")

// UserRow is the list representation of a user, digest omitted
type UserRow struct {
	ID      uint   `json:"id"`
	Login   string `json:"login"`
	Role    string `json:"role"`
	RoleRus string `json:"role_rus"`
}

// UserService defines the business logic for user management
type UserService interface {
	AddUser(ctx context.Context, login, password, role string) (uint, error)
	UpdateUser(ctx context.Context, id uint, login, password, role string) error
	DeleteUser(ctx context.Context, id, actorID uint) (bool, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]UserRow, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService returns a new instance of UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func validRole(role string) bool {
	return role == model.RoleAdmin || role == model.RoleDirector || role == model.RoleAccounter
}

// AddUser validates the fields, accumulating every problem into one message,
// then stores the user with a bcrypt digest.
func (s *userService) AddUser(ctx context.Context, login, password, role string) (uint, error) {
	var problems []string
	if login == "" {
		problems = append(problems, "Логин не указан.")
	} else if _, err := s.repo.GetByLogin(ctx, login); err == nil {
		problems = append(problems, "Пользователь уже существует.")
	}
	if password == "" {
		problems = append(problems, "Пароль не указан.")
	}
	if role == "" {
		problems = append(problems, "Роль не указана.")
	} else if !validRole(role) {
		problems = append(problems, "Неизвестная роль.")
	}
	if len(problems) > 0 {
		return 0, errors.New(strings.Join(problems, " "))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, errors.New("не удалось вычислить хэш пароля")
	}

	user := &model.User{Login: login, PasswordHash: string(hash), Role: role}
	if err := s.repo.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// UpdateUser applies only the non-empty fields; an empty password keeps the
// current digest.
func (s *userService) UpdateUser(ctx context.Context, id uint, login, password, role string) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.New("Пользователь не существует.")
	}

	if login != "" && !strings.EqualFold(login, user.Login) {
		if existing, err := s.repo.GetByLogin(ctx, login); err == nil && existing.ID != id {
			return errors.New("Пользователь с таким логином уже существует.")
		}
		user.Login = login
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return errors.New("не удалось вычислить хэш пароля")
		}
		user.PasswordHash = string(hash)
	}
	if role != "" {
		if !validRole(role) {
			return errors.New("Неизвестная роль.")
		}
		user.Role = role
	}

	return s.repo.Update(ctx, user)
}

// DeleteUser removes a user. Deleting your own account is rejected before
// the store is touched, regardless of role.
func (s *userService) DeleteUser(ctx context.Context, id, actorID uint) (bool, error) {
	if id == actorID {
		return false, ErrSelfDelete
	}
	return s.repo.Delete(ctx, id)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context) ([]UserRow, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]UserRow, 0, len(users))
	for i := range users {
		u := &users[i]
		rows = append(rows, UserRow{ID: u.ID, Login: u.Login, Role: u.Role, RoleRus: u.RoleRus()})
	}
	return rows, nil
}
