package handler

import (
	"backend/internal/middleware"
	"backend/internal/service"
	"backend/internal/uimeta"
	"backend/pkg/response"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler serves account management for administrators
type UserHandler struct {
	users service.UserService
}

// NewUserHandler returns a new instance of UserHandler
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Handle dispatches the user operations
func (h *UserHandler) Handle(c *gin.Context, op string) {
	switch op {
	case "add":
		h.add(c)
	case "update":
		h.update(c)
	case "delete":
		h.delete(c)
	case "get":
		h.get(c)
	case "list":
		h.list(c)
	default:
		notFoundOp(c)
	}
}

func (h *UserHandler) add(c *gin.Context) {
	id, err := h.users.AddUser(c.Request.Context(), param(c, "login"), param(c, "password"), param(c, "role"))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail(fmt.Sprintf("Ошибка при добавлении пользователя: %s", err)))
		return
	}
	c.JSON(http.StatusOK, response.OK("Пользователь добавлен.", gin.H{"id": id}))
}

func (h *UserHandler) update(c *gin.Context) {
	err := h.users.UpdateUser(c.Request.Context(), uintParam(c, "id"), param(c, "login"), param(c, "password"), param(c, "role"))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail(fmt.Sprintf("Ошибка при обновлении пользователя: %s", err)))
		return
	}
	c.JSON(http.StatusOK, response.OK("Пользователь обновлён.", nil))
}

// delete removes an account. The caller's own account is off limits.
func (h *UserHandler) delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	var actorID uint
	if actor != nil {
		actorID = actor.ID
	}
	removed, err := h.users.DeleteUser(c.Request.Context(), uintParam(c, "id"), actorID)
	switch {
	case errors.Is(err, service.ErrSelfDelete):
		c.JSON(http.StatusOK, response.Fail(err.Error()))
	case err != nil || !removed:
		c.JSON(http.StatusOK, response.Fail("Ошибка при удалении пользователя."))
	default:
		c.JSON(http.StatusOK, response.OK("Пользователь удалён.", nil))
	}
}

func (h *UserHandler) get(c *gin.Context) {
	user, err := h.users.GetUser(c.Request.Context(), uintParam(c, "id"))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail("Пользователь не найден."))
		return
	}
	c.JSON(http.StatusOK, response.OK("", user))
}

func (h *UserHandler) list(c *gin.Context) {
	rows, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Fail("Ошибка получения списка пользователей."))
		return
	}
	c.JSON(http.StatusOK, response.OK("", rows))
}

// Descriptor declares the Users view for the generic client
func (h *UserHandler) Descriptor() uimeta.Descriptor {
	return uimeta.Descriptor{
		Key:         "Users",
		Description: "Представление для управления пользователями",
		Controller:  "users",
		Header: uimeta.Columns{
			{Key: "id", Label: "ID"},
			{Key: "login", Label: "Логин"},
			{Key: "role_rus", Label: "Роль"},
		},
		Add: uimeta.Form{
			{Key: "login", Field: uimeta.Field{Text: "Логин", Type: uimeta.TypeText}},
			{Key: "password", Field: uimeta.Field{Text: "Пароль", Type: uimeta.TypePassword}},
			{Key: "role", Field: uimeta.Field{Text: "Роль", Type: uimeta.TypeRadioImages, Values: uimeta.Options{
				{Key: "admin", Label: "Администратор"},
				{Key: "dir", Label: "Начальник подразделения"},
				{Key: "acc", Label: "Учётчик"},
			}}},
		},
		Title:     "пользователя",
		TitleMain: "Пользователи",
	}
}
