package handler

import (
	"backend/internal/access"
	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthState is the client-facing snapshot of who is logged in and what the
// navigation may show.
type AuthState struct {
	User               *model.User    `json:"user"`
	Session            *model.Session `json:"session"`
	SessionID          string         `json:"session_id,omitempty"`
	Valid              bool           `json:"valid"`
	UserRole           string         `json:"user_role,omitempty"`
	AllowedControllers []string       `json:"allowed_controllers"`
	AllowedViews       []string       `json:"allowed_views"`
}

// AuthHandler serves login, logout and session state
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler returns a new instance of AuthHandler
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func stateFor(user *model.User, session *model.Session) AuthState {
	role := ""
	sessionID := ""
	if user != nil {
		role = user.Role
	}
	if session != nil {
		sessionID = session.ID
	}
	return AuthState{
		User:               user,
		Session:            session,
		SessionID:          sessionID,
		Valid:              session != nil && session.IsValid(),
		UserRole:           role,
		AllowedControllers: access.AllowedControllers(role),
		AllowedViews:       access.AllowedViews(role),
	}
}

// Handle dispatches the auth operations
func (h *AuthHandler) Handle(c *gin.Context, op string) {
	switch op {
	case "login":
		h.login(c)
	case "logout":
		h.logout(c)
	case "state":
		h.state(c)
	default:
		notFoundOp(c)
	}
}

// login authenticates the credentials passed as login/password parameters.
// The answer always carries the resulting auth state so the client renders
// from one response.
//
//	@Summary		Login
//	@Tags			auth
//	@Param			login		query	string	true	"login"
//	@Param			password	query	string	true	"password"
//	@Success		200	{object}	response.Response
//	@Router			/api/v1/auth/login [get]
func (h *AuthHandler) login(c *gin.Context) {
	login := param(c, "login")
	password := param(c, "password")

	if login == "" {
		c.JSON(http.StatusOK, response.Fail("Логин не передан. Укажите его параметром login"))
		return
	}
	if password == "" {
		c.JSON(http.StatusOK, response.Fail("Пароль не передан. Укажите его параметром password"))
		return
	}

	session, user, err := h.auth.Login(c.Request.Context(), login, password, c.ClientIP())
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusOK, response.Fail(fmt.Sprintf("Пользователь %q не существует", login)))
	case errors.Is(err, service.ErrWrongPassword):
		c.JSON(http.StatusOK, response.Fail("Неверный пароль"))
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.Fail("Ошибка создания сессии"))
	default:
		resp := response.OK(fmt.Sprintf("Добро пожаловать, %s!", user.Login), stateFor(user, session))
		c.JSON(http.StatusOK, resp)
	}
}

// logout drops the session named by the request token
func (h *AuthHandler) logout(c *gin.Context) {
	if h.auth.Logout(c.Request.Context(), middleware.SessionID(c)) {
		c.JSON(http.StatusOK, response.OK("Выход выполнен.", nil))
		return
	}
	c.JSON(http.StatusOK, response.Fail("Ошибка выхода"))
}

// state reports the current auth snapshot without side effects
func (h *AuthHandler) state(c *gin.Context) {
	state := stateFor(middleware.CurrentUser(c), middleware.CurrentSession(c))
	c.JSON(http.StatusOK, response.OK("", state))
}
