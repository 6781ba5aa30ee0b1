package middleware

import (
	"backend/internal/model"
	"backend/internal/service"
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

// SessionHeader carries the session token on authenticated requests
const SessionHeader = "X-Session-ID"

const (
	ctxSessionKey = "auth_session"
	ctxUserKey    = "auth_user"
)

// SessionID extracts the session token from the request, checking the header
// first, then the query string, then a JSON body on POST. The body is
// restored so a handler can still read it.
func SessionID(c *gin.Context) string {
	if id := c.GetHeader(SessionHeader); id != "" {
		return id
	}
	if id := c.Query("session_id"); id != "" {
		return id
	}
	if c.Request.Method != "POST" || c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	var payload struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.SessionID
}

// Resolve attaches the session and its user to the request context when the
// token resolves to a live session. It never aborts: access decisions belong
// to the dispatcher gate.
func Resolve(auth service.AuthService, users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := auth.GetSession(c.Request.Context(), SessionID(c))
		if session != nil && session.IsValid() {
			c.Set(ctxSessionKey, session)
			if user, err := users.GetUser(c.Request.Context(), session.UserID); err == nil {
				c.Set(ctxUserKey, user)
			}
		}
		c.Next()
	}
}

// CurrentSession returns the resolved session or nil
func CurrentSession(c *gin.Context) *model.Session {
	if v, ok := c.Get(ctxSessionKey); ok {
		if session, ok := v.(*model.Session); ok {
			return session
		}
	}
	return nil
}

// CurrentUser returns the resolved user or nil
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}
