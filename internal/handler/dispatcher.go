// Package handler exposes every resource behind a single
// /api/v{version}/{resource}/{operation} route. A resource handler receives
// the already-lowercased operation name and answers with the uniform
// envelope; the dispatcher owns versioning and the role gate.
package handler

import (
	"backend/internal/access"
	"backend/internal/middleware"
	"backend/pkg/response"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// APIVersion is the only dispatchable version prefix
const APIVersion = "v1"

// ResourceHandler handles the operations of one resource
type ResourceHandler interface {
	Handle(c *gin.Context, op string)
}

// Dispatcher routes resource/operation pairs to their handlers after the
// access gate.
type Dispatcher struct {
	resources map[string]ResourceHandler
}

// NewDispatcher returns an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{resources: make(map[string]ResourceHandler)}
}

// Register binds a resource name to its handler
func (d *Dispatcher) Register(resource string, h ResourceHandler) {
	d.resources[resource] = h
}

// RegisterRoutes mounts the dispatch route for both verbs the clients use
func (d *Dispatcher) RegisterRoutes(r gin.IRoutes) {
	r.GET("/api/:version/:resource/:operation", d.Route)
	r.POST("/api/:version/:resource/:operation", d.Route)
}

// Route resolves the version, the resource and the caller's right to use it,
// then hands the operation to the resource handler.
func (d *Dispatcher) Route(c *gin.Context) {
	if version := c.Param("version"); version != APIVersion {
		c.JSON(http.StatusNotImplemented, response.Fail("Версия API не поддерживается. Используйте v1."))
		return
	}

	resource := strings.ToLower(c.Param("resource"))
	h, ok := d.resources[resource]
	if !ok {
		c.JSON(http.StatusNotFound, response.Fail("Контроллер не найден"))
		return
	}

	user := middleware.CurrentUser(c)
	if !access.IsAllowed(resource, user) {
		role := "Не авторизован"
		if user != nil {
			role = user.Role
		}
		log.WithFields(log.Fields{"resource": resource, "role": role}).Info("access denied")
		c.JSON(http.StatusUnauthorized, response.Fail(
			fmt.Sprintf("Ваша роль %q не позволяет использовать контроллер %q.", role, resource)))
		return
	}

	h.Handle(c, strings.ToLower(c.Param("operation")))
}

// notFoundOp is the shared unknown-operation answer
func notFoundOp(c *gin.Context) {
	c.JSON(http.StatusNotFound, response.Fail("Метод не найден."))
}
