package handler

import (
	"backend/internal/uimeta"
	"backend/pkg/response"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// Server readiness states
const (
	StatusUnknown     int32 = 0
	StatusReady       int32 = 1
	StatusMaintenance int32 = -1
)

// ServerStatus is the mutable readiness flag the health probe reports.
// It starts as StatusUnknown until migration finishes.
type ServerStatus struct {
	v atomic.Int32
}

// Set stores the readiness state
func (s *ServerStatus) Set(status int32) { s.v.Store(status) }

// Get loads the readiness state
func (s *ServerStatus) Get() int32 { return s.v.Load() }

// HealthHandler answers liveness probes without touching storage
type HealthHandler struct {
	status *ServerStatus
}

// NewHealthHandler returns a new instance of HealthHandler
func NewHealthHandler(status *ServerStatus) *HealthHandler {
	return &HealthHandler{status: status}
}

// Handle dispatches the health operations
func (h *HealthHandler) Handle(c *gin.Context, op string) {
	switch op {
	case "check":
		// Anything but ready answers unavailable, so the pre-migration
		// window is reported the same way as maintenance.
		if h.status.Get() != StatusReady {
			c.JSON(http.StatusServiceUnavailable, response.Fail("Ведутся работы на сервере"))
			return
		}
		c.JSON(http.StatusOK, response.OK("ОК", nil))
	default:
		notFoundOp(c)
	}
}

// SystemHandler serves the view descriptor document the generic client
// renders its whole UI from.
type SystemHandler struct {
	registry *uimeta.Registry
}

// NewSystemHandler returns a new instance of SystemHandler
func NewSystemHandler(registry *uimeta.Registry) *SystemHandler {
	return &SystemHandler{registry: registry}
}

// Handle dispatches the system operations
func (h *SystemHandler) Handle(c *gin.Context, op string) {
	switch op {
	case "get-interface":
		c.JSON(http.StatusOK, h.registry)
	default:
		notFoundOp(c)
	}
}
