package handler

import (
	"backend/internal/service"
	"backend/internal/uimeta"
	"backend/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler serves the equipment registry
type EquipmentHandler struct {
	equipment service.EquipmentService
}

// NewEquipmentHandler returns a new instance of EquipmentHandler
func NewEquipmentHandler(equipment service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipment: equipment}
}

// Handle dispatches the equipment operations
func (h *EquipmentHandler) Handle(c *gin.Context, op string) {
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

func (h *EquipmentHandler) add(c *gin.Context) {
	id, err := h.equipment.AddEquipment(c.Request.Context(), param(c, "name"), param(c, "description"))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail("Ошибка при добавлении оборудования. "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.OK("Оборудование добавлено.", gin.H{"id": id}))
}

func (h *EquipmentHandler) update(c *gin.Context) {
	if err := h.equipment.UpdateEquipment(c.Request.Context(), uintParam(c, "id"), param(c, "name"), param(c, "description")); err != nil {
		c.JSON(http.StatusOK, response.Fail("Ошибка при обновлении оборудования."))
		return
	}
	c.JSON(http.StatusOK, response.OK("Оборудование обновлено.", nil))
}

func (h *EquipmentHandler) delete(c *gin.Context) {
	removed, err := h.equipment.DeleteEquipment(c.Request.Context(), uintParam(c, "id"))
	if err != nil || !removed {
		c.JSON(http.StatusOK, response.Fail("Ошибка при удалении оборудования."))
		return
	}
	c.JSON(http.StatusOK, response.OK("Оборудование удалено.", nil))
}

func (h *EquipmentHandler) get(c *gin.Context) {
	equipment, err := h.equipment.GetEquipment(c.Request.Context(), uintParam(c, "id"))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail("Оборудование не найдено."))
		return
	}
	c.JSON(http.StatusOK, response.OK("Оборудование получено.", equipment))
}

func (h *EquipmentHandler) list(c *gin.Context) {
	equipment, err := h.equipment.ListEquipment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Fail("Ошибка получения списка оборудования."))
		return
	}
	c.JSON(http.StatusOK, response.OK("Список оборудования.", equipment))
}

// Descriptor declares the Equipment view for the generic client
func (h *EquipmentHandler) Descriptor() uimeta.Descriptor {
	return uimeta.Descriptor{
		Key:         "Equipment",
		Description: "Представление для управления техникой",
		Controller:  "equipment",
		Header: uimeta.Columns{
			{Key: "id", Label: "ID"},
			{Key: "name", Label: "Название"},
			{Key: "description", Label: "Описание"},
		},
		Add: uimeta.Form{
			{Key: "name", Field: uimeta.Field{Text: "Название", Type: uimeta.TypeText}},
			{Key: "description", Field: uimeta.Field{Text: "Описание", Type: uimeta.TypeText}},
		},
		Title:     "технику",
		TitleMain: "Техника",
	}
}
