package handler

import (
	"backend/internal/service"
	"backend/internal/uimeta"
	"backend/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaterialHandler serves the materials dictionary
type MaterialHandler struct {
	materials service.MaterialService
}

// NewMaterialHandler returns a new instance of MaterialHandler
func NewMaterialHandler(materials service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materials: materials}
}

// Handle dispatches the material operations
func (h *MaterialHandler) Handle(c *gin.Context, op string) {
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

func (h *MaterialHandler) add(c *gin.Context) {
	id, err := h.materials.AddMaterial(c.Request.Context(), param(c, "name"), param(c, "unit"))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail("Ошибка при добавлении материала. "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.OK("Материал добавлен.", gin.H{"id": id}))
}

func (h *MaterialHandler) update(c *gin.Context) {
	if err := h.materials.UpdateMaterial(c.Request.Context(), uintParam(c, "id"), param(c, "name"), param(c, "unit")); err != nil {
		c.JSON(http.StatusOK, response.Fail("Ошибка при обновлении материала."))
		return
	}
	c.JSON(http.StatusOK, response.OK("Материал обновлён.", nil))
}

func (h *MaterialHandler) delete(c *gin.Context) {
	removed, err := h.materials.DeleteMaterial(c.Request.Context(), uintParam(c, "id"))
	if err != nil || !removed {
		c.JSON(http.StatusOK, response.Fail("Ошибка при удалении материала."))
		return
	}
	c.JSON(http.StatusOK, response.OK("Материал удалён.", nil))
}

func (h *MaterialHandler) get(c *gin.Context) {
	material, err := h.materials.GetMaterial(c.Request.Context(), uintParam(c, "id"))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail("Материал не найден."))
		return
	}
	c.JSON(http.StatusOK, response.OK("Материал найден.", material))
}

func (h *MaterialHandler) list(c *gin.Context) {
	materials, err := h.materials.ListMaterials(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Fail("Ошибка получения списка материалов."))
		return
	}
	c.JSON(http.StatusOK, response.OK("", materials))
}

// Descriptor declares the Materials view for the generic client
func (h *MaterialHandler) Descriptor() uimeta.Descriptor {
	return uimeta.Descriptor{
		Key:         "Materials",
		Description: "Представление для управления материалами",
		Controller:  "materials",
		Header: uimeta.Columns{
			{Key: "id", Label: "ID"},
			{Key: "name", Label: "Название"},
			{Key: "unit", Label: "Единица"},
		},
		Add: uimeta.Form{
			{Key: "name", Field: uimeta.Field{Text: "Название", Type: uimeta.TypeText}},
			{Key: "unit", Field: uimeta.Field{Text: "Единица", Type: uimeta.TypeText}},
		},
		Title:     "материал",
		TitleMain: "Материалы",
	}
}
