package handler

import (
	"backend/internal/service"
	"backend/internal/uimeta"
	"backend/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SupplierHandler serves the suppliers dictionary
type SupplierHandler struct {
	suppliers service.SupplierService
}

// NewSupplierHandler returns a new instance of SupplierHandler
func NewSupplierHandler(suppliers service.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// Handle dispatches the supplier operations
func (h *SupplierHandler) Handle(c *gin.Context, op string) {
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

func (h *SupplierHandler) add(c *gin.Context) {
	id, err := h.suppliers.AddSupplier(c.Request.Context(), param(c, "name"), param(c, "contact_info"))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail("Ошибка добавления поставщика. "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.OK("Поставщик добавлен", gin.H{"id": id}))
}

func (h *SupplierHandler) update(c *gin.Context) {
	if err := h.suppliers.UpdateSupplier(c.Request.Context(), uintParam(c, "id"), param(c, "name"), param(c, "contact_info")); err != nil {
		c.JSON(http.StatusOK, response.Fail("Ошибка обновления поставщика"))
		return
	}
	c.JSON(http.StatusOK, response.OK("Поставщик обновлён", nil))
}

func (h *SupplierHandler) delete(c *gin.Context) {
	removed, err := h.suppliers.DeleteSupplier(c.Request.Context(), uintParam(c, "id"))
	if err != nil || !removed {
		c.JSON(http.StatusOK, response.Fail("Ошибка удаления поставщика"))
		return
	}
	c.JSON(http.StatusOK, response.OK("Поставщик удалён", nil))
}

func (h *SupplierHandler) get(c *gin.Context) {
	supplier, err := h.suppliers.GetSupplier(c.Request.Context(), uintParam(c, "id"))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail("Поставщик не найден"))
		return
	}
	c.JSON(http.StatusOK, response.OK("Поставщик получен", supplier))
}

func (h *SupplierHandler) list(c *gin.Context) {
	suppliers, err := h.suppliers.ListSuppliers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Fail("Ошибка получения списка поставщиков"))
		return
	}
	c.JSON(http.StatusOK, response.OK("", suppliers))
}

// Descriptor declares the Suppliers view for the generic client
func (h *SupplierHandler) Descriptor() uimeta.Descriptor {
	return uimeta.Descriptor{
		Key:         "Suppliers",
		Description: "Представление для управления поставщиками",
		Controller:  "suppliers",
		Header: uimeta.Columns{
			{Key: "id", Label: "ID"},
			{Key: "name", Label: "Название"},
			{Key: "contact_info", Label: "Контактная информация"},
		},
		Add: uimeta.Form{
			{Key: "name", Field: uimeta.Field{Text: "Название", Type: uimeta.TypeText}},
			{Key: "contact_info", Field: uimeta.Field{Text: "Контактная информация", Type: uimeta.TypeText}},
		},
		Title:     "поставщика",
		TitleMain: "Поставщики",
	}
}
