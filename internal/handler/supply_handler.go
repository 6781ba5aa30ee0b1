package handler

import (
	"backend/internal/service"
	"backend/internal/uimeta"
	"backend/pkg/response"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SupplyHandler serves material receipts
type SupplyHandler struct {
	supplies service.SupplyService
}

// NewSupplyHandler returns a new instance of SupplyHandler
func NewSupplyHandler(supplies service.SupplyService) *SupplyHandler {
	return &SupplyHandler{supplies: supplies}
}

// Handle dispatches the supply operations
func (h *SupplyHandler) Handle(c *gin.Context, op string) {
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

func supplyDate(c *gin.Context) time.Time {
	if d := dateParam(c, "date"); d != nil {
		return *d
	}
	return time.Time{}
}

func (h *SupplyHandler) add(c *gin.Context) {
	id, err := h.supplies.AddSupply(c.Request.Context(),
		uintParam(c, "material_id"), uintParam(c, "supplier_id"), intParam(c, "quantity"), supplyDate(c))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.OK("Поставка добавлена.", gin.H{"id": id}))
}

func (h *SupplyHandler) update(c *gin.Context) {
	err := h.supplies.UpdateSupply(c.Request.Context(), uintParam(c, "id"),
		uintParam(c, "material_id"), uintParam(c, "supplier_id"), intParam(c, "quantity"), supplyDate(c))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.OK("Поставка обновлена.", nil))
}

func (h *SupplyHandler) delete(c *gin.Context) {
	removed, err := h.supplies.DeleteSupply(c.Request.Context(), uintParam(c, "id"))
	if err != nil || !removed {
		c.JSON(http.StatusOK, response.Fail("Ошибка при удалении поставки."))
		return
	}
	c.JSON(http.StatusOK, response.OK("Поставка удалена.", nil))
}

func (h *SupplyHandler) get(c *gin.Context) {
	supply, err := h.supplies.GetSupply(c.Request.Context(), uintParam(c, "id"))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail("Поставка не найдена"))
		return
	}
	c.JSON(http.StatusOK, response.OK("", supply))
}

func (h *SupplyHandler) list(c *gin.Context) {
	rows, err := h.supplies.ListSupplies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Fail("Ошибка получения списка поставок."))
		return
	}
	c.JSON(http.StatusOK, response.OK("", rows))
}

// Descriptor declares the Supplies view. Supplier and material are picked
// from their dictionary views, the date defaults to today.
func (h *SupplyHandler) Descriptor() uimeta.Descriptor {
	return uimeta.Descriptor{
		Key:         "Supplies",
		Description: "Представление для управления поставками",
		Controller:  "supplies",
		Header: uimeta.Columns{
			{Key: "id", Label: "ID"},
			{Key: "date_human", Label: "Дата"},
			{Key: "supplier_name", Label: "Поставщик"},
			{Key: "material_name", Label: "Материал"},
			{Key: "quantity", Label: "Количество"},
			{Key: "unit", Label: "Единица"},
		},
		Add: uimeta.Form{
			{Key: "supplier_id", Field: uimeta.Field{Text: "Поставщик", Type: uimeta.TypeDictionary, Controller: "Suppliers"}},
			{Key: "material_id", Field: uimeta.Field{Text: "Материал", Type: uimeta.TypeDictionary, Controller: "Materials"}},
			{Key: "quantity", Field: uimeta.Field{Text: "Количество", Type: uimeta.TypeNumber}},
			{Key: "date", Field: uimeta.Field{Text: "Дата", Type: uimeta.TypeDate, DefaultToday: true}},
		},
		Title:     "поставку",
		TitleMain: "Поставки",
	}
}
