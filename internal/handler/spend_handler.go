package handler

import (
	"backend/internal/service"
	"backend/internal/uimeta"
	"backend/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SpendHandler serves material consumption records
type SpendHandler struct {
	spends service.SpendService
}

// NewSpendHandler returns a new instance of SpendHandler
func NewSpendHandler(spends service.SpendService) *SpendHandler {
	return &SpendHandler{spends: spends}
}

// Handle dispatches the spend operations
func (h *SpendHandler) Handle(c *gin.Context, op string) {
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

func (h *SpendHandler) add(c *gin.Context) {
	id, err := h.spends.AddSpend(c.Request.Context(),
		uintParam(c, "material_id"), intParam(c, "quantity"), supplyDate(c))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.OK("Трата материалов добавлена.", gin.H{"id": id}))
}

func (h *SpendHandler) update(c *gin.Context) {
	err := h.spends.UpdateSpend(c.Request.Context(), uintParam(c, "id"),
		uintParam(c, "material_id"), intParam(c, "quantity"), supplyDate(c))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.OK("Трата обновлена.", nil))
}

func (h *SpendHandler) delete(c *gin.Context) {
	removed, err := h.spends.DeleteSpend(c.Request.Context(), uintParam(c, "id"))
	if err != nil || !removed {
		c.JSON(http.StatusOK, response.Fail("Ошибка при удалении траты."))
		return
	}
	c.JSON(http.StatusOK, response.OK("Трата удалена.", nil))
}

func (h *SpendHandler) get(c *gin.Context) {
	spend, err := h.spends.GetSpend(c.Request.Context(), uintParam(c, "id"))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail("Трата не найдена"))
		return
	}
	c.JSON(http.StatusOK, response.OK("Трата получена", spend))
}

func (h *SpendHandler) list(c *gin.Context) {
	rows, err := h.spends.ListSpends(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Fail("Ошибка получения списка трат."))
		return
	}
	c.JSON(http.StatusOK, response.OK("", rows))
}

// Descriptor declares the Spends view for the generic client
func (h *SpendHandler) Descriptor() uimeta.Descriptor {
	return uimeta.Descriptor{
		Key:         "Spends",
		Description: "Представление для управления тратами",
		Controller:  "spend",
		Header: uimeta.Columns{
			{Key: "id", Label: "ID"},
			{Key: "date_human", Label: "Дата"},
			{Key: "material_name", Label: "Материал"},
			{Key: "quantity", Label: "Количество"},
			{Key: "unit", Label: "Единица"},
		},
		Add: uimeta.Form{
			{Key: "material_id", Field: uimeta.Field{Text: "Материал", Type: uimeta.TypeDictionary, Controller: "Materials"}},
			{Key: "quantity", Field: uimeta.Field{Text: "Количество", Type: uimeta.TypeNumber}},
			{Key: "date", Field: uimeta.Field{Text: "Дата", Type: uimeta.TypeDate}},
		},
		Title:     "трату",
		TitleMain: "Траты",
	}
}
