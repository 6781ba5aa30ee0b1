package handler

import (
	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/internal/uimeta"
	"backend/pkg/response"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves report generation and the report archive
type ReportHandler struct {
	reports service.ReportService
}

// NewReportHandler returns a new instance of ReportHandler
func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Handle dispatches the report operations. Each report type is also callable
// directly as an operation for previews.
func (h *ReportHandler) Handle(c *gin.Context, op string) {
	switch op {
	case "add":
		h.add(c)
	case model.ReportConsumption, model.ReportAverageConsumption,
		model.ReportRemainingMaterials, model.ReportSupplies:
		h.generate(c, op)
	case "delete":
		h.delete(c)
	case "list":
		h.list(c)
	default:
		notFoundOp(c)
	}
}

func authorID(c *gin.Context) uint {
	if user := middleware.CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}

// add builds and persists the report named by report_type. An open end bound
// closes at the current moment.
func (h *ReportHandler) add(c *gin.Context) {
	reportType := param(c, "report_type")
	if reportType == "" {
		c.JSON(http.StatusOK, response.Fail("Ошибка: выберите тип отчёта"))
		return
	}
	start := dateParam(c, "period_start")
	end := dateParam(c, "period_end")
	if end == nil {
		now := time.Now()
		end = &now
	}

	payload, err := h.reports.Generate(c.Request.Context(), reportType, start, end, authorID(c), false)
	if err != nil {
		c.JSON(http.StatusOK, response.Fail(
			fmt.Sprintf("Ошибка формирования отчёта %s. %s", service.TypeGenitive(reportType), err)))
		return
	}
	c.JSON(http.StatusOK, response.OK(
		fmt.Sprintf("Отчёт %s сформирован", service.TypeGenitive(reportType)), payload))
}

// generate runs one report type directly, persisting unless preview is set
func (h *ReportHandler) generate(c *gin.Context, reportType string) {
	payload, err := h.reports.Generate(c.Request.Context(), reportType,
		dateParam(c, "period_start"), dateParam(c, "period_end"), authorID(c), boolParam(c, "preview"))
	if err != nil {
		c.JSON(http.StatusOK, response.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.OK("", payload))
}

func (h *ReportHandler) delete(c *gin.Context) {
	removed, err := h.reports.DeleteReport(c.Request.Context(), uintParam(c, "id"))
	if err != nil || !removed {
		c.JSON(http.StatusOK, response.Fail("Ошибка при удалении отчёта."))
		return
	}
	c.JSON(http.StatusOK, response.OK("Отчёт удалён.", nil))
}

func (h *ReportHandler) list(c *gin.Context) {
	rows, err := h.reports.ListReports(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Fail("Ошибка получения списка отчётов."))
		return
	}
	c.JSON(http.StatusOK, response.OK("", rows))
}

// Descriptor declares the Reports view: generated rows only, no editing
func (h *ReportHandler) Descriptor() uimeta.Descriptor {
	return uimeta.Descriptor{
		Key:         "Reports",
		Description: "Представление для просмотра отчетов",
		Controller:  "reports",
		Header: uimeta.Columns{
			{Key: "id", Label: "ID"},
			{Key: "date_human", Label: "Сформирован"},
			{Key: "author", Label: "Автор"},
			{Key: "type_human", Label: "Тип отчёта"},
			{Key: "date_start", Label: "Дата, с"},
			{Key: "date_end", Label: "Дата, по"},
		},
		Add: uimeta.Form{
			{Key: "report_type", Field: uimeta.Field{Text: "Тип отчёта", Type: uimeta.TypeRadioImages, Values: uimeta.Options{
				{Key: model.ReportConsumption, Label: "по расходу материалов"},
				{Key: model.ReportAverageConsumption, Label: "по среднему расходу"},
				{Key: model.ReportRemainingMaterials, Label: "по остаткам материалов"},
				{Key: model.ReportSupplies, Label: "по поставкам"},
			}}},
			{Key: "period_start", Field: uimeta.Field{Text: "Дата, с", Type: uimeta.TypeDate}},
			{Key: "period_end", Field: uimeta.Field{Text: "Дата, по", Type: uimeta.TypeDate}},
		},
		ViewMode:  "table",
		NoEdit:    true,
		Title:     "отчёт",
		TitleMain: "Отчёты",
	}
}
