package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/uimeta"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// ErrUnknownReportType rejects a report_type outside the four generators
var ErrUnknownReportType = errors.New("Ошибка: выберите тип отчёта")

// TablePayload is the rendered report: a legend plus an ordered header map
// and the rows to show under it. It is what gets persisted as content.
type TablePayload struct {
	Type       string         `json:"type"`
	ReportType string         `json:"report_type"`
	Legend     string         `json:"legend"`
	Headers    uimeta.Columns `json:"headers"`
	Values     interface{}    `json:"values"`
}

// Row shapes of the four generators
type ConsumptionLine struct {
	Name          string `json:"name"`
	TotalQuantity int64  `json:"total_quantity"`
	Unit          string `json:"unit"`
}

type AverageLine struct {
	Name         string          `json:"name"`
	AverageDaily decimal.Decimal `json:"average_daily"`
	Unit         string          `json:"unit"`
}

type BalanceLine struct {
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
	Status  string `json:"status"`
}

type SupplyLine struct {
	ID       uint   `json:"id"`
	Date     string `json:"date"`
	Supplier string `json:"supplier"`
	Material string `json:"material"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// ReportListRow is the list representation of a stored report with the
// display dates already rendered.
type ReportListRow struct {
	ID        uint            `json:"id"`
	Type      string          `json:"report_type"`
	TypeHuman string          `json:"type_human"`
	DateHuman string          `json:"date_human"`
	Author    string          `json:"author"`
	DateStart string          `json:"date_start"`
	DateEnd   string          `json:"date_end"`
	Data      json.RawMessage `json:"data"`
}

// ReportService defines report generation, listing and removal
type ReportService interface {
	Generate(ctx context.Context, reportType string, start, end *time.Time, authorID uint, preview bool) (*TablePayload, error)
	ListReports(ctx context.Context) ([]ReportListRow, error)
	DeleteReport(ctx context.Context, id uint) (bool, error)
}

type reportService struct {
	reports  repository.ReportRepository
	supplies repository.SupplyRepository
}

// NewReportService returns a new instance of ReportService
func NewReportService(reports repository.ReportRepository, supplies repository.SupplyRepository) ReportService {
	return &reportService{reports: reports, supplies: supplies}
}

// TypeGenitive names a report type for status messages, e.g.
// "Отчёт по расходу материалов сформирован".
func TypeGenitive(reportType string) string {
	switch reportType {
	case model.ReportConsumption:
		return "по расходу материалов"
	case model.ReportAverageConsumption:
		return "по среднему расходу материалов"
	case model.ReportRemainingMaterials:
		return "по остатку материалов"
	case model.ReportSupplies:
		return "по поставкам"
	default:
		return reportType
	}
}

// Generate builds the requested report. With preview set the payload is
// returned without being persisted.
func (s *reportService) Generate(ctx context.Context, reportType string, start, end *time.Time, authorID uint, preview bool) (*TablePayload, error) {
	var (
		payload *TablePayload
		err     error
	)
	switch reportType {
	case model.ReportConsumption:
		payload, err = s.consumption(ctx, start, end)
	case model.ReportAverageConsumption:
		payload, err = s.averageConsumption(ctx, start, end)
	case model.ReportRemainingMaterials:
		payload, err = s.remainingMaterials(ctx)
		start, end = nil, nil
	case model.ReportSupplies:
		payload, err = s.suppliesReport(ctx)
		start, end = nil, nil
	default:
		return nil, ErrUnknownReportType
	}
	if err != nil {
		return nil, err
	}

	if !preview {
		if err := s.save(ctx, payload, start, end, authorID); err != nil {
			return nil, err
		}
	}
	return payload, nil
}

func (s *reportService) save(ctx context.Context, payload *TablePayload, start, end *time.Time, authorID uint) error {
	content, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	report := &model.Report{
		ReportType:  payload.ReportType,
		ReportDate:  time.Now(),
		AuthorID:    authorID,
		PeriodStart: start,
		PeriodEnd:   end,
		Content:     string(content),
	}
	if err := s.reports.Create(ctx, report); err != nil {
		log.WithError(err).WithField("report_type", payload.ReportType).Error("failed to persist report")
		return err
	}
	return nil
}

// periodRus renders a period bound, open bounds spelled out
func periodRus(start, end *time.Time) string {
	from := "начала учёта"
	if start != nil {
		from = start.Format(DisplayDate)
	}
	to := "конец учёта"
	if end != nil {
		to = end.Format(DisplayDate)
	}
	return fmt.Sprintf("с %s по %s", from, to)
}

func (s *reportService) consumption(ctx context.Context, start, end *time.Time) (*TablePayload, error) {
	totals, err := s.reports.SumSpentByMaterial(ctx, start, end)
	if err != nil {
		return nil, err
	}
	lines := make([]ConsumptionLine, 0, len(totals))
	for _, t := range totals {
		lines = append(lines, ConsumptionLine{Name: t.Name, TotalQuantity: t.Total, Unit: t.Unit})
	}
	return &TablePayload{
		Type:       "table",
		ReportType: model.ReportConsumption,
		Legend:     "Отчёт по расходу материалов\nЗа период " + periodRus(start, end),
		Headers: uimeta.Columns{
			{Key: "name", Label: "Материал"},
			{Key: "total_quantity", Label: "Сумма расхода"},
			{Key: "unit", Label: "Единица"},
		},
		Values: lines,
	}, nil
}

// averageConsumption divides the period total by the inclusive day count.
// Both bounds are required, otherwise the day count is undefined.
func (s *reportService) averageConsumption(ctx context.Context, start, end *time.Time) (*TablePayload, error) {
	if start == nil || end == nil {
		return nil, errors.New("Ошибка: укажите период отчёта.")
	}
	days := int64(end.Sub(*start).Hours()/24) + 1
	if days <= 0 {
		return nil, errors.New("Ошибка: конец периода раньше начала.")
	}

	totals, err := s.reports.SumSpentByMaterial(ctx, start, end)
	if err != nil {
		return nil, err
	}
	divisor := decimal.NewFromInt(days)
	lines := make([]AverageLine, 0, len(totals))
	for _, t := range totals {
		avg := decimal.NewFromInt(t.Total).Div(divisor).Round(2)
		lines = append(lines, AverageLine{Name: t.Name, AverageDaily: avg, Unit: t.Unit})
	}
	return &TablePayload{
		Type:       "table",
		ReportType: model.ReportAverageConsumption,
		Legend:     "Отчёт по среднему расходу материалов\nЗа период " + periodRus(start, end),
		Headers: uimeta.Columns{
			{Key: "name", Label: "Материал"},
			{Key: "average_daily", Label: "Средний расход"},
			{Key: "unit", Label: "Единица"},
		},
		Values: lines,
	}, nil
}

func (s *reportService) remainingMaterials(ctx context.Context) (*TablePayload, error) {
	balances, err := s.reports.MaterialBalances(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]BalanceLine, 0, len(balances))
	for _, b := range balances {
		status := "Израсходован"
		if b.Balance > 0 {
			status = "В наличии"
		}
		lines = append(lines, BalanceLine{Name: b.Name, Balance: b.Balance, Status: status})
	}
	return &TablePayload{
		Type:       "table",
		ReportType: model.ReportRemainingMaterials,
		Legend:     "Отчёт по остаткам материалов",
		Headers: uimeta.Columns{
			{Key: "name", Label: "Материал"},
			{Key: "balance", Label: "Остаток"},
			{Key: "status", Label: "Статус"},
		},
		Values: lines,
	}, nil
}

func (s *reportService) suppliesReport(ctx context.Context) (*TablePayload, error) {
	rows, err := s.supplies.List(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]SupplyLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, SupplyLine{
			ID:       r.ID,
			Date:     r.Date.Format(DisplayDate),
			Supplier: r.SupplierName,
			Material: r.MaterialName,
			Quantity: r.Quantity,
			Unit:     r.Unit,
		})
	}
	return &TablePayload{
		Type:       "table",
		ReportType: model.ReportSupplies,
		Legend:     "Отчёт по поставкам",
		Headers: uimeta.Columns{
			{Key: "id", Label: "ID"},
			{Key: "date", Label: "Дата поставки"},
			{Key: "supplier", Label: "Поставщик"},
			{Key: "material", Label: "Материал"},
			{Key: "quantity", Label: "Количество"},
			{Key: "unit", Label: "Единица"},
		},
		Values: lines,
	}, nil
}

// humanDate renders a date for the report list: empty for missing, "нет" for
// the zero placeholder, "сегодня" for today's date.
func humanDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	if t.IsZero() {
		return "нет"
	}
	formatted := t.Format(DisplayDate)
	if formatted == time.Now().Format(DisplayDate) {
		return "сегодня"
	}
	return formatted
}

func (s *reportService) ListReports(ctx context.Context) ([]ReportListRow, error) {
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]ReportListRow, 0, len(reports))
	for _, r := range reports {
		data := json.RawMessage(r.Content)
		if !json.Valid(data) {
			data = json.RawMessage("{}")
		}
		date := r.ReportDate
		rows = append(rows, ReportListRow{
			ID:        r.ID,
			Type:      r.ReportType,
			TypeHuman: model.TypeRus(r.ReportType),
			DateHuman: humanDate(&date),
			Author:    r.Author,
			DateStart: humanDate(r.PeriodStart),
			DateEnd:   humanDate(r.PeriodEnd),
			Data:      data,
		})
	}
	return rows, nil
}

func (s *reportService) DeleteReport(ctx context.Context, id uint) (bool, error) {
	return s.reports.Delete(ctx, id)
}
