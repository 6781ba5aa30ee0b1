package repository

import (
	"backend/internal/model"
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ReportRow is a report joined with its author's login
type ReportRow struct {
	ID          uint       `json:"id"`
	ReportType  string     `json:"report_type"`
	ReportDate  time.Time  `json:"report_date"`
	Author      string     `json:"author"`
	PeriodStart *time.Time `json:"period_start"`
	PeriodEnd   *time.Time `json:"period_end"`
	Content     string     `json:"-"`
}

// MaterialTotal is an aggregated spent quantity per material
type MaterialTotal struct {
	Name  string
	Total int64
	Unit  string
}

// MaterialBalance is the supplied-minus-spent balance per material
type MaterialBalance struct {
	Name    string
	Balance int64
}

// ReportRepository defines the interface for data access of Report records
// and the aggregation queries the generators are built on
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	List(ctx context.Context) ([]ReportRow, error)
	Delete(ctx context.Context, id uint) (bool, error)
	SumSpentByMaterial(ctx context.Context, start, end *time.Time) ([]MaterialTotal, error)
	MaterialBalances(ctx context.Context) ([]MaterialBalance, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository returns a new instance of ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) List(ctx context.Context) ([]ReportRow, error) {
	var rows []ReportRow
	err := r.db.WithContext(ctx).Table("reports r").
		Select("r.id, r.report_type, r.report_date, r.period_start, r.period_end, r.content, u.login AS author").
		Joins("LEFT JOIN users u ON r.author_id = u.id").
		Order("r.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Report{})
	return res.RowsAffected > 0, res.Error
}

// SumSpentByMaterial aggregates consumption per material. A nil bound leaves
// that side of the period open.
func (r *reportRepository) SumSpentByMaterial(ctx context.Context, start, end *time.Time) ([]MaterialTotal, error) {
	query := `SELECT m.name, SUM(sm.quantity) AS total, m.unit
		FROM spent_materials sm
		JOIN materials m ON sm.material_id = m.id`
	var conds []string
	var args []interface{}
	if start != nil {
		conds = append(conds, "sm.date >= ?")
		args = append(args, *start)
	}
	if end != nil {
		conds = append(conds, "sm.date <= ?")
		args = append(args, *end)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " GROUP BY m.name, m.unit ORDER BY m.name"

	var totals []MaterialTotal
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}

// MaterialBalances computes supplied-minus-spent per material over the whole
// history, including materials that never moved.
func (r *reportRepository) MaterialBalances(ctx context.Context) ([]MaterialBalance, error) {
	query := `SELECT m.name, COALESCE(supply_total.quantity, 0) - COALESCE(spent_total.quantity, 0) AS balance
		FROM materials m
		LEFT JOIN (SELECT material_id, SUM(quantity) AS quantity FROM supplies GROUP BY material_id) AS supply_total
			ON supply_total.material_id = m.id
		LEFT JOIN (SELECT material_id, SUM(quantity) AS quantity FROM spent_materials GROUP BY material_id) AS spent_total
			ON spent_total.material_id = m.id
		ORDER BY m.id`

	var balances []MaterialBalance
	if err := r.db.WithContext(ctx).Raw(query).Scan(&balances).Error; err != nil {
		return nil, err
	}
	return balances, nil
}
