package model

import "time"

// Report types
const (
	ReportConsumption        = "consumption"
	ReportAverageConsumption = "average_consumption"
	ReportRemainingMaterials = "remaining_materials"
	ReportSupplies           = "supplies"
)

// Report is a generated report persisted with its rendered table payload
type Report struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ReportType  string     `gorm:"type:varchar(50);not null" json:"report_type"`
	ReportDate  time.Time  `gorm:"not null" json:"report_date"`
	AuthorID    uint       `gorm:"index" json:"author_id"`
	PeriodStart *time.Time `json:"period_start"`
	PeriodEnd   *time.Time `json:"period_end"`
	Content     string     `gorm:"type:text" json:"-"`
}

// TypeRus returns the display label for a report type
func TypeRus(reportType string) string {
	switch reportType {
	case ReportConsumption:
		return "Расход"
	case ReportAverageConsumption:
		return "Расход средний"
	case ReportRemainingMaterials:
		return "Остатки"
	case ReportSupplies:
		return "Поставки"
	default:
		if reportType == "" {
			return "н/д"
		}
		return reportType
	}
}
