package service

import (
	"backend/internal/uimeta"
	"errors"
	"time"
)

// Accepted date layouts: ISO from API clients and the display form from the UI.
var dateLayouts = []string{"2006-01-02", "02.01.2006"}

// DisplayDate is the layout dates are rendered with
const DisplayDate = uimeta.DisplayDate

// ParseDate accepts a date in either ISO or display form
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("Неверный формат даты.")
}
