package main

import (
	"strings"
	"time"

	"github.com/hmueller/advanzia2csv/pkg/csv"
	"github.com/hmueller/advanzia2csv/pkg/models"
)

type filters struct {
	startDate string
	endDate   string
	minAmount float64
	maxAmount float64
	match     string
}

func (f *filters) toFilterFunc() csv.FilterFunc {
	return func(t *models.Transaction) bool {
		if f.startDate != "" {
			start, _ := time.Parse("02.01.2006", f.startDate)
			date, _ := time.Parse("02.01.2006", t.Date)
			if date.Before(start) {
				return false
			}
		}
		if f.endDate != "" {
			end, _ := time.Parse("02.01.2006", f.endDate)
			date, _ := time.Parse("02.01.2006", t.Date)
			if date.After(end) {
				return false
			}
		}
		if f.minAmount != 0 && t.Amount < f.minAmount {
			return false
		}
		if f.maxAmount != 0 && t.Amount > f.maxAmount {
			return false
		}
		if f.match != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.match)) {
			return false
		}
		return true
	}
}
