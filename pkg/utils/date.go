package utils

import "time"

// MonthStart retorna o primeiro dia do mês em UTC
func MonthStart(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}
