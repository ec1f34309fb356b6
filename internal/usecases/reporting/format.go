package reporting

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/vfg2006/sales-report/pkg/utils"
)

// FormatMillions formata um valor monetário em milhões de rúpias, ex.: Rs.5.0M
func FormatMillions(amount float64) string {
	return fmt.Sprintf("Rs.%.1fM", utils.Millions(amount))
}

// FormatPercent formata uma participação com uma casa decimal
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatSignedPercent acrescenta "+" aos valores positivos
func FormatSignedPercent(pct float64) string {
	sign := ""
	if pct > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, pct)
}

// FormatInt formata inteiros com separador de milhar
func FormatInt(n int64) string {
	return humanize.Comma(n)
}

func FormatDate(date time.Time) string {
	if date.IsZero() {
		return "-"
	}
	return date.Format(time.DateOnly)
}
