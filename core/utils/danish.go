package utils

import (
	"fmt"
	"time"
)

// danishMonths holds lowercase Danish month names indexed by time.Month - 1.
var danishMonths = [...]string{
	"januar",
	"februar",
	"marts",
	"april",
	"maj",
	"juni",
	"juli",
	"august",
	"september",
	"oktober",
	"november",
	"december",
}

// FormatDanishDate renders t as a Danish long date, e.g. "24. december 2023".
func FormatDanishDate(t time.Time) string {
	return fmt.Sprintf("%d. %s %d", t.Day(), danishMonths[t.Month()-1], t.Year())
}

// FormatDanishDateTime renders t as a Danish long date with clock time,
// e.g. "24. december 2023 - kl. 10.30".
func FormatDanishDateTime(t time.Time) string {
	return fmt.Sprintf("%s - kl. %02d.%02d", FormatDanishDate(t), t.Hour(), t.Minute())
}
