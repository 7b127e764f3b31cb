// Package report serializes a user's record history into a flat table.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/models"
)

// WriteCSV writes the record history as CSV: a "Date,Saved,Amount" header
// followed by one row per stored record, ascending by date. Ordering is done
// on the date values themselves, never on formatted strings. Amounts are
// exported as raw integers; currency formatting is a rendering concern.
func WriteCSV(w io.Writer, records models.RecordSet) error {
	dates := make([]time.Time, 0, len(records))
	for d := range records {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Saved", "Amount"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, d := range dates {
		rec := records[d]
		saved := "no"
		if rec.Saved {
			saved = "yes"
		}
		row := []string{d.Format(models.DateLayout), saved, strconv.FormatInt(rec.Amount, 10)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
