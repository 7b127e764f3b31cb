package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, models.RecordSet{}); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	if got := buf.String(); got != "Date,Saved,Amount\n" {
		t.Fatalf("got %q, want header only", got)
	}
}

func TestWriteCSVOrdersByDateNotLexically(t *testing.T) {
	// "01 Feb 2025" sorts before "09 Jan 2025" lexically; date ordering must win.
	records := models.RecordSet{
		day(2025, time.February, 1): {Date: day(2025, time.February, 1), Saved: true, Amount: 3000},
		day(2025, time.January, 9):  {Date: day(2025, time.January, 9), Saved: true, Amount: 1000},
		day(2025, time.January, 10): {Date: day(2025, time.January, 10), Saved: false, Amount: 0},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"Date,Saved,Amount",
		"09 Jan 2025,yes,1000",
		"10 Jan 2025,no,0",
		"01 Feb 2025,yes,3000",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWriteCSVIsRestartable(t *testing.T) {
	records := models.RecordSet{
		day(2025, time.March, 3): {Date: day(2025, time.March, 3), Saved: true, Amount: 500},
	}

	var first, second bytes.Buffer
	if err := WriteCSV(&first, records); err != nil {
		t.Fatalf("first WriteCSV() error: %v", err)
	}
	if err := WriteCSV(&second, records); err != nil {
		t.Fatalf("second WriteCSV() error: %v", err)
	}

	if first.String() != second.String() {
		t.Fatalf("outputs differ:\n%q\n%q", first.String(), second.String())
	}
}
