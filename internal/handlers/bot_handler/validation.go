package bot_handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/models"
)

const (
	MaxAmount       = 999_999_999
	MinAmount       = 1
	MaxDurationDays = 3650
	MinDurationDays = 1

	inputDateLayout = "2006-01-02"
)

func parseAmountInput(text string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount must be a number")
	}
	if amount < MinAmount {
		return 0, fmt.Errorf("amount must be at least %d", MinAmount)
	}
	if amount > MaxAmount {
		return 0, fmt.Errorf("amount must not exceed %d", MaxAmount)
	}
	return amount, nil
}

func parseDurationInput(text string) (int, error) {
	duration, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("duration must be a number")
	}
	if duration < MinDurationDays || duration > MaxDurationDays {
		return 0, fmt.Errorf("duration must be between %d and %d days", MinDurationDays, MaxDurationDays)
	}
	return duration, nil
}

func parseDateInput(text string) (time.Time, error) {
	t, err := time.Parse(inputDateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return models.Day(t), nil
}
