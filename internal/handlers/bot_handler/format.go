package bot_handler

import "strconv"

const progressBarLength = 10

// formatRupiah renders a whole-rupiah amount with dot thousand separators,
// e.g. 1500000 -> "Rp1.500.000".
func formatRupiah(amount int64) string {
	digits := strconv.FormatInt(amount, 10)

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return "Rp" + string(out)
}

// progressBar renders a ratio in [0,1] as a fixed-width bar of ▓ and ░.
func progressBar(ratio float64, length int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio * float64(length))
	bar := make([]rune, 0, length)
	for i := 0; i < length; i++ {
		if i < filled {
			bar = append(bar, '▓')
		} else {
			bar = append(bar, '░')
		}
	}
	return string(bar)
}
