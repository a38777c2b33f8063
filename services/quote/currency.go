package quote

import (
	"fmt"
	"strconv"

	"voyago/config"
	"voyago/models"
)

// Format renders an amount in the given display currency. Quotes are priced
// in USD; VND display multiplies by the fixed configured conversion rate and
// drops the decimals. This is presentation only, nothing feeds back into the
// quote.
func Format(amount float64, currency models.Currency) string {
	switch currency {
	case models.CurrencyVND:
		return FormatVND(amount)
	default:
		return FormatUSD(amount)
	}
}

// FormatUSD renders a dollar amount with two decimal places, e.g. "$110.00".
func FormatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FormatVND converts a USD amount at the fixed VND rate and renders it as a
// grouped integer, e.g. "2,750,000 VND". The rate is a hardcoded display
// convenience, not a live exchange feed.
func FormatVND(amountUSD float64) string {
	rate := config.AppConfig.VNDPerUSD
	if rate == 0 {
		rate = 25000
	}
	return groupThousands(int64(amountUSD*rate+0.5)) + " VND"
}

func groupThousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
