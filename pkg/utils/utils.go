package utils

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// FormatRupiah renders an amount with the Rp prefix and dot thousand
// separators, e.g. FormatRupiah(15000000) = "Rp15.000.000".
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var sb strings.Builder
	if negative {
		sb.WriteString("-")
	}
	sb.WriteString("Rp")

	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
		if len(digits) > lead {
			sb.WriteString(".")
		}
	}
	for i := lead; i < len(digits); i += 3 {
		sb.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			sb.WriteString(".")
		}
	}

	return sb.String()
}

// FormatRupiahFloat rounds to the nearest rupiah before formatting.
func FormatRupiahFloat(amount float64) string {
	if amount < 0 {
		return FormatRupiah(int64(amount - 0.5))
	}
	return FormatRupiah(int64(amount + 0.5))
}
