package identifier

import (
	"fmt"
	"strings"
)

// Format identifies a supported barcode layout
type Format string

const (
	FormatGTIN13 Format = "gtin13"
	FormatGTIN14 Format = "gtin14"
	FormatSSCC   Format = "sscc"
)

// Config holds the company-level numbering configuration used to
// assemble barcodes. CompanyPrefix is required for every format;
// LocationReference only for SSCC.
type Config struct {
	CompanyPrefix     string
	LocationReference string
}

// Generate assembles a barcode of the given format from the configured
// prefixes and a sequence number, appending the computed check digit.
//
// Layouts (before the check digit):
//
//	gtin13: prefix(7) + seq(5)
//	gtin14: "1" + prefix(7) + seq(5)
//	sscc:   "0" + prefix(7) + location(2) + seq(5)
//
// Components shorter than their field width are left-padded with
// zeros; longer values are kept as-is, never truncated.
func Generate(format Format, cfg Config, sequence int64) (string, error) {
	if cfg.CompanyPrefix == "" {
		return "", ErrMissingConfiguration
	}
	prefix := padLeft(cfg.CompanyPrefix, 7)
	seq := padLeft(fmt.Sprintf("%d", sequence), 5)

	var payload string
	switch format {
	case FormatGTIN13:
		payload = prefix + seq
	case FormatGTIN14:
		payload = "1" + prefix + seq
	case FormatSSCC:
		if cfg.LocationReference == "" {
			return "", ErrMissingConfiguration
		}
		payload = "0" + prefix + padLeft(cfg.LocationReference, 2) + seq
	default:
		return "", ErrUnsupportedFormat
	}

	check, err := CheckDigit(payload)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", payload, check), nil
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
