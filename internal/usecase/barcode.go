package usecase

import (
	"fmt"
	"regexp"

	"github.com/foodlens/backend/internal/domain"
)

// Barcode length bounds, checked on the raw input before normalization.
// Covers EAN-8 through GTIN-14 plus room for separator characters.
const (
	minBarcodeLength = 8
	maxBarcodeLength = 14
)

var nonDigitRegex = regexp.MustCompile(`[^0-9]`)

// NormalizeBarcode strips every non-digit character from raw and promotes
// 12-digit UPC-A codes to their 13-digit EAN-13 form by prepending a zero.
func NormalizeBarcode(raw string) string {
	clean := nonDigitRegex.ReplaceAllString(raw, "")
	if len(clean) == 12 {
		return "0" + clean
	}
	return clean
}

// ResolveBarcode validates a raw user-supplied barcode and returns the ordered,
// de-duplicated sequence of candidate keys a caller should try against the
// store, most likely form first:
//
//  1. the normalized code
//  2. the raw input as given, when it differs from the normalized form
//  3. the raw input minus its leading zero, when the raw input is exactly
//     13 characters starting with '0'
//
// Products are ingested from heterogeneous sources that store 12-digit codes,
// 13-digit codes, and 13-digit codes with a padding zero; trying the
// normalized form first covers the common case in one lookup.
//
// ResolveBarcode performs no lookups itself; it is a pure function of raw.
func ResolveBarcode(raw string) ([]string, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: barcode is required", domain.ErrInvalidBarcode)
	}

	length := len([]rune(raw))
	if length < minBarcodeLength || length > maxBarcodeLength {
		return nil, fmt.Errorf("%w: barcode must be %d to %d characters, got %d",
			domain.ErrInvalidBarcode, minBarcodeLength, maxBarcodeLength, length)
	}

	normalized := NormalizeBarcode(raw)

	candidates := []string{normalized}
	if raw != normalized {
		candidates = appendCandidate(candidates, raw)
	}
	if length == 13 && raw[0] == '0' {
		candidates = appendCandidate(candidates, raw[1:])
	}

	return candidates, nil
}

// appendCandidate adds key to the list unless an earlier rule already
// produced the same value; each candidate is tried at most once.
func appendCandidate(candidates []string, key string) []string {
	for _, c := range candidates {
		if c == key {
			return candidates
		}
	}
	return append(candidates, key)
}
