package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// IdentifierField names a variant identifier column
type IdentifierField string

const (
	FieldSKU     IdentifierField = "sku"
	FieldBarcode IdentifierField = "barcode"
)

// DuplicateIdentifierError reports variants whose SKU or barcode
// collides with another variant of the same product. It blocks
// persistence until every offender is resolved.
type DuplicateIdentifierError struct {
	SKUs     map[uuid.UUID]string
	Barcodes map[uuid.UUID]string
}

// Error implements the error interface
func (e *DuplicateIdentifierError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.SKUs) > 0 {
		parts = append(parts, fmt.Sprintf("%d variants with duplicate SKUs", len(e.SKUs)))
	}
	if len(e.Barcodes) > 0 {
		parts = append(parts, fmt.Sprintf("%d variants with duplicate barcodes", len(e.Barcodes)))
	}
	return "duplicate variant identifiers: " + strings.Join(parts, ", ")
}

// Offenders returns the colliding values, deduplicated and sorted,
// for error reporting
func (e *DuplicateIdentifierError) Offenders() []string {
	seen := make(map[string]bool)
	for _, v := range e.SKUs {
		seen["sku "+v] = true
	}
	for _, v := range e.Barcodes {
		seen["barcode "+v] = true
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// findDuplicates returns the IDs of variants whose value under key
// appears on more than one variant. Values are compared trimmed;
// empty and whitespace-only values never collide.
func findDuplicates(variants []Variant, key func(Variant) string) map[uuid.UUID]string {
	counts := make(map[string]int)
	for _, v := range variants {
		if val := strings.TrimSpace(key(v)); val != "" {
			counts[val]++
		}
	}
	dups := make(map[uuid.UUID]string)
	for _, v := range variants {
		if val := strings.TrimSpace(key(v)); val != "" && counts[val] > 1 {
			dups[v.ID] = val
		}
	}
	return dups
}

// FindDuplicateSKUs returns every variant whose SKU appears on more
// than one variant in the slice
func FindDuplicateSKUs(variants []Variant) map[uuid.UUID]string {
	return findDuplicates(variants, func(v Variant) string { return v.SKU })
}

// FindDuplicateBarcodes returns every variant whose barcode appears on
// more than one variant in the slice
func FindDuplicateBarcodes(variants []Variant) map[uuid.UUID]string {
	return findDuplicates(variants, func(v Variant) string { return v.Barcode })
}

// HasConflict reports whether the given variant's value for field
// collides with any other variant in the slice. Values are compared
// trimmed; a whitespace-only value never conflicts. The variant's own
// row is excluded, so clearing a previous conflict is observable.
func HasConflict(variants []Variant, variantID uuid.UUID, field IdentifierField) bool {
	var value string
	for _, v := range variants {
		if v.ID == variantID {
			if field == FieldSKU {
				value = v.SKU
			} else {
				value = v.Barcode
			}
			break
		}
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	for _, v := range variants {
		if v.ID == variantID {
			continue
		}
		other := v.Barcode
		if field == FieldSKU {
			other = v.SKU
		}
		if strings.TrimSpace(other) == value {
			return true
		}
	}
	return false
}
