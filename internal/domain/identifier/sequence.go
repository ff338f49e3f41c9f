package identifier

import "context"

// SequenceAllocator hands out monotonically increasing sequence
// numbers from named counters. Allocation must be atomic: two
// concurrent calls for the same counter never observe the same value.
type SequenceAllocator interface {
	// NextSKU allocates the next SKU from the configured counter and
	// returns it fully formatted
	NextSKU(ctx context.Context) (string, error)
	// NextBarcode allocates the next barcode sequence and returns the
	// assembled code in the configured format
	NextBarcode(ctx context.Context) (string, error)
}

// Allocation is the outcome of a best-effort identifier allocation.
// Workflows that tolerate allocation failure carry the error alongside
// the (possibly empty) value instead of aborting.
type Allocation struct {
	Value string
	Err   error
}

// OK reports whether the allocation produced a value
func (a Allocation) OK() bool {
	return a.Err == nil
}
