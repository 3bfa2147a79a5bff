package indexing

import "cmp"

// Ordered is the constraint for search space items and keys. A key always
// shares the item type; callers holding another key type convert first.
type Ordered = cmp.Ordered

// NotFound is the index reported together with ok == false by the exact
// searches.
const NotFound = -1

// MinBinnedSpaceSize is the smallest data size the binned searches are
// verified for. Below it some lead-in buckets collapse to empty ranges.
const MinBinnedSpaceSize = 64
