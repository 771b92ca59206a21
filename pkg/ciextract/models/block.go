package models

// Block is the contiguous row range [Start, End) belonging to one grouping key.
type Block struct {
	// Key is the grouping key found at Start.
	Key string `json:"key"`
	// Start is the row holding the key (0-based).
	Start int `json:"start"`
	// End is the first row after the block (exclusive).
	End int `json:"end"`
}

// Len returns the number of rows after the key row.
func (b Block) Len() int {
	if b.End <= b.Start {
		return 0
	}
	return b.End - b.Start - 1
}
