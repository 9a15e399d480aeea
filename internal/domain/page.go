package domain

// Page is an offset/limit window applied after filtering and sorting.
type Page struct {
	From int
	Size int
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 20
)

// NewPage validates the window bounds: from must be non-negative and size
// must lie in [1, MaxPageSize].
func NewPage(from, size int) (Page, error) {
	if from < 0 {
		return Page{}, NewValidationError("from must be >= 0")
	}
	if size < 1 || size > MaxPageSize {
		return Page{}, NewValidationError("size must be between 1 and 20")
	}
	return Page{From: from, Size: size}, nil
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int { return p.From }

// Limit returns the maximum number of rows to return.
func (p Page) Limit() int { return p.Size }
