package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Paging defaults and validation limits.
const (
	DefaultPage  = 1
	MinPage      = 1
	MinPageSize  = 1
	MaxPageSize  = 1000
	UnlimitedPages = 0

	OutputTable = "table"
	OutputJSON  = "json"
)

// Common validation errors.
var (
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPages    = errors.New("pages must be >= 0 (0 = until exhausted)")
	ErrInvalidPageSize = errors.New("page-size must be between 1 and 1000")
	ErrInvalidOutput   = errors.New("output must be 'table' or 'json'")
)

// Params holds the paging flags of a list command.
type Params struct {
	// Page is the 1-based first page to request.
	Page int

	// Pages is the maximum number of pages to fetch. 0 fetches until exhausted.
	Pages int

	// PageSize is the limit sent with every request.
	PageSize int

	// Output selects the renderer: "table" or "json".
	Output string
}

// NewParams creates Params with default values and the given page size.
func NewParams(pageSize int) *Params {
	return &Params{
		Page:     DefaultPage,
		Pages:    UnlimitedPages,
		PageSize: pageSize,
		Output:   OutputTable,
	}
}

// Validate checks the flag values (value receiver).
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w, got %d", ErrInvalidPage, p.Page)
	}
	if p.Pages < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidPages, p.Pages)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w, got %d", ErrInvalidPageSize, p.PageSize)
	}
	switch strings.ToLower(p.Output) {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidOutput, p.Output)
	}
	return nil
}

// IsJSON reports whether JSON output was requested.
func (p Params) IsJSON() bool {
	return strings.EqualFold(p.Output, OutputJSON)
}

// Unlimited reports whether paging continues until the source is exhausted.
func (p Params) Unlimited() bool {
	return p.Pages == UnlimitedPages
}

// LastPage returns the last page to request, or 0 when unlimited.
func (p Params) LastPage() int {
	if p.Unlimited() {
		return 0
	}
	return p.Page + p.Pages - 1
}

// Within reports whether page falls inside the requested range.
func (p Params) Within(page int) bool {
	if page < p.Page {
		return false
	}
	return p.Unlimited() || page <= p.LastPage()
}
