// Package pagination provides the paging flags shared by the appbrowser list
// commands and the metadata reported alongside paged results.
//
// This package contains:
//   - Params: CLI flag values and validation (--page, --pages, --page-size, --output)
//   - Meta: summary of a paging run (pages fetched, last page, exhaustion)
package pagination
