// Package application defines the loan application record served by the
// paged applications endpoint.
package application

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Record is a single application entry as returned by the API.
// Optional fields are pointers (or NullDecimal) so that an absent or null
// field can be told apart from a present empty string.
type Record struct {
	ID          string              `json:"id"`
	LoanAmount  decimal.NullDecimal `json:"loan_amount"`
	FirstName   *string             `json:"first_name,omitempty"`
	LastName    *string             `json:"last_name,omitempty"`
	Company     *string             `json:"company,omitempty"`
	Email       *string             `json:"email,omitempty"`
	DateCreated *string             `json:"date_created,omitempty"`
	ExpiryDate  *string             `json:"expiry_date,omitempty"`
}

// DecodePage decodes a JSON array of records. A body that is not an array
// (including a bare null) is an error.
func DecodePage(r io.Reader) ([]Record, error) {
	var page *[]Record
	if err := json.NewDecoder(r).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding applications page: %w", err)
	}
	if page == nil {
		return nil, fmt.Errorf("decoding applications page: %w", ErrNotArray)
	}
	if *page == nil {
		return []Record{}, nil
	}
	return *page, nil
}

// ErrNotArray is returned by DecodePage when the body is JSON null.
var ErrNotArray = constError("response body is not a JSON array")

type constError string

func (e constError) Error() string { return string(e) }

// Str returns a pointer to s. Convenient for building records in code and tests.
func Str(s string) *string {
	return &s
}

// Amount returns a present loan amount parsed from a float.
func Amount(f float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(f))
}
