package application

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePage_FullRecord(t *testing.T) {
	body := `[{
		"id": "1",
		"loan_amount": 5000,
		"first_name": "John",
		"last_name": "Doe",
		"company": "TechCorp",
		"email": "john.doe@techcorp.com",
		"date_created": "2024-01-01",
		"expiry_date": "2024-12-31"
	}]`

	recs, err := DecodePage(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, recs, 1)

	r := recs[0]
	assert.Equal(t, "1", r.ID)
	require.True(t, r.LoanAmount.Valid)
	assert.True(t, r.LoanAmount.Decimal.Equal(decimal.NewFromInt(5000)))
	require.NotNil(t, r.FirstName)
	assert.Equal(t, "John", *r.FirstName)
	require.NotNil(t, r.ExpiryDate)
	assert.Equal(t, "2024-12-31", *r.ExpiryDate)
}

func TestDecodePage_MissingAndNullFields(t *testing.T) {
	recs, err := DecodePage(strings.NewReader(`[{"id":"10"},{"id":"11","first_name":"John","loan_amount":null,"company":""}]`))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.False(t, recs[0].LoanAmount.Valid)
	assert.Nil(t, recs[0].FirstName)
	assert.Nil(t, recs[0].Company)
	assert.Nil(t, recs[0].DateCreated)

	assert.False(t, recs[1].LoanAmount.Valid)
	require.NotNil(t, recs[1].Company)
	assert.Empty(t, *recs[1].Company, "present empty string is kept distinct from absent")
}

func TestDecodePage_DecimalPrecision(t *testing.T) {
	recs, err := DecodePage(strings.NewReader(`[{"id":"5","loan_amount":123456789.512}]`))
	require.NoError(t, err)
	assert.Equal(t, "123456789.512", recs[0].LoanAmount.Decimal.String())
}

func TestDecodePage_Empty(t *testing.T) {
	recs, err := DecodePage(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestDecodePage_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "object", body: `{"not":"array"}`},
		{name: "null", body: `null`},
		{name: "truncated", body: `[{"id":"1"`},
		{name: "empty body", body: ``},
		{name: "wrong field type", body: `[{"id":"1","loan_amount":"lots"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePage(strings.NewReader(tt.body))
			require.Error(t, err)
		})
	}
}

func TestDecodePage_NullIsErrNotArray(t *testing.T) {
	_, err := DecodePage(strings.NewReader(`null`))
	require.ErrorIs(t, err, ErrNotArray)
}
