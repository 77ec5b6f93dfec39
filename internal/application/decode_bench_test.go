package application_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/rshade/appbrowser/internal/application"
)

// generateRecordJSON builds one record in the endpoint's wire format.
func generateRecordJSON(index int) string {
	return fmt.Sprintf(`{"id":"%d","loan_amount":%d.5,"first_name":"First%d","last_name":"Last%d",`+
		`"company":"Company %d","email":"user%d@example.com",`+
		`"date_created":"2024-01-01T10:00:00Z","expiry_date":"2025-01-01"}`,
		index, index*100, index, index, index, index)
}

func pageJSON(count int) []byte {
	records := make([]string, count)
	for i := range records {
		records[i] = generateRecordJSON(i)
	}
	return []byte("[" + strings.Join(records, ",") + "]")
}

// BenchmarkDecodePage_DefaultPage benchmarks decoding of a default-size page.
func BenchmarkDecodePage_DefaultPage(b *testing.B) {
	b.ReportAllocs()
	data := pageJSON(5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := application.DecodePage(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDecodePage_LargePage benchmarks decoding of a 1000-record page.
func BenchmarkDecodePage_LargePage(b *testing.B) {
	b.ReportAllocs()
	data := pageJSON(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := application.DecodePage(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
