// C:\Users\kouji\デスクトップ\KRS\lineitem\totals_test.go
package lineitem

import (
	"math"
	"testing"

	"krs/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals_TaxTruncatesNeverRounds(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		wantTax  float64
	}{
		{"1001 → 100 (100.1を切り捨て)", 1001, 100},
		{"1009 → 100", 1009, 100},
		{"999 → 99", 999, 99},
		{"1000 → 100", 1000, 100},
		{"0 → 0", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := []model.ProjectDetail{
				{LineType: model.LineTypePart, Quantity: 1, UnitPrice: tt.subtotal},
			}
			totals := ComputeTotals(details, DefaultTaxRate)
			assert.Equal(t, tt.subtotal, totals.Subtotal)
			assert.Equal(t, tt.wantTax, totals.Tax)
			assert.Equal(t, tt.subtotal+tt.wantTax, totals.Total)
		})
	}
}

func TestComputeTotals_ExcludesPaddingRows(t *testing.T) {
	details := []model.ProjectDetail{
		{LineType: model.LineTypeLabor, Quantity: 2, UnitPrice: 5000},
		{LineType: model.LineTypePart, Quantity: 1, UnitPrice: 1500},
		{LineType: model.LineTypeTravel, Quantity: 1, UnitPrice: 3000},
	}
	padded := Pad(details, MinRowsInvoice)

	totals := ComputeTotals(padded, DefaultTaxRate)

	assert.Len(t, padded, 10)
	assert.Equal(t, float64(14500), totals.Subtotal)
	assert.Equal(t, float64(1450), totals.Tax)
	assert.Equal(t, float64(15950), totals.Total)
}

func TestComputeTotals_NaNDegradesToZero(t *testing.T) {
	details := []model.ProjectDetail{
		{LineType: model.LineTypePart, Quantity: math.NaN(), UnitPrice: 1000},
		{LineType: model.LineTypePart, Quantity: 2, UnitPrice: 500},
	}

	totals := ComputeTotals(details, DefaultTaxRate)

	assert.False(t, math.IsNaN(totals.Subtotal))
	assert.Equal(t, float64(1000), totals.Subtotal)
}
