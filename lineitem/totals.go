// C:\Users\kouji\デスクトップ\KRS\lineitem\totals.go
package lineitem

import (
	"math"

	"krs/model"
)

const DefaultTaxRate = 0.10

// Totals は帳票の小計・消費税・合計です。
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeTotals は空行を除く全行の 数量×単価 を小計し、消費税・合計を求めます。
// 消費税は必ず切り捨て (四捨五入しない)。請求金額なのでここは変えないこと。
func ComputeTotals(details []model.ProjectDetail, taxRate float64) Totals {
	var subtotal float64
	for i := range details {
		if details[i].LineType == model.LineTypePadding {
			continue
		}
		subtotal += SafeNumber(details[i].Quantity) * SafeNumber(details[i].UnitPrice)
	}
	tax := math.Trunc(subtotal * taxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
