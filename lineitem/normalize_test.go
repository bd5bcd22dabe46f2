// C:\Users\kouji\デスクトップ\KRS\lineitem\normalize_test.go
package lineitem

import (
	"math"
	"testing"

	"krs/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_MergesTimeAndDistanceRows(t *testing.T) {
	details := []model.ProjectDetail{
		{LineType: model.LineTypeTravel, Description: "【移動時間】A-B", Quantity: 2, UnitPrice: 3000, UnitCost: 1000},
		{LineType: model.LineTypeTravel, Description: "【移動距離】A-B", Quantity: 10, UnitPrice: 50, UnitCost: 20},
	}

	result := Normalize(details)

	require.Len(t, result, 1)
	assert.Equal(t, "［出張費］A-B", result[0].Description)
	assert.Equal(t, float64(1), result[0].Quantity)
	assert.Equal(t, float64(6500), result[0].UnitPrice) // 2*3000 + 10*50
	assert.Equal(t, float64(2200), result[0].UnitCost)  // 2*1000 + 10*20
	assert.Equal(t, model.LineTypeTravel, result[0].LineType)
}

func TestNormalize_DoesNotMergeDifferentDescriptions(t *testing.T) {
	details := []model.ProjectDetail{
		{LineType: model.LineTypeTravel, Description: "【移動時間】A-B", Quantity: 1, UnitPrice: 3000},
		{LineType: model.LineTypeTravel, Description: "【移動時間】C-D", Quantity: 1, UnitPrice: 3000},
	}

	result := Normalize(details)
	require.Len(t, result, 2)
}

func TestNormalize_DoesNotMergeDifferentDates(t *testing.T) {
	details := []model.ProjectDetail{
		{LineType: model.LineTypeTravel, Description: "【移動時間】A-B", DetailDate: "2024-05-01", Quantity: 1, UnitPrice: 3000},
		{LineType: model.LineTypeTravel, Description: "【移動距離】A-B", DetailDate: "2024-05-02", Quantity: 1, UnitPrice: 500},
	}

	result := Normalize(details)
	require.Len(t, result, 2)
}

func TestNormalize_MergesMissingDatesAsEqual(t *testing.T) {
	details := []model.ProjectDetail{
		{LineType: model.LineTypeTravel, Description: "【移動時間】A-B", Quantity: 1, UnitPrice: 3000},
		{LineType: model.LineTypeTravel, Description: "【移動距離】A-B", Quantity: 1, UnitPrice: 500},
	}

	result := Normalize(details)
	require.Len(t, result, 1)
	assert.Equal(t, float64(3500), result[0].UnitPrice)
}

func TestNormalize_OutsourcingFlagSeparatesGroups(t *testing.T) {
	details := []model.ProjectDetail{
		{LineType: model.LineTypeTravel, Description: "【移動時間】A-B", Quantity: 1, UnitPrice: 3000},
		{LineType: model.LineTypeOutsourcing, OutsourcingDetailType: model.LineTypeTravel, Description: "【移動時間】A-B", Quantity: 1, UnitPrice: 2000},
	}

	result := Normalize(details)

	// 自社出張と外注出張は説明文が同じでも別行のまま
	require.Len(t, result, 2)
	assert.Equal(t, model.LineTypeTravel, result[0].LineType)
	assert.Equal(t, model.LineTypeOutsourcing, result[1].LineType)
}

func TestNormalize_NonTravelLinesPassThroughInOrder(t *testing.T) {
	details := []model.ProjectDetail{
		{LineType: model.LineTypeLabor, Description: "分解点検", Quantity: 3, UnitPrice: 8000},
		{LineType: model.LineTypeTravel, Description: "【移動時間】A-B", Quantity: 1, UnitPrice: 3000},
		{LineType: model.LineTypePart, Description: "オイルフィルタ", Quantity: 2, UnitPrice: 1500},
		{LineType: model.LineTypeTravel, Description: "【移動距離】A-B", Quantity: 20, UnitPrice: 50},
	}

	result := Normalize(details)

	require.Len(t, result, 3)
	assert.Equal(t, "分解点検", result[0].Description)
	// まとめ行は最初に出現した出張行の位置に入る
	assert.Equal(t, "［出張費］A-B", result[1].Description)
	assert.Equal(t, float64(4000), result[1].UnitPrice)
	assert.Equal(t, "オイルフィルタ", result[2].Description)
}

func TestNormalize_Idempotent(t *testing.T) {
	details := []model.ProjectDetail{
		{LineType: model.LineTypeLabor, Description: "修理作業", Quantity: 2, UnitPrice: 9000},
		{LineType: model.LineTypeTravel, Description: "【移動時間】A-B", Quantity: 2, UnitPrice: 3000},
		{LineType: model.LineTypeTravel, Description: "【移動距離】A-B", Quantity: 10, UnitPrice: 50},
	}

	once := Normalize(details)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
}

func TestNormalize_NegativeQuantityFlowsThrough(t *testing.T) {
	details := []model.ProjectDetail{
		{LineType: model.LineTypePart, Description: "返品", Quantity: -1, UnitPrice: 5000},
	}

	result := Normalize(details)
	require.Len(t, result, 1)

	totals := ComputeTotals(result, DefaultTaxRate)
	assert.Equal(t, float64(-5000), totals.Subtotal)
}

func TestPad_AppendsPaddingRows(t *testing.T) {
	details := []model.ProjectDetail{
		{LineType: model.LineTypeLabor, Quantity: 1, UnitPrice: 1000},
	}

	padded := Pad(details, MinRowsInvoice)

	require.Len(t, padded, 10)
	for i := 1; i < len(padded); i++ {
		assert.Equal(t, model.LineTypePadding, padded[i].LineType)
	}
}

func TestPad_NoopWhenAlreadyLongEnough(t *testing.T) {
	details := make([]model.ProjectDetail, 15)
	for i := range details {
		details[i].LineType = model.LineTypePart
	}

	padded := Pad(details, MinRowsQuotation)
	assert.Len(t, padded, 15)
}

func TestSafeNumber(t *testing.T) {
	assert.Equal(t, float64(0), SafeNumber(math.NaN()))
	assert.Equal(t, float64(0), SafeNumber(math.Inf(1)))
	assert.Equal(t, float64(0), SafeNumber(math.Inf(-1)))
	assert.Equal(t, 12.5, SafeNumber(12.5))
	assert.Equal(t, -3.0, SafeNumber(-3.0))
}
