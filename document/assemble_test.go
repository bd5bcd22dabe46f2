// C:\Users\kouji\デスクトップ\KRS\document\assemble_test.go
package document

import (
	"testing"

	"krs/config"
	"krs/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = config.Config{
	CompanyName:    "株式会社輝建機",
	CompanyAddress: "茨城県つくば市0-0-0",
	TaxRate:        0.10,
}

func testProject() *model.Project {
	return &model.Project{ID: 15, ProjectNo: "P2405100001", Title: "フォークリフト修理", CustomerCode: "C0001"}
}

func testDetails() []model.ProjectDetail {
	return []model.ProjectDetail{
		{LineType: model.LineTypeLabor, Description: "分解点検", Quantity: 2, UnitPrice: 9000, DetailDate: "2024-05-10"},
		{LineType: model.LineTypeTravel, Description: "【移動時間】つくば-土浦", Quantity: 2, UnitPrice: 3000, DetailDate: "2024-05-10"},
		{LineType: model.LineTypeTravel, Description: "【移動距離】つくば-土浦", Quantity: 10, UnitPrice: 50, DetailDate: "2024-05-10"},
	}
}

func TestBuild_Invoice(t *testing.T) {
	customer := &model.Customer{CustomerCode: "C0001", CustomerName: "田中建機"}

	layout, err := Build(model.DocumentInvoice, testProject(), customer, testDetails(), testCfg, "2024-05-20")
	require.NoError(t, err)

	assert.Equal(t, "請求書", layout.Title)
	assert.Equal(t, "000015", layout.DocumentNumber)
	assert.Equal(t, "田中建機 御中", layout.RecipientName)
	assert.True(t, layout.ShowDates)
	assert.True(t, layout.ShowAmounts)
	assert.True(t, layout.ShowSummary)

	// 出張2行が1行にまとまり、10行まで空行で埋まる
	require.Len(t, layout.Lines, 10)
	assert.Equal(t, "分解点検", layout.Lines[0].Description)
	assert.Equal(t, "［出張費］つくば-土浦", layout.Lines[1].Description)
	assert.Equal(t, float64(6500), layout.Lines[1].Amount)
	for i := 2; i < 10; i++ {
		assert.True(t, layout.Lines[i].IsPadding, "line %d should be padding", i)
	}

	// 空行は合計に入らない: 18000 + 6500
	assert.Equal(t, float64(24500), layout.Subtotal)
	assert.Equal(t, float64(2450), layout.Tax)
	assert.Equal(t, float64(26950), layout.Total)
}

func TestBuild_DeliveryNoteHidesAmounts(t *testing.T) {
	customer := &model.Customer{CustomerName: "田中建機"}

	layout, err := Build(model.DocumentDelivery, testProject(), customer, testDetails(), testCfg, "2024-05-20")
	require.NoError(t, err)

	assert.Equal(t, "納品書", layout.Title)
	assert.False(t, layout.ShowAmounts)
	assert.False(t, layout.ShowSummary)
	assert.True(t, layout.ShowDates)
	assert.Len(t, layout.Lines, 10)
}

func TestBuild_QuotationUsesThirteenRowsAndNoDates(t *testing.T) {
	layout, err := Build(model.DocumentQuotation, testProject(), nil, testDetails(), testCfg, "2024-05-20")
	require.NoError(t, err)

	assert.Equal(t, "御見積書", layout.Title)
	assert.False(t, layout.ShowDates)
	assert.True(t, layout.ShowSummary)
	assert.Len(t, layout.Lines, 13)
}

func TestBuild_MissingCustomerFallback(t *testing.T) {
	layout, err := Build(model.DocumentInvoice, testProject(), nil, nil, testCfg, "2024-05-20")
	require.NoError(t, err)
	assert.Equal(t, "得意先不明", layout.RecipientName)
}

func TestBuild_UnknownKind(t *testing.T) {
	_, err := Build("receipt", testProject(), nil, nil, testCfg, "2024-05-20")
	assert.Error(t, err)
}

func TestBuild_TaxRateDefaultsWhenUnset(t *testing.T) {
	layout, err := Build(model.DocumentInvoice, testProject(), nil,
		[]model.ProjectDetail{{LineType: model.LineTypePart, Quantity: 1, UnitPrice: 1001}},
		config.Config{}, "2024-05-20")
	require.NoError(t, err)

	assert.Equal(t, float64(1001), layout.Subtotal)
	assert.Equal(t, float64(100), layout.Tax) // 切り捨て。四捨五入しない
}

func TestRenderHTML_ContainsLayoutValues(t *testing.T) {
	customer := &model.Customer{CustomerName: "田中建機"}
	layout, err := Build(model.DocumentInvoice, testProject(), customer, testDetails(), testCfg, "2024-05-20")
	require.NoError(t, err)

	html := RenderHTML(layout)

	assert.Contains(t, html, "請求書")
	assert.Contains(t, html, "田中建機 御中")
	assert.Contains(t, html, "000015")
	assert.Contains(t, html, "［出張費］つくば-土浦")
	assert.Contains(t, html, "26,950")
}

func TestFormatYen(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{100, "100"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
		{1234.5, "1,234.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatYen(tt.in))
	}
}
