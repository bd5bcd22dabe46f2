// C:\Users\kouji\デスクトップ\KRS\model\dashboard_types.go
package model

// CategoryTotals は分類ごとの集計値です。
type CategoryTotals struct {
	Label  string  `json:"label"`
	Sales  float64 `json:"sales"`
	Cost   float64 `json:"cost"`
	Profit float64 `json:"profit"`
}

// DashboardSummary は /api/dashboard/sales のレスポンスです。
type DashboardSummary struct {
	TotalSales  float64                   `json:"totalSales"`
	TotalCost   float64                   `json:"totalCost"`
	TotalProfit float64                   `json:"totalProfit"`
	Categories  map[string]CategoryTotals `json:"categories"`
}

// ProjectCategoryRow は /api/dashboard/details の1行 (案件 + 分類別小計) です。
type ProjectCategoryRow struct {
	Project
	CustomerName   string             `json:"customerName"`
	Sales          float64            `json:"sales"`
	Cost           float64            `json:"cost"`
	Profit         float64            `json:"profit"`
	CategorySales  map[string]float64 `json:"categorySales"`
	AccountingDate string             `json:"accountingDate"`
}
