// C:\Users\kouji\デスクトップ\KRS\dashboard\aggregate.go
package dashboard

import (
	"fmt"
	"time"

	"krs/category"
	"krs/lineitem"
	"krs/model"
)

// Period は年・月から集計期間 (両端含む) を返します。
// month が 0 の場合はその年の 1/1〜12/31 です。
func Period(year, month int) (start, end string) {
	if month >= 1 && month <= 12 {
		first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		last := first.AddDate(0, 1, -1)
		return first.Format("2006-01-02"), last.Format("2006-01-02")
	}
	return fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year)
}

// inPeriod は案件の計上日 (完了日、なければ作成日) が期間内かを判定します。
// ISO形式の日付文字列なので文字列比較で足ります。
func inPeriod(p *model.Project, start, end string) bool {
	d := p.AccountingDate()
	return d >= start && d <= end
}

// lineFigures は明細1行の売上・原価・粗利です。数値異常は 0 に落とします。
func lineFigures(d *model.ProjectDetail) (sales, cost, profit float64) {
	sales = lineitem.SafeNumber(d.Quantity) * lineitem.SafeNumber(d.UnitPrice)
	cost = lineitem.SafeNumber(d.Quantity) * lineitem.SafeNumber(d.UnitCost)
	return sales, cost, sales - cost
}

// lookupProduct は明細に紐付く商品を返します (未設定・未登録は nil)。
func lookupProduct(d *model.ProjectDetail, products map[string]*model.Product) *model.Product {
	if d.ProductCode == nil || *d.ProductCode == "" {
		return nil
	}
	return products[*d.ProductCode]
}

// Aggregate は期間内の全案件の明細を分類し、分類別と総合計の
// 売上・原価・粗利を積み上げます。5分類のバケットは常に全て返します。
func Aggregate(projects []model.Project, detailsByProject map[int][]model.ProjectDetail,
	products map[string]*model.Product, start, end string) model.DashboardSummary {

	summary := model.DashboardSummary{
		Categories: make(map[string]model.CategoryTotals, len(category.Keys)),
	}
	for _, k := range category.Keys {
		summary.Categories[string(k)] = model.CategoryTotals{Label: category.Label(k)}
	}

	for i := range projects {
		p := &projects[i]
		if !inPeriod(p, start, end) {
			continue
		}
		for _, d := range detailsByProject[p.ID] {
			sales, cost, profit := lineFigures(&d)
			key := category.Classify(&d, lookupProduct(&d, products))

			bucket := summary.Categories[string(key)]
			bucket.Sales += sales
			bucket.Cost += cost
			bucket.Profit += profit
			summary.Categories[string(key)] = bucket

			summary.TotalSales += sales
			summary.TotalCost += cost
			summary.TotalProfit += profit
		}
	}

	return summary
}

// ProjectRows は期間内の案件ごとの合計と分類別売上の一覧を作ります。
// categoryKey が指定された場合は、その分類に売上のある案件だけ返します。
func ProjectRows(projects []model.Project, detailsByProject map[int][]model.ProjectDetail,
	products map[string]*model.Product, customerNames map[string]string,
	start, end, categoryKey string) []model.ProjectCategoryRow {

	rows := []model.ProjectCategoryRow{}
	for i := range projects {
		p := &projects[i]
		if !inPeriod(p, start, end) {
			continue
		}

		row := model.ProjectCategoryRow{
			Project:        *p,
			CustomerName:   customerNames[p.CustomerCode],
			CategorySales:  make(map[string]float64, len(category.Keys)),
			AccountingDate: p.AccountingDate(),
		}
		for _, k := range category.Keys {
			row.CategorySales[string(k)] = 0
		}

		for _, d := range detailsByProject[p.ID] {
			sales, cost, profit := lineFigures(&d)
			key := category.Classify(&d, lookupProduct(&d, products))
			row.CategorySales[string(key)] += sales
			row.Sales += sales
			row.Cost += cost
			row.Profit += profit
		}

		if categoryKey != "" && row.CategorySales[categoryKey] == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
