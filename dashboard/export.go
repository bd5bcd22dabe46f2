// C:\Users\kouji\デスクトップ\KRS\dashboard\export.go
package dashboard

import (
	"fmt"
	"log"
	"net/http"
	"net/url"

	"krs/category"

	"github.com/jmoiron/sqlx"
	"github.com/xuri/excelize/v2"
)

// ExportXlsxHandler は分類別集計をExcelブックでダウンロードさせます。
func ExportXlsxHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, end := parsePeriod(r)

		projects, detailsByProject, products, err := fetchPeriodData(db, start, end)
		if err != nil {
			http.Error(w, "Failed to aggregate for export: "+err.Error(), http.StatusInternalServerError)
			return
		}
		summary := Aggregate(projects, detailsByProject, products, start, end)

		f := excelize.NewFile()
		defer f.Close()

		const sheet = "Sheet1"
		f.SetSheetName(sheet, "売上集計")
		const name = "売上集計"

		f.SetCellValue(name, "A1", fmt.Sprintf("売上集計 %s 〜 %s", start, end))
		headers := []string{"分類", "売上", "原価", "粗利"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 3)
			f.SetCellValue(name, cell, h)
		}

		row := 4
		for _, k := range category.Keys {
			bucket := summary.Categories[string(k)]
			f.SetCellValue(name, fmt.Sprintf("A%d", row), bucket.Label)
			f.SetCellValue(name, fmt.Sprintf("B%d", row), bucket.Sales)
			f.SetCellValue(name, fmt.Sprintf("C%d", row), bucket.Cost)
			f.SetCellValue(name, fmt.Sprintf("D%d", row), bucket.Profit)
			row++
		}
		f.SetCellValue(name, fmt.Sprintf("A%d", row), "合計")
		f.SetCellValue(name, fmt.Sprintf("B%d", row), summary.TotalSales)
		f.SetCellValue(name, fmt.Sprintf("C%d", row), summary.TotalCost)
		f.SetCellValue(name, fmt.Sprintf("D%d", row), summary.TotalProfit)

		filename := fmt.Sprintf("売上集計_%s_%s.xlsx", start, end)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
		if err := f.Write(w); err != nil {
			log.Printf("Error writing xlsx response: %v", err)
		}
	}
}
