// C:\Users\kouji\デスクトップ\KRS\dashboard\handler.go
package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"krs/database"
	"krs/model"

	"github.com/jmoiron/sqlx"
)

// parsePeriod はクエリの year / month から集計期間を決めます。
// year 未指定は今年。month 未指定・不正は年間集計です。
func parsePeriod(r *http.Request) (start, end string) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year <= 0 {
		year = time.Now().Year()
	}
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	return Period(year, month)
}

// fetchPeriodData は期間内の案件・明細・商品マスタをまとめて取得します。
func fetchPeriodData(db *sqlx.DB, start, end string) ([]model.Project, map[int][]model.ProjectDetail, map[string]*model.Product, error) {
	projects, err := database.GetProjectsForPeriod(db, start, end)
	if err != nil {
		return nil, nil, nil, err
	}
	ids := make([]int, len(projects))
	for i := range projects {
		ids[i] = projects[i].ID
	}
	detailsByProject, err := database.GetDetailsByProjectIDs(db, ids)
	if err != nil {
		return nil, nil, nil, err
	}
	products, err := database.GetProductMap(db)
	if err != nil {
		return nil, nil, nil, err
	}
	return projects, detailsByProject, products, nil
}

// GetSalesSummaryHandler は分類別の売上・原価・粗利集計をJSONで返します。
func GetSalesSummaryHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, end := parsePeriod(r)

		projects, detailsByProject, products, err := fetchPeriodData(db, start, end)
		if err != nil {
			http.Error(w, "Failed to aggregate sales: "+err.Error(), http.StatusInternalServerError)
			return
		}

		summary := Aggregate(projects, detailsByProject, products, start, end)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// GetSalesDetailsHandler は期間内の案件一覧 (分類別小計付き) をJSONで返します。
func GetSalesDetailsHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, end := parsePeriod(r)
		categoryKey := r.URL.Query().Get("category")

		projects, detailsByProject, products, err := fetchPeriodData(db, start, end)
		if err != nil {
			http.Error(w, "Failed to get sales details: "+err.Error(), http.StatusInternalServerError)
			return
		}
		customerNames, err := database.GetCustomerMap(db)
		if err != nil {
			http.Error(w, "Failed to get customers: "+err.Error(), http.StatusInternalServerError)
			return
		}

		rows := ProjectRows(projects, detailsByProject, products, customerNames, start, end, categoryKey)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rows)
	}
}
