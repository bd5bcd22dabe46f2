// C:\Users\kouji\デスクトップ\KRS\customer\handler.go
package customer

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"krs/database"
	"krs/model"
	"krs/parsers"

	"github.com/jmoiron/sqlx"
)

// ListCustomersHandler は得意先一覧を返します。q があれば名称・カナで部分一致検索。
func ListCustomersHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := r.URL.Query().Get("q")

		var customers []model.Customer
		var err error
		if keyword != "" {
			customers, err = database.SearchCustomers(db, keyword)
		} else {
			customers, err = database.GetAllCustomers(db)
		}
		if err != nil {
			http.Error(w, "Failed to get customers", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(customers)
	}
}

// CreateCustomerHandler は得意先を新規登録します。コードはシーケンスで採番します。
func CreateCustomerHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c model.Customer
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(c.CustomerName) == "" {
			http.Error(w, "得意先名は必須です。", http.StatusBadRequest)
			return
		}

		tx, err := db.Beginx()
		if err != nil {
			http.Error(w, "Failed to start transaction", http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		exists, err := database.CheckCustomerExistsByName(tx, c.CustomerName)
		if err != nil {
			http.Error(w, "Failed to check customer existence", http.StatusInternalServerError)
			return
		}
		if exists {
			http.Error(w, fmt.Sprintf("得意先名 '%s' は既に存在します。", c.CustomerName), http.StatusConflict)
			return
		}

		newCode, err := database.NextSequenceInTx(tx, "CU", "C", 4)
		if err != nil {
			http.Error(w, "Failed to generate new customer code", http.StatusInternalServerError)
			return
		}
		c.CustomerCode = newCode

		if err := database.CreateCustomerInTx(tx, c); err != nil {
			http.Error(w, "Failed to create customer", http.StatusInternalServerError)
			return
		}
		if err := tx.Commit(); err != nil {
			http.Error(w, "Failed to commit transaction", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(c)
	}
}

// UpdateCustomerHandler は得意先を更新します。
func UpdateCustomerHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c model.Customer
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if c.CustomerCode == "" {
			http.Error(w, "Customer code is required", http.StatusBadRequest)
			return
		}
		if err := database.UpdateCustomer(db, c); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "Failed to update customer", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "保存しました"})
	}
}

// DeleteCustomerHandler は得意先を削除します。
func DeleteCustomerHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimPrefix(r.URL.Path, "/api/customers/delete/")
		if code == "" {
			http.Error(w, "Customer code is required", http.StatusBadRequest)
			return
		}
		if err := database.DeleteCustomer(db, code); err != nil {
			http.Error(w, "Failed to delete customer", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "削除しました"})
	}
}

// ImportCustomersHandler は得意先CSV (UTF-8/Shift-JIS) を取り込みます。
// 既存コードは上書き、新規コードは追加。1トランザクションで全件反映します。
func ImportCustomersHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "CSVファイルが指定されていません。", http.StatusBadRequest)
			return
		}
		defer file.Close()

		records, err := parsers.ParseCustomerCSV(file)
		if err != nil {
			http.Error(w, "CSVの解析に失敗: "+err.Error(), http.StatusBadRequest)
			return
		}
		if len(records) == 0 {
			http.Error(w, "取り込める行がありません。", http.StatusBadRequest)
			return
		}

		tx, err := db.Beginx()
		if err != nil {
			http.Error(w, "Failed to start transaction", http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		for _, rec := range records {
			if err := database.UpsertCustomerInTx(tx, rec); err != nil {
				log.Printf("Failed to upsert customer %s: %v", rec.CustomerCode, err)
				http.Error(w, fmt.Sprintf("得意先 %s の取り込みに失敗しました。", rec.CustomerCode), http.StatusInternalServerError)
				return
			}
		}

		if err := tx.Commit(); err != nil {
			http.Error(w, "Failed to commit transaction", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": fmt.Sprintf("%d件取り込みました", len(records)),
			"count":   len(records),
		})
	}
}
