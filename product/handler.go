// C:\Users\kouji\デスクトップ\KRS\product\handler.go
package product

import (
	"encoding/json"
	"net/http"
	"strings"

	"krs/database"
	"krs/model"

	"github.com/jmoiron/sqlx"
)

// ListProductsHandler は商品マスタ一覧を返します。q があればコード・名称で部分一致検索。
func ListProductsHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := r.URL.Query().Get("q")

		var products []model.Product
		var err error
		if keyword != "" {
			products, err = database.SearchProducts(db, keyword)
		} else {
			products, err = database.GetAllProducts(db)
		}
		if err != nil {
			http.Error(w, "Failed to get products", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	}
}

// SaveProductHandler は商品マスタを登録または上書きします。
func SaveProductHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p model.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		p.ProductCode = strings.TrimSpace(p.ProductCode)
		if p.ProductCode == "" {
			http.Error(w, "商品コードは必須です。", http.StatusBadRequest)
			return
		}
		if err := database.UpsertProduct(db, p); err != nil {
			http.Error(w, "Failed to save product", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	}
}

// DeleteProductHandler は商品マスタを削除します。
func DeleteProductHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimPrefix(r.URL.Path, "/api/products/delete/")
		if code == "" {
			http.Error(w, "Product code is required", http.StatusBadRequest)
			return
		}
		if err := database.DeleteProduct(db, code); err != nil {
			http.Error(w, "Failed to delete product", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "削除しました"})
	}
}
