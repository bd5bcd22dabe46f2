// C:\Users\kouji\デスクトップ\KRS\database\products.go
package database

import (
	"database/sql"
	"fmt"

	"krs/model"

	"github.com/jmoiron/sqlx"
)

const productColumns = `product_code, product_name, category, unit_price, unit_cost`

func GetAllProducts(db *sqlx.DB) ([]model.Product, error) {
	var products []model.Product
	err := db.Select(&products, `SELECT `+productColumns+` FROM products ORDER BY product_code`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

func SearchProducts(db *sqlx.DB, keyword string) ([]model.Product, error) {
	var products []model.Product
	pattern := "%" + keyword + "%"
	err := db.Select(&products, `SELECT `+productColumns+` FROM products
		WHERE product_code LIKE ? OR product_name LIKE ?
		ORDER BY product_code`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

func GetProductByCode(db *sqlx.DB, code string) (*model.Product, error) {
	var p model.Product
	err := db.Get(&p, `SELECT `+productColumns+` FROM products WHERE product_code = ?`, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product %s: %w", code, err)
	}
	return &p, nil
}

// GetProductMap は全商品を コード→商品 のマップで取得します (分類判定用)。
func GetProductMap(db *sqlx.DB) (map[string]*model.Product, error) {
	products, err := GetAllProducts(db)
	if err != nil {
		return nil, err
	}
	productMap := make(map[string]*model.Product, len(products))
	for i := range products {
		productMap[products[i].ProductCode] = &products[i]
	}
	return productMap, nil
}

func UpsertProduct(db *sqlx.DB, p model.Product) error {
	const q = `
		INSERT INTO products (product_code, product_name, category, unit_price, unit_cost)
		VALUES (:product_code, :product_name, :category, :unit_price, :unit_cost)
		ON CONFLICT(product_code) DO UPDATE SET
			product_name = excluded.product_name,
			category = excluded.category,
			unit_price = excluded.unit_price,
			unit_cost = excluded.unit_cost
	`
	_, err := db.NamedExec(q, p)
	if err != nil {
		return fmt.Errorf("UpsertProduct (Code: %s) failed: %w", p.ProductCode, err)
	}
	return nil
}

func DeleteProduct(db *sqlx.DB, code string) error {
	_, err := db.Exec(`DELETE FROM products WHERE product_code = ?`, code)
	if err != nil {
		return fmt.Errorf("DeleteProduct (Code: %s) failed: %w", code, err)
	}
	return nil
}
