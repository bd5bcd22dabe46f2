// C:\Users\kouji\デスクトップ\KRS\model\product_types.go
package model

// Product は商品マスタの1件です。
// category は旧システムから引き継いだ自由入力の分類文字列で、
// product_code の接頭辞 (M-/U-/R-/S-) と併用して分類判定に使います。
type Product struct {
	ProductCode string  `db:"product_code" json:"productCode"`
	ProductName string  `db:"product_name" json:"productName"`
	Category    string  `db:"category" json:"category"`
	UnitPrice   float64 `db:"unit_price" json:"unitPrice"`
	UnitCost    float64 `db:"unit_cost" json:"unitCost"`
}
