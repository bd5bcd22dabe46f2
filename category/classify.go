// C:\Users\kouji\デスクトップ\KRS\category\classify.go
package category

import (
	"strings"

	"krs/model"
)

// Key は売上分類キーです。
type Key string

const (
	NewCar  Key = "newCar"  // 新車販売
	UsedCar Key = "usedCar" // 中古車販売
	Rental  Key = "rental"  // レンタル
	Repair  Key = "repair"  // 修理
	Parts   Key = "parts"   // 部品・他 (デフォルト)
)

// labels は表示名の固定テーブルです。起動後に書き換えないこと。
var labels = map[Key]string{
	NewCar:  "新車販売",
	UsedCar: "中古車販売",
	Rental:  "レンタル",
	Repair:  "修理",
	Parts:   "部品・他",
}

// Keys は集計バケットの表示順です。
var Keys = []Key{NewCar, UsedCar, Rental, Repair, Parts}

// Label は分類キーの表示名を返します。
func Label(k Key) string {
	if l, ok := labels[k]; ok {
		return l
	}
	return labels[Parts]
}

// Classify は明細行を5分類のいずれかに割り当てます。必ずどれか1つを返します。
// 判定順は意味を持つので並べ替え禁止:
// 作業・出張・外注の行は、商品が紐付いていても (たとえ M- 商品でも) 常に「修理」。
func Classify(d *model.ProjectDetail, product *model.Product) Key {
	switch d.LineType {
	case model.LineTypeLabor, model.LineTypeTravel, model.LineTypeOutsourcing:
		return Repair
	}

	if product != nil {
		code := strings.ToUpper(product.ProductCode)
		cat := product.Category

		switch {
		case strings.HasPrefix(code, "M-") || strings.Contains(cat, "新車"):
			return NewCar
		case strings.HasPrefix(code, "U-") || strings.Contains(cat, "中古"):
			return UsedCar
		case strings.HasPrefix(code, "R-") || strings.Contains(cat, "レンタル"):
			return Rental
		case strings.HasPrefix(code, "S-") || strings.Contains(cat, "修理"):
			return Repair
		}
	}

	return Parts
}
