// C:\Users\kouji\デスクトップ\KRS\category\classify_test.go
package category

import (
	"testing"

	"krs/model"

	"github.com/stretchr/testify/assert"
)

func detail(lineType string) *model.ProjectDetail {
	return &model.ProjectDetail{LineType: lineType}
}

func TestClassify_LineTypeWinsOverProduct(t *testing.T) {
	// 出張行に M- 商品が紐付いていても新車販売にはしない (判定順は固定)
	p := &model.Product{ProductCode: "M-100", Category: "新車"}

	assert.Equal(t, Repair, Classify(detail(model.LineTypeTravel), p))
	assert.Equal(t, Repair, Classify(detail(model.LineTypeLabor), p))
	assert.Equal(t, Repair, Classify(detail(model.LineTypeOutsourcing), p))
}

func TestClassify_ProductCodePrefix(t *testing.T) {
	tests := []struct {
		code string
		want Key
	}{
		{"M-100", NewCar},
		{"m-200", NewCar}, // 大文字化してから判定
		{"U-310", UsedCar},
		{"R-01", Rental},
		{"S-55", Repair},
		{"P-99", Parts},
		{"", Parts},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			p := &model.Product{ProductCode: tt.code}
			assert.Equal(t, tt.want, Classify(detail(model.LineTypePart), p))
		})
	}
}

func TestClassify_LegacyCategoryString(t *testing.T) {
	tests := []struct {
		category string
		want     Key
	}{
		{"新車（大型）", NewCar},
		{"中古パーツ付き", UsedCar},
		{"レンタル月極", Rental},
		{"修理部品", Repair},
		{"その他", Parts},
		{"", Parts},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			p := &model.Product{ProductCode: "X-1", Category: tt.category}
			assert.Equal(t, tt.want, Classify(detail(model.LineTypeOther), p))
		})
	}
}

func TestClassify_CodePrefixBeatsLaterCategoryRules(t *testing.T) {
	// M- 接頭辞は category に「中古」とあっても新車販売
	p := &model.Product{ProductCode: "M-100", Category: "中古"}
	assert.Equal(t, NewCar, Classify(detail(model.LineTypePart), p))
}

func TestClassify_NoProductDefaultsToParts(t *testing.T) {
	assert.Equal(t, Parts, Classify(detail(model.LineTypePart), nil))
	assert.Equal(t, Parts, Classify(detail(model.LineTypeOther), nil))
}

func TestClassify_Total(t *testing.T) {
	// どんな組み合わせでも必ず5分類のどれかを返す
	lineTypes := []string{
		model.LineTypeLabor, model.LineTypePart, model.LineTypeOutsourcing,
		model.LineTypeTravel, model.LineTypeOther, "unknown", "",
	}
	codes := []string{"", "M-1", "U-1", "R-1", "S-1", "Z-1", "100"}
	categories := []string{"", "新車", "中古", "レンタル", "修理", "雑"}

	valid := map[Key]bool{NewCar: true, UsedCar: true, Rental: true, Repair: true, Parts: true}

	for _, lt := range lineTypes {
		for _, code := range codes {
			for _, cat := range categories {
				p := &model.Product{ProductCode: code, Category: cat}
				got := Classify(detail(lt), p)
				assert.True(t, valid[got], "lineType=%q code=%q cat=%q → %q", lt, code, cat, got)
			}
			got := Classify(detail(lt), nil)
			assert.True(t, valid[got])
		}
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "新車販売", Label(NewCar))
	assert.Equal(t, "中古車販売", Label(UsedCar))
	assert.Equal(t, "レンタル", Label(Rental))
	assert.Equal(t, "修理", Label(Repair))
	assert.Equal(t, "部品・他", Label(Parts))
	assert.Equal(t, "部品・他", Label(Key("bogus")))
}
