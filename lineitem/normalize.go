// C:\Users\kouji\デスクトップ\KRS\lineitem\normalize.go
package lineitem

import (
	"math"
	"strings"

	"krs/model"
)

// 明細に埋め込まれる出張タグ。入力画面が自動付与する文字列で、
// まとめ処理ではこのタグを除去した本文をキーにします。
const (
	travelTimeTag     = "【移動時間】"
	travelDistanceTag = "【移動距離】"
	travelMergedLabel = "［出張費］"
)

// 帳票種別ごとの最低行数
const (
	MinRowsInvoice   = 10
	MinRowsDelivery  = 10
	MinRowsQuotation = 13
)

// SafeNumber は NaN / ±Inf を 0 に丸めます。
// 明細の数量・単価・原価は全てここを通してから計算します
// (帳票合計とダッシュボード集計が別々の解釈をしないように一本化)。
func SafeNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// isTravelItem は出張費まとめの対象行かどうかを判定します。
// 出張行そのものと、外注扱いで登録された出張 (外注明細種別=travel) の両方が対象です。
func isTravelItem(d *model.ProjectDetail) bool {
	if d.LineType == model.LineTypeTravel {
		return true
	}
	return d.LineType == model.LineTypeOutsourcing && d.OutsourcingDetailType == model.LineTypeTravel
}

// travelKeyDescription は出張行の突合用に説明文を正規化します。
// まとめ済みの行を再度通しても同じキーになるよう、付与済みのラベルも外します。
func travelKeyDescription(desc string) string {
	desc = strings.TrimPrefix(desc, travelMergedLabel)
	desc = strings.ReplaceAll(desc, travelTimeTag, "")
	desc = strings.ReplaceAll(desc, travelDistanceTag, "")
	return strings.TrimSpace(desc)
}

// Normalize は案件明細を帳票表示用に正規化します。
//  1. 出張費まとめ: 外注フラグ・正規化後の説明文・日付 (未設定は空扱い) が
//     一致する出張行を前方から走査して1行に合算します。
//     合算行は 数量=1, 単価=Σ(数量×単価), 原価=Σ(数量×原価) で、
//     説明文は ［出張費］+ 正規化後説明文、行種別は先頭行のものを保持します。
//  2. 出張以外の行は元の並び順のまま通過します。
//
// 行が黙って消えることはありません (まとめによる合算のみ)。純粋関数です。
func Normalize(details []model.ProjectDetail) []model.ProjectDetail {
	consumed := make([]bool, len(details))
	var result []model.ProjectDetail

	for i := range details {
		if consumed[i] {
			continue
		}
		d := details[i]

		if !isTravelItem(&d) {
			result = append(result, d)
			continue
		}

		isOutsourcing := d.LineType == model.LineTypeOutsourcing
		keyDesc := travelKeyDescription(d.Description)
		keyDate := d.DetailDate

		sumPrice := SafeNumber(d.Quantity) * SafeNumber(d.UnitPrice)
		sumCost := SafeNumber(d.Quantity) * SafeNumber(d.UnitCost)
		consumed[i] = true

		for j := i + 1; j < len(details); j++ {
			if consumed[j] {
				continue
			}
			t := details[j]
			if !isTravelItem(&t) {
				continue
			}
			if (t.LineType == model.LineTypeOutsourcing) != isOutsourcing {
				continue
			}
			if travelKeyDescription(t.Description) != keyDesc {
				continue
			}
			if t.DetailDate != keyDate {
				continue
			}
			sumPrice += SafeNumber(t.Quantity) * SafeNumber(t.UnitPrice)
			sumCost += SafeNumber(t.Quantity) * SafeNumber(t.UnitCost)
			consumed[j] = true
		}

		merged := d
		merged.Description = travelMergedLabel + keyDesc
		merged.Quantity = 1
		merged.UnitPrice = sumPrice
		merged.UnitCost = sumCost
		merged.TravelType = ""
		result = append(result, merged)
	}

	return result
}

// Pad は正規化済み明細を最低行数まで空行で埋めます。
// 空行 (line_type=padding) は全ての金額集計から除外されます。
func Pad(details []model.ProjectDetail, minRows int) []model.ProjectDetail {
	result := details
	for len(result) < minRows {
		result = append(result, model.ProjectDetail{LineType: model.LineTypePadding})
	}
	return result
}
