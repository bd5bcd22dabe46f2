// C:\Users\kouji\デスクトップ\KRS\document\assemble.go
package document

import (
	"fmt"

	"krs/config"
	"krs/lineitem"
	"krs/model"
)

var titles = map[string]string{
	model.DocumentInvoice:   "請求書",
	model.DocumentDelivery:  "納品書",
	model.DocumentQuotation: "御見積書",
}

// ValidKind は帳票種別が有効かどうかを返します。
func ValidKind(kind string) bool {
	_, ok := titles[kind]
	return ok
}

func minRowsFor(kind string) int {
	if kind == model.DocumentQuotation {
		return lineitem.MinRowsQuotation
	}
	return lineitem.MinRowsInvoice
}

// Build は案件から帳票1枚分のレイアウト記述を組み立てます。
// 明細は正規化 (出張費まとめ) → 最低行数まで空行埋め → 合計計算の順に通します。
// 数値は全て lineitem 経由なので、ダッシュボードと金額がズレることはありません。
func Build(kind string, p *model.Project, customer *model.Customer,
	details []model.ProjectDetail, cfg config.Config, issueDate string) (*model.DocumentLayout, error) {

	title, ok := titles[kind]
	if !ok {
		return nil, fmt.Errorf("unknown document kind: %s", kind)
	}

	taxRate := cfg.TaxRate
	if taxRate == 0 {
		taxRate = lineitem.DefaultTaxRate
	}

	normalized := lineitem.Normalize(details)
	padded := lineitem.Pad(normalized, minRowsFor(kind))
	totals := lineitem.ComputeTotals(padded, taxRate)

	recipient := "得意先不明"
	if customer != nil && customer.CustomerName != "" {
		recipient = customer.CustomerName + " 御中"
	}

	layout := &model.DocumentLayout{
		Kind:           kind,
		Title:          title,
		DocumentNumber: fmt.Sprintf("%06d", p.ID),
		IssueDate:      issueDate,
		RecipientName:  recipient,
		ProjectNo:      p.ProjectNo,
		ProjectTitle:   p.Title,
		CompanyName:    cfg.CompanyName,
		CompanyAddress: cfg.CompanyAddress,
		CompanyPhone:   cfg.CompanyPhone,
		CompanyFax:     cfg.CompanyFax,
		BankAccount:    cfg.BankAccount,
		ShowDates:      kind != model.DocumentQuotation,
		ShowAmounts:    kind != model.DocumentDelivery,
		ShowSummary:    kind != model.DocumentDelivery,
		Subtotal:       totals.Subtotal,
		Tax:            totals.Tax,
		Total:          totals.Total,
	}

	for i := range padded {
		d := &padded[i]
		if d.LineType == model.LineTypePadding {
			layout.Lines = append(layout.Lines, model.DocumentLine{IsPadding: true})
			continue
		}
		qty := lineitem.SafeNumber(d.Quantity)
		price := lineitem.SafeNumber(d.UnitPrice)
		layout.Lines = append(layout.Lines, model.DocumentLine{
			Date:        d.DetailDate,
			Description: d.Description,
			Quantity:    qty,
			UnitPrice:   price,
			Amount:      qty * price,
		})
	}

	return layout, nil
}
