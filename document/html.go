// C:\Users\kouji\デスクトップ\KRS\document\html.go
package document

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"krs/model"
)

// formatYen は金額を 3桁区切りの円表示にします。端数がある場合は小数2桁。
func formatYen(v float64) string {
	var s string
	if v == math.Trunc(v) {
		s = strconv.FormatFloat(v, 'f', 0, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', 2, 64)
	}

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s
	frac := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, frac = s[:idx], s[idx:]
	}

	var sb strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}
	result := sb.String() + frac
	if neg {
		result = "-" + result
	}
	return result
}

// formatQty は数量表示です。整数は整数のまま、端数は2桁まで。
func formatQty(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// RenderHTML はレイアウト記述からA4印刷用のHTMLを生成します。
// 生成したHTMLはヘッドレスブラウザに渡してPDF化します。
func RenderHTML(layout *model.DocumentLayout) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html><html lang="ja"><head><meta charset="utf-8">`)
	sb.WriteString(`<style>
    @page { size: A4; margin: 15mm; }
    body { font-family: "Yu Gothic", "MS Gothic", sans-serif; font-size: 10.5pt; color: #000; }
    h1 { text-align: center; font-size: 18pt; letter-spacing: 1em; margin: 0 0 8mm 0; }
    .doc-header { display: flex; justify-content: space-between; margin-bottom: 6mm; }
    .recipient { font-size: 13pt; border-bottom: 1px solid #000; padding: 2mm 8mm 1mm 1mm; }
    .company { text-align: right; font-size: 9.5pt; }
    .meta { text-align: right; font-size: 9.5pt; margin-bottom: 3mm; }
    table.detail { width: 100%; border-collapse: collapse; margin-top: 4mm; }
    table.detail th, table.detail td { border: 1px solid #000; padding: 1.2mm 1.5mm; height: 6.5mm; }
    table.detail th { background: #eee; font-weight: normal; }
    .center { text-align: center; }
    .right { text-align: right; }
    table.summary { border-collapse: collapse; margin: 4mm 0 0 auto; }
    table.summary th, table.summary td { border: 1px solid #000; padding: 1.2mm 4mm; }
    table.summary th { background: #eee; font-weight: normal; }
    .bank { margin-top: 5mm; font-size: 9.5pt; }
    </style></head><body>`)

	sb.WriteString(fmt.Sprintf(`<h1>%s</h1>`, html.EscapeString(layout.Title)))

	sb.WriteString(`<div class="meta">`)
	sb.WriteString(fmt.Sprintf(`No. %s<br>発行日: %s`, html.EscapeString(layout.DocumentNumber), html.EscapeString(layout.IssueDate)))
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="doc-header">`)
	sb.WriteString(fmt.Sprintf(`<div class="recipient">%s</div>`, html.EscapeString(layout.RecipientName)))
	sb.WriteString(`<div class="company">`)
	sb.WriteString(html.EscapeString(layout.CompanyName) + `<br>`)
	sb.WriteString(html.EscapeString(layout.CompanyAddress) + `<br>`)
	if layout.CompanyPhone != "" {
		sb.WriteString("TEL: " + html.EscapeString(layout.CompanyPhone))
	}
	if layout.CompanyFax != "" {
		sb.WriteString(" FAX: " + html.EscapeString(layout.CompanyFax))
	}
	sb.WriteString(`</div></div>`)

	if layout.ProjectTitle != "" {
		sb.WriteString(fmt.Sprintf(`<div>件名: %s (%s)</div>`,
			html.EscapeString(layout.ProjectTitle), html.EscapeString(layout.ProjectNo)))
	}

	if layout.ShowSummary {
		sb.WriteString(`<table class="summary"><tr>`)
		sb.WriteString(`<th>小計</th><th>消費税</th><th>合計金額</th></tr><tr>`)
		sb.WriteString(fmt.Sprintf(`<td class="right">%s</td>`, formatYen(layout.Subtotal)))
		sb.WriteString(fmt.Sprintf(`<td class="right">%s</td>`, formatYen(layout.Tax)))
		sb.WriteString(fmt.Sprintf(`<td class="right">￥%s</td>`, formatYen(layout.Total)))
		sb.WriteString(`</tr></table>`)
	}

	sb.WriteString(`<table class="detail"><thead><tr>`)
	if layout.ShowDates {
		sb.WriteString(`<th class="col-date" style="width:22mm">日付</th>`)
	}
	sb.WriteString(`<th>内容</th>`)
	sb.WriteString(`<th style="width:16mm">数量</th>`)
	if layout.ShowAmounts {
		sb.WriteString(`<th style="width:24mm">単価</th>`)
		sb.WriteString(`<th style="width:26mm">金額</th>`)
	}
	sb.WriteString(`</tr></thead><tbody>`)

	for _, line := range layout.Lines {
		sb.WriteString(`<tr>`)
		if line.IsPadding {
			if layout.ShowDates {
				sb.WriteString(`<td>&nbsp;</td>`)
			}
			sb.WriteString(`<td>&nbsp;</td><td>&nbsp;</td>`)
			if layout.ShowAmounts {
				sb.WriteString(`<td>&nbsp;</td><td>&nbsp;</td>`)
			}
			sb.WriteString(`</tr>`)
			continue
		}
		if layout.ShowDates {
			sb.WriteString(fmt.Sprintf(`<td class="center">%s</td>`, html.EscapeString(line.Date)))
		}
		sb.WriteString(fmt.Sprintf(`<td>%s</td>`, html.EscapeString(line.Description)))
		sb.WriteString(fmt.Sprintf(`<td class="right">%s</td>`, formatQty(line.Quantity)))
		if layout.ShowAmounts {
			sb.WriteString(fmt.Sprintf(`<td class="right">%s</td>`, formatYen(line.UnitPrice)))
			sb.WriteString(fmt.Sprintf(`<td class="right">%s</td>`, formatYen(line.Amount)))
		}
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</tbody></table>`)

	if layout.ShowSummary && layout.BankAccount != "" {
		sb.WriteString(fmt.Sprintf(`<div class="bank">お振込先: %s</div>`, html.EscapeString(layout.BankAccount)))
	}

	sb.WriteString(`</body></html>`)
	return sb.String()
}
