// C:\Users\kouji\デスクトップ\KRS\model\document_types.go
package model

// 帳票種別
const (
	DocumentInvoice   = "invoice"   // 請求書
	DocumentDelivery  = "delivery"  // 納品書
	DocumentQuotation = "quotation" // 御見積書
)

// DocumentLine は帳票明細テーブルの1行 (表示用に整形済み) です。
type DocumentLine struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
	IsPadding   bool    `json:"isPadding"`
}

// DocumentLayout は帳票1枚分のレイアウト記述です。
// HTML/PDF レンダラはこの構造体だけを見て描画します。
type DocumentLayout struct {
	Kind           string         `json:"kind"`
	Title          string         `json:"title"`
	DocumentNumber string         `json:"documentNumber"` // 案件IDの6桁ゼロ埋め
	IssueDate      string         `json:"issueDate"`
	RecipientName  string         `json:"recipientName"` // 「〇〇 御中」
	ProjectNo      string         `json:"projectNo"`
	ProjectTitle   string         `json:"projectTitle"`
	CompanyName    string         `json:"companyName"`
	CompanyAddress string         `json:"companyAddress"`
	CompanyPhone   string         `json:"companyPhone"`
	CompanyFax     string         `json:"companyFax"`
	BankAccount    string         `json:"bankAccount"`
	Lines          []DocumentLine `json:"lines"`
	ShowDates      bool           `json:"showDates"`   // 見積書は日付列なし
	ShowAmounts    bool           `json:"showAmounts"` // 納品書は単価・金額列なし
	ShowSummary    bool           `json:"showSummary"` // 納品書は合計欄なし
	Subtotal       float64        `json:"subtotal"`
	Tax            float64        `json:"tax"`
	Total          float64        `json:"total"`
}
