// C:\Users\kouji\デスクトップ\KRS\model\project_types.go
package model

// 明細行種別
const (
	LineTypeLabor       = "labor"       // 作業
	LineTypePart        = "part"        // 部品
	LineTypeOutsourcing = "outsourcing" // 外注
	LineTypeTravel      = "travel"      // 出張
	LineTypeOther       = "other"       // その他
	LineTypePadding     = "padding"     // 印刷用の空行 (集計対象外)
)

// 出張種別 (travel_type)
const (
	TravelTypeTime     = "time"
	TravelTypeDistance = "distance"
)

type Project struct {
	ID             int     `db:"id" json:"id"`
	ProjectNo      string  `db:"project_no" json:"projectNo"`
	CustomerCode   string  `db:"customer_code" json:"customerCode"`
	MachineID      *int    `db:"machine_id" json:"machineId"`
	Title          string  `db:"title" json:"title"`
	Status         string  `db:"status" json:"status"`
	CompletionDate *string `db:"completion_date" json:"completionDate"`
	CreatedAt      string  `db:"created_at" json:"createdAt"`
	Note           string  `db:"note" json:"note"`
}

// ProjectDetail は案件の明細行です。
// quantity * unit_price が売上金額、quantity * unit_cost が原価金額になります。
type ProjectDetail struct {
	ID                    int     `db:"id" json:"id"`
	ProjectID             int     `db:"project_id" json:"projectId"`
	LineNo                int     `db:"line_no" json:"lineNo"`
	LineType              string  `db:"line_type" json:"lineType"`
	Description           string  `db:"description" json:"description"`
	Quantity              float64 `db:"quantity" json:"quantity"`
	UnitPrice             float64 `db:"unit_price" json:"unitPrice"`
	UnitCost              float64 `db:"unit_cost" json:"unitCost"`
	DetailDate            string  `db:"detail_date" json:"detailDate"`
	TravelType            string  `db:"travel_type" json:"travelType"`
	OutsourcingDetailType string  `db:"outsourcing_detail_type" json:"outsourcingDetailType"`
	ProductCode           *string `db:"product_code" json:"productCode"`
}

type ProjectWithDetails struct {
	Project
	Details []ProjectDetail `json:"details"`
}

// AccountingDate は案件の計上日です。完了日があれば完了日、なければ作成日。
func (p *Project) AccountingDate() string {
	if p.CompletionDate != nil && *p.CompletionDate != "" {
		return *p.CompletionDate
	}
	return p.CreatedAt
}
