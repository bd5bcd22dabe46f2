// C:\Users\kouji\デスクトップ\KRS\database\project_details.go
package database

import (
	"fmt"

	"krs/model"

	"github.com/jmoiron/sqlx"
)

const projectDetailColumns = `
    id, project_id, line_no, line_type, description,
    quantity, unit_price, unit_cost, detail_date,
    travel_type, outsourcing_detail_type, product_code`

const insertProjectDetailQuery = `
INSERT INTO project_details (
    project_id, line_no, line_type, description,
    quantity, unit_price, unit_cost, detail_date,
    travel_type, outsourcing_detail_type, product_code
) VALUES (
    :project_id, :line_no, :line_type, :description,
    :quantity, :unit_price, :unit_cost, :detail_date,
    :travel_type, :outsourcing_detail_type, :product_code
)`

func GetProjectDetails(db *sqlx.DB, projectID int) ([]model.ProjectDetail, error) {
	var details []model.ProjectDetail
	err := db.Select(&details, `SELECT `+projectDetailColumns+` FROM project_details
		WHERE project_id = ? ORDER BY line_no, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get details of project %d: %w", projectID, err)
	}
	return details, nil
}

// GetDetailsByProjectIDs は複数案件の明細を 案件ID→明細リスト でまとめて取得します。
// ダッシュボード集計が案件ごとに1クエリ投げないための一括版です。
func GetDetailsByProjectIDs(db *sqlx.DB, projectIDs []int) (map[int][]model.ProjectDetail, error) {
	result := make(map[int][]model.ProjectDetail)
	if len(projectIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`SELECT `+projectDetailColumns+` FROM project_details
		WHERE project_id IN (?) ORDER BY project_id, line_no, id`, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build details query: %w", err)
	}

	var details []model.ProjectDetail
	if err := db.Select(&details, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get details for %d projects: %w", len(projectIDs), err)
	}
	for _, d := range details {
		result[d.ProjectID] = append(result[d.ProjectID], d)
	}
	return result, nil
}

// DeleteProjectDetailsInTx は案件の明細を全削除します。
// 明細の保存は常に 全削除→全挿入 (差分更新はしない)。
func DeleteProjectDetailsInTx(tx *sqlx.Tx, projectID int) error {
	_, err := tx.Exec(`DELETE FROM project_details WHERE project_id = ?`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete details of project %d: %w", projectID, err)
	}
	return nil
}

// PersistProjectDetailsInTx は明細を一括挿入します。
func PersistProjectDetailsInTx(tx *sqlx.Tx, details []model.ProjectDetail) error {
	for i := range details {
		if _, err := tx.NamedExec(insertProjectDetailQuery, details[i]); err != nil {
			return fmt.Errorf("failed to insert detail line %d: %w", details[i].LineNo, err)
		}
	}
	return nil
}
