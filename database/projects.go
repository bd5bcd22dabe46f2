// C:\Users\kouji\デスクトップ\KRS\database\projects.go
package database

import (
	"database/sql"
	"fmt"
	"strings"

	"krs/model"

	"github.com/jmoiron/sqlx"
)

const projectColumns = `id, project_no, customer_code, machine_id, title, status, completion_date, created_at, note`

func GetProjectByID(db *sqlx.DB, id int) (*model.Project, error) {
	var p model.Project
	err := db.Get(&p, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return &p, nil
}

// ProjectFilters は案件一覧の絞り込み条件です。空欄の条件は無視されます。
type ProjectFilters struct {
	CustomerCode string
	Status       string
	DateFrom     string // created_at の範囲 (YYYY-MM-DD)
	DateTo       string
}

func ListProjects(db *sqlx.DB, filters ProjectFilters) ([]model.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects`
	var conds []string
	var args []interface{}

	if filters.CustomerCode != "" {
		conds = append(conds, "customer_code = ?")
		args = append(args, filters.CustomerCode)
	}
	if filters.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filters.Status)
	}
	if filters.DateFrom != "" {
		conds = append(conds, "created_at >= ?")
		args = append(args, filters.DateFrom)
	}
	if filters.DateTo != "" {
		conds = append(conds, "created_at <= ?")
		args = append(args, filters.DateTo)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY id DESC"

	var projects []model.Project
	if err := db.Select(&projects, q, args...); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProjectsForPeriod は計上日 (完了日、なければ作成日) が期間内の案件を取得します。
// 完了日のない案件も作成日で拾うため、除外はしません。
func GetProjectsForPeriod(db *sqlx.DB, start, end string) ([]model.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects
		WHERE COALESCE(NULLIF(completion_date, ''), created_at) BETWEEN ? AND ?
		ORDER BY id`
	var projects []model.Project
	if err := db.Select(&projects, q, start, end); err != nil {
		return nil, fmt.Errorf("failed to get projects for period %s-%s: %w", start, end, err)
	}
	return projects, nil
}

func InsertProjectInTx(tx *sqlx.Tx, p model.Project) (int, error) {
	const q = `INSERT INTO projects (project_no, customer_code, machine_id, title, status, completion_date, created_at, note)
		VALUES (:project_no, :customer_code, :machine_id, :title, :status, :completion_date, :created_at, :note)`
	res, err := tx.NamedExec(q, p)
	if err != nil {
		return 0, fmt.Errorf("InsertProjectInTx (No: %s) failed: %w", p.ProjectNo, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("InsertProjectInTx: failed to get new id: %w", err)
	}
	return int(id), nil
}

func UpdateProjectInTx(tx *sqlx.Tx, p model.Project) error {
	const q = `UPDATE projects SET
		customer_code = :customer_code, machine_id = :machine_id, title = :title,
		status = :status, completion_date = :completion_date, note = :note
		WHERE id = :id`
	res, err := tx.NamedExec(q, p)
	if err != nil {
		return fmt.Errorf("UpdateProjectInTx (ID: %d) failed: %w", p.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteProjectInTx(tx *sqlx.Tx, id int) error {
	if _, err := tx.Exec(`DELETE FROM project_details WHERE project_id = ?`, id); err != nil {
		return fmt.Errorf("DeleteProjectInTx: failed to delete details of %d: %w", id, err)
	}
	if _, err := tx.Exec(`DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("DeleteProjectInTx (ID: %d) failed: %w", id, err)
	}
	return nil
}

// NextProjectNoInTx は案件番号を採番します。"P" + YYMMDD + 4桁連番。
// 同日内の最終番号をなめて +1 する方式です。
func NextProjectNoInTx(tx *sqlx.Tx, dateYYMMDD string) (string, error) {
	prefix := "P" + dateYYMMDD
	const q = `SELECT project_no FROM projects
		WHERE project_no LIKE ?
		ORDER BY project_no DESC LIMIT 1`
	var lastNo string
	err := tx.Get(&lastNo, q, prefix+"%")
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("failed to get last project_no for %s: %w", prefix, err)
	}

	lastSeq := 0
	if len(lastNo) == len(prefix)+4 {
		fmt.Sscanf(lastNo[len(prefix):], "%d", &lastSeq)
	}
	return fmt.Sprintf("%s%04d", prefix, lastSeq+1), nil
}
