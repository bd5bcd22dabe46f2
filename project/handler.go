// C:\Users\kouji\デスクトップ\KRS\project\handler.go
package project

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"krs/database"
	"krs/model"

	"github.com/jmoiron/sqlx"
)

// SavePayload は案件の保存リクエストです。明細は常に全量を送ります。
type SavePayload struct {
	ID             int                   `json:"id"` // 0 なら新規
	CustomerCode   string                `json:"customerCode"`
	MachineID      *int                  `json:"machineId"`
	Title          string                `json:"title"`
	Status         string                `json:"status"`
	CompletionDate *string               `json:"completionDate"`
	Note           string                `json:"note"`
	Details        []model.ProjectDetail `json:"details"`
}

var validLineTypes = map[string]bool{
	model.LineTypeLabor:       true,
	model.LineTypePart:        true,
	model.LineTypeOutsourcing: true,
	model.LineTypeTravel:      true,
	model.LineTypeOther:       true,
}

// SaveProjectHandler は案件 (見積含む) を保存します。
// 明細は差分更新ではなく、全削除→全挿入を1トランザクションで行います。
// 途中で失敗した場合は全てロールバックされ、保存前の明細がそのまま残ります。
func SaveProjectHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload SavePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		for i := range payload.Details {
			if !validLineTypes[payload.Details[i].LineType] {
				http.Error(w, "不正な明細種別です: "+payload.Details[i].LineType, http.StatusBadRequest)
				return
			}
		}

		status := payload.Status
		if status == "" {
			status = "open"
		}

		tx, err := db.Beginx()
		if err != nil {
			http.Error(w, "Failed to start transaction", http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		projectID := payload.ID
		var projectNo string

		if projectID == 0 {
			now := time.Now()
			projectNo, err = database.NextProjectNoInTx(tx, now.Format("060102"))
			if err != nil {
				http.Error(w, "Failed to generate project number", http.StatusInternalServerError)
				return
			}
			p := model.Project{
				ProjectNo:      projectNo,
				CustomerCode:   payload.CustomerCode,
				MachineID:      payload.MachineID,
				Title:          payload.Title,
				Status:         status,
				CompletionDate: payload.CompletionDate,
				CreatedAt:      now.Format("2006-01-02"),
				Note:           payload.Note,
			}
			projectID, err = database.InsertProjectInTx(tx, p)
			if err != nil {
				http.Error(w, "Failed to create project", http.StatusInternalServerError)
				return
			}
		} else {
			existing := model.Project{
				ID:             projectID,
				CustomerCode:   payload.CustomerCode,
				MachineID:      payload.MachineID,
				Title:          payload.Title,
				Status:         status,
				CompletionDate: payload.CompletionDate,
				Note:           payload.Note,
			}
			if err := database.UpdateProjectInTx(tx, existing); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					http.NotFound(w, r)
					return
				}
				http.Error(w, "Failed to update project", http.StatusInternalServerError)
				return
			}
			if err := database.DeleteProjectDetailsInTx(tx, projectID); err != nil {
				http.Error(w, "Failed to delete old detail lines", http.StatusInternalServerError)
				return
			}
		}

		finalDetails := make([]model.ProjectDetail, 0, len(payload.Details))
		for i, d := range payload.Details {
			d.ID = 0
			d.ProjectID = projectID
			d.LineNo = i + 1
			finalDetails = append(finalDetails, d)
		}

		if len(finalDetails) > 0 {
			if err := database.PersistProjectDetailsInTx(tx, finalDetails); err != nil {
				log.Printf("Failed to persist detail lines: %v", err)
				http.Error(w, "Failed to save detail lines.", http.StatusInternalServerError)
				return
			}
		}

		if err := tx.Commit(); err != nil {
			http.Error(w, "Failed to commit transaction", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":   "保存しました",
			"id":        projectID,
			"projectNo": projectNo,
		})
	}
}

// GetProjectHandler は案件を明細付きで返します。
// GET /api/projects/get/{id}
func GetProjectHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := strings.TrimPrefix(r.URL.Path, "/api/projects/get/")
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			http.Error(w, "Project id is required", http.StatusBadRequest)
			return
		}

		p, err := database.GetProjectByID(db, id)
		if err != nil {
			http.Error(w, "Failed to get project", http.StatusInternalServerError)
			return
		}
		if p == nil {
			http.NotFound(w, r)
			return
		}
		details, err := database.GetProjectDetails(db, id)
		if err != nil {
			http.Error(w, "Failed to get project details", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(model.ProjectWithDetails{Project: *p, Details: details})
	}
}

// ListProjectsHandler は案件一覧を返します。customer / status / from / to で絞り込み。
func ListProjectsHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filters := database.ProjectFilters{
			CustomerCode: q.Get("customer"),
			Status:       q.Get("status"),
			DateFrom:     q.Get("from"),
			DateTo:       q.Get("to"),
		}
		projects, err := database.ListProjects(db, filters)
		if err != nil {
			http.Error(w, "Failed to list projects", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(projects)
	}
}

// DeleteProjectHandler は案件を明細ごと削除します。
func DeleteProjectHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := strings.TrimPrefix(r.URL.Path, "/api/projects/delete/")
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			http.Error(w, "Project id is required", http.StatusBadRequest)
			return
		}

		tx, err := db.Beginx()
		if err != nil {
			http.Error(w, "Failed to start transaction", http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		if err := database.DeleteProjectInTx(tx, id); err != nil {
			http.Error(w, "Failed to delete project", http.StatusInternalServerError)
			return
		}
		if err := tx.Commit(); err != nil {
			http.Error(w, "Failed to commit transaction", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "削除しました"})
	}
}

// CompleteProjectHandler は案件を完了にし、完了日を設定します。
// POST /api/projects/complete/{id}?date=YYYY-MM-DD (date省略時は当日)
func CompleteProjectHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := strings.TrimPrefix(r.URL.Path, "/api/projects/complete/")
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			http.Error(w, "Project id is required", http.StatusBadRequest)
			return
		}

		date := r.URL.Query().Get("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		res, err := db.Exec(`UPDATE projects SET status = 'completed', completion_date = ? WHERE id = ?`, date, id)
		if err != nil {
			http.Error(w, "Failed to complete project", http.StatusInternalServerError)
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "完了にしました", "completionDate": date})
	}
}
