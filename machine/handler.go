// C:\Users\kouji\デスクトップ\KRS\machine\handler.go
package machine

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"krs/database"
	"krs/model"

	"github.com/jmoiron/sqlx"
)

// ListMachinesHandler は得意先の保有機械一覧を返します。
func ListMachinesHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerCode := r.URL.Query().Get("customer")
		if customerCode == "" {
			http.Error(w, "customer parameter is required", http.StatusBadRequest)
			return
		}
		machines, err := database.GetMachinesByCustomer(db, customerCode)
		if err != nil {
			http.Error(w, "Failed to get machines", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(machines)
	}
}

// SaveMachineHandler は機械を登録 (id=0) または更新します。
func SaveMachineHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m model.Machine
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if m.CustomerCode == "" {
			http.Error(w, "得意先の指定は必須です。", http.StatusBadRequest)
			return
		}

		if m.ID == 0 {
			id, err := database.CreateMachine(db, m)
			if err != nil {
				http.Error(w, "Failed to create machine", http.StatusInternalServerError)
				return
			}
			m.ID = id
		} else {
			if err := database.UpdateMachine(db, m); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					http.NotFound(w, r)
					return
				}
				http.Error(w, "Failed to update machine", http.StatusInternalServerError)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(m)
	}
}

// DeleteMachineHandler は機械を削除します。
func DeleteMachineHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := strings.TrimPrefix(r.URL.Path, "/api/machines/delete/")
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			http.Error(w, "Machine id is required", http.StatusBadRequest)
			return
		}
		if err := database.DeleteMachine(db, id); err != nil {
			http.Error(w, "Failed to delete machine", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "削除しました"})
	}
}
