// C:\Users\kouji\デスクトップ\KRS\database\machines.go
package database

import (
	"database/sql"
	"fmt"

	"krs/model"

	"github.com/jmoiron/sqlx"
)

const machineColumns = `id, customer_code, maker_name, model_name, serial_number, machine_type, note`

func GetMachinesByCustomer(db *sqlx.DB, customerCode string) ([]model.Machine, error) {
	var machines []model.Machine
	err := db.Select(&machines, `SELECT `+machineColumns+` FROM machines WHERE customer_code = ? ORDER BY id`, customerCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get machines for customer %s: %w", customerCode, err)
	}
	return machines, nil
}

func GetMachineByID(db *sqlx.DB, id int) (*model.Machine, error) {
	var m model.Machine
	err := db.Get(&m, `SELECT `+machineColumns+` FROM machines WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get machine %d: %w", id, err)
	}
	return &m, nil
}

func CreateMachine(db *sqlx.DB, m model.Machine) (int, error) {
	const q = `INSERT INTO machines (customer_code, maker_name, model_name, serial_number, machine_type, note)
		VALUES (:customer_code, :maker_name, :model_name, :serial_number, :machine_type, :note)`
	res, err := db.NamedExec(q, m)
	if err != nil {
		return 0, fmt.Errorf("CreateMachine failed: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateMachine: failed to get new id: %w", err)
	}
	return int(id), nil
}

func UpdateMachine(db *sqlx.DB, m model.Machine) error {
	const q = `UPDATE machines SET
		customer_code = :customer_code, maker_name = :maker_name, model_name = :model_name,
		serial_number = :serial_number, machine_type = :machine_type, note = :note
		WHERE id = :id`
	res, err := db.NamedExec(q, m)
	if err != nil {
		return fmt.Errorf("UpdateMachine (ID: %d) failed: %w", m.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteMachine(db *sqlx.DB, id int) error {
	_, err := db.Exec(`DELETE FROM machines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("DeleteMachine (ID: %d) failed: %w", id, err)
	}
	return nil
}
