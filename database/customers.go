// C:\Users\kouji\デスクトップ\KRS\database\customers.go
package database

import (
	"database/sql"
	"fmt"

	"krs/model"

	"github.com/jmoiron/sqlx"
)

// GetCustomerMap は全得意先を コード→名称 のマップで取得します。
func GetCustomerMap(db *sqlx.DB) (map[string]string, error) {
	customers, err := GetAllCustomers(db)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer list for map: %w", err)
	}

	customerMap := make(map[string]string)
	for _, c := range customers {
		customerMap[c.CustomerCode] = c.CustomerName
	}
	return customerMap, nil
}

func GetAllCustomers(db *sqlx.DB) ([]model.Customer, error) {
	var customers []model.Customer
	err := db.Select(&customers, `SELECT customer_code, customer_name, kana_name, postal_code, address, phone, fax, note
		FROM customers ORDER BY customer_code`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all customers: %w", err)
	}
	return customers, nil
}

// SearchCustomers は名称・カナの部分一致で得意先を検索します。
func SearchCustomers(db *sqlx.DB, keyword string) ([]model.Customer, error) {
	var customers []model.Customer
	pattern := "%" + keyword + "%"
	err := db.Select(&customers, `SELECT customer_code, customer_name, kana_name, postal_code, address, phone, fax, note
		FROM customers
		WHERE customer_name LIKE ? OR kana_name LIKE ?
		ORDER BY customer_code`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return customers, nil
}

func GetCustomerByCode(db *sqlx.DB, code string) (*model.Customer, error) {
	var c model.Customer
	err := db.Get(&c, `SELECT customer_code, customer_name, kana_name, postal_code, address, phone, fax, note
		FROM customers WHERE customer_code = ?`, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer %s: %w", code, err)
	}
	return &c, nil
}

func CheckCustomerExistsByName(tx *sqlx.Tx, name string) (bool, error) {
	var exists int
	const q = `SELECT 1 FROM customers WHERE customer_name = ? LIMIT 1`
	err := tx.QueryRow(q, name).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("CheckCustomerExistsByName failed: %w", err)
	}
	return true, nil
}

func CreateCustomerInTx(tx *sqlx.Tx, c model.Customer) error {
	const q = `INSERT INTO customers (customer_code, customer_name, kana_name, postal_code, address, phone, fax, note)
		VALUES (:customer_code, :customer_name, :kana_name, :postal_code, :address, :phone, :fax, :note)`
	_, err := tx.NamedExec(q, c)
	if err != nil {
		return fmt.Errorf("CreateCustomerInTx (Code: %s) failed: %w", c.CustomerCode, err)
	}
	return nil
}

// UpsertCustomerInTx は得意先を挿入または置換します (CSVインポート用)。
// customer_code が競合した場合は全項目を上書きします。
func UpsertCustomerInTx(tx *sqlx.Tx, c model.Customer) error {
	const q = `
		INSERT INTO customers (customer_code, customer_name, kana_name, postal_code, address, phone, fax, note)
		VALUES (:customer_code, :customer_name, :kana_name, :postal_code, :address, :phone, :fax, :note)
		ON CONFLICT(customer_code) DO UPDATE SET
			customer_name = excluded.customer_name,
			kana_name = excluded.kana_name,
			postal_code = excluded.postal_code,
			address = excluded.address,
			phone = excluded.phone,
			fax = excluded.fax,
			note = excluded.note
	`
	_, err := tx.NamedExec(q, c)
	if err != nil {
		return fmt.Errorf("UpsertCustomerInTx (Code: %s, Name: %s) failed: %w", c.CustomerCode, c.CustomerName, err)
	}
	return nil
}

func UpdateCustomer(db *sqlx.DB, c model.Customer) error {
	const q = `UPDATE customers SET
		customer_name = :customer_name, kana_name = :kana_name, postal_code = :postal_code,
		address = :address, phone = :phone, fax = :fax, note = :note
		WHERE customer_code = :customer_code`
	res, err := db.NamedExec(q, c)
	if err != nil {
		return fmt.Errorf("UpdateCustomer (Code: %s) failed: %w", c.CustomerCode, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteCustomer(db *sqlx.DB, code string) error {
	_, err := db.Exec(`DELETE FROM customers WHERE customer_code = ?`, code)
	if err != nil {
		return fmt.Errorf("DeleteCustomer (Code: %s) failed: %w", code, err)
	}
	return nil
}
