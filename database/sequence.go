// C:\Users\kouji\デスクトップ\KRS\database\sequence.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// NextSequenceInTx は code_sequences から次のコードを採番します。
// 得意先コードは NextSequenceInTx(tx, "CU", "C", 4) → "C0001" のように使います。
func NextSequenceInTx(tx *sqlx.Tx, name, prefix string, padding int) (string, error) {
	var lastNo int
	err := tx.Get(&lastNo, "SELECT last_no FROM code_sequences WHERE name = ?", name)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("sequence '%s' not found", name)
		}
		return "", fmt.Errorf("failed to get sequence '%s': %w", name, err)
	}

	newNo := lastNo + 1
	_, err = tx.Exec(`UPDATE code_sequences SET last_no = ? WHERE name = ?`, newNo, name)
	if err != nil {
		return "", fmt.Errorf("failed to update sequence '%s': %w", name, err)
	}

	format := fmt.Sprintf("%s%%0%dd", prefix, padding)
	return fmt.Sprintf(format, newNo), nil
}

// InitializeSequenceFromMaxCustomerCode は既存の最大得意先コードに合わせて
// 'CU' シーケンスを初期化します (DBコピー直後でも採番が重複しないように)。
func InitializeSequenceFromMaxCustomerCode(tx *sqlx.Tx) error {
	var maxCode sql.NullString
	err := tx.Get(&maxCode, "SELECT customer_code FROM customers WHERE customer_code LIKE 'C%' ORDER BY customer_code DESC LIMIT 1")

	maxNum := 0
	if err != nil {
		if err != sql.ErrNoRows {
			return err
		}
	}

	if maxCode.Valid && strings.HasPrefix(maxCode.String, "C") {
		numPart := strings.TrimPrefix(maxCode.String, "C")
		maxNum, _ = strconv.Atoi(numPart)
	}

	log.Printf("INFO: [Sequence] Setting 'CU' last_no to %d", maxNum)

	_, err = tx.Exec(`UPDATE code_sequences SET last_no = ? WHERE name = 'CU'`, maxNum)
	return err
}
