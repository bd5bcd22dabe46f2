package loader

import (
	"fmt"
	"log"
	"os"

	"krs/database"

	"github.com/jmoiron/sqlx"
)

// InitDatabase はスキーマを適用し、採番シーケンスを初期化します。
func InitDatabase(db *sqlx.DB) error {
	log.Println("Applying database schema...")
	if err := applySchema(db); err != nil {
		return fmt.Errorf("failed to apply schema.sql: %w", err)
	}
	log.Println("Schema applied successfully.")

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for sequence initialization: %w", err)
	}
	defer tx.Rollback()

	if err := database.InitializeSequenceFromMaxCustomerCode(tx); err != nil {
		log.Printf("WARN: Failed to initialize CU sequence: %v", err)
		// エラーでも続行
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sequence initialization: %w", err)
	}
	log.Println("Code sequences initialized.")

	return nil
}

// applySchema は schema.sql ファイルを読み込んで実行します。
func applySchema(db *sqlx.DB) error {
	schemaBytes, err := os.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("could not read schema.sql: %w", err)
	}
	_, err = db.Exec(string(schemaBytes))
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}
