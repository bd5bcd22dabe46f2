// C:\Users\kouji\デスクトップ\KRS\backup\backup.go
package backup

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"krs/config"

	"github.com/robfig/cron/v3"
)

// Start はDBファイルの夜間バックアップをスケジュールします。
// バックアップ先フォルダが未設定の間は何もしません。
func Start(dbPath string) *cron.Cron {
	c := cron.New()

	schedule := config.GetConfig().BackupSchedule
	if schedule == "" {
		schedule = "0 3 * * *"
	}

	_, err := c.AddFunc(schedule, func() {
		cfg := config.GetConfig()
		if cfg.BackupFolderPath == "" {
			log.Println("WARN: Backup folder is not configured. Skipping backup.")
			return
		}
		if err := Run(dbPath, cfg.BackupFolderPath); err != nil {
			log.Printf("WARN: Scheduled backup failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("WARN: Failed to schedule backup (%q): %v", schedule, err)
		return c
	}

	c.Start()
	log.Printf("Backup scheduler started (%s).", schedule)
	return c
}

// Run はDBファイルを保存先フォルダへコピーします。
func Run(dbPath, destDir string) error {
	if _, err := os.Stat(destDir); os.IsNotExist(err) {
		if err := os.MkdirAll(destDir, 0755); err != nil {
			return fmt.Errorf("バックアップ先フォルダの作成に失敗: %w", err)
		}
	}

	src, err := os.Open(dbPath)
	if err != nil {
		return fmt.Errorf("DBファイルのオープンに失敗: %w", err)
	}
	defer src.Close()

	fileName := fmt.Sprintf("krs_backup_%s.db", time.Now().Format("20060102"))
	destPath := filepath.Join(destDir, fileName)

	dest, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("バックアップファイルの作成に失敗: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		return fmt.Errorf("バックアップの書き込みに失敗: %w", err)
	}

	log.Printf("Backup completed: %s", destPath)
	return nil
}
