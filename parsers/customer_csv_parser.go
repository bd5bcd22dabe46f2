// C:\Users\kouji\デスクトップ\KRS\parsers\customer_csv_parser.go
package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"krs/model"
)

// ParseCustomerCSV は得意先マスタCSVを解析します。
// 必須列は customer_code / customer_name。その他の列は任意です。
// 文字コードは UTF-8 (BOM可) と Shift-JIS の両対応です。
func ParseCustomerCSV(r io.Reader) ([]model.Customer, error) {
	decoded, err := DecodeJapanese(r)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(decoded)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSVファイルが空です")
	}
	if err != nil {
		return nil, fmt.Errorf("CSVヘッダーの読み取りに失敗: %w", err)
	}

	requiredHeaders := []string{"customer_code", "customer_name"}
	colIndex, err := getColIndex(header, requiredHeaders)
	if err != nil {
		return nil, err
	}

	var records []model.Customer
	line := 1

	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("WARN: 得意先CSV %d行目の読み取りエラー (スキップ): %v", line, err)
			continue
		}

		get := func(key string) string {
			if idx, ok := colIndex[key]; ok && idx < len(rec) {
				return strings.TrimSpace(rec[idx])
			}
			return ""
		}

		customerCode := get("customer_code")
		customerName := get("customer_name")

		if customerCode == "" || customerName == "" {
			log.Printf("WARN: 得意先CSV %d行目 (コードまたは名称が空) (スキップ)", line)
			continue
		}

		records = append(records, model.Customer{
			CustomerCode: customerCode,
			CustomerName: customerName,
			KanaName:     get("kana_name"),
			PostalCode:   get("postal_code"),
			Address:      get("address"),
			Phone:        get("phone"),
			Fax:          get("fax"),
			Note:         get("note"),
		})
	}

	return records, nil
}
