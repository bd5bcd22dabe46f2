// C:\Users\kouji\デスクトップ\KRS\parsers\parser_utils.go
package parsers

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// SkipBOM はUTF-8 BOMをスキップします。
func SkipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	bom := []byte{0xEF, 0xBB, 0xBF}
	peeked, err := br.Peek(3)
	if err != nil {
		return br
	}
	isBOM := true
	for i, b := range bom {
		if peeked[i] != b {
			isBOM = false
			break
		}
	}
	if isBOM {
		br.Read(make([]byte, 3))
	}
	return br
}

// DecodeJapanese は入力をUTF-8として読めるリーダーに変換します。
// UTF-8として妥当ならそのまま (BOMはスキップ)、そうでなければ
// Shift-JISとしてデコードします (Excelが吐くCSV対策)。
func DecodeJapanese(r io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("入力の読み取りに失敗: %w", err)
	}
	if utf8.Valid(data) {
		return SkipBOM(bytes.NewReader(data)), nil
	}
	return transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewDecoder()), nil
}

// getColIndex はヘッダー名から列インデックスを取得するヘルパーです。
func getColIndex(header []string, required []string) (map[string]int, error) {
	colIndex := make(map[string]int)
	for i, colName := range header {
		colIndex[strings.TrimSpace(colName)] = i
	}
	for _, req := range required {
		if _, ok := colIndex[req]; !ok {
			return nil, fmt.Errorf("必須ヘッダーが見つかりません: %s", req)
		}
	}
	return colIndex, nil
}
