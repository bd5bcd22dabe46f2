// C:\Users\kouji\デスクトップ\KRS\parsers\customer_csv_parser_test.go
package parsers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const customerCSV = `customer_code,customer_name,kana_name,address
C0001,田中建機,タナカケンキ,茨城県土浦市1-2-3
C0002,山本農機,ヤマモトノウキ,
,名無し,,
C0004,,,
`

func TestParseCustomerCSV_UTF8(t *testing.T) {
	records, err := ParseCustomerCSV(strings.NewReader(customerCSV))
	require.NoError(t, err)

	// コードまたは名称が空の行はスキップされる
	require.Len(t, records, 2)
	assert.Equal(t, "C0001", records[0].CustomerCode)
	assert.Equal(t, "田中建機", records[0].CustomerName)
	assert.Equal(t, "タナカケンキ", records[0].KanaName)
	assert.Equal(t, "茨城県土浦市1-2-3", records[0].Address)
	assert.Equal(t, "C0002", records[1].CustomerCode)
}

func TestParseCustomerCSV_UTF8WithBOM(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})
	buf.WriteString(customerCSV)

	records, err := ParseCustomerCSV(&buf)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "C0001", records[0].CustomerCode)
}

func TestParseCustomerCSV_ShiftJIS(t *testing.T) {
	sjis, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(customerCSV))
	require.NoError(t, err)

	records, err := ParseCustomerCSV(bytes.NewReader(sjis))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "田中建機", records[0].CustomerName)
	assert.Equal(t, "タナカケンキ", records[0].KanaName)
}

func TestParseCustomerCSV_MissingRequiredHeader(t *testing.T) {
	_, err := ParseCustomerCSV(strings.NewReader("code,name\nC0001,田中建機\n"))
	assert.Error(t, err)
}

func TestParseCustomerCSV_Empty(t *testing.T) {
	_, err := ParseCustomerCSV(strings.NewReader(""))
	assert.Error(t, err)
}
