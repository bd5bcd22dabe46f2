// C:\Users\kouji\デスクトップ\KRS\document\pdf.go
package document

import (
	"fmt"
	"io"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// RenderPDF はHTMLをヘッドレスChromiumで開いてA4のPDFに印刷します。
// Leakless(false) はセキュリティソフト対策。
func RenderPDF(htmlContent string) ([]byte, error) {
	u, err := launcher.New().
		Headless(true).
		Leakless(false).
		Launch()
	if err != nil {
		return nil, fmt.Errorf("ブラウザの起動に失敗: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("ブラウザへの接続に失敗: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("ページの作成に失敗: %w", err)
	}

	if err := page.SetDocumentContent(htmlContent); err != nil {
		return nil, fmt.Errorf("帳票HTMLの読み込みに失敗: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("帳票のレンダリング待機に失敗: %w", err)
	}

	// A4 (インチ指定)
	paperWidth := 8.27
	paperHeight := 11.69

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      &paperWidth,
		PaperHeight:     &paperHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("PDF印刷に失敗: %w", err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("PDFデータの読み取りに失敗: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("PDFデータが空です")
	}
	return data, nil
}
