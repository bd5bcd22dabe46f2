// C:\Users\kouji\デスクトップ\KRS\document\handler.go
package document

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"krs/config"
	"krs/database"
	"krs/model"

	"github.com/jmoiron/sqlx"
)

var pdfFilenames = map[string]string{
	model.DocumentInvoice:   "Invoice",
	model.DocumentDelivery:  "Delivery",
	model.DocumentQuotation: "Quotation",
}

// parseDocumentPath は /api/projects/{id}/pdf/{type} 形式のパスを分解します。
func parseDocumentPath(path, prefix, middle string) (int, string, error) {
	rest := strings.TrimPrefix(path, prefix)
	parts := strings.Split(rest, "/")
	if len(parts) != 3 || parts[1] != middle {
		return 0, "", fmt.Errorf("invalid path: %s", path)
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil || id <= 0 {
		return 0, "", fmt.Errorf("invalid project id: %s", parts[0])
	}
	return id, parts[2], nil
}

// buildForProject は案件を取得して帳票レイアウトを組み立てます。
// 案件が存在しない場合は (nil, nil) を返します (ハンドラ側で404)。
func buildForProject(db *sqlx.DB, projectID int, kind string) (*model.DocumentLayout, error) {
	p, err := database.GetProjectByID(db, projectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	details, err := database.GetProjectDetails(db, projectID)
	if err != nil {
		return nil, err
	}
	customer, err := database.GetCustomerByCode(db, p.CustomerCode)
	if err != nil {
		return nil, err
	}

	issueDate := time.Now().Format("2006-01-02")
	return Build(kind, p, customer, details, config.GetConfig(), issueDate)
}

// ProjectPDFHandler は帳票PDFをストリーム返却します。
// GET /api/projects/{id}/pdf/{invoice|delivery|quotation}
func ProjectPDFHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, kind, err := parseDocumentPath(r.URL.Path, "/api/projects/", "pdf")
		if err != nil || !ValidKind(kind) {
			http.Error(w, "Invalid document request", http.StatusBadRequest)
			return
		}

		layout, err := buildForProject(db, projectID, kind)
		if err != nil {
			log.Printf("Error building %s for project %d: %v", kind, projectID, err)
			http.Error(w, "Failed to build document", http.StatusInternalServerError)
			return
		}
		if layout == nil {
			http.NotFound(w, r)
			return
		}

		pdfData, err := RenderPDF(RenderHTML(layout))
		if err != nil {
			log.Printf("Error rendering %s PDF for project %d: %v", kind, projectID, err)
			http.Error(w, "Failed to render PDF", http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("%s_%d.pdf", pdfFilenames[kind], projectID)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		if _, err := w.Write(pdfData); err != nil {
			log.Printf("Error writing PDF response: %v", err)
		}
	}
}

// ProjectDocumentHandler は帳票レイアウトをJSONで返します (画面プレビュー用)。
// GET /api/projects/{id}/document/{invoice|delivery|quotation}
func ProjectDocumentHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, kind, err := parseDocumentPath(r.URL.Path, "/api/projects/", "document")
		if err != nil || !ValidKind(kind) {
			http.Error(w, "Invalid document request", http.StatusBadRequest)
			return
		}

		layout, err := buildForProject(db, projectID, kind)
		if err != nil {
			log.Printf("Error building %s for project %d: %v", kind, projectID, err)
			http.Error(w, "Failed to build document", http.StatusInternalServerError)
			return
		}
		if layout == nil {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(layout)
	}
}
