// C:\Users\kouji\デスクトップ\KRS\routes.go
package main

import (
	"net/http"
	"strings"

	"krs/customer"
	"krs/dashboard"
	"krs/document"
	"krs/machine"
	"krs/product"
	"krs/project"

	"github.com/jmoiron/sqlx"
)

func SetupRoutes(mux *http.ServeMux, dbConn *sqlx.DB) {

	mux.HandleFunc("/api/customers", customer.ListCustomersHandler(dbConn))
	mux.HandleFunc("/api/customers/create", customer.CreateCustomerHandler(dbConn))
	mux.HandleFunc("/api/customers/update", customer.UpdateCustomerHandler(dbConn))
	mux.HandleFunc("/api/customers/delete/", customer.DeleteCustomerHandler(dbConn))
	mux.HandleFunc("/api/customers/import", customer.ImportCustomersHandler(dbConn))

	mux.HandleFunc("/api/machines", machine.ListMachinesHandler(dbConn))
	mux.HandleFunc("/api/machines/save", machine.SaveMachineHandler(dbConn))
	mux.HandleFunc("/api/machines/delete/", machine.DeleteMachineHandler(dbConn))

	mux.HandleFunc("/api/products", product.ListProductsHandler(dbConn))
	mux.HandleFunc("/api/products/save", product.SaveProductHandler(dbConn))
	mux.HandleFunc("/api/products/delete/", product.DeleteProductHandler(dbConn))

	mux.HandleFunc("/api/projects", project.ListProjectsHandler(dbConn))
	mux.HandleFunc("/api/projects/save", project.SaveProjectHandler(dbConn))
	mux.HandleFunc("/api/projects/get/", project.GetProjectHandler(dbConn))
	mux.HandleFunc("/api/projects/delete/", project.DeleteProjectHandler(dbConn))
	mux.HandleFunc("/api/projects/complete/", project.CompleteProjectHandler(dbConn))

	// /api/projects/{id}/pdf/{type} と /api/projects/{id}/document/{type}
	pdfHandler := document.ProjectPDFHandler(dbConn)
	layoutHandler := document.ProjectDocumentHandler(dbConn)
	mux.HandleFunc("/api/projects/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/pdf/"):
			pdfHandler(w, r)
		case strings.Contains(r.URL.Path, "/document/"):
			layoutHandler(w, r)
		default:
			http.NotFound(w, r)
		}
	})

	mux.HandleFunc("/api/dashboard/sales", dashboard.GetSalesSummaryHandler(dbConn))
	mux.HandleFunc("/api/dashboard/details", dashboard.GetSalesDetailsHandler(dbConn))
	mux.HandleFunc("/api/dashboard/export_xlsx", dashboard.ExportXlsxHandler(dbConn))

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
}
