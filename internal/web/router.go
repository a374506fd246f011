package web

import (
	"database/sql"
	"net/http"

	"github.com/rs/zerolog/log"

	"resale_ledger/internal/ledger"
	"resale_ledger/internal/records"
	"resale_ledger/internal/store"
)

// Server serves the read-only product dashboard that the sheet's
// hyperlinked product names point at.
type Server struct {
	db     *sql.DB
	ledger *ledger.Service
}

func NewServer(db *sql.DB, svc *ledger.Service) *Server {
	return &Server{db: db, ledger: svc}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("GET /product/{id}", s.handleProduct)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")
	spreadsheetID := r.URL.Query().Get("s")
	if id == "" || spreadsheetID == "" {
		http.Error(w, "missing product id or spreadsheet", http.StatusBadRequest)
		return
	}

	reg, err := store.GetRegistrationBySpreadsheet(ctx, s.db, spreadsheetID)
	if err != nil {
		log.Error().Err(err).Msg("registration lookup failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if reg == nil {
		http.Error(w, "unknown spreadsheet", http.StatusNotFound)
		return
	}

	ref := ledger.SheetRef{SpreadsheetID: reg.SpreadsheetID, SheetName: reg.SheetName}
	inventory, err := s.ledger.ReadInventory(ctx, ref, records.DefaultStartRow)
	if err != nil {
		log.Error().Err(err).Str("spreadsheet_id", spreadsheetID).Msg("inventory read failed")
		http.Error(w, "could not read spreadsheet", http.StatusBadGateway)
		return
	}

	for _, rec := range inventory {
		if rec.ID == id {
			if err := templates.ExecuteTemplate(w, "product.html", struct {
				Record records.InventoryRecord
			}{rec}); err != nil {
				log.Error().Err(err).Msg("template render failed")
			}
			return
		}
	}
	http.Error(w, "product not found", http.StatusNotFound)
}
