// Package api pkg/api/server.go exposes the adapter's operational
// surface over HTTP: current status, status history and the record
// operations.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	httpx "github.com/opsbridge/snbridge/pkg/http"
	"github.com/opsbridge/snbridge/pkg/logger"
	"github.com/opsbridge/snbridge/pkg/servicenow"
)

const defaultHistoryLimit = 100

// APIServer routes HTTP requests to the adapter.
type APIServer struct {
	svc     AdapterService
	history HistoryProvider
	log     logger.Logger
	router  *mux.Router
}

// NewAPIServer creates the HTTP API. history may be nil when no
// history store is configured.
func NewAPIServer(svc AdapterService, history HistoryProvider, log logger.Logger) *APIServer {
	s := &APIServer{
		svc:     svc,
		history: history,
		log:     log,
		router:  mux.NewRouter(),
	}
	s.setupRoutes()

	return s
}

func (s *APIServer) setupRoutes() {
	s.router.Use(func(next http.Handler) http.Handler {
		return httpx.CommonMiddleware(s.log, next)
	})

	s.router.HandleFunc("/api/status", s.getStatus).Methods("GET")
	s.router.HandleFunc("/api/status/history", s.getStatusHistory).Methods("GET")
	s.router.HandleFunc("/api/records", s.getRecords).Methods("GET")
	s.router.HandleFunc("/api/records", s.postRecord).Methods("POST")
}

func (s *APIServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *APIServer) getStatus(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.svc.LastStatus())
}

func (s *APIServer) getStatusHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		http.Error(w, "status history is not configured", http.StatusNotFound)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		limit = parsed
	}

	points, err := s.history.GetStatusHistory(s.svc.ID(), limit)
	if err != nil {
		s.log.Error("%s: history query failed: %v", s.svc.ID(), err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, points)
}

func (s *APIServer) getRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.svc.GetRecords(r.Context())
	if err != nil {
		s.log.Error("%s: record retrieval failed: %v", s.svc.ID(), err)
		http.Error(w, err.Error(), http.StatusBadGateway)

		return
	}

	s.writeJSON(w, http.StatusOK, records)
}

func (s *APIServer) postRecord(w http.ResponseWriter, r *http.Request) {
	var fields servicenow.Record
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	record, err := s.svc.PostRecord(r.Context(), fields)
	if err != nil {
		s.log.Error("%s: record creation failed: %v", s.svc.ID(), err)
		http.Error(w, err.Error(), http.StatusBadGateway)

		return
	}

	s.writeJSON(w, http.StatusCreated, record)
}

func (s *APIServer) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response: %v", err)
	}
}
