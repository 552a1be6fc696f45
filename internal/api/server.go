package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sara/internal/config"
	"sara/internal/corpus"
	"sara/internal/providers"
	"sara/internal/util"

	"github.com/google/uuid"
)

// Server serves the read-only researcher corpus and proxies completion
// requests to the injected LLM capability. The corpus is a snapshot taken
// at startup; handlers never mutate it.
type Server struct {
	cfg  config.Config
	corp corpus.Corpus
	llm  providers.Completer
}

func NewServer(cfg config.Config, corp corpus.Corpus, llm providers.Completer) *Server {
	return &Server{cfg: cfg, corp: corp, llm: llm}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/scientists", s.handleScientists)
	mux.HandleFunc("/publications", s.handlePublications)
	mux.HandleFunc("/request", s.handleRequest)
	mux.HandleFunc("/sara_request", s.handleSaraRequest)
	mux.HandleFunc("/query", s.handleQuery)
	return withCORS(withRequestLog(mux))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeErr(w, http.StatusNotFound, fmt.Errorf("not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "sara researcher api is running",
		"researchers": len(s.corp),
	})
}

func (s *Server) handleScientists(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	params := r.URL.Query()
	q := corpus.Query{
		Affiliation:        params.Get("affiliation"),
		Institution:        params.Get("institution"),
		Keyword:            params.Get("keyword"),
		OrcidID:            params.Get("orcid_id"),
		FullName:           params.Get("full_name"),
		PublicationKeyword: params.Get("publication_keyword"),
	}
	if raw := params.Get("started_after"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			writeErr(w, http.StatusBadRequest, fmt.Errorf("started_after must be an integer year"))
			return
		}
		q.StartedAfter = &year
	}
	writeJSON(w, http.StatusOK, s.corp.Filter(q))
}

func (s *Server) handlePublications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	pubs, err := s.corp.Publications(r.URL.Query().Get("full_name"), r.URL.Query().Get("orcid_id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoQuery):
			writeErr(w, http.StatusBadRequest, err)
		case errors.Is(err, util.ErrNoMatch):
			writeErr(w, http.StatusNotFound, err)
		default:
			writeErr(w, http.StatusInternalServerError, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, pubs)
}

type requestBody struct {
	Request string `json:"request"`
}

func (s *Server) handleRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	var req requestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	if strings.TrimSpace(req.Request) == "" {
		writeErr(w, http.StatusBadRequest, util.ErrEmptyRequest)
		return
	}
	resp, info, err := s.llm.Complete(r.Context(), providers.CompletionRequest{Prompt: req.Request})
	if err != nil {
		log.Printf("llm: %s completion failed (%s): %v", info.Name, providers.ClassifyError(err), err)
		writeErr(w, http.StatusBadGateway, err)
		return
	}
	log.Printf("llm: %s/%s answered %q", info.Name, info.Model, util.Snippet(resp.Text, 80))
	writeJSON(w, http.StatusOK, map[string]any{"response": resp.Text})
}

// handleSaraRequest is the stub counterpart of handleRequest: same body
// shape and empty-check, but the request text is echoed back and no
// provider is ever called.
func (s *Server) handleSaraRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	var req requestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	if strings.TrimSpace(req.Request) == "" {
		writeErr(w, http.StatusBadRequest, util.ErrEmptyRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"response": req.Request})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	var req struct {
		Prompt      string   `json:"prompt"`
		Model       string   `json:"model"`
		Temperature *float64 `json:"temperature"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeErr(w, http.StatusBadRequest, util.ErrEmptyRequest)
		return
	}
	resp, info, err := s.llm.Complete(r.Context(), providers.CompletionRequest{
		Prompt:      req.Prompt,
		Model:       req.Model,
		Temperature: req.Temperature,
	})
	if err != nil {
		log.Printf("llm: %s completion failed (%s): %v", info.Name, providers.ClassifyError(err), err)
		writeErr(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"response": resp.Text})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	apiErr := toAPIError(code, err)
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"code":    apiErr.Code,
			"message": apiErr.Message,
		},
	})
}

type apiError struct {
	Code    string
	Message string
}

// toAPIError picks a machine-distinguishable code per failure category.
// Upstream (502) errors carry the raw provider description; client errors
// carry the validation message.
func toAPIError(status int, err error) apiError {
	msg := "Request failed."
	if err != nil {
		msg = err.Error()
	}
	switch status {
	case http.StatusBadRequest:
		return apiError{Code: "SARA-API-4001", Message: msg}
	case http.StatusNotFound:
		return apiError{Code: "SARA-API-4004", Message: msg}
	case http.StatusMethodNotAllowed:
		return apiError{Code: "SARA-API-4005", Message: "This endpoint does not support the requested method."}
	case http.StatusBadGateway:
		return apiError{Code: "SARA-LLM-5020", Message: msg}
	default:
		return apiError{Code: "SARA-API-5000", Message: "Internal server error. Please retry or check service logs."}
	}
}

func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()[:8]
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("http: %s %s %s %s", id, r.Method, r.URL.Path, time.Since(start))
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
