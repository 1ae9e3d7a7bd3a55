package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kirillkom/contract-term-analyzer/internal/config"
	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
	"github.com/kirillkom/contract-term-analyzer/internal/core/ports"
	"github.com/kirillkom/contract-term-analyzer/internal/observability/metrics"
)

const serviceName = "api"

type documentUploader interface {
	Upload(ctx context.Context, filename, mimeType string, docType domain.DocumentType, body io.Reader) (*domain.Document, error)
}

type documentReader interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
}

type comparisonRunner interface {
	CompareDocuments(ctx context.Context, expectedID, contractID string) (*domain.Comparison, error)
	GetComparison(ctx context.Context, id string) (*domain.Comparison, error)
}

type Router struct {
	cfg      config.Config
	ingest   documentUploader
	docs     documentReader
	compare  comparisonRunner
	exporter ports.ReportExporter
	metrics  *metrics.HTTPServerMetrics
}

func NewRouter(
	cfg config.Config,
	ingest documentUploader,
	docs documentReader,
	compare comparisonRunner,
	exporter ports.ReportExporter,
	serverMetrics *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		cfg:      cfg,
		ingest:   ingest,
		docs:     docs,
		compare:  compare,
		exporter: exporter,
		metrics:  serverMetrics,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/api/v1/documents", rt.uploadDocument)
	mux.HandleFunc("/api/v1/documents/", rt.getDocumentByID)
	mux.HandleFunc("/api/v1/comparisons", rt.createComparison)
	mux.HandleFunc("/api/v1/comparisons/", rt.getComparisonSubtree)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = backpressureMiddleware(handler, rt.cfg.APIMaxConcurrent, time.Duration(rt.cfg.APIQueueTimeoutMillis)*time.Millisecond)
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if rt.cfg.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, rt.cfg.MaxUploadBytes)
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	docType := domain.DocumentType(strings.TrimSpace(r.FormValue("type")))

	doc, err := rt.ingest.Upload(
		r.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		docType,
		file,
	)
	if err != nil {
		writeError(w, mapErrorToHTTPStatus(err), err.Error())
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordUpload(serviceName, string(docType))
	}
	writeJSON(w, http.StatusAccepted, doc)
}

func (rt *Router) getDocumentByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/v1/documents/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "document id is required")
		return
	}

	doc, err := rt.docs.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, mapErrorToHTTPStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (rt *Router) createComparison(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		ExpectedDocumentID string `json:"expected_document_id"`
		ContractDocumentID string `json:"contract_document_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.ExpectedDocumentID) == "" || strings.TrimSpace(req.ContractDocumentID) == "" {
		writeError(w, http.StatusBadRequest, "expected_document_id and contract_document_id are required")
		return
	}

	start := time.Now()
	cmp, err := rt.compare.CompareDocuments(r.Context(), req.ExpectedDocumentID, req.ContractDocumentID)
	if rt.metrics != nil {
		riskLevel, alignments := "", 0
		if cmp != nil && cmp.Report != nil {
			riskLevel = string(cmp.Report.RiskLevel)
			alignments = len(cmp.Report.Alignments)
		}
		rt.metrics.RecordComparison(serviceName, riskLevel, alignments, time.Since(start), err)
	}
	if err != nil {
		writeError(w, mapErrorToHTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, cmp)
}

// getComparisonSubtree serves both GET /api/v1/comparisons/{id} and
// GET /api/v1/comparisons/{id}/export.
func (rt *Router) getComparisonSubtree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/comparisons/")
	if id, ok := strings.CutSuffix(rest, "/export"); ok {
		rt.exportComparison(w, r, id)
		return
	}
	if rest == "" || strings.Contains(rest, "/") {
		writeError(w, http.StatusBadRequest, "comparison id is required")
		return
	}

	cmp, err := rt.compare.GetComparison(r.Context(), rest)
	if err != nil {
		writeError(w, mapErrorToHTTPStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

func (rt *Router) exportComparison(w http.ResponseWriter, r *http.Request, id string) {
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "comparison id is required")
		return
	}
	if rt.exporter == nil {
		writeError(w, http.StatusNotImplemented, "report export is not configured")
		return
	}

	cmp, err := rt.compare.GetComparison(r.Context(), id)
	if err != nil {
		writeError(w, mapErrorToHTTPStatus(err), err.Error())
		return
	}

	// Render into memory first so failures still map to a JSON error
	// instead of a truncated download.
	var buf bytes.Buffer
	err = rt.exporter.Export(r.Context(), cmp, &buf)
	if rt.metrics != nil {
		rt.metrics.RecordExport(serviceName, err)
	}
	if err != nil {
		writeError(w, mapErrorToHTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "comparison-"+id+".xlsx"))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
