package handler

import (
	"context"
	"log/slog"
	"net/http"
	"os"
)

// StoreDiagnostics is the slice of the database client the diagnostic
// endpoint needs.
type StoreDiagnostics interface {
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}

type DiagnosticHandler struct {
	store  StoreDiagnostics
	logger *slog.Logger
}

func NewDiagnosticHandler(store StoreDiagnostics, l *slog.Logger) *DiagnosticHandler {
	if l == nil {
		panic("logger cannot be nil")
	}
	return &DiagnosticHandler{
		store:  store,
		logger: l.With("component", "DiagnosticHandler"),
	}
}

// Liveness handles GET /
func (h *DiagnosticHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Loan Tracker API is running",
	})
}

// Diagnostics handles GET /test. It reports connectivity and environment
// findings and always answers 200 so it stays usable when the store is
// down.
func (h *DiagnosticHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	result := map[string]interface{}{
		"status": "ok",
		"environment": map[string]bool{
			"DATABASE_URL_set":  os.Getenv("DATABASE_URL") != "",
			"DATABASE_NAME_set": os.Getenv("DATABASE_NAME") != "",
		},
	}

	if h.store == nil {
		result["database"] = "not configured"
		respondJSON(w, http.StatusOK, result)
		return
	}

	if err := h.store.Ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "Diagnostic ping failed", slog.Any("error", err))
		result["database"] = "unreachable"
		result["database_error"] = err.Error()
		respondJSON(w, http.StatusOK, result)
		return
	}
	result["database"] = "connected"

	names, err := h.store.CollectionNames(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "Diagnostic collection listing failed", slog.Any("error", err))
		result["collections_error"] = err.Error()
	} else {
		if len(names) > 10 {
			names = names[:10]
		}
		result["collections"] = names
	}

	respondJSON(w, http.StatusOK, result)
}
