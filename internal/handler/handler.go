// Package handler is the thin HTTP layer shuttling JSON between the editing
// UI and the core: every route decodes a full document, calls a pure
// function, and encodes the result.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsletter-studio/internal/codec"
	"newsletter-studio/internal/model"
	"newsletter-studio/internal/plaintext"
	"newsletter-studio/internal/render"
	"newsletter-studio/internal/report"
	"newsletter-studio/internal/storage"
)

// Handler wires the core functions to HTTP routes. Backups may be nil when
// no Redis is configured; the backup routes then answer 503.
type Handler struct {
	Backups *storage.BackupStore
	Logger  *slog.Logger
}

func New(backups *storage.BackupStore, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Backups: backups, Logger: logger}
}

// Routes builds the API router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/api/preview", h.preview)
	r.Post("/api/plaintext", h.plainText)
	r.Post("/api/export", h.export)
	r.Post("/api/import", h.importDoc)
	r.Post("/api/stats", h.stats)
	r.Post("/api/validate", h.validate)
	r.Get("/api/defaults/{type}", h.defaults)
	r.Get("/api/backup", h.backupGet)
	r.Put("/api/backup", h.backupPut)
	r.Delete("/api/backup", h.backupDelete)
	return r
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

// decodeDocument reads a full newsletter document from the request body and
// clamps its container width. The write boundary is the only place clamping
// happens; renderers trust stored values.
func (h *Handler) decodeDocument(w http.ResponseWriter, r *http.Request) (*model.Newsletter, bool) {
	var n model.Newsletter
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid document: "+err.Error())
		return nil, false
	}
	n.Settings.ContainerWidth = model.ClampContainerWidth(n.Settings.ContainerWidth)
	return &n, true
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	n, ok := h.decodeDocument(w, r)
	if !ok {
		return
	}
	html, err := render.FullEmail(n)
	if err != nil {
		h.Logger.Error("preview render failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"success": true, "html": html})
}

func (h *Handler) plainText(w http.ResponseWriter, r *http.Request) {
	n, ok := h.decodeDocument(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"success": true, "text": plaintext.Generate(n)})
}

type exportRequest struct {
	model.Newsletter
	ExportOptions struct {
		Minify    bool `json:"minify"`
		StripJSON bool `json:"strip_json"`
	} `json:"export_options"`
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid document: "+err.Error())
		return
	}
	req.Settings.ContainerWidth = model.ClampContainerWidth(req.Settings.ContainerWidth)

	res, err := codec.Export(&req.Newsletter, codec.Options{
		Minify:            req.ExportOptions.Minify,
		StripEmbeddedData: req.ExportOptions.StripJSON,
	})
	if err != nil {
		h.Logger.Error("export failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res.ClippingRisk {
		h.Logger.Warn("export exceeds clipping threshold",
			"size", res.Size, "threshold", codec.GmailClipThreshold)
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"html":          res.HTML,
		"filename":      res.Filename,
		"size":          res.Size,
		"clipping_risk": res.ClippingRisk,
	})
}

type importRequest struct {
	HTML string `json:"html"`
}

func (h *Handler) importDoc(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	n, err := codec.Import(req.HTML)
	if err != nil {
		switch {
		case errors.Is(err, codec.ErrNoEmbeddedData):
			h.writeError(w, http.StatusBadRequest, "No embedded data found. This HTML was not exported from this editor.")
		case errors.Is(err, codec.ErrCorruptedData):
			h.writeError(w, http.StatusBadRequest, "Corrupted embedded data: "+err.Error())
		default:
			h.Logger.Error("import failed", "error", err)
			h.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": n})
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	n, ok := h.decodeDocument(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"success": true, "stats": report.Collect(n)})
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	n, ok := h.decodeDocument(w, r)
	if !ok {
		return
	}
	res := report.Validate(n)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"issues":   res.Issues,
		"total":    res.Total,
		"errors":   res.Errors,
		"warnings": res.Warnings,
	})
}

func (h *Handler) defaults(w http.ResponseWriter, r *http.Request) {
	t := model.TemplateType(chi.URLParam(r, "type"))
	n, err := model.DefaultNewsletter(t)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, n)
}

func (h *Handler) backupGet(w http.ResponseWriter, r *http.Request) {
	if h.Backups == nil {
		h.writeError(w, http.StatusServiceUnavailable, "backup store not configured")
		return
	}
	backup, err := h.Backups.Load(r.Context())
	if err != nil {
		h.Logger.Error("backup load failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if backup == nil {
		h.writeError(w, http.StatusNotFound, "no backup available")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"saved_at": backup.SavedAt,
		"data":     backup.Data,
	})
}

func (h *Handler) backupPut(w http.ResponseWriter, r *http.Request) {
	if h.Backups == nil {
		h.writeError(w, http.StatusServiceUnavailable, "backup store not configured")
		return
	}
	n, ok := h.decodeDocument(w, r)
	if !ok {
		return
	}
	if err := h.Backups.Save(r.Context(), n); err != nil {
		h.Logger.Error("backup save failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) backupDelete(w http.ResponseWriter, r *http.Request) {
	if h.Backups == nil {
		h.writeError(w, http.StatusServiceUnavailable, "backup store not configured")
		return
	}
	if err := h.Backups.Clear(r.Context()); err != nil {
		h.Logger.Error("backup clear failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
