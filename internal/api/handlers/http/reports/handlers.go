package reports

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ACBRI/veritas.ia/internal/domain"
	"github.com/ACBRI/veritas.ia/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ReportService interface {
	Submit(ctx context.Context, clientID string, req domain.CreateReportRequest) (*domain.Report, error)
	Confirm(ctx context.Context, clientID string, reportID uuid.UUID) (*domain.Report, error)
	Query(ctx context.Context, req domain.QueryReportsRequest) ([]*domain.Report, error)
}

type CatalogService interface {
	ListOffenseTypes(ctx context.Context) ([]*domain.OffenseType, error)
}

type Handler struct {
	logger  *slog.Logger
	Reports ReportService
	Catalog CatalogService
}

func NewHandler(logger *slog.Logger, reports ReportService, catalog CatalogService) *Handler {
	return &Handler{
		logger:  logger,
		Reports: reports,
		Catalog: catalog,
	}
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	report, err := h.Reports.Submit(r.Context(), clientID(r), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report created", slog.String("id", report.ID.String()))
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) ConfirmReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	report, err := h.Reports.Confirm(r.Context(), clientID(r), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domain.ConfirmReportResponse{
		Status:            "success",
		ConfirmationCount: report.ConfirmationCount,
	})
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	req, err := parseQueryReportsRequest(r)
	if err != nil {
		l.Warn("bad query", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	reports, err := h.Reports.Query(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, reports)
}

func (h *Handler) ListOffenseTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Catalog.ListOffenseTypes(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, types)
}
