package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"log/slog"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ACBRI/veritas.ia/internal/domain"
	"github.com/ACBRI/veritas.ia/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	switch {
	case errors.Is(err, e.ErrRateLimited):
		h.writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "report not found"})
	case errors.Is(err, e.ErrInvalidCoordinates),
		errors.Is(err, e.ErrInvalidBoundingBox),
		errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		// store details stay in the log, not in the response
		l.Error("request failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "temporary failure, try again later"})
	}
}

// clientID identifies the anonymous caller for rate limiting. Reports are
// anonymous, so the remote IP is all we have.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func parseQueryReportsRequest(r *http.Request) (domain.QueryReportsRequest, error) {
	q := r.URL.Query()

	bounds := make([]float64, 4)
	for i, name := range []string{"min_lat", "min_lon", "max_lat", "max_lon"} {
		raw := q.Get(name)
		if raw == "" {
			return domain.QueryReportsRequest{}, fmt.Errorf("missing query parameter %s: %w", name, e.ErrInvalidBoundingBox)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.QueryReportsRequest{}, fmt.Errorf("query parameter %s is not a number: %w", name, e.ErrInvalidBoundingBox)
		}
		bounds[i] = v
	}

	box, err := domain.NewBoundingBox(bounds[0], bounds[1], bounds[2], bounds[3])
	if err != nil {
		return domain.QueryReportsRequest{}, err
	}

	req := domain.QueryReportsRequest{
		Box:        box,
		ActiveOnly: true,
	}

	if raw := q.Get("offense_type"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			return domain.QueryReportsRequest{}, fmt.Errorf("offense_type must be a positive integer: %w", e.ErrInvalidInput)
		}
		req.OffenseType = &id
	}

	if raw := q.Get("active_only"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.QueryReportsRequest{}, fmt.Errorf("active_only must be a boolean: %w", e.ErrInvalidInput)
		}
		req.ActiveOnly = b
	}

	return req, nil
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
