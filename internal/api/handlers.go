package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/wuyun-api/internal/config"
	"github.com/zapponejosh/wuyun-api/internal/database"
	"github.com/zapponejosh/wuyun-api/internal/logger"
	"github.com/zapponejosh/wuyun-api/internal/metrics"
	"github.com/zapponejosh/wuyun-api/internal/theme"
	"github.com/zapponejosh/wuyun-api/internal/wuyun"
)

// ReferenceStore serves the static reference tables.
type ReferenceStore interface {
	Health(ctx context.Context) error
	ListSeasonalSteps(ctx context.Context) ([]database.SeasonalStep, error)
	GetSeasonalStep(ctx context.Context, step int) (*database.SeasonalStep, error)
}

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	store   ReferenceStore
	themes  *theme.Store
	metrics *metrics.Metrics
	cfg     *config.Config
	logger  *slog.Logger
	now     func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store ReferenceStore, themes *theme.Store, m *metrics.Metrics, cfg *config.Config, log *slog.Logger) *Handlers {
	return &Handlers{
		store:   store,
		themes:  themes,
		metrics: m,
		cfg:     cfg,
		logger:  log,
		now:     time.Now,
	}
}

// currentYear is the fallback when a request names no year.
func (h *Handlers) currentYear() int {
	return h.now().Year()
}

// compute wraps wuyun.Compute with instrumentation.
func (h *Handlers) compute(year int) wuyun.Profile {
	p := wuyun.Compute(year)
	if h.metrics != nil {
		h.metrics.ObserveProfile(p)
	}
	return p
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.store.Health(ctx); err != nil {
		logger.FromContext(ctx, h.logger).Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetProfile handles GET /api/v1/profile?year=YYYY
func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	h.writeProfile(w, r, r.URL.Query().Get("year"))
}

// GetProfileByYear handles GET /api/v1/profile/{year}
func (h *Handlers) GetProfileByYear(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "year")
	if raw == "" {
		WriteBadRequest(w, "Year parameter is required")
		return
	}
	h.writeProfile(w, r, raw)
}

func (h *Handlers) writeProfile(w http.ResponseWriter, r *http.Request, raw string) {
	year, err := parseYear("year", raw, h.currentYear())
	if err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	report := wuyun.NewReport(year, h.compute(year))
	if strings.TrimSpace(raw) == "" {
		WriteSuccess(w, report)
		return
	}
	WriteImmutable(w, report)
}

// GetCycle handles GET /api/v1/cycle?start=YYYY&count=N
func (h *Handlers) GetCycle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := parseYear("start", q.Get("start"), h.currentYear())
	if err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	count, err := parseCount(q.Get("count"))
	if err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	if err := checkSpan(start, count); err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	profiles := make([]ProfileResponse, 0, count)
	for i := 0; i < count; i++ {
		profiles = append(profiles, wuyun.NewReport(start+i, h.compute(start+i)))
	}

	resp := CycleResponse{
		Start:    start,
		Count:    count,
		Profiles: profiles,
	}
	if strings.TrimSpace(q.Get("start")) == "" {
		WriteSuccess(w, resp)
		return
	}
	WriteImmutable(w, resp)
}

// GetSeasonalSteps handles GET /api/v1/reference/steps
func (h *Handlers) GetSeasonalSteps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	steps, err := h.store.ListSeasonalSteps(ctx)
	if err != nil {
		logger.Error(ctx, h.logger, "failed to list seasonal steps", err)
		WriteInternalError(w, "Failed to retrieve reference table")
		return
	}

	WriteImmutable(w, newSeasonalStepResponses(steps))
}

// GetSeasonalStep handles GET /api/v1/reference/steps/{step}
func (h *Handlers) GetSeasonalStep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := chi.URLParam(r, "step")
	n, err := strconv.Atoi(raw)
	if err != nil {
		h.writeValidationError(w, r, &InputValidationError{Field: "step", Value: raw, Reason: "must be an integer"})
		return
	}

	step, err := h.store.GetSeasonalStep(ctx, n)
	if err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, fmt.Sprintf("No seasonal step %d; steps run from 1 to 6", n))
			return
		}
		logger.Error(ctx, h.logger, "failed to get seasonal step", err, slog.Int("step", n))
		WriteInternalError(w, "Failed to retrieve reference table")
		return
	}

	WriteImmutable(w, newSeasonalStepResponse(*step))
}

// NotFound handles unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteNotFound(w, "Route not found: "+r.URL.Path)
}

func (h *Handlers) writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *InputValidationError
	if errors.As(err, &vErr) {
		logger.FromContext(r.Context(), h.logger).Debug("rejected input",
			slog.String("field", vErr.Field),
			slog.String("value", vErr.Value),
		)
		WriteBadRequest(w, vErr.Error())
		return
	}

	logger.Error(r.Context(), h.logger, "unexpected validation failure", err)
	WriteInternalError(w, "Internal server error")
}
