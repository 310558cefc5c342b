package api

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/zapponejosh/wuyun-api/internal/logger"
	"github.com/zapponejosh/wuyun-api/internal/theme"
	"github.com/zapponejosh/wuyun-api/internal/wuyun"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// pageData is everything the page template reads. The theme arrives as a
// value copied from the store for this request only.
type pageData struct {
	Theme  theme.Theme
	Accent template.CSS
	Year   int
	Error  string

	Profile *ProfileResponse
	Steps   []SeasonalStepResponse
}

// Page handles GET /?year=YYYY and renders the HTML profile page.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	th := h.themes.Current()

	data := pageData{
		Theme:  th,
		Accent: template.CSS(th.AccentColor),
		Year:   h.currentYear(),
	}
	status := http.StatusOK

	raw := r.URL.Query().Get("year")
	year, err := parseYear("year", raw, data.Year)
	var vErr *InputValidationError
	switch {
	case errors.As(err, &vErr):
		status = http.StatusBadRequest
		data.Error = vErr.Error()
	case err != nil:
		logger.Error(ctx, h.logger, "parse year", err)
		status = http.StatusInternalServerError
		data.Error = "Internal server error"
	default:
		data.Year = year
		resp := wuyun.NewReport(year, h.compute(year))
		data.Profile = &resp
	}

	// The reference table is input-independent; a store failure only hides it.
	steps, err := h.store.ListSeasonalSteps(ctx)
	if err != nil {
		logger.Error(ctx, h.logger, "failed to list seasonal steps", err)
	} else {
		data.Steps = newSeasonalStepResponses(steps)
	}

	if err := renderPage(w, status, data); err != nil {
		logger.FromContext(ctx, h.logger).Error("render page", slog.Any("error", err))
	}
}

// renderPage buffers the template so a failed render still yields a clean 500.
func renderPage(w http.ResponseWriter, status int, data pageData) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
