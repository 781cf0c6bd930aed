package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"healthsync-backend/internal/dashboard"
)

// DashboardHandler renders the patient vitals dashboard
type DashboardHandler struct {
	reader *dashboard.Reader
	logger zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(reader *dashboard.Reader, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{reader: reader, logger: logger}
}

// vitalSeries is the chart data embedded into the page as JSON
type vitalSeries struct {
	Labels           []string   `json:"labels"`
	HeartRate        []*float64 `json:"heart_rate"`
	Systolic         []*float64 `json:"systolic"`
	Diastolic        []*float64 `json:"diastolic"`
	Temperature      []*float64 `json:"temperature"`
	OxygenSaturation []*float64 `json:"oxygen_saturation"`
	RespiratoryRate  []*float64 `json:"respiratory_rate"`
}

// dashboardData is the template payload. When Error is set the page
// renders only the inline error message.
type dashboardData struct {
	Error               string
	Name                string
	Gender              string
	Age                 int
	BloodGroup          string
	LatestHeartRate     string
	LatestBloodPressure string
	LatestSpO2          string
	Series              vitalSeries
}

// View renders the dashboard for the patient identified by the token
// query parameter. Unlike the JSON API, errors here are rendered inline
// in the page since the dashboard has no JSON channel.
// @Summary Patient vitals dashboard
// @Description Server-rendered dashboard with vitals history charts, authenticated by a token query parameter
// @Tags dashboard
// @Produce html
// @Param token query string true "Access token"
// @Success 200 {string} string "Rendered dashboard"
// @Router /dashboard [get]
func (h *DashboardHandler) View(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	token := r.URL.Query().Get("token")

	view, err := h.reader.Load(r.Context(), token)
	if err != nil {
		h.renderError(w, err)
		return
	}

	series := vitalSeries{}
	for _, v := range view.Readings {
		series.Labels = append(series.Labels, v.RecordedAt.Format(time.RFC3339))
		series.HeartRate = append(series.HeartRate, v.HeartRateBPM)
		series.Systolic = append(series.Systolic, v.SystolicBPmmHg)
		series.Diastolic = append(series.Diastolic, v.DiastolicBPmmHg)
		series.Temperature = append(series.Temperature, v.BodyTemperatureC)
		series.OxygenSaturation = append(series.OxygenSaturation, v.OxygenSaturation)
		series.RespiratoryRate = append(series.RespiratoryRate, v.RespiratoryRate)
	}

	data := dashboardData{
		Name:                view.Patient.FullName,
		Gender:              orDash(view.Patient.Gender),
		Age:                 view.AgeYears,
		BloodGroup:          orDash(view.Patient.BloodGroup),
		LatestHeartRate:     formatValue(view.Latest.HeartRateBPM, ""),
		LatestBloodPressure: formatBP(view.Latest.SystolicBPmmHg, view.Latest.DiastolicBPmmHg),
		LatestSpO2:          formatValue(view.Latest.OxygenSaturation, "%"),
		Series:              series,
	}

	h.render(w, data)
}

func (h *DashboardHandler) renderError(w http.ResponseWriter, err error) {
	msg := "No data found for this patient."
	switch {
	case errors.Is(err, dashboard.ErrNoToken):
		msg = "No token provided. Please log in."
	case errors.Is(err, dashboard.ErrInvalidToken):
		msg = "Invalid or expired token."
	case errors.Is(err, dashboard.ErrNoData):
		// default message
	default:
		h.logger.Error().Err(err).Msg("dashboard load failed")
		msg = "Could not load dashboard data."
	}
	h.render(w, dashboardData{Error: msg})
}

func (h *DashboardHandler) render(w http.ResponseWriter, data dashboardData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboard.Page.Execute(w, data); err != nil {
		h.logger.Error().Err(err).Msg("dashboard render failed")
	}
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func formatValue(v *float64, suffix string) string {
	if v == nil {
		return "-"
	}
	return trimFloat(*v) + suffix
}

func formatBP(sys, dia *float64) string {
	return formatValue(sys, "") + " / " + formatValue(dia, "")
}

func trimFloat(v float64) string {
	return stripTrailingZeros(fmt.Sprintf("%.1f", v))
}

func stripTrailingZeros(s string) string {
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
