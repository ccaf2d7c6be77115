package controller

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"surfsup-server/internal/climate"
	"surfsup-server/internal/modules/climate/views"
	"surfsup-server/internal/utils"
)

const (
	msgInvalidStart = "Please provide a valid start date format 'YYYY-MM-DD'."
	msgInvalidEnd   = "Please provide a valid end date format 'YYYY-MM-DD'."
	msgNoData       = "No temperature data found for the given date range."
	msgEmptyDataset = "No observations are available."
	msgInternal     = "Internal server error."
)

func (c *climateControllerImpl) handleHome(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := views.RenderHome(&buf, views.NewHomeData(apiPrefix)); err != nil {
		slog.Error("home template render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("home: write response failed", "error", err)
	}
}

func (c *climateControllerImpl) handlePrecipitation(w http.ResponseWriter, r *http.Request) {
	out, err := c.service.Precipitation(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (c *climateControllerImpl) handleStations(w http.ResponseWriter, r *http.Request) {
	out, err := c.service.Stations(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (c *climateControllerImpl) handleTobs(w http.ResponseWriter, r *http.Request) {
	out, err := c.service.TemperatureObservations(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (c *climateControllerImpl) handleLatestDate(w http.ResponseWriter, r *http.Request) {
	out, err := c.service.LatestDate(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

// handleTemperatureStats serves both /{start} and /{start}/{end}.
func (c *climateControllerImpl) handleTemperatureStats(w http.ResponseWriter, r *http.Request) {
	start := r.PathValue("start")
	var end *string
	if e := r.PathValue("end"); e != "" {
		end = &e
	}

	out, err := c.service.TemperatureStats(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

// writeServiceError maps service errors to status codes. Caller mistakes are
// 4xx and not logged above debug; everything else is a 500 and logged.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var dateErr *climate.DateError
	switch {
	case errors.As(err, &dateErr):
		slog.Debug("invalid date in request", "path", r.URL.Path, "field", dateErr.Field, "value", dateErr.Value)
		if dateErr.Field == "end" {
			utils.WriteError(w, http.StatusBadRequest, msgInvalidEnd)
			return
		}
		utils.WriteError(w, http.StatusBadRequest, msgInvalidStart)
	case errors.Is(err, climate.ErrNoDataFound):
		utils.WriteError(w, http.StatusNotFound, msgNoData)
	case errors.Is(err, climate.ErrEmptyDataset):
		slog.Error("observation dataset is empty", "path", r.URL.Path)
		utils.WriteError(w, http.StatusInternalServerError, msgEmptyDataset)
	default:
		slog.Error("climate request failed", "path", r.URL.Path, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, msgInternal)
	}
}
