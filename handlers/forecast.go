// handlers/forecast.go
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"agromate_be/pkg/forecast"
)

type predictReq struct {
	Date string `json:"date"`
}

// predictDateLayouts are the accepted query-date forms, most specific
// first.
var predictDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parsePredictDate(s string) (time.Time, bool) {
	for _, layout := range predictDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Predict serves the demand forecast for a query date. The model is loaded
// once at bootstrap and passed in by reference; the handler never mutates
// it.
func Predict(model *forecast.Model) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req predictReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		date, ok := parsePredictDate(req.Date)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD")
			return
		}
		respondJSON(w, http.StatusOK, model.PredictNamed(date))
	}
}
