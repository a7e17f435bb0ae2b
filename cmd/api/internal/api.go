package internal

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/quantfox/stockpulse/Internal/analysis"
)

type API struct {
	Analyzer *analysis.Analyzer

	// MaxTopN caps the n query parameter at the size of the symbol universe.
	MaxTopN int
}

func (api *API) HandleRoot(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome to the Stock Analysis API",
	})
}

func (api *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    "healthy",
	})
}

// HandleAnalyze runs one full analysis and returns the result. An optional
// n query parameter overrides the configured top-N. Any provider or
// combination failure returns a 500; a partial result is never written.
func (api *API) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var (
		result interface{}
		err    error
	)

	if raw := r.URL.Query().Get("n"); raw != "" {
		n, parseErr := strconv.Atoi(raw)
		if parseErr != nil || n < 1 || n > api.MaxTopN {
			WriteError(w, http.StatusBadRequest, "n must be an integer between 1 and "+strconv.Itoa(api.MaxTopN))
			return
		}
		result, err = api.Analyzer.RunTopN(r.Context(), n)
	} else {
		result, err = api.Analyzer.Run(r.Context())
	}

	if err != nil {
		logrus.WithError(err).Error("Analysis run failed")
		WriteError(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, result)
}
