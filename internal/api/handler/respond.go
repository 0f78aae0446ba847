package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/tuktuki/revenue-metrics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("api: failed to encode response body")
	}
}

// reportDateParam reads the optional ?date= query parameter, falling
// back to yesterday in IST.
func reportDateParam(r *http.Request) (string, error) {
	date := r.URL.Query().Get("date")
	if date == "" {
		return utils.ISTDate(time.Now(), 1), nil
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return "", err
	}
	return date, nil
}
