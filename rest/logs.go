package rest

import (
	"net/http"

	"bitbucket.org/kleinnic74/glplayground/logging"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type logsHandler struct{}

func NewLogsHandler() logsHandler {
	return logsHandler{}
}

func (l logsHandler) InitRoutes(r *mux.Router) {
	r.Handle("/logs", l).Methods("GET")
}

// ServeHTTP writes the recent log lines, newest first
func (l logsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if err := logging.Dump(w, true); err != nil {
		logging.From(r.Context()).Warn("Failed to write logs", zap.Error(err))
	}
}
