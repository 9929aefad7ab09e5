package rest

import (
	"net/http"

	"github.com/gorilla/mux"
)

// StateFunc returns a JSON encodable snapshot of the running demo
type StateFunc func() interface{}

type stateHandler struct {
	state StateFunc
}

func NewStateHandler(state StateFunc) stateHandler {
	return stateHandler{state: state}
}

func (s stateHandler) InitRoutes(r *mux.Router) {
	r.Handle("/state", s).Methods("GET")
}

func (s stateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	Respond(r).WithJSON(w, http.StatusOK, s.state())
}
