package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/correagss/personal-control-finance/internal/middleware"
	"github.com/correagss/personal-control-finance/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// NewRouter mounts all routes. Transaction and balance routes sit behind the
// auth middleware; registration, login and the readiness probe are public.
func NewRouter(h *Handler, svc *service.Service) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/healthz/ready", h.Ready).Methods("GET")
	r.HandleFunc("/registrar", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.Auth(svc))
	authRouter.HandleFunc("/transacoes/", h.CreateTransacao).Methods("POST")
	authRouter.HandleFunc("/transacoes/", h.ListTransacoes).Methods("GET")
	authRouter.HandleFunc("/transacoes/{id:[0-9]+}", h.GetTransacao).Methods("GET")
	authRouter.HandleFunc("/transacoes/{id:[0-9]+}", h.UpdateTransacao).Methods("PUT")
	authRouter.HandleFunc("/transacoes/{id:[0-9]+}", h.DeleteTransacao).Methods("DELETE")
	authRouter.HandleFunc("/saldo", h.Saldo).Methods("GET")

	return r
}

// Ready reports process liveness for deployment probes
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK\n"))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

// detailResponse mirrors the error body shape clients already consume
type detailResponse struct {
	Detail string `json:"detail"`
}

// writeError maps a service error onto its HTTP status and writes the
// structured message. Unrecognized errors become a 500 and are logged.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, service.ErrInvalidEmailDomain),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidTipo),
		errors.Is(err, service.ErrInvalidValor):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrCouldNotValidate):
		status = http.StatusUnauthorized
		w.Header().Set("WWW-Authenticate", "Bearer")
	case errors.Is(err, service.ErrTransacaoNotFound):
		status = http.StatusNotFound
	default:
		h.log.Errorf("Request failed: %v", err)
		h.writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: "Internal server error"})
		return
	}
	h.writeJSON(w, status, detailResponse{Detail: err.Error()})
}
