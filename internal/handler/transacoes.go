package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/correagss/personal-control-finance/internal/middleware"
	"github.com/gorilla/mux"
)

type transacaoRequest struct {
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
	Tipo      string  `json:"tipo"`
}

func pathID(r *http.Request) int64 {
	// The route pattern constrains {id} to digits
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

// CreateTransacao handles transaction creation for the current user
func (h *Handler) CreateTransacao(w http.ResponseWriter, r *http.Request) {
	var req transacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, detailResponse{Detail: "Invalid request body"})
		return
	}

	user := middleware.CurrentUser(r)
	t, err := h.svc.CreateTransacao(user, req.Descricao, req.Valor, req.Tipo)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, t)
}

// ListTransacoes returns all transactions of the current user
func (h *Handler) ListTransacoes(w http.ResponseWriter, r *http.Request) {
	transacoes, err := h.svc.ListTransacoes(middleware.CurrentUser(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, transacoes)
}

// GetTransacao returns a single owned transaction
func (h *Handler) GetTransacao(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetTransacao(middleware.CurrentUser(r), pathID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, t)
}

// UpdateTransacao replaces the mutable fields of an owned transaction
func (h *Handler) UpdateTransacao(w http.ResponseWriter, r *http.Request) {
	var req transacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, detailResponse{Detail: "Invalid request body"})
		return
	}

	user := middleware.CurrentUser(r)
	t, err := h.svc.UpdateTransacao(user, pathID(r), req.Descricao, req.Valor, req.Tipo)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, t)
}

// DeleteTransacao permanently removes an owned transaction
func (h *Handler) DeleteTransacao(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTransacao(middleware.CurrentUser(r), pathID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"mensagem": "Transação deletada com sucesso"})
}

// Saldo returns the balance summary of the current user
func (h *Handler) Saldo(w http.ResponseWriter, r *http.Request) {
	saldo, err := h.svc.Saldo(middleware.CurrentUser(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, saldo)
}
