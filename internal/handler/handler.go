package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/realtyaudit/capital-service/internal/models"
	"github.com/realtyaudit/capital-service/internal/service"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Errorf("Failed to write response: %v", err)
	}
}

// Calculate runs the full audit and simulation for one portfolio snapshot.
// Numeric fields tolerate blank and malformed values (they decode to zero);
// only a structurally broken body is rejected.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req models.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Calculate(r.Context(), req)
	if err != nil {
		h.log.Errorf("Calculation failed: %v", err)
		http.Error(w, "Calculation failed", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// SubmitLead captures a contact request
func (h *Handler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	lead, err := h.svc.SubmitLead(req.Name, req.Phone)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusCreated, lead)
}

// Login authenticates the agency admin
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.svc.Login(req.Password)
	if err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// ListLeads returns captured leads for the agency (protected)
func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.svc.Leads()
	if err != nil {
		h.log.Errorf("Failed to list leads: %v", err)
		http.Error(w, "Failed to list leads", http.StatusInternalServerError)
		return
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	h.writeJSON(w, http.StatusOK, leads)
}

// KeyRate returns the last refreshed CBR key rate
func (h *Handler) KeyRate(w http.ResponseWriter, r *http.Request) {
	rate, updatedAt, ok := h.svc.KeyRate()
	if !ok {
		http.Error(w, "Key rate not available yet", http.StatusServiceUnavailable)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"key_rate":   rate,
		"updated_at": updatedAt,
	})
}
