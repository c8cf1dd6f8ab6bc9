package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/spigell/hiring-desk/internal/recruiting"
)

func (h *Handler) ListAgents(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.store.Agents(), http.StatusOK)
}

func (h *Handler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var req AgentRequest
	if !h.decode(w, r, &req) {
		return
	}

	agent := req.agent(uuid.NewString())
	if agent.Status == "" {
		agent.Status = recruiting.AgentIdle
	}
	h.store.AddAgent(agent)
	writeJSON(w, agent, http.StatusCreated)
}

func (h *Handler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	current, ok := h.store.GetAgent(id)
	if !ok {
		notFound(w, "agent", id)
		return
	}

	var req AgentRequest
	if !h.decode(w, r, &req) {
		return
	}

	agent := req.agent(id)
	if agent.Status == "" {
		agent.Status = current.Status
	}
	if !h.store.UpdateAgent(agent) {
		notFound(w, "agent", id)
		return
	}
	writeJSON(w, agent, http.StatusOK)
}

func (h *Handler) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.store.DeleteAgent(id) {
		notFound(w, "agent", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (req *AgentRequest) agent(id string) *recruiting.Agent {
	return &recruiting.Agent{
		ID:           id,
		Name:         req.Name,
		Type:         req.Type,
		Language:     req.Language,
		VoiceID:      req.VoiceID,
		Status:       req.Status,
		LastActive:   req.LastActive,
		Personality:  req.Personality,
		Instructions: req.Instructions,
	}
}
