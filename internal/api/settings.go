package api

import "net/http"

func (h *Handler) GetLanguage(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, LanguageBody{Language: h.store.Language()}, http.StatusOK)
}

func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req LanguageBody
	if !h.decode(w, r, &req) {
		return
	}

	h.store.SetLanguage(req.Language)
	writeJSON(w, req, http.StatusOK)
}

func (h *Handler) Overview(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, Overview{Stats: h.store.Stats(), Language: h.store.Language()}, http.StatusOK)
}
