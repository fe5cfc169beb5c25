package handlers

import (
	"net/http"

	"skillbridge/internal/app"
	"skillbridge/internal/http/response"
)

type CatalogHandler struct {
	catalog *app.CatalogService
}

func NewCatalogHandler(catalog *app.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Skills(w http.ResponseWriter, r *http.Request) {
	jobTitle, err := pathParam(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	set, err := h.catalog.SkillsForJobTitle(r.Context(), jobTitle)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, set)
}

func (h *CatalogHandler) Questions(w http.ResponseWriter, r *http.Request) {
	domain := r.URL.Query().Get("domain")
	skill := r.URL.Query().Get("skill")
	items, err := h.catalog.Questions(r.Context(), domain, skill)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
