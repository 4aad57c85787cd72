package handlers

import (
	"net/http"

	"conduit/internal/models"
	"conduit/internal/services"
	"conduit/internal/utils/helpers"
)

type TagHandler struct{ svc *services.TagService }

func NewTagHandler(s *services.TagService) *TagHandler {
	return &TagHandler{svc: s}
}

// List
// @Summary      Популярные теги
// @Description  По убыванию частоты использования
// @Tags         tags
// @Produce      json
// @Success      200  {object}  models.TagsResponse
// @Router       /api/tags [get]
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.List(r.Context())
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.TagsResponse{Tags: tags})
}
