package handlers

import (
	"context"
	"net/http"

	"conduit/internal/models"
	"conduit/internal/reqctx"
	"conduit/internal/services"
	"conduit/internal/utils/helpers"

	"github.com/gorilla/mux"
)

type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Get godoc
// @Summary Профиль пользователя
// @Tags profiles
// @Produce json
// @Param username path string true "Имя пользователя"
// @Success 200 {object} models.ProfileResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/profiles/{username} [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), mux.Vars(r)["username"], reqctx.Viewer(r.Context()))
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ProfileResponse{Profile: p})
}

// Follow godoc
// @Summary Подписаться на пользователя
// @Tags profiles
// @Produce json
// @Param username path string true "Имя пользователя"
// @Success 200 {object} models.ProfileResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 422 {object} helpers.ErrorResponse
// @Security TokenAuth
// @Router /api/profiles/{username}/follow [post]
func (h *ProfileHandler) Follow(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.Follow)
}

// Unfollow godoc
// @Summary Отписаться от пользователя
// @Tags profiles
// @Produce json
// @Param username path string true "Имя пользователя"
// @Success 200 {object} models.ProfileResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Security TokenAuth
// @Router /api/profiles/{username}/follow [delete]
func (h *ProfileHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.Unfollow)
}

type followFunc func(ctx context.Context, actor models.Identity, username string) (*models.Profile, error)

func (h *ProfileHandler) mutate(w http.ResponseWriter, r *http.Request, op followFunc) {
	id, err := actor(r)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	p, err := op(r.Context(), id, mux.Vars(r)["username"])
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ProfileResponse{Profile: p})
}
