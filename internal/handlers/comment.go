package handlers

import (
	"net/http"
	"strconv"

	"conduit/internal/apperr"
	"conduit/internal/logger"
	"conduit/internal/models"
	"conduit/internal/reqctx"
	"conduit/internal/services"
	"conduit/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type CommentHandler struct {
	svc *services.CommentService
}

func NewCommentHandler(svc *services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// List
// @Summary      Комментарии к статье
// @Description  Сначала новые
// @Tags         comments
// @Produce      json
// @Param        slug  path  string  true  "Slug"
// @Success      200  {object}  models.CommentsResponse
// @Failure      404  {object}  helpers.ErrorResponse
// @Router       /api/articles/{slug}/comments [get]
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context(), mux.Vars(r)["slug"], reqctx.Viewer(r.Context()))
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.CommentsResponse{Comments: list})
}

// Add
// @Summary      Добавить комментарий
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        slug  path  string                       true  "Slug"
// @Param        body  body  models.CreateCommentRequest  true  "Комментарий"
// @Success      201  {object}  models.CommentResponse
// @Failure      401  {object}  helpers.ErrorResponse
// @Failure      404  {object}  helpers.ErrorResponse
// @Failure      422  {object}  helpers.ValidationResponse
// @Security     TokenAuth
// @Router       /api/articles/{slug}/comments [post]
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, err := actor(r)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	var req models.CreateCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		helpers.WriteError(w, r, err)
		return
	}

	c, err := h.svc.Add(r.Context(), id, mux.Vars(r)["slug"], req.Comment)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, models.CommentResponse{Comment: c})
}

// Delete
// @Summary      Удалить комментарий
// @Description  Только автор комментария
// @Tags         comments
// @Param        slug  path  string  true  "Slug"
// @Param        id    path  int     true  "ID комментария"
// @Success      204
// @Failure      401  {object}  helpers.ErrorResponse
// @Failure      404  {object}  helpers.ErrorResponse
// @Security     TokenAuth
// @Router       /api/articles/{slug}/comments/{id} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := actor(r)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	vars := mux.Vars(r)
	commentID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Некорректный id комментария", zap.String("id", vars["id"]))
		helpers.WriteError(w, r, apperr.NotFound("comment not found"))
		return
	}

	if err := h.svc.Delete(r.Context(), id, vars["slug"], commentID); err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
