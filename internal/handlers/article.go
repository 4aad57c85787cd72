package handlers

import (
	"net/http"

	"conduit/internal/models"
	"conduit/internal/reqctx"
	"conduit/internal/services"
	"conduit/internal/utils/helpers"

	"github.com/gorilla/mux"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// List
// @Summary      Список статей
// @Description  Фильтры объединяются по AND; сначала новые; limit не больше 100
// @Tags         articles
// @Produce      json
// @Param        tag        query  string  false  "Тег"
// @Param        author     query  string  false  "Автор"
// @Param        favorited  query  string  false  "В избранном у пользователя"
// @Param        limit      query  int     false  "Лимит (по умолчанию 20)"
// @Param        offset     query  int     false  "Смещение"
// @Success      200  {object}  models.ArticlesResponse
// @Failure      422  {object}  helpers.ValidationResponse
// @Router       /api/articles [get]
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	q := r.URL.Query()
	f := models.ArticleFilter{
		Tag:       q.Get("tag"),
		Author:    q.Get("author"),
		Favorited: q.Get("favorited"),
		Limit:     limit,
		Offset:    offset,
	}

	list, err := h.svc.List(r.Context(), f, reqctx.Viewer(r.Context()))
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ArticlesResponse{Articles: list, ArticlesCount: len(list)})
}

// Feed
// @Summary      Лента подписок
// @Tags         articles
// @Produce      json
// @Param        limit   query  int  false  "Лимит (по умолчанию 20)"
// @Param        offset  query  int  false  "Смещение"
// @Success      200  {object}  models.ArticlesResponse
// @Failure      401  {object}  helpers.ErrorResponse
// @Security     TokenAuth
// @Router       /api/articles/feed [get]
func (h *ArticleHandler) Feed(w http.ResponseWriter, r *http.Request) {
	id, err := actor(r)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	limit, offset, err := page(r)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}

	list, err := h.svc.Feed(r.Context(), id, limit, offset)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ArticlesResponse{Articles: list, ArticlesCount: len(list)})
}

// Get
// @Summary      Статья по slug
// @Tags         articles
// @Produce      json
// @Param        slug  path  string  true  "Slug"
// @Success      200  {object}  models.ArticleResponse
// @Failure      404  {object}  helpers.ErrorResponse
// @Router       /api/articles/{slug} [get]
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context(), mux.Vars(r)["slug"], reqctx.Viewer(r.Context()))
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ArticleResponse{Article: a})
}

// Create
// @Summary      Создать статью
// @Description  Slug строится из заголовка; HTML в теле очищается
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateArticleRequest  true  "Данные статьи"
// @Success      201  {object}  models.ArticleResponse
// @Failure      401  {object}  helpers.ErrorResponse
// @Failure      422  {object}  helpers.ValidationResponse
// @Security     TokenAuth
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := actor(r)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	var req models.CreateArticleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		helpers.WriteError(w, r, err)
		return
	}

	a, err := h.svc.Create(r.Context(), id, req.Article)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, models.ArticleResponse{Article: a})
}

// Update
// @Summary      Обновить статью
// @Description  Только автор; новый заголовок меняет slug, tagList заменяет теги целиком
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        slug  path  string                       true  "Slug"
// @Param        body  body  models.UpdateArticleRequest  true  "Изменяемые поля"
// @Success      200  {object}  models.ArticleResponse
// @Failure      401  {object}  helpers.ErrorResponse
// @Failure      404  {object}  helpers.ErrorResponse
// @Failure      422  {object}  helpers.ValidationResponse
// @Security     TokenAuth
// @Router       /api/articles/{slug} [put]
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := actor(r)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	var req models.UpdateArticleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		helpers.WriteError(w, r, err)
		return
	}

	a, err := h.svc.Update(r.Context(), id, mux.Vars(r)["slug"], req.Article)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ArticleResponse{Article: a})
}

// Delete
// @Summary      Удалить статью
// @Tags         articles
// @Param        slug  path  string  true  "Slug"
// @Success      204
// @Failure      401  {object}  helpers.ErrorResponse
// @Failure      404  {object}  helpers.ErrorResponse
// @Security     TokenAuth
// @Router       /api/articles/{slug} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := actor(r)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id, mux.Vars(r)["slug"]); err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Favorite
// @Summary      Добавить в избранное
// @Tags         favorites
// @Produce      json
// @Param        slug  path  string  true  "Slug"
// @Success      200  {object}  models.ArticleResponse
// @Failure      401  {object}  helpers.ErrorResponse
// @Failure      404  {object}  helpers.ErrorResponse
// @Failure      422  {object}  helpers.ErrorResponse
// @Security     TokenAuth
// @Router       /api/articles/{slug}/favorite [post]
func (h *ArticleHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	id, err := actor(r)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	a, err := h.svc.Favorite(r.Context(), id, mux.Vars(r)["slug"])
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ArticleResponse{Article: a})
}

// Unfavorite
// @Summary      Убрать из избранного
// @Tags         favorites
// @Produce      json
// @Param        slug  path  string  true  "Slug"
// @Success      200  {object}  models.ArticleResponse
// @Failure      401  {object}  helpers.ErrorResponse
// @Failure      404  {object}  helpers.ErrorResponse
// @Security     TokenAuth
// @Router       /api/articles/{slug}/favorite [delete]
func (h *ArticleHandler) Unfavorite(w http.ResponseWriter, r *http.Request) {
	id, err := actor(r)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	a, err := h.svc.Unfavorite(r.Context(), id, mux.Vars(r)["slug"])
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ArticleResponse{Article: a})
}
