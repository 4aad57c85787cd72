package handlers

import (
	"net/http"

	"conduit/internal/logger"
	"conduit/internal/models"
	"conduit/internal/services"
	"conduit/internal/utils/helpers"

	"go.uber.org/zap"
)

type UserHandler struct {
	auth *services.AuthService
}

func NewUserHandler(auth *services.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Tags users
// @Accept json
// @Produce json
// @Param input body models.RegisterUserRequest true "Данные регистрации"
// @Success 201 {object} models.UserResponse
// @Failure 422 {object} helpers.ValidationResponse
// @Router /api/users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Register", zap.Error(err))
		helpers.WriteError(w, r, err)
		return
	}

	view, err := h.auth.Register(r.Context(), req.User)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, models.UserResponse{User: *view})
}

// Login godoc
// @Summary Авторизация пользователя
// @Tags users
// @Accept json
// @Produce json
// @Param input body models.LoginUserRequest true "Данные для входа"
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 422 {object} helpers.ValidationResponse
// @Router /api/users/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		helpers.WriteError(w, r, err)
		return
	}

	view, err := h.auth.Login(r.Context(), req.User)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.UserResponse{User: *view})
}

// Current godoc
// @Summary Текущий пользователь
// @Tags users
// @Produce json
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Security TokenAuth
// @Router /api/user [get]
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	id, err := actor(r)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}

	view, err := h.auth.Current(r.Context(), id)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.UserResponse{User: *view})
}

// Update godoc
// @Summary Обновить текущего пользователя
// @Description Меняются только переданные поля
// @Tags users
// @Accept json
// @Produce json
// @Param input body models.UpdateUserRequest true "Изменяемые поля"
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 422 {object} helpers.ValidationResponse
// @Security TokenAuth
// @Router /api/user [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := actor(r)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		helpers.WriteError(w, r, err)
		return
	}

	view, err := h.auth.Update(r.Context(), id, req.User)
	if err != nil {
		helpers.WriteError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.UserResponse{User: *view})
}
