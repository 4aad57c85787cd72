package services

import (
	"context"
	"errors"
	"strings"

	"conduit/internal/apperr"
	"conduit/internal/logger"
	"conduit/internal/models"
	"conduit/internal/repository"
	"conduit/internal/utils"

	"go.uber.org/zap"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, in *models.UserChanges) (*models.User, error)
}

// TokenIssuer выпускает токен доступа для пользователя.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

var errBadCredentials = apperr.Unauthorized("email or password is invalid")

type AuthService struct {
	repo     UserRepo
	tokens   TokenIssuer
	validate *Validator
}

func NewAuthService(repo UserRepo, tokens TokenIssuer, v *Validator) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, validate: v}
}

func (s *AuthService) Register(ctx context.Context, in models.RegisterUser) (*models.UserView, error) {
	log := logger.WithCtx(ctx)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	log.Info("Регистрация пользователя (service)", zap.String("username", in.Username), zap.String("email", in.Email))

	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		log.Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, apperr.Internal(err)
	}

	user := &models.User{Username: in.Username, Email: in.Email, PasswordHash: hashed}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if !errors.Is(err, repository.ErrAlreadyExists) {
			log.Error("Ошибка создания пользователя", zap.Error(err))
		}
		return nil, storageErr(err, "user not found")
	}

	log.Info("Пользователь зарегистрирован (service)", zap.Int64("user_id", user.ID))
	return s.view(user)
}

func (s *AuthService) Login(ctx context.Context, in models.LoginUser) (*models.UserView, error) {
	log := logger.WithCtx(ctx)
	in.Email = strings.TrimSpace(in.Email)
	log.Info("Попытка входа (service)", zap.String("email", in.Email))

	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Пользователь не найден (service)", zap.String("email", in.Email))
		return nil, errBadCredentials
	}
	if err != nil {
		log.Error("Ошибка получения пользователя", zap.Error(err))
		return nil, apperr.Internal(err)
	}

	if !utils.CheckPasswordHash(in.Password, user.PasswordHash) {
		log.Warn("Неверный пароль (service)", zap.Int64("user_id", user.ID))
		return nil, errBadCredentials
	}

	log.Info("Вход выполнен (service)", zap.Int64("user_id", user.ID))
	return s.view(user)
}

// Current возвращает пользователя запроса вместе с предъявленным токеном.
func (s *AuthService) Current(ctx context.Context, id models.Identity) (*models.UserView, error) {
	user, err := s.repo.GetUserByID(ctx, id.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.WithCtx(ctx).Error("Ошибка получения пользователя", zap.Error(err))
		}
		return nil, storageErr(err, "user not found")
	}
	view := models.NewUserView(user, id.Token)
	return &view, nil
}

// Update меняет только переданные поля; новый пароль хешируется заново.
func (s *AuthService) Update(ctx context.Context, id models.Identity, in models.UpdateUser) (*models.UserView, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление пользователя (service)")

	in.Email = trimPtr(in.Email)
	in.Username = trimPtr(in.Username)
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	changes := &models.UserChanges{
		Email:    in.Email,
		Username: in.Username,
		Bio:      in.Bio,
		Image:    in.Image,
	}
	if in.Password != nil {
		hashed, err := utils.HashPassword(*in.Password)
		if err != nil {
			log.Error("Ошибка хеширования пароля", zap.Error(err))
			return nil, apperr.Internal(err)
		}
		changes.PasswordHash = &hashed
	}
	if changes.Empty() {
		return s.Current(ctx, id)
	}

	user, err := s.repo.UpdateUser(ctx, id.UserID, changes)
	if err != nil {
		if !errors.Is(err, repository.ErrAlreadyExists) && !errors.Is(err, repository.ErrNotFound) {
			log.Error("Ошибка обновления пользователя", zap.Error(err))
		}
		return nil, storageErr(err, "user not found")
	}

	view := models.NewUserView(user, id.Token)
	return &view, nil
}

func (s *AuthService) view(user *models.User) (*models.UserView, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		logger.Log.Error("Ошибка генерации токена", zap.Error(err))
		return nil, apperr.Internal(err)
	}
	view := models.NewUserView(user, token)
	return &view, nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
