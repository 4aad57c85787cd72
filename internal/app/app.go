package app

import (
	"context"
	"fmt"

	"conduit/internal/config"
	"conduit/internal/db"
	"conduit/internal/handlers"
	"conduit/internal/logger"
	"conduit/internal/middleware"
	"conduit/internal/repository"
	"conduit/internal/repository/gormstore"
	"conduit/internal/routes"
	"conduit/internal/services"
	"conduit/internal/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Storage: всё, что нужно сервисам от хранилища. Реализуется
// набором pgx-репозиториев и gormstore.Store.
type Storage interface {
	services.UserRepo
	services.ProfileRepo
	services.ArticleRepo
	services.CommentRepo
	services.TagRepo
	handlers.Pinger
}

type pgxStorage struct {
	*repository.UserRepository
	*repository.ProfileRepository
	*repository.ArticleRepository
	*repository.CommentRepository
	*repository.TagRepository
	handlers.Pinger
}

// InitApp поднимает хранилище по DB_DRIVER и собирает роутер.
// Возвращаемая функция закрывает соединения с БД.
func InitApp(cfg *config.Config) (*mux.Router, func(), error) {
	tokens, err := newTokenService(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx := context.Background()
	var (
		store   Storage
		cleanup func()
	)

	switch cfg.DbDriver {
	case "gorm":
		gdb, err := db.NewGormConnection(cfg)
		if err != nil {
			return nil, nil, err
		}
		gs := gormstore.New(gdb)
		if cfg.Migrate {
			if err := gs.Migrate(ctx); err != nil {
				_ = gs.Close()
				return nil, nil, fmt.Errorf("automigrate: %w", err)
			}
		}
		store = gs
		cleanup = func() { _ = gs.Close() }

	default:
		pool, err := db.NewPostgresConnection(cfg)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Migrate {
			n, err := db.Migrate(ctx, pool)
			if err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Log.Info("Миграции применены", zap.Int("count", n))
		}
		store = &pgxStorage{
			UserRepository:    repository.NewUserRepository(pool),
			ProfileRepository: repository.NewProfileRepository(pool),
			ArticleRepository: repository.NewArticleRepository(pool),
			CommentRepository: repository.NewCommentRepository(pool),
			TagRepository:     repository.NewTagRepository(pool),
			Pinger:            pool,
		}
		cleanup = pool.Close
	}

	return NewRouter(cfg, store, tokens), cleanup, nil
}

// NewRouter собирает сервисы и хендлеры поверх готового хранилища.
func NewRouter(cfg *config.Config, store Storage, tokens *utils.TokenService) *mux.Router {
	validate := services.NewValidator()

	// Сервисы
	authSvc := services.NewAuthService(store, tokens, validate)
	profileSvc := services.NewProfileService(store)
	articleSvc := services.NewArticleService(store, validate)
	commentSvc := services.NewCommentService(store, store, validate)
	tagSvc := services.NewTagService(store)

	// Хендлеры
	userH := handlers.NewUserHandler(authSvc)
	profileH := handlers.NewProfileHandler(profileSvc)
	articleH := handlers.NewArticleHandler(articleSvc)
	commentH := handlers.NewCommentHandler(commentSvc)
	tagH := handlers.NewTagHandler(tagSvc)
	healthH := handlers.NewHealthHandler(store)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, middleware.NewGate(tokens), userH, profileH, articleH, commentH, tagH, healthH)
	return router
}

func newTokenService(cfg *config.Config) (*utils.TokenService, error) {
	if cfg.UseRSAKeys() {
		return utils.NewRSATokenServiceFromFiles(cfg.JWTPrivateKeyPath, cfg.JWTPublicKeyPath, cfg.TokenTTL)
	}
	return utils.NewHMACTokenService(cfg.JWTSecret, cfg.TokenTTL), nil
}
