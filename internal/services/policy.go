package services

import (
	"errors"

	"conduit/internal/apperr"
	"conduit/internal/models"
	"conduit/internal/repository"
)

// Проверки владения выполняются после загрузки ресурса и до любой записи.

func AssertOwnsArticle(actor models.Identity, a *models.Article, action string) error {
	if a.Author.ID != actor.UserID {
		return apperr.Unauthorized("not authorized to " + action + " this article")
	}
	return nil
}

func AssertOwnsComment(actor models.Identity, c *models.Comment) error {
	if c.Author.ID != actor.UserID {
		return apperr.Unauthorized("not authorized to delete this comment")
	}
	return nil
}

func AssertNotSelf(actor models.Identity, target *models.Profile, action string) error {
	if target.ID == actor.UserID {
		return apperr.Unprocessable("cannot " + action + " yourself")
	}
	return nil
}

// storageErr переводит ошибки репозиториев в apperr.
// notFound: сообщение для ErrNotFound; конфликт уникальности становится ошибкой поля.
func storageErr(err error, notFound string) error {
	var conflict *repository.ConflictError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound(notFound)
	case errors.As(err, &conflict):
		return apperr.Field(conflict.Field, "has already been taken")
	default:
		return apperr.From(err)
	}
}

func viewerID(viewer *models.Identity) *int64 {
	if viewer == nil {
		return nil
	}
	id := viewer.UserID
	return &id
}
