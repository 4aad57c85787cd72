package gormstore

import (
	"context"

	"conduit/internal/models"
	"conduit/internal/repository"

	"gorm.io/gorm"
)

func (s *Store) ListComments(ctx context.Context, articleID int64, viewerID *int64) ([]*models.Comment, error) {
	var rows []commentRow
	err := s.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return s.projectComments(ctx, rows, viewerID)
}

func (s *Store) projectComments(ctx context.Context, rows []commentRow, viewerID *int64) ([]*models.Comment, error) {
	out := make([]*models.Comment, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	db := s.db.WithContext(ctx)

	authorIDs := make([]int64, 0, len(rows))
	for _, r := range rows {
		authorIDs = append(authorIDs, r.AuthorID)
	}

	var authors []userRow
	if err := db.Where("id IN ?", authorIDs).Find(&authors).Error; err != nil {
		return nil, err
	}
	authorByID := make(map[int64]*userRow, len(authors))
	for i := range authors {
		authorByID[authors[i].ID] = &authors[i]
	}

	following := map[int64]bool{}
	if viewerID != nil {
		var followeeIDs []int64
		if err := db.Model(&followRow{}).
			Where("follower_id = ? AND followee_id IN ?", *viewerID, authorIDs).
			Pluck("followee_id", &followeeIDs).Error; err != nil {
			return nil, err
		}
		for _, id := range followeeIDs {
			following[id] = true
		}
	}

	for _, r := range rows {
		c := &models.Comment{
			ID:        r.ID,
			ArticleID: r.ArticleID,
			Body:      r.Body,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		}
		if author, ok := authorByID[r.AuthorID]; ok {
			c.Author = author.toProfile(following[r.AuthorID])
		}
		out = append(out, c)
	}
	return out, nil
}

// CreateComment проверяет статью и пишет комментарий в одной транзакции.
func (s *Store) CreateComment(ctx context.Context, articleID, authorID int64, body string) (*models.Comment, error) {
	row := commentRow{ArticleID: articleID, AuthorID: authorID, Body: body}
	var author userRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article articleRow
		if err := tx.Select("id").First(&article, articleID).Error; err != nil {
			return err
		}
		if err := tx.First(&author, authorID).Error; err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, translate(err, "")
	}
	return &models.Comment{
		ID:        row.ID,
		ArticleID: row.ArticleID,
		Body:      row.Body,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Author:    author.toProfile(false),
	}, nil
}

func (s *Store) GetComment(ctx context.Context, articleID, commentID int64) (*models.Comment, error) {
	var row commentRow
	err := s.db.WithContext(ctx).
		Where("article_id = ? AND id = ?", articleID, commentID).
		First(&row).Error
	if err != nil {
		return nil, translate(err, "")
	}
	list, err := s.projectComments(ctx, []commentRow{row}, nil)
	if err != nil {
		return nil, err
	}
	return list[0], nil
}

func (s *Store) DeleteComment(ctx context.Context, commentID int64) error {
	res := s.db.WithContext(ctx).Delete(&commentRow{}, commentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
