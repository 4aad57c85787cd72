package repository

import (
	"context"

	"conduit/internal/logger"
	"conduit/internal/models"

	"go.uber.org/zap"
)

type CommentRepository struct {
	db DB
}

func NewCommentRepository(db DB) *CommentRepository {
	return &CommentRepository{db: db}
}

const commentSelect = `
	SELECT c.id, c.article_id, c.body, c.created_at, c.updated_at,
	       u.id, u.username, u.bio, u.image,
	       EXISTS (SELECT 1 FROM follows fl WHERE fl.followee_id = u.id AND fl.follower_id = $1)
	FROM comments c
	JOIN users u ON u.id = c.author_id
`

func scanComment(row scanner) (*models.Comment, error) {
	var c models.Comment
	if err := row.Scan(
		&c.ID, &c.ArticleID, &c.Body, &c.CreatedAt, &c.UpdatedAt,
		&c.Author.ID, &c.Author.Username, &c.Author.Bio, &c.Author.Image, &c.Author.Following,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListComments: комментарии статьи, новые сначала.
func (r *CommentRepository) ListComments(ctx context.Context, articleID int64, viewerID *int64) ([]*models.Comment, error) {
	rows, err := r.db.Query(ctx,
		commentSelect+" WHERE c.article_id = $2 ORDER BY c.created_at DESC, c.id DESC", viewerID, articleID)
	if err != nil {
		logger.Log.Error("Ошибка получения комментариев (repo)", zap.Int64("article_id", articleID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := make([]*models.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CreateComment: один INSERT ... SELECT: статья и автор разрешаются в том же операторе.
func (r *CommentRepository) CreateComment(ctx context.Context, articleID, authorID int64, body string) (*models.Comment, error) {
	logger.Log.Info("Создание комментария (repo)", zap.Int64("article_id", articleID), zap.Int64("author_id", authorID))
	const q = `
		WITH ins AS (
			INSERT INTO comments (article_id, author_id, body)
			SELECT a.id, $2::bigint, $3::text FROM articles a WHERE a.id = $1
			RETURNING id, article_id, author_id, body, created_at, updated_at
		)
		SELECT ins.id, ins.article_id, ins.body, ins.created_at, ins.updated_at,
		       u.id, u.username, u.bio, u.image, FALSE
		FROM ins
		JOIN users u ON u.id = ins.author_id
	`
	c, err := scanComment(r.db.QueryRow(ctx, q, articleID, authorID, body))
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (r *CommentRepository) GetComment(ctx context.Context, articleID, commentID int64) (*models.Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx,
		commentSelect+" WHERE c.article_id = $2 AND c.id = $3", nil, articleID, commentID))
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (r *CommentRepository) DeleteComment(ctx context.Context, commentID int64) error {
	logger.Log.Info("Удаление комментария (repo)", zap.Int64("id", commentID))
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
