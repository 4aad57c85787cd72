package repository

import (
	"context"
	"fmt"
	"strings"

	"conduit/internal/logger"
	"conduit/internal/models"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ArticleRepository struct {
	db DB
}

func NewArticleRepository(db DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// $1 всегда id зрителя (NULL для анонима): от него зависят favorited и following.
const articleSelect = `
	SELECT a.id, a.slug, a.title, a.description, a.body, a.created_at, a.updated_at,
	       ARRAY(SELECT t.tag_name FROM article_tags t WHERE t.article_id = a.id ORDER BY t.tag_name),
	       (SELECT COUNT(*) FROM favorites f WHERE f.article_id = a.id),
	       EXISTS (SELECT 1 FROM favorites f WHERE f.article_id = a.id AND f.user_id = $1),
	       u.id, u.username, u.bio, u.image,
	       EXISTS (SELECT 1 FROM follows fl WHERE fl.followee_id = u.id AND fl.follower_id = $1)
	FROM articles a
	JOIN users u ON u.id = a.author_id
`

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (*models.Article, error) {
	var a models.Article
	if err := row.Scan(
		&a.ID, &a.Slug, &a.Title, &a.Description, &a.Body, &a.CreatedAt, &a.UpdatedAt,
		&a.TagList, &a.FavoritesCount, &a.Favorited,
		&a.Author.ID, &a.Author.Username, &a.Author.Bio, &a.Author.Image, &a.Author.Following,
	); err != nil {
		return nil, err
	}
	if a.TagList == nil {
		a.TagList = []string{}
	}
	return &a, nil
}

func (r *ArticleRepository) ListArticles(ctx context.Context, f models.ArticleFilter, viewerID *int64) ([]*models.Article, error) {
	where := []string{}
	args := []interface{}{viewerID}
	i := 2

	if f.Tag != "" {
		where = append(where, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM article_tags t WHERE t.article_id = a.id AND t.tag_name = $%d)`, i))
		args = append(args, f.Tag)
		i++
	}
	if f.Author != "" {
		where = append(where, fmt.Sprintf("u.username = $%d", i))
		args = append(args, f.Author)
		i++
	}
	if f.Favorited != "" {
		where = append(where, fmt.Sprintf(`
			EXISTS (
				SELECT 1
				FROM favorites f
				JOIN users fu ON fu.id = f.user_id
				WHERE f.article_id = a.id AND fu.username = $%d
			)`, i))
		args = append(args, f.Favorited)
		i++
	}

	return r.list(ctx, where, args, f.Limit, f.Offset)
}

// FeedArticles: статьи авторов, на которых подписан зритель.
func (r *ArticleRepository) FeedArticles(ctx context.Context, viewerID int64, limit, offset int) ([]*models.Article, error) {
	where := []string{
		`EXISTS (SELECT 1 FROM follows fd WHERE fd.followee_id = a.author_id AND fd.follower_id = $1)`,
	}
	return r.list(ctx, where, []interface{}{viewerID}, limit, offset)
}

func (r *ArticleRepository) list(ctx context.Context, where []string, args []interface{}, limit, offset int) ([]*models.Article, error) {
	i := len(args) + 1
	sql := articleSelect
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += fmt.Sprintf(" ORDER BY a.created_at DESC, a.id DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Log.Error("Ошибка получения списка статей (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := make([]*models.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *ArticleRepository) GetArticle(ctx context.Context, slug string, viewerID *int64) (*models.Article, error) {
	a, err := scanArticle(r.db.QueryRow(ctx, articleSelect+" WHERE a.slug = $2", viewerID, slug))
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

// CreateArticle пишет статью и её теги в одной транзакции.
func (r *ArticleRepository) CreateArticle(ctx context.Context, d *models.ArticleDraft) (int64, error) {
	logger.Log.Info("Создание статьи (repo)", zap.String("slug", d.Slug), zap.Int64("author_id", d.AuthorID))
	var id int64
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		const q = `
			INSERT INTO articles (slug, title, description, body, author_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		if err := tx.QueryRow(ctx, q, d.Slug, d.Title, d.Description, d.Body, d.AuthorID).Scan(&id); err != nil {
			return err
		}
		return insertTags(ctx, tx, id, d.TagList)
	})
	if err != nil {
		return 0, translate(err)
	}
	return id, nil
}

// UpdateArticle меняет переданные поля; TagList != nil заменяет теги целиком в той же транзакции.
func (r *ArticleRepository) UpdateArticle(ctx context.Context, id int64, ch *models.ArticleChanges) error {
	logger.Log.Info("Обновление статьи (repo)", zap.Int64("id", id))

	fields := []string{}
	args := []interface{}{}
	i := 1
	add := func(column string, v *string) {
		if v == nil {
			return
		}
		fields = append(fields, fmt.Sprintf("%s = $%d", column, i))
		args = append(args, *v)
		i++
	}
	add("slug", ch.Slug)
	add("title", ch.Title)
	add("description", ch.Description)
	add("body", ch.Body)
	fields = append(fields, "updated_at = NOW()")
	args = append(args, id)

	q := fmt.Sprintf("UPDATE articles SET %s WHERE id = $%d", strings.Join(fields, ", "), i)

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, q, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		if ch.TagList == nil {
			return nil
		}
		if _, err := tx.Exec(ctx, `DELETE FROM article_tags WHERE article_id = $1`, id); err != nil {
			return err
		}
		return insertTags(ctx, tx, id, *ch.TagList)
	})
	return translate(err)
}

func insertTags(ctx context.Context, tx pgx.Tx, articleID int64, tags []string) error {
	if len(tags) == 0 {
		return nil
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO tags (name) SELECT unnest($1::text[]) ON CONFLICT DO NOTHING`, tags); err != nil {
		return err
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO article_tags (article_id, tag_name) SELECT $1::bigint, unnest($2::text[]) ON CONFLICT DO NOTHING`,
		articleID, tags)
	return err
}

func (r *ArticleRepository) DeleteArticle(ctx context.Context, id int64) error {
	logger.Log.Info("Удаление статьи (repo)", zap.Int64("id", id))
	tag, err := r.db.Exec(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Favorite полагается на первичный ключ (user_id, article_id): повтор даёт ConflictError.
func (r *ArticleRepository) Favorite(ctx context.Context, userID, articleID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO favorites (user_id, article_id) VALUES ($1, $2)`, userID, articleID)
	return translate(err)
}

func (r *ArticleRepository) Unfavorite(ctx context.Context, userID, articleID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND article_id = $2`, userID, articleID)
	return translate(err)
}
