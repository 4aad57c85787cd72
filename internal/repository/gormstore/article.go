package gormstore

import (
	"context"
	"time"

	"conduit/internal/models"
	"conduit/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) ListArticles(ctx context.Context, f models.ArticleFilter, viewerID *int64) ([]*models.Article, error) {
	q := s.db.WithContext(ctx).Model(&articleRow{})

	if f.Tag != "" {
		q = q.Where("id IN (?)",
			s.db.Model(&articleTagRow{}).Select("article_id").Where("tag_name = ?", f.Tag))
	}
	if f.Author != "" {
		q = q.Where("author_id IN (?)",
			s.db.Model(&userRow{}).Select("id").Where("username = ?", f.Author))
	}
	if f.Favorited != "" {
		q = q.Where("id IN (?)",
			s.db.Table("favorites").
				Select("favorites.article_id").
				Joins("JOIN users ON users.id = favorites.user_id").
				Where("users.username = ?", f.Favorited))
	}

	return s.page(ctx, q, viewerID, f.Limit, f.Offset)
}

func (s *Store) FeedArticles(ctx context.Context, viewerID int64, limit, offset int) ([]*models.Article, error) {
	q := s.db.WithContext(ctx).Model(&articleRow{}).
		Where("author_id IN (?)",
			s.db.Model(&followRow{}).Select("followee_id").Where("follower_id = ?", viewerID))
	return s.page(ctx, q, &viewerID, limit, offset)
}

func (s *Store) page(ctx context.Context, q *gorm.DB, viewerID *int64, limit, offset int) ([]*models.Article, error) {
	var rows []articleRow
	err := q.Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return s.project(ctx, rows, viewerID)
}

func (s *Store) GetArticle(ctx context.Context, slug string, viewerID *int64) (*models.Article, error) {
	var row articleRow
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error; err != nil {
		return nil, translate(err, "")
	}
	list, err := s.project(ctx, []articleRow{row}, viewerID)
	if err != nil {
		return nil, err
	}
	return list[0], nil
}

type favoritesCount struct {
	ArticleID int64
	N         int64
}

// project собирает ArticleView пакетными запросами: авторы, теги, счётчики, флаги зрителя.
func (s *Store) project(ctx context.Context, rows []articleRow, viewerID *int64) ([]*models.Article, error) {
	out := make([]*models.Article, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	db := s.db.WithContext(ctx)

	ids := make([]int64, 0, len(rows))
	authorIDs := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
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

	var tags []articleTagRow
	if err := db.Where("article_id IN ?", ids).Order("tag_name").Find(&tags).Error; err != nil {
		return nil, err
	}
	tagsByID := map[int64][]string{}
	for _, t := range tags {
		tagsByID[t.ArticleID] = append(tagsByID[t.ArticleID], t.TagName)
	}

	var counts []favoritesCount
	err := db.Model(&favoriteRow{}).
		Select("article_id, COUNT(*) AS n").
		Where("article_id IN ?", ids).
		Group("article_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	countByID := map[int64]int64{}
	for _, c := range counts {
		countByID[c.ArticleID] = c.N
	}

	favorited := map[int64]bool{}
	following := map[int64]bool{}
	if viewerID != nil {
		var favIDs []int64
		if err := db.Model(&favoriteRow{}).
			Where("user_id = ? AND article_id IN ?", *viewerID, ids).
			Pluck("article_id", &favIDs).Error; err != nil {
			return nil, err
		}
		for _, id := range favIDs {
			favorited[id] = true
		}

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
		a := &models.Article{
			ID:             r.ID,
			Slug:           r.Slug,
			Title:          r.Title,
			Description:    r.Description,
			Body:           r.Body,
			TagList:        tagsByID[r.ID],
			CreatedAt:      r.CreatedAt,
			UpdatedAt:      r.UpdatedAt,
			Favorited:      favorited[r.ID],
			FavoritesCount: countByID[r.ID],
		}
		if a.TagList == nil {
			a.TagList = []string{}
		}
		if author, ok := authorByID[r.AuthorID]; ok {
			a.Author = author.toProfile(following[r.AuthorID])
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *Store) CreateArticle(ctx context.Context, d *models.ArticleDraft) (int64, error) {
	row := articleRow{
		Slug:        d.Slug,
		Title:       d.Title,
		Description: d.Description,
		Body:        d.Body,
		AuthorID:    d.AuthorID,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return insertTags(tx, row.ID, d.TagList)
	})
	if err != nil {
		return 0, translate(err, "slug")
	}
	return row.ID, nil
}

func (s *Store) UpdateArticle(ctx context.Context, id int64, ch *models.ArticleChanges) error {
	updates := map[string]any{"updated_at": time.Now()}
	set := func(column string, v *string) {
		if v != nil {
			updates[column] = *v
		}
	}
	set("slug", ch.Slug)
	set("title", ch.Title)
	set("description", ch.Description)
	set("body", ch.Body)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&articleRow{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		if ch.TagList == nil {
			return nil
		}
		if err := tx.Where("article_id = ?", id).Delete(&articleTagRow{}).Error; err != nil {
			return err
		}
		return insertTags(tx, id, *ch.TagList)
	})
	return translate(err, "slug")
}

func insertTags(tx *gorm.DB, articleID int64, names []string) error {
	if len(names) == 0 {
		return nil
	}
	tags := make([]tagRow, 0, len(names))
	links := make([]articleTagRow, 0, len(names))
	for _, n := range names {
		tags = append(tags, tagRow{Name: n})
		links = append(links, articleTagRow{ArticleID: articleID, TagName: n})
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tags).Error; err != nil {
		return err
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}

// DeleteArticle удаляет статью вместе с зависимыми строками; на внешние ключи не полагается.
func (s *Store) DeleteArticle(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dep := range []any{&commentRow{}, &favoriteRow{}, &articleTagRow{}} {
			if err := tx.Where("article_id = ?", id).Delete(dep).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&articleRow{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

func (s *Store) Favorite(ctx context.Context, userID, articleID int64) error {
	err := s.db.WithContext(ctx).Create(&favoriteRow{UserID: userID, ArticleID: articleID}).Error
	return translate(err, "favorite")
}

func (s *Store) Unfavorite(ctx context.Context, userID, articleID int64) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&favoriteRow{}).Error
	return translate(err, "")
}
