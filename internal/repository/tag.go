package repository

import (
	"context"
)

type TagRepository struct {
	db DB
}

func NewTagRepository(db DB) *TagRepository {
	return &TagRepository{db: db}
}

// ListTags: теги по частоте использования, при равенстве по имени.
func (r *TagRepository) ListTags(ctx context.Context) ([]string, error) {
	const q = `
		SELECT tag_name
		FROM article_tags
		GROUP BY tag_name
		ORDER BY COUNT(*) DESC, tag_name
	`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}
