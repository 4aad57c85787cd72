package gormstore

import "context"

func (s *Store) ListTags(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).Model(&articleTagRow{}).
		Group("tag_name").
		Order("COUNT(*) DESC").Order("tag_name").
		Pluck("tag_name", &names).Error
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
