package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"conduit/internal/models"
	"conduit/internal/repository"
	"conduit/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

func init() {
	utils.PasswordCost = bcrypt.MinCost
}

type follow struct{ follower, followee int64 }
type favorite struct{ user, article int64 }

// memStore: in-memory реализация всех репозиториев сервисного слоя.
type memStore struct {
	mu        sync.Mutex
	nextID    int64
	users     map[int64]*models.User
	follows   map[follow]bool
	articles  map[int64]*models.ArticleDraft
	created   map[int64]time.Time
	favorites map[favorite]bool
	comments  map[int64]*models.Comment
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[int64]*models.User{},
		follows:   map[follow]bool{},
		articles:  map[int64]*models.ArticleDraft{},
		created:   map[int64]time.Time{},
		favorites: map[favorite]bool{},
		comments:  map[int64]*models.Comment{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.users {
		if x.Email == u.Email {
			return &repository.ConflictError{Field: "email"}
		}
		if x.Username == u.Username {
			return &repository.ConflictError{Field: "username"}
		}
	}
	u.ID = m.id()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) UpdateUser(_ context.Context, id int64, in *models.UserChanges) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for _, x := range m.users {
		if x.ID == id {
			continue
		}
		if in.Email != nil && x.Email == *in.Email {
			return nil, &repository.ConflictError{Field: "email"}
		}
		if in.Username != nil && x.Username == *in.Username {
			return nil, &repository.ConflictError{Field: "username"}
		}
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.PasswordHash != nil {
		u.PasswordHash = *in.PasswordHash
	}
	if in.Bio != nil {
		u.Bio = in.Bio
	}
	if in.Image != nil {
		u.Image = in.Image
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) profile(userID int64, viewerID *int64) models.Profile {
	u := m.users[userID]
	p := models.Profile{ID: u.ID, Username: u.Username, Bio: u.Bio, Image: u.Image}
	if viewerID != nil {
		p.Following = m.follows[follow{*viewerID, u.ID}]
	}
	return p
}

func (m *memStore) GetProfile(_ context.Context, username string, viewerID *int64) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			p := m.profile(u.ID, viewerID)
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) Follow(_ context.Context, followerID, followeeID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.follows[follow{followerID, followeeID}] = true
	return nil
}

func (m *memStore) Unfollow(_ context.Context, followerID, followeeID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.follows, follow{followerID, followeeID})
	return nil
}

func (m *memStore) view(id int64, viewerID *int64) *models.Article {
	d := m.articles[id]
	a := &models.Article{
		ID:          id,
		Slug:        d.Slug,
		Title:       d.Title,
		Description: d.Description,
		Body:        d.Body,
		TagList:     append([]string{}, d.TagList...),
		CreatedAt:   m.created[id],
		UpdatedAt:   m.created[id],
		Author:      m.profile(d.AuthorID, viewerID),
	}
	for f := range m.favorites {
		if f.article == id {
			a.FavoritesCount++
			if viewerID != nil && f.user == *viewerID {
				a.Favorited = true
			}
		}
	}
	return a
}

func (m *memStore) sorted(match func(id int64, d *models.ArticleDraft) bool, viewerID *int64, limit, offset int) []*models.Article {
	var ids []int64
	for id, d := range m.articles {
		if match(id, d) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	var out []*models.Article
	for i, id := range ids {
		if i < offset || len(out) >= limit {
			continue
		}
		out = append(out, m.view(id, viewerID))
	}
	return out
}

func (m *memStore) ListArticles(_ context.Context, f models.ArticleFilter, viewerID *int64) ([]*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(id int64, d *models.ArticleDraft) bool {
		if f.Tag != "" && !contains(d.TagList, f.Tag) {
			return false
		}
		if f.Author != "" && m.users[d.AuthorID].Username != f.Author {
			return false
		}
		if f.Favorited != "" {
			found := false
			for fav := range m.favorites {
				if fav.article == id && m.users[fav.user].Username == f.Favorited {
					found = true
				}
			}
			return found
		}
		return true
	}, viewerID, f.Limit, f.Offset), nil
}

func (m *memStore) FeedArticles(_ context.Context, viewerID int64, limit, offset int) ([]*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(_ int64, d *models.ArticleDraft) bool {
		return m.follows[follow{viewerID, d.AuthorID}]
	}, &viewerID, limit, offset), nil
}

func (m *memStore) GetArticle(_ context.Context, slug string, viewerID *int64) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, d := range m.articles {
		if d.Slug == slug {
			return m.view(id, viewerID), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) CreateArticle(_ context.Context, d *models.ArticleDraft) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.articles {
		if x.Slug == d.Slug {
			return 0, &repository.ConflictError{Field: "slug"}
		}
	}
	id := m.id()
	cp := *d
	m.articles[id] = &cp
	m.created[id] = time.Now()
	return id, nil
}

func (m *memStore) UpdateArticle(_ context.Context, id int64, ch *models.ArticleChanges) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.articles[id]
	if !ok {
		return repository.ErrNotFound
	}
	if ch.Slug != nil {
		for xid, x := range m.articles {
			if xid != id && x.Slug == *ch.Slug {
				return &repository.ConflictError{Field: "slug"}
			}
		}
		d.Slug = *ch.Slug
	}
	if ch.Title != nil {
		d.Title = *ch.Title
	}
	if ch.Description != nil {
		d.Description = *ch.Description
	}
	if ch.Body != nil {
		d.Body = *ch.Body
	}
	if ch.TagList != nil {
		d.TagList = *ch.TagList
	}
	return nil
}

func (m *memStore) DeleteArticle(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.articles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.articles, id)
	return nil
}

func (m *memStore) Favorite(_ context.Context, userID, articleID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := favorite{userID, articleID}
	if m.favorites[key] {
		return &repository.ConflictError{Field: "favorite"}
	}
	m.favorites[key] = true
	return nil
}

func (m *memStore) Unfavorite(_ context.Context, userID, articleID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.favorites, favorite{userID, articleID})
	return nil
}

func (m *memStore) ListComments(_ context.Context, articleID int64, viewerID *int64) ([]*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Comment
	for _, c := range m.comments {
		if c.ArticleID == articleID {
			cp := *c
			cp.Author = m.profile(c.Author.ID, viewerID)
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memStore) CreateComment(_ context.Context, articleID, authorID int64, body string) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.articles[articleID]; !ok {
		return nil, repository.ErrNotFound
	}
	c := &models.Comment{ID: m.id(), ArticleID: articleID, Body: body, Author: m.profile(authorID, nil)}
	m.comments[c.ID] = c
	cp := *c
	return &cp, nil
}

func (m *memStore) GetComment(_ context.Context, articleID, commentID int64) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.comments[commentID]
	if !ok || c.ArticleID != articleID {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memStore) DeleteComment(_ context.Context, commentID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.comments[commentID]; !ok {
		return repository.ErrNotFound
	}
	delete(m.comments, commentID)
	return nil
}

func (m *memStore) ListTags(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := map[string]int{}
	for _, d := range m.articles {
		for _, t := range d.TagList {
			counts[t]++
		}
	}
	tags := make([]string, 0, len(counts))
	for t := range counts {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	return tags, nil
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// stubTokens выдаёт предсказуемые токены.
type stubTokens struct{}

func (stubTokens) Issue(userID int64) (string, error) {
	return fmt.Sprintf("token-%d", userID), nil
}
