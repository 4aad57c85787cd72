package gormstore

import "time"

// Строки таблиц; имена таблиц совпадают с SQL-миграциями pgx-бэкенда.

type userRow struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Bio          *string
	Image        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRow) TableName() string { return "users" }

type followRow struct {
	FollowerID int64 `gorm:"primaryKey;autoIncrement:false"`
	FolloweeID int64 `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt  time.Time
}

func (followRow) TableName() string { return "follows" }

type articleRow struct {
	ID          int64  `gorm:"primaryKey"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Body        string `gorm:"not null"`
	AuthorID    int64  `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (articleRow) TableName() string { return "articles" }

type tagRow struct {
	Name string `gorm:"primaryKey"`
}

func (tagRow) TableName() string { return "tags" }

type articleTagRow struct {
	ArticleID int64  `gorm:"primaryKey;autoIncrement:false"`
	TagName   string `gorm:"primaryKey;index"`
}

func (articleTagRow) TableName() string { return "article_tags" }

type favoriteRow struct {
	UserID    int64 `gorm:"primaryKey;autoIncrement:false"`
	ArticleID int64 `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
}

func (favoriteRow) TableName() string { return "favorites" }

type commentRow struct {
	ID        int64  `gorm:"primaryKey"`
	ArticleID int64  `gorm:"index;not null"`
	AuthorID  int64  `gorm:"not null"`
	Body      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (commentRow) TableName() string { return "comments" }
