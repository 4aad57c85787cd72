package models

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Body      string    `json:"body"`
	Author    Profile   `json:"author"`
}

// swagger:model CreateComment
type CreateComment struct {
	Body string `json:"body" validate:"required" example:"Thank you so much!"`
}

type CreateCommentRequest struct {
	Comment CreateComment `json:"comment"`
}

type CommentResponse struct {
	Comment *Comment `json:"comment"`
}

type CommentsResponse struct {
	Comments []*Comment `json:"comments"`
}
