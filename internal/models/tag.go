package models

type TagsResponse struct {
	Tags []string `json:"tags"`
}
