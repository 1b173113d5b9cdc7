package models

type PostType string

const (
	PostBlog   PostType = "Blog"
	PostNotice PostType = "Notice"
)

const PostDateLayout = "2006-01-02 15:04"

type Post struct {
	ID          string      `json:"id" example:"5f1c8f0e-8a4e-4f57-9d3c-3b2b0e6a1c11"`
	Title       string      `json:"title" example:"Office closed Friday"`
	Content     string      `json:"content"`
	Author      string      `json:"author" example:"Priya Nair"`
	AuthorID    string      `json:"author_id" example:"hr001"`
	Date        string      `json:"date" example:"2024-03-05 10:15"`
	ImagePath   string      `json:"image_path,omitempty"`
	Designation Designation `json:"designation" example:"HR"`
	PostType    PostType    `json:"post_type" example:"Notice"`
}

type PostCreatePayload struct {
	Title    string `json:"title" form:"title" validate:"required,max=200"`
	Content  string `json:"content" form:"content" validate:"required"`
	PostType string `json:"post_type" form:"post_type" validate:"omitempty,oneof=Blog Notice"`
}
