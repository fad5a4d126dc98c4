package blogs

import "BlogGolang/internal/entity"

// BlogRequest is the body accepted by create and update. Fields are pointers
// so that an absent or null field fails validation while "" does not.
type BlogRequest struct {
	Title *string `json:"title" validate:"required"`
	Body  *string `json:"body" validate:"required"`
}

func (r BlogRequest) ToEntity(id int64) entity.Blog {
	blog := entity.Blog{ID: id}
	if r.Title != nil {
		blog.Title = *r.Title
	}
	if r.Body != nil {
		blog.Body = *r.Body
	}
	return blog
}

// ShowBlog is the projection returned to clients.
type ShowBlog struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func NewShowBlog(blog entity.Blog) ShowBlog {
	return ShowBlog{
		ID:    blog.ID,
		Title: blog.Title,
		Body:  blog.Body,
	}
}

type UnpublishedResponse struct {
	Data struct {
		Blog []string `json:"blog"`
	} `json:"data"`
}

type CommentsResponse struct {
	Data struct {
		Blog     int64    `json:"blog"`
		Comments []string `json:"comments"`
	} `json:"data"`
}
