package blogs

import (
	"BlogGolang/pkg/response"
	"fmt"
	"net/http"
)

var (
	ErrBlogNotFound = response.NewError(http.StatusNotFound, "blog not found")
	ErrCreateBlog   = response.NewError(http.StatusInternalServerError, "failed to create blog")
	ErrUpdateBlog   = response.NewError(http.StatusInternalServerError, "failed to update blog")
	ErrDeleteBlog   = response.NewError(http.StatusInternalServerError, "failed to delete blog")
)

func NotAvailable(id int64) string {
	return fmt.Sprintf("Blog with id %d not available", id)
}
