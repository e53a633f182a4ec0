package post

import (
	"net/http"
	"time"

	"github.com/sewakita/sewakita-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "post not found")
	ErrTitleRequired   = apperror.New(http.StatusBadRequest, "title is required")
	ErrContentRequired = apperror.New(http.StatusBadRequest, "content is required")
)

// Post is a news or announcement entry shown on the site. Unpublished
// posts are drafts visible to administrators only.
type Post struct {
	ID          string
	Title       string
	Content     string
	Published   bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Filter struct {
	Keyword       string
	PublishedOnly bool
	Page          int
	PageSize      int
}
