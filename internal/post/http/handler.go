package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sewakita/sewakita-backend/internal/pkg/request"
	"github.com/sewakita/sewakita-backend/internal/pkg/response"
	"github.com/sewakita/sewakita-backend/internal/post"
)

type Handler struct {
	service post.Service
}

func NewHandler(service post.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreatePostBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), post.CreateRequest{
		Title:     body.Title,
		Content:   body.Content,
		Published: body.Published,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPostResponse(p))
}

// Get returns a single post. Drafts are not served here, only through the
// admin listing.
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !p.Published {
		response.Error(c, post.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, NewPostResponse(p))
}

// List returns published posts.
func (h *Handler) List(c *gin.Context) {
	h.list(c, true)
}

// ListAll returns all posts including drafts.
func (h *Handler) ListAll(c *gin.Context) {
	h.list(c, false)
}

func (h *Handler) list(c *gin.Context, publishedOnly bool) {
	var req ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	posts, total, err := h.service.List(c.Request.Context(), post.Filter{
		Keyword:       req.Keyword,
		PublishedOnly: publishedOnly,
		Page:          req.Page,
		PageSize:      req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PostResponse, len(posts))
	for i, p := range posts {
		items[i] = NewPostResponse(p)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdatePostBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Update(c.Request.Context(), uri.ID, post.UpdateRequest{
		Title:     body.Title,
		Content:   body.Content,
		Published: body.Published,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPostResponse(p))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
