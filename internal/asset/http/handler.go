package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sewakita/sewakita-backend/internal/asset"
	"github.com/sewakita/sewakita-backend/internal/auth"
	"github.com/sewakita/sewakita-backend/internal/organization"
	"github.com/sewakita/sewakita-backend/internal/pkg/request"
	"github.com/sewakita/sewakita-backend/internal/pkg/response"
	"github.com/sewakita/sewakita-backend/internal/user"
)

type Handler struct {
	service     asset.Service
	orgService  organization.Service
	userService user.Service
}

func NewHandler(service asset.Service, orgService organization.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		orgService:  orgService,
		userService: userService,
	}
}

// canManageOrg reports whether the current user may manage assets of the
// given organization (system admin, or org owner/admin).
func (h *Handler) canManageOrg(c *gin.Context, orgID string) bool {
	userID := auth.GetUserID(c)
	if userID == "" {
		return false
	}

	if u, err := h.userService.GetByID(c.Request.Context(), userID); err == nil && u.IsSystemAdmin {
		return true
	}

	ok, err := h.orgService.IsManagerOrAbove(c.Request.Context(), orgID, userID)
	if err != nil {
		return false
	}
	return ok
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateAssetBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.canManageOrg(c, body.OrganizationID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	a, err := h.service.Create(c.Request.Context(), asset.CreateRequest{
		OrganizationID: body.OrganizationID,
		CategoryID:     body.CategoryID,
		Name:           body.Name,
		Description:    body.Description,
		Address:        body.Address,
		Unit:           body.Unit,
		Rate:           body.Rate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewAssetResponse(a))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAssetResponse(a))
}

func (h *Handler) List(c *gin.Context) {
	var req ListAssetsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	filter := asset.Filter{
		OrganizationID: req.OrganizationID,
		CategoryID:     req.CategoryID,
		Unit:           req.Unit,
		IsActive:       req.IsActive,
		Keyword:        req.Keyword,
		Page:           req.Page,
		PageSize:       req.PageSize,
	}

	assets, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]AssetResponse, len(assets))
	for i, a := range assets {
		items[i] = NewAssetResponse(a)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !h.canManageOrg(c, a.OrganizationID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	var body UpdateAssetBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), uri.ID, asset.UpdateRequest{
		CategoryID:  body.CategoryID,
		Name:        body.Name,
		Description: body.Description,
		Address:     body.Address,
		Unit:        body.Unit,
		Rate:        body.Rate,
		IsActive:    body.IsActive,
		PhotoFileID: body.PhotoFileID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAssetResponse(updated))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !h.canManageOrg(c, a.OrganizationID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
