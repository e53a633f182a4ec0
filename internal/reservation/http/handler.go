package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sewakita/sewakita-backend/internal/auth"
	"github.com/sewakita/sewakita-backend/internal/file"
	"github.com/sewakita/sewakita-backend/internal/organization"
	"github.com/sewakita/sewakita-backend/internal/pkg/request"
	"github.com/sewakita/sewakita-backend/internal/pkg/response"
	"github.com/sewakita/sewakita-backend/internal/reservation"
	"github.com/sewakita/sewakita-backend/internal/user"
)

type Handler struct {
	service     reservation.Service
	orgService  organization.Service
	userService user.Service
	fileService file.Service
}

func NewHandler(service reservation.Service, orgService organization.Service, userService user.Service, fileService file.Service) *Handler {
	return &Handler{
		service:     service,
		orgService:  orgService,
		userService: userService,
		fileService: fileService,
	}
}

func (h *Handler) isSysAdmin(c *gin.Context) bool {
	userID := auth.GetUserID(c)
	if userID == "" {
		return false
	}
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	return err == nil && u.IsSystemAdmin
}

// canView reports whether the current user may read the reservation:
// the booking owner, a system admin, or a manager of the asset's
// organization.
func (h *Handler) canView(c *gin.Context, res *reservation.Reservation) bool {
	userID := auth.GetUserID(c)
	if userID == "" {
		return false
	}
	if res.UserID == userID {
		return true
	}
	if h.isSysAdmin(c) {
		return true
	}
	ok, err := h.orgService.IsManagerOrAbove(c.Request.Context(), res.OrganizationID, userID)
	return err == nil && ok
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateReservationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		UserID:       auth.GetUserID(c),
		AssetID:      body.AssetID,
		StartsAt:     body.StartsAt,
		EndsAt:       body.EndsAt,
		ContactName:  body.ContactName,
		ContactPhone: body.ContactPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(res))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !h.canView(c, res) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

func (h *Handler) List(c *gin.Context) {
	var req ListReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	filter := reservation.Filter{
		UserID:         req.UserID,
		AssetID:        req.AssetID,
		OrganizationID: req.OrganizationID,
		Status:         req.Status,
		StartsAfter:    req.StartsAfter,
		EndsBefore:     req.EndsBefore,
		Page:           req.Page,
		PageSize:       req.PageSize,
		SortBy:         req.SortBy,
		SortDesc:       strings.EqualFold(req.SortOrder, "desc"),
	}

	// Regular users only ever see their own reservations. Managers may
	// browse their organization, system admins see everything.
	if !h.isSysAdmin(c) {
		userID := auth.GetUserID(c)
		manages := false
		if filter.OrganizationID != "" {
			ok, err := h.orgService.IsManagerOrAbove(c.Request.Context(), filter.OrganizationID, userID)
			manages = err == nil && ok
		}
		if !manages {
			filter.UserID = userID
		}
	}

	reservations, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReservationResponse, len(reservations))
	for i, res := range reservations {
		items[i] = NewReservationResponse(res)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.UpdateStatus(
		c.Request.Context(),
		uri.ID,
		reservation.Status(body.Status),
		auth.GetUserID(c),
		h.isSysAdmin(c),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

func (h *Handler) AttachPaymentProof(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, file.ErrFileRequired)
		return
	}

	userID := auth.GetUserID(c)

	proof, err := h.fileService.Upload(c.Request.Context(), header, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.service.AttachPaymentProof(c.Request.Context(), uri.ID, proof.ID, userID)
	if err != nil {
		// The reservation did not accept the proof, drop the orphan file.
		_ = h.fileService.Delete(c.Request.Context(), proof.ID)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
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

// CheckAvailability is the public live-availability probe.
func (h *Handler) CheckAvailability(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	available, err := h.service.CheckAvailability(c.Request.Context(), uri.ID, req.Start, req.End)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		AssetID:   uri.ID,
		Start:     req.Start,
		End:       req.End,
		Available: available,
	})
}
