package api

import (
	"context"
	"net/http"

	"amenity-booking/internal/domain/authz"
	reqdto "amenity-booking/internal/handler/dto/request"
	resdto "amenity-booking/internal/handler/dto/response"
	"amenity-booking/internal/handler/httperr"
	"amenity-booking/internal/usecase/commands"
	"amenity-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a space for a window. Timestamps are local literals; an offset, if sent, is dropped.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string false "Tenant ID"
// @Param Idempotency-Key header string false "UUID; a retry with the same key and body returns the first booking"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Replayed by Idempotency-Key"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	key, ok := idempotencyKeyOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}
	cmd := req.ToCommand()
	cmd.IdempotencyKey = key

	result, err := h.cmds.CreateBooking(c.Request.Context(), viewer, cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	h.respondWithBooking(c, status, viewer, result.BookingID)
}

// @Summary List bookings
// @Description Keyset-paginated by start time. Residents only ever see their own bookings.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string false "Tenant ID"
// @Param state query string false "PENDING, CONFIRMED, CANCELLED or COMPLETED"
// @Param spaceId query string false "Space ID"
// @Param category query string false "Space category"
// @Param from query string false "Window start (local literal)"
// @Param to query string false "Window end (local literal)"
// @Param userId query string false "Requester ID (administrators only)"
// @Param limit query int false "Max items (default 20, max 200)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBindError(c, err)
		return
	}
	filters, err := query.ToFilters()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	limit := queries.ValidateLimit(query.Limit)
	items, next, err := h.q.ListBookings(c.Request.Context(), viewer, filters, query.Cursor(), limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookingPage(items, next)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string false "Tenant ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParamOrAbort(c)
	if !ok {
		return
	}
	h.respondWithBooking(c, http.StatusOK, viewer, id)
}

// @Summary Update booking
// @Description Residents may only cancel their own bookings; administrators may change any field and state.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string false "Tenant ID"
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Fields to change"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParamOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err = h.cmds.UpdateBooking(c.Request.Context(), viewer, id, cmd); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithBooking(c, http.StatusOK, viewer, id)
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string false "Tenant ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.CancelBooking)
}

// @Summary Approve booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string false "Tenant ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id}/approve [post]
func (h *BookingHandler) Approve(c *gin.Context) {
	h.transition(c, h.cmds.ApproveBooking)
}

// @Summary Reject booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string false "Tenant ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id}/reject [post]
func (h *BookingHandler) Reject(c *gin.Context) {
	h.transition(c, h.cmds.RejectBooking)
}

// @Summary Delete booking
// @Description Hard delete (administrators only)
// @Tags bookings
// @Security BearerAuth
// @Param X-Tenant-ID header string false "Tenant ID"
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParamOrAbort(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteBooking(c.Request.Context(), viewer, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type transitionFunc func(ctx context.Context, viewer authz.ViewerContext, id uuid.UUID) error

func (h *BookingHandler) transition(c *gin.Context, fn transitionFunc) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParamOrAbort(c)
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), viewer, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithBooking(c, http.StatusOK, viewer, id)
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, status int, viewer authz.ViewerContext, id uuid.UUID) {
	view, err := h.q.GetBooking(c.Request.Context(), viewer, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}
