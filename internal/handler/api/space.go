package api

import (
	"net/http"

	reqdto "amenity-booking/internal/handler/dto/request"
	resdto "amenity-booking/internal/handler/dto/response"
	"amenity-booking/internal/handler/httperr"
	"amenity-booking/internal/pkg/clock"
	"amenity-booking/internal/usecase/commands"
	"amenity-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpaceHandler struct {
	cmds commands.SpaceCommands
	q    queries.SpaceQueries
}

func NewSpaceHandler(cmds commands.SpaceCommands, q queries.SpaceQueries) *SpaceHandler {
	return &SpaceHandler{cmds: cmds, q: q}
}

// @Summary Create common space
// @Description Register a bookable amenity (administrators only)
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string false "Tenant ID"
// @Param request body reqdto.CreateSpaceRequest true "Create space request"
// @Success 201 {object} resdto.SpaceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/spaces [post]
func (h *SpaceHandler) Create(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}
	result, err := h.cmds.CreateSpace(c.Request.Context(), viewer, req.ToAttributes())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithSpace(c, http.StatusCreated, result.SpaceID)
}

// @Summary List common spaces
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string false "Tenant ID"
// @Param active query bool false "Only active spaces"
// @Param category query string false "Category"
// @Success 200 {array} resdto.SpaceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/spaces [get]
func (h *SpaceHandler) List(c *gin.Context) {
	var query reqdto.ListSpacesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBindError(c, err)
		return
	}
	views, err := h.q.ListSpaces(c.Request.Context(), query.ToFilters())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromSpaceViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get common space
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string false "Tenant ID"
// @Param id path string true "Space ID"
// @Success 200 {object} resdto.SpaceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/spaces/{id} [get]
func (h *SpaceHandler) Get(c *gin.Context) {
	id, ok := idParamOrAbort(c)
	if !ok {
		return
	}
	h.respondWithSpace(c, http.StatusOK, id)
}

// @Summary Update common space
// @Description Partially update a space; nullable fields are cleared with an explicit null
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string false "Tenant ID"
// @Param id path string true "Space ID"
// @Param request body reqdto.UpdateSpaceRequest true "Fields to change"
// @Success 200 {object} resdto.SpaceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/spaces/{id} [patch]
func (h *SpaceHandler) Update(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParamOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}
	if err := h.cmds.UpdateSpace(c.Request.Context(), viewer, id, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithSpace(c, http.StatusOK, id)
}

// @Summary Delete common space
// @Description Fails with 409 while pending or confirmed bookings reference the space
// @Tags spaces
// @Security BearerAuth
// @Param X-Tenant-ID header string false "Tenant ID"
// @Param id path string true "Space ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/spaces/{id} [delete]
func (h *SpaceHandler) Delete(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParamOrAbort(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteSpace(c.Request.Context(), viewer, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Occupied slots of a day
// @Description Pending and confirmed bookings starting on the given date, without owner details
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param X-Tenant-ID header string false "Tenant ID"
// @Param id path string true "Space ID"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {array} resdto.OccupiedSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/spaces/{id}/occupied-slots [get]
func (h *SpaceHandler) OccupiedSlots(c *gin.Context) {
	id, ok := idParamOrAbort(c)
	if !ok {
		return
	}
	date, err := clock.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "date must be YYYY-MM-DD", nil)
		return
	}
	slots, err := h.q.GetOccupiedSlots(c.Request.Context(), id, date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromOccupiedSlots(slots)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SpaceHandler) respondWithSpace(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetSpace(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromSpaceView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}
