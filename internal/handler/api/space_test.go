//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"amenity-booking/internal/domain/authz"
	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/handler"
	"amenity-booking/internal/handler/api"
	resdto "amenity-booking/internal/handler/dto/response"
	"amenity-booking/internal/pkg/errs"
	"amenity-booking/internal/usecase/commands"
	"amenity-booking/internal/usecase/queries"
	"amenity-booking/tests/common/builder"
	"amenity-booking/tests/common/httptest"
	"amenity-booking/tests/common/testutil"
	commandsmock "amenity-booking/tests/mock/commands"
	queriesmock "amenity-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SpaceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSpaceCommands
	mockQueries  *queriesmock.MockSpaceQueries
	handler      *api.SpaceHandler
}

func (s *SpaceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(handler.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSpaceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSpaceQueries(s.mockCtrl)
	s.handler = api.NewSpaceHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/spaces", fakeAuth)
	g.POST("", s.handler.Create)
	g.GET("", s.handler.List)
	g.GET("/:id", s.handler.Get)
	g.PATCH("/:id", s.handler.Update)
	g.DELETE("/:id", s.handler.Delete)
	g.GET("/:id/occupied-slots", s.handler.OccupiedSlots)
}

func (s *SpaceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSpaceHandlerSuite(t *testing.T) {
	suite.Run(t, new(SpaceHandlerTestSuite))
}

type testCaseSpace struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *SpaceHandlerTestSuite) TestCreate() {
	url := "/spaces"

	reqBody := builder.NewSpaceBuilder().BuildCreateRequestDTO()
	returnView := builder.NewSpaceBuilder().BuildView()
	expectedResult := &commands.CreateSpaceResult{SpaceID: returnView.ID}

	validation := []testCaseSpace{
		{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: category (required)", mutate: testutil.Field("category", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: time_unit (required)", mutate: testutil.Field("time_unit", nil), expectCode: http.StatusBadRequest},
		{name: "unknown category", mutate: testutil.Field("category", "spa"), expectCode: http.StatusBadRequest},
		{name: "unknown time unit", mutate: testutil.Field("time_unit", "week"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateSpace(gomock.Any(), authz.NewViewer(adminID, authz.RoleAdmin), gomock.Any()).
			DoAndReturn(func(_ any, _ authz.ViewerContext, attrs space.Attributes) (*commands.CreateSpaceResult, error) {
				s.Equal(space.CategorySocialHall, attrs.Category)
				s.Equal(int32(40), attrs.Capacity)
				return expectedResult, nil
			})
		s.mockQueries.EXPECT().GetSpace(gomock.Any(), returnView.ID).Return(returnView, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, adminToken)

		var body resdto.SpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body.ID)
		s.True(body.ApprovalRequired)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, adminToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 403 Forbidden for residents", func() {
		s.mockCommands.EXPECT().CreateSpace(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, authz.ErrAdminRequired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, residentToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, "FORBIDDEN")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"name":`, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *SpaceHandlerTestSuite) TestList() {
	s.Run("success: filters are forwarded", func() {
		category := space.CategoryGym
		s.mockQueries.EXPECT().ListSpaces(gomock.Any(), queries.SpaceFilters{ActiveOnly: true, Category: &category}).
			Return([]*queries.SpaceView{builder.NewSpaceBuilder().BuildView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spaces?active=true&category=gym", nil, residentToken)

		var body []resdto.SpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 Bad Request on unknown category", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spaces?category=spa", nil, residentToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *SpaceHandlerTestSuite) TestGet() {
	s.Run("error: 404 Not Found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetSpace(gomock.Any(), id).Return(nil, space.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spaces/"+id.String(), nil, residentToken)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spaces/not-a-uuid", nil, residentToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *SpaceHandlerTestSuite) TestUpdate() {
	view := builder.NewSpaceBuilder().BuildView()
	url := "/spaces/" + view.ID.String()

	s.Run("success: explicit null clears the price", func() {
		s.mockCommands.EXPECT().UpdateSpace(gomock.Any(), gomock.Any(), view.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ authz.ViewerContext, _ uuid.UUID, p space.Patch) error {
				s.True(p.PricePerUnit.Set)
				s.Nil(p.PricePerUnit.Value)
				s.Nil(p.Name)
				s.Require().NotNil(p.Capacity)
				s.Equal(int32(12), *p.Capacity)
				return nil
			})
		s.mockQueries.EXPECT().GetSpace(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, `{"price_per_unit":null,"capacity":12}`, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request from domain validation", func() {
		s.mockCommands.EXPECT().UpdateSpace(gomock.Any(), gomock.Any(), view.ID, gomock.Any()).Return(space.ErrInvalidCapacity)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, `{"capacity":0}`, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "capacity must be at least 1")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *SpaceHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/spaces/" + id.String()

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteSpace(gomock.Any(), gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, adminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict while bookings are active", func() {
		s.mockCommands.EXPECT().DeleteSpace(gomock.Any(), gomock.Any(), id).
			Return(errs.Newf(errs.KindConflict, "space has %d active booking(s)", 2))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "2 active booking(s)")
	})
}

// ================================================================================
// TestOccupiedSlots
// ================================================================================

func (s *SpaceHandlerTestSuite) TestOccupiedSlots() {
	id := uuid.New()
	base := "/spaces/" + id.String() + "/occupied-slots"

	s.Run("success: slots without owner details", func() {
		day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().GetOccupiedSlots(gomock.Any(), id, day).Return([]*queries.OccupiedSlotView{
			{StartAt: day.Add(9 * time.Hour), EndAt: day.Add(11 * time.Hour), State: "CONFIRMED"},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2026-05-01", nil, residentToken)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("2026-05-01T09:00:00", body[0]["start_at"])
		s.NotContains(body[0], "user_id")
	})

	s.Run("error: 400 Bad Request on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=05/01/2026", nil, residentToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date must be YYYY-MM-DD")
	})
}
