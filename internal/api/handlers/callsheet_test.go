package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/arafatanam/FilmFlow/internal/api/handlers"
	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/mocks"
	"github.com/arafatanam/FilmFlow/internal/service"
	"github.com/arafatanam/FilmFlow/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CallSheetHandlerTestSuite defines the test suite for CallSheetHandler
type CallSheetHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCallSheetServiceInterface
	handler     *handlers.CallSheetHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *CallSheetHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCallSheetServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCallSheetHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/callsheets/send", suite.handler.SendCallSheet)
	suite.httpSuite.Router.GET("/projects/:id/callsheets", suite.handler.CallSheetHistory)
}

// TearDownTest cleans up after each test
func (suite *CallSheetHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func sendCallSheetBody(projectID uuid.UUID) *service.SendCallSheetRequest {
	return &service.SendCallSheetRequest{
		ProjectID:       projectID,
		ShootDate:       "2026-09-14",
		GeneralCallTime: "06:00",
	}
}

func (suite *CallSheetHandlerTestSuite) TestSendCallSheet_Success() {
	projectID := uuid.New()
	result := &service.SendResult{
		CallSheet: service.CallSheetResponse{
			ID:              uuid.New(),
			ProjectID:       projectID,
			ShootDate:       "2026-09-14",
			GeneralCallTime: "06:00",
			RecipientCount:  4,
		},
		Recipients: 4,
		Delivered:  3,
		Failed:     1,
	}
	suite.mockService.EXPECT().Send(gomock.Any()).Return(result, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/callsheets/send", sendCallSheetBody(projectID))

	var got service.SendResult
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal(4, got.Recipients)
	suite.Equal(3, got.Delivered)
	suite.Equal(1, got.Failed)
	suite.Equal("06:00", got.CallSheet.GeneralCallTime)
}

func (suite *CallSheetHandlerTestSuite) TestSendCallSheet_InvalidBody() {
	recorder := suite.httpSuite.MakeRequest("POST", "/callsheets/send", "not an object")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *CallSheetHandlerTestSuite) TestSendCallSheet_InvalidCallTime() {
	suite.mockService.EXPECT().Send(gomock.Any()).Return(nil, apperrors.ErrInvalidCallTime)

	recorder := suite.httpSuite.MakeRequest("POST", "/callsheets/send", sendCallSheetBody(uuid.New()))

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "call time must be in HH:MM format")
}

func (suite *CallSheetHandlerTestSuite) TestSendCallSheet_NoAssignments() {
	suite.mockService.EXPECT().Send(gomock.Any()).Return(nil, apperrors.ErrNoAssignmentsForDate)

	recorder := suite.httpSuite.MakeRequest("POST", "/callsheets/send", sendCallSheetBody(uuid.New()))

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "no assignments exist for this date")
}

func (suite *CallSheetHandlerTestSuite) TestSendCallSheet_MailerNotConfigured() {
	suite.mockService.EXPECT().Send(gomock.Any()).Return(nil, apperrors.ErrMailerNotConfigured)

	recorder := suite.httpSuite.MakeRequest("POST", "/callsheets/send", sendCallSheetBody(uuid.New()))

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusServiceUnavailable, "email dispatch is not configured")
}

func (suite *CallSheetHandlerTestSuite) TestSendCallSheet_ServiceError() {
	suite.mockService.EXPECT().Send(gomock.Any()).Return(nil, errors.New("render failure"))

	recorder := suite.httpSuite.MakeRequest("POST", "/callsheets/send", sendCallSheetBody(uuid.New()))

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to send call sheet")
}

func (suite *CallSheetHandlerTestSuite) TestCallSheetHistory_Success() {
	projectID := uuid.New()
	records := []service.CallSheetResponse{
		{
			ID:              uuid.New(),
			ProjectID:       projectID,
			ShootDate:       "2026-09-15",
			GeneralCallTime: "07:00",
			RecipientCount:  5,
		},
		{
			ID:              uuid.New(),
			ProjectID:       projectID,
			ShootDate:       "2026-09-14",
			GeneralCallTime: "06:00",
			RecipientCount:  4,
		},
	}
	suite.mockService.EXPECT().History(projectID).Return(records, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/projects/"+projectID.String()+"/callsheets", nil)

	suite.Equal(http.StatusOK, recorder.Code)

	var got []service.CallSheetResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &got)
	suite.Len(got, 2)
	suite.Equal("2026-09-15", got[0].ShootDate)
	suite.Equal("2026-09-14", got[1].ShootDate)
}

func (suite *CallSheetHandlerTestSuite) TestCallSheetHistory_InvalidUUID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/projects/not-a-uuid/callsheets", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid UUID format")
}

func (suite *CallSheetHandlerTestSuite) TestCallSheetHistory_ProjectNotFound() {
	projectID := uuid.New()
	suite.mockService.EXPECT().History(projectID).Return(nil, apperrors.ErrProjectNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/projects/"+projectID.String()+"/callsheets", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "project not found")
}

func TestCallSheetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CallSheetHandlerTestSuite))
}
