package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/arafatanam/FilmFlow/internal/api/handlers"
	"github.com/arafatanam/FilmFlow/internal/database/models"
	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/mocks"
	"github.com/arafatanam/FilmFlow/internal/service"
	"github.com/arafatanam/FilmFlow/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReportHandlerTestSuite defines the test suite for ReportHandler
type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockReportServiceInterface
	handler     *handlers.ReportHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ReportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.handler = handlers.NewReportHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/projects/:id/reports/completion", suite.handler.CompletionReport)
	suite.httpSuite.Router.GET("/projects/:id/reports/conflicts", suite.handler.ConflictReport)
}

// TearDownTest cleans up after each test
func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportHandlerTestSuite) TestCompletionReport_Success() {
	projectID := uuid.New()
	report := &service.CompletionReport{
		ProjectID:        projectID,
		ProjectName:      "Midnight Harbor",
		TotalCrew:        3,
		FormsCompleted:   2,
		FullyComplete:    1,
		MissingEmergency: 1,
		MissingDietary:   0,
		MissingInsurance: 2,
		Entries: []service.CompletionEntry{
			{
				CrewID:        uuid.New(),
				FullName:      "Morgan Sato",
				Email:         "morgan.sato@example.com",
				Department:    "Camera",
				FormCompleted: true,
				Complete:      true,
			},
		},
	}
	suite.mockService.EXPECT().Completion(projectID).Return(report, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/projects/"+projectID.String()+"/reports/completion", nil)

	var got service.CompletionReport
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal(projectID, got.ProjectID)
	suite.Equal(3, got.TotalCrew)
	suite.Equal(2, got.FormsCompleted)
	suite.Equal(1, got.FullyComplete)
	suite.Equal(2, got.MissingInsurance)
	suite.Len(got.Entries, 1)
}

func (suite *ReportHandlerTestSuite) TestCompletionReport_InvalidUUID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/projects/not-a-uuid/reports/completion", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid UUID format")
}

func (suite *ReportHandlerTestSuite) TestCompletionReport_ProjectNotFound() {
	projectID := uuid.New()
	suite.mockService.EXPECT().Completion(projectID).Return(nil, apperrors.ErrProjectNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/projects/"+projectID.String()+"/reports/completion", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "project not found")
}

func (suite *ReportHandlerTestSuite) TestCompletionReport_ServiceError() {
	projectID := uuid.New()
	suite.mockService.EXPECT().Completion(projectID).Return(nil, errors.New("db failure"))

	recorder := suite.httpSuite.MakeRequest("GET", "/projects/"+projectID.String()+"/reports/completion", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to build completion report")
}

func (suite *ReportHandlerTestSuite) TestConflictReport_Success() {
	projectID := uuid.New()
	conflictType := models.ConflictTypeUnavailable
	report := &service.ConflictReport{
		ProjectID:        projectID,
		ProjectName:      "Midnight Harbor",
		TotalAssignments: 5,
		TotalConflicts:   1,
		DoubleBooked:     0,
		Unavailable:      1,
		MissingInfo:      0,
		Entries: []service.ConflictEntry{
			{
				AssignmentID: uuid.New(),
				CrewID:       uuid.New(),
				FullName:     "Morgan Sato",
				Email:        "morgan.sato@example.com",
				Department:   "Camera",
				ShootDate:    "2026-09-14",
				CallTime:     "06:30",
				Conflicts:    service.ConflictResult{PersonalUnavailable: true},
				ConflictType: &conflictType,
			},
		},
	}
	suite.mockService.EXPECT().Conflicts(projectID).Return(report, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/projects/"+projectID.String()+"/reports/conflicts", nil)

	var got service.ConflictReport
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal(5, got.TotalAssignments)
	suite.Equal(1, got.TotalConflicts)
	suite.Equal(1, got.Unavailable)
	suite.Len(got.Entries, 1)
	suite.True(got.Entries[0].Conflicts.PersonalUnavailable)
	suite.Equal(models.ConflictTypeUnavailable, *got.Entries[0].ConflictType)
}

func (suite *ReportHandlerTestSuite) TestConflictReport_ProjectNotFound() {
	projectID := uuid.New()
	suite.mockService.EXPECT().Conflicts(projectID).Return(nil, apperrors.ErrProjectNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/projects/"+projectID.String()+"/reports/conflicts", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "project not found")
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
