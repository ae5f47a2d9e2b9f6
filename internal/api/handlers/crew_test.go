package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arafatanam/FilmFlow/internal/api/handlers"
	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/mocks"
	"github.com/arafatanam/FilmFlow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CrewHandlerTestSuite defines the test suite for CrewHandler
type CrewHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCrewServiceInterface
	handler     *handlers.CrewHandler
	router      *gin.Engine
}

func (suite *CrewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCrewServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCrewHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.POST("/crew/signup", suite.handler.SignUp)
	suite.router.GET("/crew", suite.handler.ListCrew)
	suite.router.GET("/crew/:id", suite.handler.GetCrewProfile)
	suite.router.PUT("/crew/:id", suite.handler.UpdateCrewProfile)
	suite.router.PUT("/crew/:id/unavailability", suite.handler.SetUnavailability)
	suite.router.GET("/projects/:id/crew", suite.handler.GetProjectRoster)
}

func (suite *CrewHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func crewProfileResponseFixture() service.CrewProfileResponse {
	return service.CrewProfileResponse{
		ID:               uuid.New(),
		FullName:         "Morgan Sato",
		Email:            "morgan.sato@example.com",
		Phone:            "+1-555-0142",
		Department:       "Camera",
		HasInsurance:     true,
		UnavailableDates: []string{},
		Certifications:   []string{"Steadicam Operator"},
	}
}

func (suite *CrewHandlerTestSuite) TestSignUp_Success() {
	crew := crewProfileResponseFixture()
	resp := &service.SignUpResponse{
		Crew:          crew,
		ProjectID:     uuid.New(),
		ProjectCode:   "H7K2M9",
		Department:    "Camera",
		FormCompleted: true,
	}
	suite.mockService.EXPECT().SignUp(gomock.Any()).Return(resp, nil)

	body := `{"project_code":"H7K2M9","full_name":"Morgan Sato","email":"morgan.sato@example.com","department":"Camera"}`
	req := httptest.NewRequest(http.MethodPost, "/crew/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.SignUpResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "H7K2M9", got.ProjectCode)
	assert.Equal(suite.T(), "Camera", got.Department)
	assert.True(suite.T(), got.FormCompleted)
	assert.Equal(suite.T(), "morgan.sato@example.com", got.Crew.Email)
}

func (suite *CrewHandlerTestSuite) TestSignUp_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/crew/signup", bytes.NewBufferString("{broken"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid request body")
}

func (suite *CrewHandlerTestSuite) TestSignUp_UnknownProjectCode() {
	suite.mockService.EXPECT().SignUp(gomock.Any()).Return(nil, apperrors.ErrProjectNotFound)

	body := `{"project_code":"ZZZZZZ","full_name":"Morgan Sato","email":"morgan.sato@example.com","department":"Camera"}`
	req := httptest.NewRequest(http.MethodPost, "/crew/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "project not found")
}

func (suite *CrewHandlerTestSuite) TestSignUp_ValidationError() {
	suite.mockService.EXPECT().SignUp(gomock.Any()).Return(nil, apperrors.NewValidationError("insurance_expiry", "must be a date in YYYY-MM-DD format"))

	body := `{"project_code":"H7K2M9","full_name":"Morgan Sato","email":"morgan.sato@example.com","department":"Camera","insurance_expiry":"soon"}`
	req := httptest.NewRequest(http.MethodPost, "/crew/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "insurance_expiry")
}

func (suite *CrewHandlerTestSuite) TestGetCrewProfile_Success() {
	crew := crewProfileResponseFixture()
	suite.mockService.EXPECT().GetProfile(crew.ID).Return(&crew, nil)

	req := httptest.NewRequest(http.MethodGet, "/crew/"+crew.ID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.CrewProfileResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), crew.ID, got.ID)
	assert.Equal(suite.T(), "Morgan Sato", got.FullName)
}

func (suite *CrewHandlerTestSuite) TestGetCrewProfile_InvalidUUID() {
	req := httptest.NewRequest(http.MethodGet, "/crew/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid UUID format")
}

func (suite *CrewHandlerTestSuite) TestGetCrewProfile_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetProfile(id).Return(nil, apperrors.ErrCrewNotFound)

	req := httptest.NewRequest(http.MethodGet, "/crew/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "crew member not found")
}

func (suite *CrewHandlerTestSuite) TestListCrew_DefaultPagination() {
	resp := &service.CrewListResponse{
		Crew:   []service.CrewProfileResponse{crewProfileResponseFixture()},
		Total:  1,
		Limit:  50,
		Offset: 0,
	}
	suite.mockService.EXPECT().ListCrew(50, 0).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/crew", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.CrewListResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Crew, 1)
}

func (suite *CrewHandlerTestSuite) TestListCrew_ServiceError() {
	suite.mockService.EXPECT().ListCrew(50, 0).Return(nil, errors.New("db failure"))

	req := httptest.NewRequest(http.MethodGet, "/crew", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Failed to list crew")
}

func (suite *CrewHandlerTestSuite) TestUpdateCrewProfile_Success() {
	crew := crewProfileResponseFixture()
	crew.Phone = "+1-555-0199"
	suite.mockService.EXPECT().UpdateProfile(crew.ID, gomock.Any()).Return(&crew, nil)

	body := `{"phone":"+1-555-0199"}`
	req := httptest.NewRequest(http.MethodPut, "/crew/"+crew.ID.String(), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.CrewProfileResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "+1-555-0199", got.Phone)
}

func (suite *CrewHandlerTestSuite) TestUpdateCrewProfile_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().UpdateProfile(id, gomock.Any()).Return(nil, apperrors.ErrCrewNotFound)

	req := httptest.NewRequest(http.MethodPut, "/crew/"+id.String(), bytes.NewBufferString(`{"phone":"+1-555-0199"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CrewHandlerTestSuite) TestSetUnavailability_Success() {
	crew := crewProfileResponseFixture()
	crew.UnavailableDates = []string{"2026-09-10", "2026-09-11"}
	suite.mockService.EXPECT().SetUnavailability(crew.ID, gomock.Any()).Return(&crew, nil)

	body := `{"dates":["2026-09-10","2026-09-11"]}`
	req := httptest.NewRequest(http.MethodPut, "/crew/"+crew.ID.String()+"/unavailability", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.CrewProfileResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"2026-09-10", "2026-09-11"}, got.UnavailableDates)
}

func (suite *CrewHandlerTestSuite) TestSetUnavailability_MalformedDate() {
	id := uuid.New()
	suite.mockService.EXPECT().SetUnavailability(id, gomock.Any()).Return(nil, apperrors.NewValidationError("dates", "must be dates in YYYY-MM-DD format"))

	body := `{"dates":["next tuesday"]}`
	req := httptest.NewRequest(http.MethodPut, "/crew/"+id.String()+"/unavailability", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "dates")
}

func (suite *CrewHandlerTestSuite) TestGetProjectRoster_Success() {
	projectID := uuid.New()
	resp := &service.RosterResponse{
		ProjectID: projectID,
		Members: []service.RosterMember{
			{
				CrewID:        uuid.New(),
				FullName:      "Morgan Sato",
				Email:         "morgan.sato@example.com",
				Department:    "Camera",
				FormCompleted: true,
			},
		},
		Total: 1,
	}
	suite.mockService.EXPECT().Roster(projectID).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/projects/"+projectID.String()+"/crew", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.RosterResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), projectID, got.ProjectID)
	assert.Equal(suite.T(), 1, got.Total)
	assert.Len(suite.T(), got.Members, 1)
	assert.Equal(suite.T(), "Camera", got.Members[0].Department)
}

func (suite *CrewHandlerTestSuite) TestGetProjectRoster_ProjectNotFound() {
	projectID := uuid.New()
	suite.mockService.EXPECT().Roster(projectID).Return(nil, apperrors.ErrProjectNotFound)

	req := httptest.NewRequest(http.MethodGet, "/projects/"+projectID.String()+"/crew", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestCrewHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CrewHandlerTestSuite))
}
