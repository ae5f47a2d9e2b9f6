package service_test

import (
	"testing"
	"time"

	"github.com/arafatanam/FilmFlow/internal/database/models"
	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/mocks"
	"github.com/arafatanam/FilmFlow/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CrewServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockCrewRepo        *mocks.MockCrewProfileRepositoryInterface
	mockProjectRepo     *mocks.MockProjectRepositoryInterface
	mockProjectCrewRepo *mocks.MockProjectCrewRepositoryInterface
	crewService         *service.CrewService
}

func (suite *CrewServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCrewRepo = mocks.NewMockCrewProfileRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockProjectCrewRepo = mocks.NewMockProjectCrewRepositoryInterface(suite.ctrl)
	// nil mailer: sign-up must work without SMTP configured
	suite.crewService = service.NewCrewService(
		suite.mockCrewRepo,
		suite.mockProjectRepo,
		suite.mockProjectCrewRepo,
		nil,
		validator.New(),
	)
}

func (suite *CrewServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CrewServiceTestSuite) activeProject() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Code:      "XK7P2Q",
		Name:      "Midnight Harbor",
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		Status:    models.ProjectStatusActive,
	}
}

func (suite *CrewServiceTestSuite) signUpRequest() *service.SignUpRequest {
	expiry := "2027-12-31"
	return &service.SignUpRequest{
		ProjectCode:           "XK7P2Q",
		FullName:              "Morgan Sato",
		Email:                 "morgan.sato@example.com",
		Phone:                 "+1-555-0117",
		Department:            "Camera",
		EmergencyContactName:  "Jamie Sato",
		EmergencyContactPhone: "+1-555-0188",
		DietaryRestrictions:   []string{"vegetarian"},
		HasInsurance:          true,
		InsuranceExpiry:       &expiry,
	}
}

func (suite *CrewServiceTestSuite) TestSignUp_NewProfile() {
	project := suite.activeProject()
	req := suite.signUpRequest()

	suite.mockProjectRepo.EXPECT().GetByCode("XK7P2Q").Return(project, nil)
	suite.mockCrewRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound)
	suite.mockCrewRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.CrewProfile) error {
		c.ID = uuid.New()
		return nil
	})
	suite.mockProjectCrewRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(link *models.ProjectCrew) error {
		suite.Equal(project.ID, link.ProjectID)
		suite.Equal("Camera", link.Department)
		suite.True(link.FormCompleted)
		suite.False(link.MissingEmergency)
		suite.False(link.MissingDietary)
		suite.False(link.MissingInsurance)
		return nil
	})
	suite.mockProjectCrewRepo.EXPECT().UpdateMissingInfo(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.crewService.SignUp(req)

	suite.NoError(err)
	suite.Equal("XK7P2Q", resp.ProjectCode)
	suite.True(resp.FormCompleted)
	suite.False(resp.MissingInfo.Any())
	suite.Equal("Morgan Sato", resp.Crew.FullName)
}

func (suite *CrewServiceTestSuite) TestSignUp_ExistingProfileRefreshed() {
	project := suite.activeProject()
	req := suite.signUpRequest()
	req.Department = "Lighting"

	existing := &models.CrewProfile{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		FullName:   "M. Sato",
		Email:      req.Email,
		Department: "Camera",
	}

	suite.mockProjectRepo.EXPECT().GetByCode("XK7P2Q").Return(project, nil)
	suite.mockCrewRepo.EXPECT().GetByEmail(req.Email).Return(existing, nil)
	suite.mockCrewRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(c *models.CrewProfile) error {
		suite.Equal(existing.ID, c.ID)
		suite.Equal("Morgan Sato", c.FullName)
		return nil
	})
	suite.mockProjectCrewRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(link *models.ProjectCrew) error {
		suite.Equal("Lighting", link.Department)
		return nil
	})
	suite.mockProjectCrewRepo.EXPECT().UpdateMissingInfo(existing.ID, gomock.Any()).Return(nil)

	resp, err := suite.crewService.SignUp(req)

	suite.NoError(err)
	suite.Equal("Lighting", resp.Department)
}

func (suite *CrewServiceTestSuite) TestSignUp_IncompleteFormFlagsMissingInfo() {
	project := suite.activeProject()
	req := suite.signUpRequest()
	req.EmergencyContactName = ""
	req.EmergencyContactPhone = ""
	req.DietaryRestrictions = nil
	req.HasInsurance = false
	req.InsuranceExpiry = nil

	suite.mockProjectRepo.EXPECT().GetByCode("XK7P2Q").Return(project, nil)
	suite.mockCrewRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound)
	suite.mockCrewRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockProjectCrewRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(link *models.ProjectCrew) error {
		suite.True(link.MissingEmergency)
		suite.True(link.MissingDietary)
		suite.True(link.MissingInsurance)
		suite.True(link.FormCompleted)
		return nil
	})
	suite.mockProjectCrewRepo.EXPECT().UpdateMissingInfo(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.crewService.SignUp(req)

	suite.NoError(err)
	suite.True(resp.MissingInfo.Any())
	suite.True(resp.FormCompleted)
}

func (suite *CrewServiceTestSuite) TestSignUp_UnknownProjectCode() {
	req := suite.signUpRequest()

	suite.mockProjectRepo.EXPECT().GetByCode("XK7P2Q").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.crewService.SignUp(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *CrewServiceTestSuite) TestSignUp_InvalidEmail() {
	req := suite.signUpRequest()
	req.Email = "not-an-email"

	resp, err := suite.crewService.SignUp(req)

	suite.Nil(resp)
	suite.Error(err)
}

func (suite *CrewServiceTestSuite) TestSignUp_BadInsuranceExpiry() {
	req := suite.signUpRequest()
	bad := "31/12/2027"
	req.InsuranceExpiry = &bad

	resp, err := suite.crewService.SignUp(req)

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *CrewServiceTestSuite) TestUpdateProfile_RecomputesFlags() {
	crewID := uuid.New()
	crew := completeCrewProfile(crewID)
	crew.EmergencyContactName = ""
	crew.EmergencyContactPhone = ""
	name := "Jamie Sato"
	phone := "+1-555-0188"

	suite.mockCrewRepo.EXPECT().GetByID(crewID).Return(crew, nil)
	suite.mockCrewRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockProjectCrewRepo.EXPECT().UpdateMissingInfo(crewID, gomock.Any()).DoAndReturn(
		func(id uuid.UUID, flags models.MissingInfoFlags) error {
			suite.False(flags.MissingEmergency)
			return nil
		})

	resp, err := suite.crewService.UpdateProfile(crewID, &service.UpdateProfileRequest{
		EmergencyContactName:  &name,
		EmergencyContactPhone: &phone,
	})

	suite.NoError(err)
	suite.Equal("Jamie Sato", resp.EmergencyContactName)
}

func (suite *CrewServiceTestSuite) TestUpdateProfile_ClearInsuranceExpiry() {
	crewID := uuid.New()
	crew := completeCrewProfile(crewID)
	empty := ""

	suite.mockCrewRepo.EXPECT().GetByID(crewID).Return(crew, nil)
	suite.mockCrewRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(c *models.CrewProfile) error {
		suite.Nil(c.InsuranceExpiry)
		return nil
	})
	suite.mockProjectCrewRepo.EXPECT().UpdateMissingInfo(crewID, gomock.Any()).Return(nil)

	resp, err := suite.crewService.UpdateProfile(crewID, &service.UpdateProfileRequest{
		InsuranceExpiry: &empty,
	})

	suite.NoError(err)
	suite.Nil(resp.InsuranceExpiry)
}

func (suite *CrewServiceTestSuite) TestUpdateProfile_NotFound() {
	crewID := uuid.New()

	suite.mockCrewRepo.EXPECT().GetByID(crewID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.crewService.UpdateProfile(crewID, &service.UpdateProfileRequest{})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrCrewNotFound)
}

func (suite *CrewServiceTestSuite) TestSetUnavailability_ReplacesWholesale() {
	crewID := uuid.New()
	crew := completeCrewProfile(crewID)
	crew.UnavailableDates = models.StringList([]string{"2026-09-01"})

	suite.mockCrewRepo.EXPECT().GetByID(crewID).Return(crew, nil)
	suite.mockCrewRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(c *models.CrewProfile) error {
		suite.Equal([]string{"2026-09-10", "2026-09-11"}, c.UnavailableDateList())
		return nil
	})

	resp, err := suite.crewService.SetUnavailability(crewID, &service.SetUnavailabilityRequest{
		Dates: []string{"2026-09-10", "2026-09-11"},
	})

	suite.NoError(err)
	suite.Equal([]string{"2026-09-10", "2026-09-11"}, resp.UnavailableDates)
}

func (suite *CrewServiceTestSuite) TestSetUnavailability_EmptyListClears() {
	crewID := uuid.New()
	crew := completeCrewProfile(crewID)
	crew.UnavailableDates = models.StringList([]string{"2026-09-01"})

	suite.mockCrewRepo.EXPECT().GetByID(crewID).Return(crew, nil)
	suite.mockCrewRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.crewService.SetUnavailability(crewID, &service.SetUnavailabilityRequest{
		Dates: []string{},
	})

	suite.NoError(err)
	suite.Empty(resp.UnavailableDates)
}

func (suite *CrewServiceTestSuite) TestSetUnavailability_RejectsMalformedDate() {
	crewID := uuid.New()

	resp, err := suite.crewService.SetUnavailability(crewID, &service.SetUnavailabilityRequest{
		Dates: []string{"2026-09-10", "next tuesday"},
	})

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *CrewServiceTestSuite) TestRoster() {
	projectID := uuid.New()
	crew := completeCrewProfile(uuid.New())
	links := []models.ProjectCrew{
		{
			ProjectID:        projectID,
			CrewID:           crew.ID,
			Department:       "Camera",
			FormCompleted:    true,
			MissingInsurance: true,
			Crew:             *crew,
		},
	}

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(&models.Project{}, nil)
	suite.mockProjectCrewRepo.EXPECT().GetByProjectID(projectID).Return(links, nil)

	resp, err := suite.crewService.Roster(projectID)

	suite.NoError(err)
	suite.Equal(1, resp.Total)
	suite.Equal("Camera", resp.Members[0].Department)
	suite.True(resp.Members[0].MissingInfo.MissingInsurance)
	suite.False(resp.Members[0].MissingInfo.MissingEmergency)
}

func (suite *CrewServiceTestSuite) TestRoster_ProjectNotFound() {
	projectID := uuid.New()

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.crewService.Roster(projectID)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *CrewServiceTestSuite) TestListCrew_LimitNormalized() {
	suite.mockCrewRepo.EXPECT().List(50, 0).Return([]models.CrewProfile{}, int64(0), nil)

	resp, err := suite.crewService.ListCrew(500, -1)

	suite.NoError(err)
	suite.Equal(50, resp.Limit)
	suite.Equal(0, resp.Offset)
}

func TestCrewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CrewServiceTestSuite))
}
