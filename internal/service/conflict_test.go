package service_test

import (
	"testing"
	"time"

	"github.com/arafatanam/FilmFlow/internal/database/models"
	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/mocks"
	"github.com/arafatanam/FilmFlow/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestConflictResultClassification(t *testing.T) {
	t.Run("clean result", func(t *testing.T) {
		r := service.ConflictResult{}
		assert.False(t, r.HasAny())
		assert.False(t, r.Blocking())
		assert.Nil(t, r.Type())
		assert.Nil(t, r.StoredType())
		assert.Empty(t, r.Warning())
	})

	t.Run("missing info alone never blocks", func(t *testing.T) {
		r := service.ConflictResult{MissingInfo: true}
		assert.True(t, r.HasAny())
		assert.False(t, r.Blocking())
		assert.Equal(t, models.ConflictTypeMissingInfo, *r.Type())
		assert.Nil(t, r.StoredType())
		assert.NotEmpty(t, r.Warning())
	})

	t.Run("unavailability blocks", func(t *testing.T) {
		r := service.ConflictResult{PersonalUnavailable: true}
		assert.True(t, r.Blocking())
		assert.Equal(t, models.ConflictTypeUnavailable, *r.Type())
		assert.Equal(t, models.ConflictTypeUnavailable, *r.StoredType())
	})

	t.Run("double booking blocks", func(t *testing.T) {
		r := service.ConflictResult{DoubleBooked: true}
		assert.True(t, r.Blocking())
		assert.Equal(t, models.ConflictTypeDoubleBooked, *r.Type())
		assert.Equal(t, models.ConflictTypeDoubleBooked, *r.StoredType())
	})

	t.Run("double booking takes precedence", func(t *testing.T) {
		r := service.ConflictResult{DoubleBooked: true, PersonalUnavailable: true, MissingInfo: true}
		assert.Equal(t, models.ConflictTypeDoubleBooked, *r.Type())
		assert.Equal(t, models.ConflictTypeDoubleBooked, *r.StoredType())
	})

	t.Run("unavailability takes precedence over missing info", func(t *testing.T) {
		r := service.ConflictResult{PersonalUnavailable: true, MissingInfo: true}
		assert.Equal(t, models.ConflictTypeUnavailable, *r.Type())
	})

	t.Run("warning names both blocking causes", func(t *testing.T) {
		r := service.ConflictResult{DoubleBooked: true, PersonalUnavailable: true}
		assert.Contains(t, r.Warning(), "double-booked")
		assert.Contains(t, r.Warning(), "unavailable")
	})
}

type ConflictServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAssignmentRepo *mocks.MockScheduleAssignmentRepositoryInterface
	mockCrewRepo       *mocks.MockCrewProfileRepositoryInterface
	mockProjectRepo    *mocks.MockProjectRepositoryInterface
	conflictService    *service.ConflictService
}

func (suite *ConflictServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssignmentRepo = mocks.NewMockScheduleAssignmentRepositoryInterface(suite.ctrl)
	suite.mockCrewRepo = mocks.NewMockCrewProfileRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.conflictService = service.NewConflictService(suite.mockAssignmentRepo, suite.mockCrewRepo, suite.mockProjectRepo)
}

func (suite *ConflictServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func completeCrewProfile(id uuid.UUID) *models.CrewProfile {
	expiry := time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC)
	return &models.CrewProfile{
		BaseModel:             models.BaseModel{ID: id},
		FullName:              "Morgan Sato",
		Email:                 "morgan.sato@example.com",
		EmergencyContactName:  "Jamie Sato",
		EmergencyContactPhone: "+1-555-0188",
		DietaryRestrictions:   models.StringList([]string{"none"}),
		HasInsurance:          true,
		InsuranceExpiry:       &expiry,
	}
}

func (suite *ConflictServiceTestSuite) TestCheckConflicts_Clean() {
	projectID := uuid.New()
	crewID := uuid.New()
	shootDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(&models.Project{}, nil)
	suite.mockCrewRepo.EXPECT().GetByID(crewID).Return(completeCrewProfile(crewID), nil)
	suite.mockAssignmentRepo.EXPECT().ExistsForCrewOnDate(crewID, shootDate, projectID).Return(false, nil)

	result, err := suite.conflictService.CheckConflicts(projectID, crewID, shootDate)

	suite.NoError(err)
	suite.False(result.HasAny())
}

func (suite *ConflictServiceTestSuite) TestCheckConflicts_DoubleBooked() {
	projectID := uuid.New()
	crewID := uuid.New()
	shootDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(&models.Project{}, nil)
	suite.mockCrewRepo.EXPECT().GetByID(crewID).Return(completeCrewProfile(crewID), nil)
	suite.mockAssignmentRepo.EXPECT().ExistsForCrewOnDate(crewID, shootDate, projectID).Return(true, nil)

	result, err := suite.conflictService.CheckConflicts(projectID, crewID, shootDate)

	suite.NoError(err)
	suite.True(result.DoubleBooked)
	suite.True(result.Blocking())
}

func (suite *ConflictServiceTestSuite) TestCheckConflicts_PersonalUnavailable() {
	projectID := uuid.New()
	crewID := uuid.New()
	shootDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	crew := completeCrewProfile(crewID)
	crew.UnavailableDates = models.StringList([]string{"2026-09-10"})

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(&models.Project{}, nil)
	suite.mockCrewRepo.EXPECT().GetByID(crewID).Return(crew, nil)
	suite.mockAssignmentRepo.EXPECT().ExistsForCrewOnDate(crewID, shootDate, projectID).Return(false, nil)

	result, err := suite.conflictService.CheckConflicts(projectID, crewID, shootDate)

	suite.NoError(err)
	suite.True(result.PersonalUnavailable)
	suite.False(result.DoubleBooked)
}

func (suite *ConflictServiceTestSuite) TestCheckConflicts_MissingInfo() {
	projectID := uuid.New()
	crewID := uuid.New()
	shootDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	crew := completeCrewProfile(crewID)
	crew.EmergencyContactName = ""

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(&models.Project{}, nil)
	suite.mockCrewRepo.EXPECT().GetByID(crewID).Return(crew, nil)
	suite.mockAssignmentRepo.EXPECT().ExistsForCrewOnDate(crewID, shootDate, projectID).Return(false, nil)

	result, err := suite.conflictService.CheckConflicts(projectID, crewID, shootDate)

	suite.NoError(err)
	suite.True(result.MissingInfo)
	suite.False(result.Blocking())
}

func (suite *ConflictServiceTestSuite) TestCheckConflicts_ExpiredInsuranceOnShootDate() {
	projectID := uuid.New()
	crewID := uuid.New()
	shootDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	crew := completeCrewProfile(crewID)
	expiry := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
	crew.InsuranceExpiry = &expiry

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(&models.Project{}, nil)
	suite.mockCrewRepo.EXPECT().GetByID(crewID).Return(crew, nil)
	suite.mockAssignmentRepo.EXPECT().ExistsForCrewOnDate(crewID, shootDate, projectID).Return(false, nil)

	result, err := suite.conflictService.CheckConflicts(projectID, crewID, shootDate)

	suite.NoError(err)
	suite.True(result.MissingInfo)
}

func (suite *ConflictServiceTestSuite) TestCheckConflicts_ProjectNotFound() {
	projectID := uuid.New()
	crewID := uuid.New()
	shootDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.conflictService.CheckConflicts(projectID, crewID, shootDate)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *ConflictServiceTestSuite) TestCheckConflicts_CrewNotFound() {
	projectID := uuid.New()
	crewID := uuid.New()
	shootDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(&models.Project{}, nil)
	suite.mockCrewRepo.EXPECT().GetByID(crewID).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.conflictService.CheckConflicts(projectID, crewID, shootDate)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrCrewNotFound)
}

func TestConflictServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConflictServiceTestSuite))
}
