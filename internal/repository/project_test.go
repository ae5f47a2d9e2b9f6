package repository

import (
	"testing"
	"time"

	"github.com/arafatanam/FilmFlow/internal/database/models"
	"github.com/arafatanam/FilmFlow/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *ProjectRepository
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProjectRepositoryTestSuite) TestCreate() {
	project := suite.factories.Project.WithCode("MH7K2M")

	err := suite.repo.Create(project)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, project.ID)

	var stored models.Project
	err = suite.baseTestSuite.DB.First(&stored, "id = ?", project.ID).Error
	suite.NoError(err)
	suite.Equal("MH7K2M", stored.Code)
	suite.Equal("Test Production", stored.Name)
}

func (suite *ProjectRepositoryTestSuite) TestCreateDuplicateCode() {
	first := suite.factories.Project.WithCode("DUP234")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Project.WithCode("DUP234")
	err := suite.repo.Create(second)

	suite.Error(err)
}

func (suite *ProjectRepositoryTestSuite) TestGetByID() {
	project := suite.factories.Project.Create()
	suite.NoError(suite.repo.Create(project))

	retrieved, err := suite.repo.GetByID(project.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(project.ID, retrieved.ID)
	suite.Equal(project.Code, retrieved.Code)
}

func (suite *ProjectRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

func (suite *ProjectRepositoryTestSuite) TestGetByCode() {
	project := suite.factories.Project.WithCode("XK4P7Q")
	suite.NoError(suite.repo.Create(project))

	retrieved, err := suite.repo.GetByCode("XK4P7Q")

	suite.NoError(err)
	suite.Equal(project.ID, retrieved.ID)
}

func (suite *ProjectRepositoryTestSuite) TestGetByCodeNotFound() {
	retrieved, err := suite.repo.GetByCode("ZZZZZZ")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

func (suite *ProjectRepositoryTestSuite) TestCodeExists() {
	project := suite.factories.Project.WithCode("EX5T2S")
	suite.NoError(suite.repo.Create(project))

	exists, err := suite.repo.CodeExists("EX5T2S")
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.CodeExists("NOPE22")
	suite.NoError(err)
	suite.False(exists)
}

func (suite *ProjectRepositoryTestSuite) TestUpdate() {
	project := suite.factories.Project.Create()
	suite.NoError(suite.repo.Create(project))

	project.Name = "Renamed Production"
	project.Status = models.ProjectStatusCompleted
	err := suite.repo.Update(project)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(project.ID)
	suite.NoError(err)
	suite.Equal("Renamed Production", retrieved.Name)
	suite.Equal(models.ProjectStatusCompleted, retrieved.Status)
}

func (suite *ProjectRepositoryTestSuite) TestListOrdersByStartDateDesc() {
	older := suite.factories.Project.WithDates(
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
	)
	newer := suite.factories.Project.WithDates(
		time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
	)
	suite.NoError(suite.repo.Create(older))
	suite.NoError(suite.repo.Create(newer))

	projects, total, err := suite.repo.List(10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(projects, 2)
	suite.Equal(newer.ID, projects[0].ID)
	suite.Equal(older.ID, projects[1].ID)
}

func (suite *ProjectRepositoryTestSuite) TestListWithPagination() {
	for i := 0; i < 5; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Project.Create()))
	}

	projects, total, err := suite.repo.List(2, 0)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(projects, 2)

	projects, total, err = suite.repo.List(2, 4)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(projects, 1)
}

func (suite *ProjectRepositoryTestSuite) TestListByStatus() {
	active := suite.factories.Project.WithStatus(models.ProjectStatusActive)
	planning := suite.factories.Project.WithStatus(models.ProjectStatusPlanning)
	cancelled := suite.factories.Project.WithStatus(models.ProjectStatusCancelled)
	suite.NoError(suite.repo.Create(active))
	suite.NoError(suite.repo.Create(planning))
	suite.NoError(suite.repo.Create(cancelled))

	projects, total, err := suite.repo.ListByStatus(models.ProjectStatusActive, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(projects, 1)
	suite.Equal(active.ID, projects[0].ID)
}

func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
