package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/arafatanam/FilmFlow/internal/config"
	"github.com/arafatanam/FilmFlow/internal/database"
	"github.com/arafatanam/FilmFlow/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ProjectData struct {
	Code      string  `yaml:"code"`
	Name      string  `yaml:"name"`
	StartDate string  `yaml:"start_date"`
	EndDate   string  `yaml:"end_date"`
	Location  string  `yaml:"location,omitempty"`
	Latitude  float64 `yaml:"latitude,omitempty"`
	Longitude float64 `yaml:"longitude,omitempty"`
	Status    string  `yaml:"status,omitempty"`
}

type CrewData struct {
	FullName              string   `yaml:"full_name"`
	Email                 string   `yaml:"email"`
	Phone                 string   `yaml:"phone,omitempty"`
	Department            string   `yaml:"department"`
	EmergencyContactName  string   `yaml:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string   `yaml:"emergency_contact_phone,omitempty"`
	DietaryRestrictions   []string `yaml:"dietary_restrictions,omitempty"`
	Address               string   `yaml:"address,omitempty"`
	HasInsurance          bool     `yaml:"has_insurance"`
	InsuranceExpiry       string   `yaml:"insurance_expiry,omitempty"`
	UnavailableDates      []string `yaml:"unavailable_dates,omitempty"`
	Certifications        []string `yaml:"certifications,omitempty"`
	ProjectCodes          []string `yaml:"project_codes,omitempty"`
}

// File structures
type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type CrewFile struct {
	Crew []CrewData `yaml:"crew"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	crew, err := loadCrew(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load crew: %w", err)
	}

	// Create projects first so crew can link to them by code
	projectMap := make(map[string]*models.Project)
	projectCreated := 0
	for _, projectData := range projects {
		project, created, err := createProject(db, projectData)
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", projectData.Code, err)
		}
		projectMap[projectData.Code] = project
		if created {
			projectCreated++
		}
	}
	log.Printf("📋 Projects: %d created, %d total", projectCreated, len(projects))

	// Create crew profiles and link them to their projects
	crewCreated := 0
	linksCreated := 0
	for _, crewData := range crew {
		profile, created, err := createCrewProfile(db, crewData)
		if err != nil {
			return fmt.Errorf("failed to create crew profile %s: %w", crewData.Email, err)
		}
		if created {
			crewCreated++
		}

		links, err := linkCrewToProjects(db, profile, crewData, projectMap)
		if err != nil {
			return fmt.Errorf("failed to link crew %s: %w", crewData.Email, err)
		}
		linksCreated += links
	}
	log.Printf("📋 Crew: %d created, %d total", crewCreated, len(crew))
	log.Printf("📋 Project links: %d created", linksCreated)

	return nil
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	path := filepath.Join(dataDir, "projects.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No projects.yaml found in %s, skipping", dataDir)
			return nil, nil
		}
		return nil, err
	}

	var file ProjectsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file.Projects, nil
}

func loadCrew(dataDir string) ([]CrewData, error) {
	path := filepath.Join(dataDir, "crew.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No crew.yaml found in %s, skipping", dataDir)
			return nil, nil
		}
		return nil, err
	}

	var file CrewFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file.Crew, nil
}

func createProject(db *gorm.DB, data ProjectData) (*models.Project, bool, error) {
	var existing models.Project
	err := db.First(&existing, "code = ?", data.Code).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	startDate, err := time.Parse(models.DateOnly, data.StartDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid start_date %q: %w", data.StartDate, err)
	}
	endDate, err := time.Parse(models.DateOnly, data.EndDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid end_date %q: %w", data.EndDate, err)
	}

	status := models.ProjectStatus(data.Status)
	if data.Status == "" {
		status = models.ProjectStatusPlanning
	}
	if !status.IsValid() {
		return nil, false, fmt.Errorf("invalid status %q", data.Status)
	}

	project := &models.Project{
		Code:      data.Code,
		Name:      data.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Location:  data.Location,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Status:    status,
	}
	if err := db.Create(project).Error; err != nil {
		return nil, false, err
	}
	return project, true, nil
}

func createCrewProfile(db *gorm.DB, data CrewData) (*models.CrewProfile, bool, error) {
	var existing models.CrewProfile
	err := db.First(&existing, "email = ?", data.Email).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	var expiry *time.Time
	if data.InsuranceExpiry != "" {
		parsed, err := time.Parse(models.DateOnly, data.InsuranceExpiry)
		if err != nil {
			return nil, false, fmt.Errorf("invalid insurance_expiry %q: %w", data.InsuranceExpiry, err)
		}
		expiry = &parsed
	}

	profile := &models.CrewProfile{
		FullName:              data.FullName,
		Email:                 data.Email,
		Phone:                 data.Phone,
		Department:            data.Department,
		EmergencyContactName:  data.EmergencyContactName,
		EmergencyContactPhone: data.EmergencyContactPhone,
		DietaryRestrictions:   models.StringList(data.DietaryRestrictions),
		Address:               data.Address,
		HasInsurance:          data.HasInsurance,
		InsuranceExpiry:       expiry,
		UnavailableDates:      models.StringList(data.UnavailableDates),
		Certifications:        models.StringList(data.Certifications),
	}
	if err := db.Create(profile).Error; err != nil {
		return nil, false, err
	}
	return profile, true, nil
}

func linkCrewToProjects(db *gorm.DB, profile *models.CrewProfile, data CrewData, projectMap map[string]*models.Project) (int, error) {
	created := 0
	flags := profile.ComputeMissingInfo(time.Now())

	for _, code := range data.ProjectCodes {
		project, ok := projectMap[code]
		if !ok {
			return created, fmt.Errorf("unknown project code %q", code)
		}

		var existing models.ProjectCrew
		err := db.First(&existing, "project_id = ? AND crew_id = ?", project.ID, profile.ID).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return created, err
		}

		link := &models.ProjectCrew{
			ProjectID:     project.ID,
			CrewID:        profile.ID,
			Department:    data.Department,
			FormCompleted: true,
		}
		link.ApplyMissingInfo(flags)
		if err := db.Create(link).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
