package database

import (
	"fmt"
	"log"

	"github.com/studybridge/uniapply-api/model"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// RunSeeds runs all seed functions
func RunSeeds(db *gorm.DB) error {
	return NewSeeder(db).SeedAll()
}

// SeedAll populates the catalog. The API itself never writes the
// universities table; this command is the external process that does.
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.SeedUniversities(); err != nil {
		return fmt.Errorf("failed to seed universities: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedUniversities inserts the starter catalog, skipping when rows exist
func (s *Seeder) SeedUniversities() error {
	var count int64
	if err := s.db.Model(&model.University{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Universities already seeded (%d rows), skipping.", count)
		return nil
	}

	universities := []model.University{
		{Name: "University of Oxford", Country: "United Kingdom", Tuition: 39010, DegreeLevel: "Master", MinGPA: 3.7, MinIELTS: 7.5},
		{Name: "University of Manchester", Country: "United Kingdom", Tuition: 26000, DegreeLevel: "Bachelor", MinGPA: 3.0, MinIELTS: 6.0},
		{Name: "Technical University of Munich", Country: "Germany", Tuition: 3000, DegreeLevel: "Master", MinGPA: 3.3, MinIELTS: 6.5},
		{Name: "University of Toronto", Country: "Canada", Tuition: 45900, DegreeLevel: "Bachelor", MinGPA: 3.2, MinIELTS: 6.5},
		{Name: "University of Melbourne", Country: "Australia", Tuition: 32000, DegreeLevel: "Master", MinGPA: 3.0, MinIELTS: 6.5},
		{Name: "National University of Singapore", Country: "Singapore", Tuition: 21000, DegreeLevel: "Bachelor", MinGPA: 3.5, MinIELTS: 7.0},
		{Name: "University of Amsterdam", Country: "Netherlands", Tuition: 15000, DegreeLevel: "Bachelor", MinGPA: 2.8, MinIELTS: 6.0},
		{Name: "Trinity College Dublin", Country: "Ireland", Tuition: 20000, DegreeLevel: "Master", MinGPA: 3.1, MinIELTS: 6.5},
	}

	if err := s.db.Create(&universities).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d universities.", len(universities))
	return nil
}
