package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/studybridge/uniapply-api/config"
	"github.com/studybridge/uniapply-api/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage defines the interface that all database implementations must satisfy
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck() error

	// GORM DB access
	GetDB() interface{} // Returns *gorm.DB for GORMStore

	// Catalog methods (read-only)
	ListUniversities(filter UniversityFilter) ([]model.University, error)
	GetUniversity(id uint) (*model.University, error)

	// Application methods (insert-only)
	CreateApplication(application *model.Application) error
}

// UniversityFilter holds the optional catalog query filters
type UniversityFilter struct {
	MaxFee  float64
	Country string
	Degree  string
}

type GORMStore struct {
	db *gorm.DB
}

// StartGORM initializes a GORM connection to PostgreSQL.
// The underlying pool is opened through lib/pq so store errors surface as
// *pq.Error (see errors.go) and sslmode handling matches managed providers.
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	// Build DSN (Data Source Name)
	dsn := getEnv.DATABASE_URL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			getEnv.DB_HOST,
			getEnv.DB_USER_NAME,
			getEnv.DB_PASSWORD,
			getEnv.DB_NAME,
			getEnv.DB_PORT,
			getEnv.DB_SSL_MODE,
		)
	}

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Println("Unable to connect to PostgreSQL:", err)
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	// Open GORM on top of the lib/pq pool
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: true, // Prepare statements for better performance
	})
	if err != nil {
		log.Println("Unable to connect to PostgreSQL with GORM:", err)
		return nil, err
	}

	log.Println("Successfully connected to PostgreSQL Database with GORM.")

	return &GORMStore{db: db}, nil
}

// Init optionally runs AutoMigrate. Schema ownership sits outside this
// service, so migration only runs when DB_AUTO_MIGRATE=true.
func (s *GORMStore) Init() error {
	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	if !getEnv.DB_AUTO_MIGRATE {
		log.Println("Skipping AutoMigrate (DB_AUTO_MIGRATE not set).")
		return nil
	}

	log.Println("Running GORM AutoMigrate for all models...")

	if err := s.db.AutoMigrate(
		&model.University{},
		&model.Application{},
	); err != nil {
		log.Println("Error running AutoMigrate:", err)
		return err
	}

	log.Println("GORM AutoMigrate completed successfully!")
	return nil
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log.Println("Closing GORM PostgreSQL connection...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM DB instance for use in handlers
func (s *GORMStore) GetDB() interface{} {
	return s.db
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// ListUniversities returns the catalog entries matching the filter,
// ordered by name ascending. No pagination: the full matching set.
func (s *GORMStore) ListUniversities(filter UniversityFilter) ([]model.University, error) {
	query := s.db.Model(&model.University{}).Where("tuition <= ?", filter.MaxFee)

	if filter.Country != "" {
		query = query.Where("country ILIKE ?", "%"+filter.Country+"%")
	}
	if filter.Degree != "" {
		query = query.Where("degree_level = ?", filter.Degree)
	}

	var universities []model.University
	if err := query.Order("name ASC").Find(&universities).Error; err != nil {
		return nil, err
	}
	return universities, nil
}

// GetUniversity fetches one university by id. Returns
// gorm.ErrRecordNotFound when the id does not exist.
func (s *GORMStore) GetUniversity(id uint) (*model.University, error) {
	var university model.University
	if err := s.db.First(&university, id).Error; err != nil {
		return nil, err
	}
	return &university, nil
}

// CreateApplication inserts one application row and fills in the
// generated id and reference.
func (s *GORMStore) CreateApplication(application *model.Application) error {
	if application.Reference == "" {
		application.Reference = uuid.NewString()
	}
	return s.db.Create(application).Error
}
