package model

import "time"

// Application is a student's submission against one university. Rows are
// insert-only: the service never updates or deletes them.
type Application struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Reference      string    `gorm:"type:uuid;uniqueIndex" json:"reference"`
	StudentName    string    `gorm:"not null" json:"student_name"`
	StudentEmail   string    `gorm:"not null" json:"student_email"`
	UniversityID   uint      `gorm:"not null;index" json:"university_id"`
	GPASubmitted   float64   `gorm:"column:gpa_submitted;type:numeric(4,2)" json:"gpa_submitted"`
	IELTSSubmitted float64   `gorm:"column:ielts_submitted;type:numeric(4,2)" json:"ielts_submitted"`
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	University University `gorm:"foreignKey:UniversityID" json:"-"`
}
