package model

// University represents one catalog entry. Rows are pre-populated by an
// external process (see cmd/seed); the API only reads this table.
type University struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null;index" json:"name"`
	Country     string  `gorm:"type:varchar(120)" json:"country"`
	Tuition     float64 `gorm:"type:numeric(10,2)" json:"tuition"`
	DegreeLevel string  `gorm:"column:degree_level;type:varchar(50)" json:"degree_level"` // e.g., "Bachelor", "Master"
	MinGPA      float64 `gorm:"column:min_gpa;type:numeric(4,2)" json:"min_gpa"`
	MinIELTS    float64 `gorm:"column:min_ielts;type:numeric(4,2)" json:"min_ielts"`
}
