package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/studybridge/uniapply-api/database"
	"github.com/studybridge/uniapply-api/model"
	"github.com/studybridge/uniapply-api/utils/response"
	"github.com/studybridge/uniapply-api/utils/validation"
	"gorm.io/gorm"
)

// ApplicationHandler handles student application submissions
type ApplicationHandler struct {
	store     database.Storage
	validator *validation.Validator
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(store database.Storage) *ApplicationHandler {
	return &ApplicationHandler{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// Score accepts a JSON number or a JSON string, since the frontend sends
// form values as strings. The raw text is kept and parsed later.
type Score string

func (s *Score) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = Score(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = Score(num.String())
	return nil
}

// Float parses the score. An unparsable value becomes NaN, and every NaN
// comparison is false, so bad input can never pass the threshold check.
func (s Score) Float() float64 {
	f, err := strconv.ParseFloat(string(s), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// ApplyRequest represents the request body for submitting an application
type ApplyRequest struct {
	StudentName  string `json:"studentName" validate:"required"`
	Email        string `json:"email" validate:"required"`
	UniversityID uint   `json:"universityId"`
	GPA          Score  `json:"gpa"`
	IELTS        Score  `json:"ielts"`
}

// Apply handles POST /api/apply
//
// Looks up the target university, checks the submitted scores against its
// minimum thresholds and inserts one application row when they pass.
// Rejections never touch the applications table.
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var req ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "studentName and email are required")
	}

	university, err := h.store.GetUniversity(req.UniversityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "University not found")
		}
		log.Println("Failed to fetch university:", err)
		return response.InternalServerError(c, "Failed to process application")
	}

	gpa := req.GPA.Float()
	ielts := req.IELTS.Float()

	// NaN fails this check too, so unparsable scores are rejected here
	if !(gpa >= university.MinGPA && ielts >= university.MinIELTS) {
		return response.Forbidden(c, fmt.Sprintf(
			"You do not meet the minimum requirements for %s (minimum GPA %.2f, minimum IELTS %.2f)",
			university.Name, university.MinGPA, university.MinIELTS,
		))
	}

	application := model.Application{
		StudentName:    req.StudentName,
		StudentEmail:   req.Email,
		UniversityID:   university.ID,
		GPASubmitted:   roundTwoDecimals(gpa),
		IELTSSubmitted: roundTwoDecimals(ielts),
	}

	if err := h.store.CreateApplication(&application); err != nil {
		if database.IsNumericOutOfRange(err) {
			return response.BadRequest(c, "GPA or IELTS value is out of range")
		}
		log.Println("Failed to create application:", err)
		return response.InternalServerError(c, "Failed to submit application")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       fmt.Sprintf("Application submitted to %s", university.Name),
		"applicationId": application.ID,
		"reference":     application.Reference,
	})
}

func roundTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}
