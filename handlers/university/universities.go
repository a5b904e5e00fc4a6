package university

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/studybridge/uniapply-api/database"
	"github.com/studybridge/uniapply-api/utils/response"
	"gorm.io/gorm"
)

// DefaultMaxFee is the tuition ceiling applied when maxFee is absent or
// not numeric, large enough to match every catalog entry.
const DefaultMaxFee = 100000

// UniversityHandler handles catalog queries
type UniversityHandler struct {
	store database.Storage
}

// NewUniversityHandler creates a new university handler
func NewUniversityHandler(store database.Storage) *UniversityHandler {
	return &UniversityHandler{store: store}
}

// ListUniversities handles GET /api/universities
//
// Optional query params: maxFee (tuition <= maxFee), country
// (case-insensitive substring), degree (exact match on degree_level).
// The response body is the bare JSON array the frontend renders.
func (h *UniversityHandler) ListUniversities(c *fiber.Ctx) error {
	maxFee, err := strconv.ParseFloat(c.Query("maxFee"), 64)
	if err != nil {
		maxFee = DefaultMaxFee
	}

	filter := database.UniversityFilter{
		MaxFee:  maxFee,
		Country: c.Query("country", ""),
		Degree:  c.Query("degree", ""),
	}

	universities, err := h.store.ListUniversities(filter)
	if err != nil {
		log.Println("Failed to fetch universities:", err)
		return response.InternalServerError(c, "Failed to fetch universities")
	}

	return c.Status(fiber.StatusOK).JSON(universities)
}

// GetUniversity handles GET /api/universities/:id
func (h *UniversityHandler) GetUniversity(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid university id")
	}

	university, err := h.store.GetUniversity(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "University not found")
		}
		log.Println("Failed to fetch university:", err)
		return response.InternalServerError(c, "Failed to fetch university")
	}

	return response.Success(c, university)
}
