package university

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/studybridge/uniapply-api/database"
	"github.com/studybridge/uniapply-api/model"
	"gorm.io/gorm"
)

// fakeStore substitutes the real GORM store in handler tests
type fakeStore struct {
	universities []model.University
	listErr      error
	getErr       error
	lastFilter   database.UniversityFilter
}

func (f *fakeStore) Init() error        { return nil }
func (f *fakeStore) Close() error       { return nil }
func (f *fakeStore) HealthCheck() error { return nil }
func (f *fakeStore) GetDB() interface{} { return nil }

func (f *fakeStore) ListUniversities(filter database.UniversityFilter) ([]model.University, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.universities, nil
}

func (f *fakeStore) GetUniversity(id uint) (*model.University, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.universities {
		if f.universities[i].ID == id {
			return &f.universities[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) CreateApplication(application *model.Application) error { return nil }

func setupApp(store database.Storage) *fiber.App {
	app := fiber.New()
	handler := NewUniversityHandler(store)
	app.Get("/api/universities", handler.ListUniversities)
	app.Get("/api/universities/:id", handler.GetUniversity)
	return app
}

func TestListUniversitiesDefaultFilters(t *testing.T) {
	store := &fakeStore{universities: []model.University{
		{ID: 1, Name: "University of Amsterdam", Country: "Netherlands", Tuition: 15000, DegreeLevel: "Bachelor"},
	}}
	app := setupApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/universities", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if store.lastFilter.MaxFee != DefaultMaxFee {
		t.Errorf("expected default maxFee %v, got %v", float64(DefaultMaxFee), store.lastFilter.MaxFee)
	}
	if store.lastFilter.Country != "" || store.lastFilter.Degree != "" {
		t.Errorf("expected empty country/degree filters, got %q/%q", store.lastFilter.Country, store.lastFilter.Degree)
	}

	// The success body is a bare JSON array, not a wrapped envelope
	body, _ := io.ReadAll(resp.Body)
	var universities []model.University
	if err := json.Unmarshal(body, &universities); err != nil {
		t.Fatalf("expected a JSON array, got %s", body)
	}
	if len(universities) != 1 || universities[0].Name != "University of Amsterdam" {
		t.Errorf("unexpected list body: %s", body)
	}
}

func TestListUniversitiesForwardsFilters(t *testing.T) {
	store := &fakeStore{}
	app := setupApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/universities?maxFee=20000&country=uk&degree=Master", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if store.lastFilter.MaxFee != 20000 {
		t.Errorf("expected maxFee 20000, got %v", store.lastFilter.MaxFee)
	}
	if store.lastFilter.Country != "uk" {
		t.Errorf("expected country filter uk, got %q", store.lastFilter.Country)
	}
	if store.lastFilter.Degree != "Master" {
		t.Errorf("expected degree filter Master, got %q", store.lastFilter.Degree)
	}
}

func TestListUniversitiesNonNumericMaxFee(t *testing.T) {
	store := &fakeStore{}
	app := setupApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/universities?maxFee=cheap", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.lastFilter.MaxFee != DefaultMaxFee {
		t.Errorf("non-numeric maxFee should fall back to %v, got %v", float64(DefaultMaxFee), store.lastFilter.MaxFee)
	}
}

func TestListUniversitiesEmptyResultIsNotAnError(t *testing.T) {
	app := setupApp(&fakeStore{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/universities?country=UK&degree=Master", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for empty result, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var universities []model.University
	if err := json.Unmarshal(body, &universities); err != nil {
		t.Fatalf("expected a JSON array, got %s", body)
	}
	if len(universities) != 0 {
		t.Errorf("expected empty array, got %s", body)
	}
}

func TestListUniversitiesStoreErrorIsGeneric(t *testing.T) {
	app := setupApp(&fakeStore{listErr: errors.New("pq: relation \"universities\" does not exist")})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/universities", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "relation") {
		t.Errorf("raw store error leaked to the client: %s", body)
	}
}

func TestGetUniversityNotFound(t *testing.T) {
	app := setupApp(&fakeStore{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/universities/42", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
