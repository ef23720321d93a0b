package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/bracket-seeding/brackets"
	"github.com/Dosada05/bracket-seeding/middleware"
	"github.com/Dosada05/bracket-seeding/models"
	"github.com/Dosada05/bracket-seeding/services"
)

type stubPlanService struct {
	createErr   error
	createdBy   string
	lastLimit   int
	lastOffset  int
	deletedID   int
	plans       map[int]*models.Plan
	previewSeen services.CreatePlanInput
}

func (s *stubPlanService) PreviewPlan(_ context.Context, input services.CreatePlanInput) (*brackets.Stage, error) {
	s.previewSeen = input
	generator, err := brackets.NewGenerator(input.StageType)
	if err != nil {
		return nil, err
	}
	return generator.Generate(context.Background(), brackets.GenerateParams{Name: input.Name, Seeds: input.Seeds, Settings: input.Settings})
}

func (s *stubPlanService) CreatePlan(_ context.Context, input services.CreatePlanInput, createdBy string) (*models.Plan, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.createdBy = createdBy
	return &models.Plan{ID: 1, Ref: uuid.New(), Name: input.Name, StageType: input.StageType}, nil
}

func (s *stubPlanService) GetPlan(_ context.Context, id int) (*models.Plan, error) {
	if plan, ok := s.plans[id]; ok {
		return plan, nil
	}
	return nil, services.ErrPlanNotFound
}

func (s *stubPlanService) ListPlans(_ context.Context, limit, offset int) ([]models.PlanSummary, error) {
	if limit < 0 || offset < 0 {
		return nil, services.ErrInvalidPagination
	}
	s.lastLimit, s.lastOffset = limit, offset
	return []models.PlanSummary{}, nil
}

func (s *stubPlanService) DeletePlan(_ context.Context, id int) error {
	if _, ok := s.plans[id]; !ok {
		return services.ErrPlanNotFound
	}
	s.deletedID = id
	return nil
}

// withSubject stands in for the authentication middleware.
func withSubject(subject string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if subject != "" {
				r = r.WithContext(middleware.WithClaims(r.Context(), jwt.MapClaims{"sub": subject, "role": "organizer"}))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func planRouter(svc services.PlanService, subject string) http.Handler {
	h := NewPlanHandler(svc)
	r := chi.NewRouter()
	r.Use(withSubject(subject))
	r.Post("/plans/preview", h.PreviewPlan)
	r.Get("/plans", h.ListPlans)
	r.Get("/plans/{planID}", h.GetPlan)
	r.Post("/plans", h.CreatePlan)
	r.Delete("/plans/{planID}", h.DeletePlan)
	return r
}

const createBody = `{"name":"Cup","stage_type":"single_elimination","seeds":["A","B","C","D"]}`

func TestPlanHandlerCreate(t *testing.T) {
	svc := &stubPlanService{}
	rec := doRequest(t, planRouter(svc, "admin"), http.MethodPost, "/plans", createBody)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "admin", svc.createdBy)
	plan := decodeBody(t, rec)["plan"].(map[string]interface{})
	assert.Equal(t, "Cup", plan["name"])
}

func TestPlanHandlerCreateErrors(t *testing.T) {
	tests := []struct {
		name       string
		subject    string
		body       string
		createErr  error
		wantStatus int
	}{
		{"no claims", "", createBody, nil, http.StatusUnauthorized},
		{"unknown stage type", "admin", `{"name":"Cup","stage_type":"swiss","seeds":["A","B"]}`, nil, http.StatusUnprocessableEntity},
		{"too few seeds", "admin", `{"name":"Cup","stage_type":"round_robin","seeds":["A"]}`, nil, http.StatusUnprocessableEntity},
		{"oversized bracket", "admin", `{"name":"Cup","stage_type":"single_elimination","seeds":["A","B"],"settings":{"size":1125899906842624}}`, nil, http.StatusUnprocessableEntity},
		{"negative child count", "admin", `{"name":"Cup","stage_type":"single_elimination","seeds":["A","B"],"settings":{"matches_child_count":-1}}`, nil, http.StatusUnprocessableEntity},
		{"name conflict", "admin", createBody, services.ErrPlanNameConflict, http.StatusConflict},
		{"engine error", "admin", createBody, brackets.ErrOrderingCount, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubPlanService{createErr: tt.createErr}
			rec := doRequest(t, planRouter(svc, tt.subject), http.MethodPost, "/plans", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestPlanHandlerPreview(t *testing.T) {
	svc := &stubPlanService{}
	body := `{"stage_type":"double_elimination","seeds":["A","B","C","D","E","F","G","H"],"settings":{"grand_final":"double"}}`

	rec := doRequest(t, planRouter(svc, ""), http.MethodPost, "/plans/preview", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "preview", svc.previewSeen.Name)
	stage := decodeBody(t, rec)["stage"].(map[string]interface{})
	assert.Equal(t, "double_elimination", stage["type"])
	assert.Len(t, stage["groups"], 3)
}

func TestPlanHandlerGetAndDelete(t *testing.T) {
	svc := &stubPlanService{plans: map[int]*models.Plan{7: {ID: 7, Name: "Seven"}}}
	router := planRouter(svc, "admin")

	rec := doRequest(t, router, http.MethodGet, "/plans/7", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/plans/8", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/plans/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/plans/0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/plans/7", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 7, svc.deletedID)

	rec = doRequest(t, router, http.MethodDelete, "/plans/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlanHandlerList(t *testing.T) {
	svc := &stubPlanService{}
	router := planRouter(svc, "")

	rec := doRequest(t, router, http.MethodGet, "/plans?limit=5&offset=10", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"plans":[]}`, rec.Body.String())
	assert.Equal(t, 5, svc.lastLimit)
	assert.Equal(t, 10, svc.lastOffset)

	rec = doRequest(t, router, http.MethodGet, "/plans?limit=ten", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/plans?offset=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
