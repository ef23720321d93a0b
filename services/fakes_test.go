package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/bracket-seeding/brackets"
	"github.com/Dosada05/bracket-seeding/models"
	"github.com/Dosada05/bracket-seeding/repositories"
	"github.com/Dosada05/bracket-seeding/seeding"
	"github.com/Dosada05/bracket-seeding/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func knownSeeds(ids ...string) []seeding.Seed {
	seeds := make([]seeding.Seed, len(ids))
	for i, id := range ids {
		seeds[i] = seeding.Known(id)
	}
	return seeds
}

type fakePlanRepo struct {
	mu     sync.Mutex
	nextID int
	plans  map[int]*models.Plan
	err    error
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[int]*models.Plan{}}
}

func (r *fakePlanRepo) Create(_ context.Context, plan *models.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, p := range r.plans {
		if p.Name == plan.Name {
			return repositories.ErrPlanNameConflict
		}
	}
	r.nextID++
	plan.ID = r.nextID
	plan.CreatedAt = time.Date(2026, 1, 1, 0, 0, r.nextID, 0, time.UTC)
	stored := *plan
	r.plans[plan.ID] = &stored
	return nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id int) (*models.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, repositories.ErrPlanNotFound
	}
	out := *p
	return &out, nil
}

func (r *fakePlanRepo) List(_ context.Context, limit, offset int) ([]models.PlanSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.PlanSummary, 0, len(r.plans))
	for _, p := range r.plans {
		out = append(out, p.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if offset >= len(out) {
		return []models.PlanSummary{}, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakePlanRepo) UpdateExportURL(_ context.Context, id int, exportURL *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return repositories.ErrPlanNotFound
	}
	p.ExportURL = exportURL
	return nil
}

func (r *fakePlanRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[id]; !ok {
		return repositories.ErrPlanNotFound
	}
	delete(r.plans, id)
	return nil
}

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (s *fakeStore) Put(_ context.Context, key string, _ string, body io.Reader) (*storage.PutResult, error) {
	if s.putErr != nil {
		return nil, s.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()
	return &storage.PutResult{Key: key, Location: s.PublicURL(key)}, nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		return errors.New("no such key")
	}
	delete(s.objects, key)
	return nil
}

func (s *fakeStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

type fakeHub struct {
	mu     sync.Mutex
	events []brackets.Event
}

func (h *fakeHub) BroadcastToRoom(_ string, event brackets.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
}

type fakeRecorder struct {
	operations map[string][]error
	created    []brackets.StageType
	deleted    []brackets.StageType
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{operations: map[string][]error{}}
}

func (r *fakeRecorder) ObserveOperation(operation string, err error) {
	r.operations[operation] = append(r.operations[operation], err)
}

func (r *fakeRecorder) PlanCreated(stageType brackets.StageType) {
	r.created = append(r.created, stageType)
}

func (r *fakeRecorder) PlanDeleted(stageType brackets.StageType) {
	r.deleted = append(r.deleted, stageType)
}
