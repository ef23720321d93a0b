package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/bracket-seeding/brackets"
	"github.com/Dosada05/bracket-seeding/models"
	"github.com/Dosada05/bracket-seeding/repositories"
	"github.com/Dosada05/bracket-seeding/seeding"
	"github.com/Dosada05/bracket-seeding/storage"
)

const (
	defaultPlanListLimit = 20
	maxPlanListLimit     = 100
)

// EventBroadcaster publishes plan events to websocket subscribers.
type EventBroadcaster interface {
	BroadcastToRoom(roomID string, event brackets.Event)
}

// PlanRecorder counts plan lifecycle events.
type PlanRecorder interface {
	PlanCreated(stageType brackets.StageType)
	PlanDeleted(stageType brackets.StageType)
}

type PlanService interface {
	PreviewPlan(ctx context.Context, input CreatePlanInput) (*brackets.Stage, error)
	CreatePlan(ctx context.Context, input CreatePlanInput, createdBy string) (*models.Plan, error)
	GetPlan(ctx context.Context, id int) (*models.Plan, error)
	ListPlans(ctx context.Context, limit, offset int) ([]models.PlanSummary, error)
	DeletePlan(ctx context.Context, id int) error
}

type CreatePlanInput struct {
	Name      string             `json:"name" validate:"required,max=120"`
	StageType brackets.StageType `json:"stage_type" validate:"required,oneof=single_elimination double_elimination round_robin"`
	Seeds     []seeding.Seed     `json:"seeds" validate:"required,min=2"`
	Settings  brackets.Settings  `json:"settings"`
}

type planService struct {
	planRepo repositories.PlanRepository
	store    storage.ObjectStore
	hub      EventBroadcaster
	recorder PlanRecorder
	logger   *slog.Logger
}

// NewPlanService builds the plan service. store may be nil, in which case
// plans are not exported.
func NewPlanService(
	planRepo repositories.PlanRepository,
	store storage.ObjectStore,
	hub EventBroadcaster,
	recorder PlanRecorder,
	logger *slog.Logger,
) PlanService {
	return &planService{
		planRepo: planRepo,
		store:    store,
		hub:      hub,
		recorder: recorder,
		logger:   logger,
	}
}

func (s *planService) build(ctx context.Context, name string, input CreatePlanInput) (*brackets.Stage, error) {
	generator, err := brackets.NewGenerator(input.StageType)
	if err != nil {
		return nil, err
	}
	return generator.Generate(ctx, brackets.GenerateParams{
		Name:     name,
		Seeds:    input.Seeds,
		Settings: input.Settings,
	})
}

func (s *planService) PreviewPlan(ctx context.Context, input CreatePlanInput) (*brackets.Stage, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "preview"
	}
	return s.build(ctx, name, input)
}

func (s *planService) CreatePlan(ctx context.Context, input CreatePlanInput, createdBy string) (*models.Plan, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrPlanNameRequired
	}

	stage, err := s.build(ctx, name, input)
	if err != nil {
		return nil, err
	}

	plan := &models.Plan{
		Ref:       uuid.New(),
		Name:      name,
		StageType: stage.Type,
		Size:      stage.Size,
		Orderings: stage.Orderings,
		Settings:  input.Settings,
		Seeds:     input.Seeds,
		Stage:     stage,
	}
	if createdBy != "" {
		plan.CreatedBy = &createdBy
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		if errors.Is(err, repositories.ErrPlanNameConflict) {
			return nil, ErrPlanNameConflict
		}
		return nil, fmt.Errorf("failed to save plan %q: %w", name, err)
	}
	s.logger.Info("plan created",
		slog.Int("plan_id", plan.ID),
		slog.String("ref", plan.Ref.String()),
		slog.String("stage_type", string(plan.StageType)),
		slog.Int("size", plan.Size),
	)

	if s.store != nil {
		exportURL, err := s.export(ctx, plan)
		if err != nil {
			s.logger.Warn("plan export failed", slog.Int("plan_id", plan.ID), slog.Any("error", err))
		} else if err := s.planRepo.UpdateExportURL(ctx, plan.ID, &exportURL); err != nil {
			s.logger.Warn("failed to store plan export url", slog.Int("plan_id", plan.ID), slog.Any("error", err))
		} else {
			plan.ExportURL = &exportURL
		}
	}

	if s.recorder != nil {
		s.recorder.PlanCreated(plan.StageType)
	}
	if s.hub != nil {
		s.hub.BroadcastToRoom(brackets.PlansRoom, brackets.Event{
			Type:    brackets.EventPlanCreated,
			Payload: plan.Summary(),
			RoomID:  brackets.PlansRoom,
		})
	}
	return plan, nil
}

func (s *planService) GetPlan(ctx context.Context, id int) (*models.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan %d: %w", id, err)
	}
	return plan, nil
}

func (s *planService) ListPlans(ctx context.Context, limit, offset int) ([]models.PlanSummary, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidPagination
	}
	if limit == 0 {
		limit = defaultPlanListLimit
	}
	if limit > maxPlanListLimit {
		limit = maxPlanListLimit
	}

	plans, err := s.planRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

func (s *planService) DeletePlan(ctx context.Context, id int) error {
	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return err
	}

	if err := s.planRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return ErrPlanNotFound
		}
		return fmt.Errorf("failed to delete plan %d: %w", id, err)
	}

	if s.store != nil && plan.ExportURL != nil {
		g, gCtx := errgroup.WithContext(ctx)
		for _, key := range exportKeys(plan.Ref) {
			key := key
			g.Go(func() error {
				return s.store.Delete(gCtx, key)
			})
		}
		if err := g.Wait(); err != nil {
			s.logger.Warn("failed to delete plan exports", slog.Int("plan_id", id), slog.Any("error", err))
		}
	}

	if s.recorder != nil {
		s.recorder.PlanDeleted(plan.StageType)
	}
	if s.hub != nil {
		s.hub.BroadcastToRoom(brackets.PlansRoom, brackets.Event{
			Type:    brackets.EventPlanDeleted,
			Payload: map[string]interface{}{"id": plan.ID, "ref": plan.Ref},
			RoomID:  brackets.PlansRoom,
		})
	}
	s.logger.Info("plan deleted", slog.Int("plan_id", id))
	return nil
}

func exportKeys(ref uuid.UUID) [2]string {
	prefix := "plans/" + ref.String()
	return [2]string{prefix + "/plan.json", prefix + "/round1.csv"}
}

// export uploads the plan document and its first round sheet in parallel and
// returns the public URL of the document.
func (s *planService) export(ctx context.Context, plan *models.Plan) (string, error) {
	document, err := json.MarshalIndent(plan, "", "\t")
	if err != nil {
		return "", fmt.Errorf("failed to encode plan document: %w", err)
	}
	sheet, err := firstRoundCSV(plan.Stage)
	if err != nil {
		return "", err
	}

	keys := exportKeys(plan.Ref)
	var documentURL string

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := s.store.Put(gCtx, keys[0], "application/json", bytes.NewReader(document))
		if err != nil {
			return err
		}
		documentURL = result.Location
		return nil
	})
	g.Go(func() error {
		_, err := s.store.Put(gCtx, keys[1], "text/csv", bytes.NewReader(sheet))
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}
	return documentURL, nil
}

func firstRoundCSV(stage *brackets.Stage) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"match", "opponent1", "opponent2"}}
	for _, match := range stage.FirstRound() {
		records = append(records, []string{
			strconv.Itoa(match.Number),
			slotLabel(match.Opponent1),
			slotLabel(match.Opponent2),
		})
	}
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write round sheet: %w", err)
	}
	return buf.Bytes(), nil
}

func slotLabel(slot brackets.Slot) string {
	if slot.From != nil {
		return fmt.Sprintf("%s of G%d R%d M%d", slot.From.Outcome, slot.From.Group, slot.From.Round, slot.From.Match)
	}
	return slot.Seed.String()
}
