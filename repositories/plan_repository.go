package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Dosada05/bracket-seeding/models"
)

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrPlanNameConflict = errors.New("plan name conflict")
)

type PlanRepository interface {
	Create(ctx context.Context, plan *models.Plan) error
	GetByID(ctx context.Context, id int) (*models.Plan, error)
	List(ctx context.Context, limit, offset int) ([]models.PlanSummary, error)
	UpdateExportURL(ctx context.Context, id int, exportURL *string) error
	Delete(ctx context.Context, id int) error
}

type postgresPlanRepository struct {
	db *sql.DB
}

func NewPostgresPlanRepository(db *sql.DB) PlanRepository {
	return &postgresPlanRepository{db: db}
}

func (r *postgresPlanRepository) Create(ctx context.Context, plan *models.Plan) error {
	settings, err := marshalColumn("settings", plan.Settings)
	if err != nil {
		return err
	}
	seeds, err := marshalColumn("seeds", plan.Seeds)
	if err != nil {
		return err
	}
	stage, err := marshalColumn("stage", plan.Stage)
	if err != nil {
		return err
	}
	orderings := plan.Orderings
	if orderings == nil {
		orderings = []string{}
	}

	query := `
		INSERT INTO seed_plans (ref, name, stage_type, size, orderings, settings, seeds, stage, export_url, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`
	err = r.db.QueryRowContext(ctx, query,
		plan.Ref,
		plan.Name,
		plan.StageType,
		plan.Size,
		pq.Array(orderings),
		settings,
		seeds,
		stage,
		plan.ExportURL,
		plan.CreatedBy,
	).Scan(&plan.ID, &plan.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "seed_plans_name_key") {
			return ErrPlanNameConflict
		}
		return fmt.Errorf("failed to insert plan: %w", err)
	}
	return nil
}

func (r *postgresPlanRepository) GetByID(ctx context.Context, id int) (*models.Plan, error) {
	query := `
		SELECT id, ref, name, stage_type, size, orderings, settings, seeds, stage, export_url, created_by, created_at
		FROM seed_plans
		WHERE id = $1`

	plan := &models.Plan{}
	var settings, seeds, stage []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&plan.ID,
		&plan.Ref,
		&plan.Name,
		&plan.StageType,
		&plan.Size,
		pq.Array(&plan.Orderings),
		&settings,
		&seeds,
		&stage,
		&plan.ExportURL,
		&plan.CreatedBy,
		&plan.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan %d: %w", id, err)
	}

	if err := unmarshalColumn("settings", settings, &plan.Settings); err != nil {
		return nil, err
	}
	if err := unmarshalColumn("seeds", seeds, &plan.Seeds); err != nil {
		return nil, err
	}
	if err := unmarshalColumn("stage", stage, &plan.Stage); err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *postgresPlanRepository) List(ctx context.Context, limit, offset int) ([]models.PlanSummary, error) {
	query := `
		SELECT id, ref, name, stage_type, size, export_url, created_at
		FROM seed_plans
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	plans := make([]models.PlanSummary, 0)
	for rows.Next() {
		var p models.PlanSummary
		if err := rows.Scan(&p.ID, &p.Ref, &p.Name, &p.StageType, &p.Size, &p.ExportURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan rows: %w", err)
	}
	return plans, nil
}

func (r *postgresPlanRepository) UpdateExportURL(ctx context.Context, id int, exportURL *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE seed_plans SET export_url = $1 WHERE id = $2`, exportURL, id)
	if err != nil {
		return fmt.Errorf("failed to update export url of plan %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrPlanNotFound)
}

func (r *postgresPlanRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM seed_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete plan %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrPlanNotFound)
}
