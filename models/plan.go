package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Dosada05/bracket-seeding/brackets"
	"github.com/Dosada05/bracket-seeding/seeding"
)

// Plan is a persisted stage layout together with the input it was built from.
type Plan struct {
	ID        int                `json:"id" db:"id"`
	Ref       uuid.UUID          `json:"ref" db:"ref"`
	Name      string             `json:"name" db:"name"`
	StageType brackets.StageType `json:"stage_type" db:"stage_type"`
	Size      int                `json:"size" db:"size"`
	Orderings []string           `json:"orderings" db:"orderings"`
	Settings  brackets.Settings  `json:"settings" db:"settings"`
	Seeds     []seeding.Seed     `json:"seeds" db:"seeds"`
	Stage     *brackets.Stage    `json:"stage" db:"stage"`
	ExportURL *string            `json:"export_url,omitempty" db:"export_url"`
	CreatedBy *string            `json:"created_by,omitempty" db:"created_by"`
	CreatedAt time.Time          `json:"created_at" db:"created_at"`
}

// PlanSummary is the list view of a plan, without seeds and layout.
type PlanSummary struct {
	ID        int                `json:"id"`
	Ref       uuid.UUID          `json:"ref"`
	Name      string             `json:"name"`
	StageType brackets.StageType `json:"stage_type"`
	Size      int                `json:"size"`
	ExportURL *string            `json:"export_url,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

func (p *Plan) Summary() PlanSummary {
	return PlanSummary{
		ID:        p.ID,
		Ref:       p.Ref,
		Name:      p.Name,
		StageType: p.StageType,
		Size:      p.Size,
		ExportURL: p.ExportURL,
		CreatedAt: p.CreatedAt,
	}
}
