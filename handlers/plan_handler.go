package handlers

import (
	"net/http"

	"github.com/Dosada05/bracket-seeding/middleware"
	"github.com/Dosada05/bracket-seeding/services"
)

type PlanHandler struct {
	planService services.PlanService
}

func NewPlanHandler(ps services.PlanService) *PlanHandler {
	return &PlanHandler{
		planService: ps,
	}
}

// PreviewPlan godoc
// @Summary Lay out a stage without saving it
// @Tags plans
// @Accept json
// @Produce json
// @Param input body services.CreatePlanInput true "Stage type, seeds and settings"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/plans/preview [post]
func (h *PlanHandler) PreviewPlan(w http.ResponseWriter, r *http.Request) {
	var input services.CreatePlanInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Name == "" {
		input.Name = "preview"
	}
	if problems := validateInput(&input); problems != nil {
		failedValidationResponse(w, r, problems)
		return
	}

	stage, err := h.planService.PreviewPlan(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stage": stage}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreatePlan godoc
// @Summary Create and save a seeding plan
// @Tags plans
// @Accept json
// @Produce json
// @Param input body services.CreatePlanInput true "Plan name, stage type, seeds and settings"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/v1/plans [post]
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	subject, err := middleware.GetSubjectFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input services.CreatePlanInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	plan, err := h.planService.CreatePlan(r.Context(), input, subject)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"plan": plan}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetPlan godoc
// @Summary Get a saved plan
// @Tags plans
// @Produce json
// @Param planID path int true "Plan ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/plans/{planID} [get]
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	planID, err := getIDFromURL(r, "planID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	plan, err := h.planService.GetPlan(r.Context(), planID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"plan": plan}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListPlans godoc
// @Summary List saved plans, newest first
// @Tags plans
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/plans [get]
func (h *PlanHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	limit, err := getIntQuery(r, "limit", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	offset, err := getIntQuery(r, "offset", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	plans, err := h.planService.ListPlans(r.Context(), limit, offset)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"plans": plans}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeletePlan godoc
// @Summary Delete a saved plan and its exports
// @Tags plans
// @Param planID path int true "Plan ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/plans/{planID} [delete]
func (h *PlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	planID, err := getIDFromURL(r, "planID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.planService.DeletePlan(r.Context(), planID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
