package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/bracket-seeding/services"
)

type SeedingHandler struct {
	seedingService services.SeedingService
}

func NewSeedingHandler(ss services.SeedingService) *SeedingHandler {
	return &SeedingHandler{
		seedingService: ss,
	}
}

// decodeAndValidate reads the body into dst and answers the request itself
// when it is malformed or invalid.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := readJSON(w, r, dst); err != nil {
		badRequestResponse(w, r, err)
		return false
	}
	if problems := validateInput(dst); problems != nil {
		failedValidationResponse(w, r, problems)
		return false
	}
	return true
}

// ListOrderings godoc
// @Summary List seed orderings
// @Tags seeding
// @Produce json
// @Success 200 {object} services.OrderingsInfo
// @Router /api/v1/orderings [get]
func (h *SeedingHandler) ListOrderings(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, h.seedingService.Orderings(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetDefaultMinorOrdering godoc
// @Summary Default losers bracket ordering schedule
// @Description Ordering for losers bracket round 1 followed by one entry per minor round.
// @Tags seeding
// @Produce json
// @Param size path int true "Bracket size (8, 16, 32, 64 or 128)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/orderings/minor/{size} [get]
func (h *SeedingHandler) GetDefaultMinorOrdering(w http.ResponseWriter, r *http.Request) {
	size, err := strconv.Atoi(chi.URLParam(r, "size"))
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	orderings, err := h.seedingService.DefaultMinorOrdering(size)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"size": size, "orderings": orderings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Order godoc
// @Summary Apply orderings to a seed list
// @Tags seeding
// @Accept json
// @Produce json
// @Param input body services.OrderInput true "Seeds and orderings, applied left to right"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/seeding/order [post]
func (h *SeedingHandler) Order(w http.ResponseWriter, r *http.Request) {
	var input services.OrderInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	seeds, err := h.seedingService.Order(input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"seeds": seeds}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Pairs godoc
// @Summary Pair seeds into duels
// @Tags seeding
// @Accept json
// @Produce json
// @Param input body services.PairsInput true "Seeds, optional ordering and optional opposing list"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/seeding/pairs [post]
func (h *SeedingHandler) Pairs(w http.ResponseWriter, r *http.Request) {
	var input services.PairsInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	duels, err := h.seedingService.Pairs(input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"duels": duels}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Groups godoc
// @Summary Distribute seeds across groups
// @Tags seeding
// @Accept json
// @Produce json
// @Param input body services.GroupsInput true "Seeds, group ordering and group count"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/seeding/groups [post]
func (h *SeedingHandler) Groups(w http.ResponseWriter, r *http.Request) {
	var input services.GroupsInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	groups, err := h.seedingService.Groups(input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"groups": groups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// BalanceByes godoc
// @Summary Spread byes over the first round
// @Tags seeding
// @Accept json
// @Produce json
// @Param input body services.BalanceByesInput true "Seeds and optional bracket size"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/seeding/balance-byes [post]
func (h *SeedingHandler) BalanceByes(w http.ResponseWriter, r *http.Request) {
	var input services.BalanceByesInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	seeds, err := h.seedingService.BalanceByes(input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"seeds": seeds}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Winner godoc
// @Summary Decide the winner of a duel
// @Tags seeding
// @Accept json
// @Produce json
// @Param input body services.WinnerInput true "Scores of opponent 1 and opponent 2"
// @Success 200 {object} services.WinnerResult
// @Failure 400 {object} map[string]string
// @Router /api/v1/seeding/winner [post]
func (h *SeedingHandler) Winner(w http.ResponseWriter, r *http.Request) {
	var input services.WinnerInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	result, err := h.seedingService.Winner(input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
