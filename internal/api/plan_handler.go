package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vasilikapapa/workout-app/internal/domain"
	"github.com/vasilikapapa/workout-app/internal/service"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- DTOs ---

type PlanRequest struct {
	Title string `json:"title" binding:"required"`
}

type PlanResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MapPlanToResponse converts a domain.Plan to a PlanResponse DTO.
func MapPlanToResponse(plan *domain.Plan) PlanResponse {
	if plan == nil {
		return PlanResponse{}
	}
	return PlanResponse{
		ID:        plan.ID,
		Title:     plan.Title,
		UserID:    plan.UserID,
		CreatedAt: plan.CreatedAt,
		UpdatedAt: plan.UpdatedAt,
	}
}

// MapPlansToResponse converts a slice of domain.Plan to PlanResponse DTOs.
func MapPlansToResponse(plans []domain.Plan) []PlanResponse {
	responses := make([]PlanResponse, len(plans))
	for i := range plans {
		responses[i] = MapPlanToResponse(&plans[i])
	}
	return responses
}

// --- Handler Methods ---

// ListPlans godoc
// @Summary List the authenticated user's plans
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} PlanResponse
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	plans, err := h.planService.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapPlansToResponse(plans))
}

// CreatePlan godoc
// @Summary Create a new plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body PlanRequest true "Plan title"
// @Success 201 {object} PlanResponse
// @Failure 400 {object} gin.H
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "title_required", "Plan title required")
		return
	}
	plan, err := h.planService.Create(c.Request.Context(), userID, req.Title)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapPlanToResponse(plan))
}

// RenamePlan godoc
// @Summary Rename a plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param plan body PlanRequest true "New title"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /plans/{id} [patch]
func (h *PlanHandler) RenamePlan(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "title_required", "Plan title required")
		return
	}
	plan, err := h.planService.Rename(c.Request.Context(), userID, c.Param("id"), req.Title)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapPlanToResponse(plan))
}

// DeletePlan godoc
// @Summary Delete a plan and everything beneath it
// @Tags Plans
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 204
// @Failure 404 {object} gin.H
// @Router /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	if err := h.planService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
