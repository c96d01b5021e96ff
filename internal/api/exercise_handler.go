package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vasilikapapa/workout-app/internal/domain"
	"github.com/vasilikapapa/workout-app/internal/service"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// CreateExerciseRequest defines the expected JSON for creating an exercise.
// Field validity depends on mode, so cross-field checks live in the service
// rather than in binding tags.
type CreateExerciseRequest struct {
	Name      string  `json:"name" binding:"required"`
	Mode      string  `json:"mode" binding:"required"`
	Sets      *int    `json:"sets"`
	Reps      *string `json:"reps"`
	TimeValue *int    `json:"timeValue"`
	TimeUnit  *string `json:"timeUnit"`
}

// UpdateExerciseRequest carries a partial field set; absent fields keep
// their stored values.
type UpdateExerciseRequest struct {
	Name      *string `json:"name"`
	Mode      *string `json:"mode"`
	Sets      *int    `json:"sets"`
	Reps      *string `json:"reps"`
	TimeValue *int    `json:"timeValue"`
	TimeUnit  *string `json:"timeUnit"`
}

// ExerciseResponse is the DTO for returning exercise details. The unused
// mode's fields serialize as explicit nulls.
type ExerciseResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Mode          string    `json:"mode"`
	Sets          *int      `json:"sets"`
	Reps          *string   `json:"reps"`
	TimeValue     *int      `json:"timeValue"`
	TimeUnit      *string   `json:"timeUnit"`
	ExerciseOrder int       `json:"exerciseOrder"`
	SectionID     string    `json:"sectionId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// MapExerciseToResponse converts a domain.Exercise to an ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	resp := ExerciseResponse{
		ID:            ex.ID,
		Name:          ex.Name,
		Mode:          string(ex.Mode),
		Sets:          ex.Sets,
		Reps:          ex.Reps,
		TimeValue:     ex.TimeValue,
		ExerciseOrder: ex.ExerciseOrder,
		SectionID:     ex.SectionID,
		CreatedAt:     ex.CreatedAt,
		UpdatedAt:     ex.UpdatedAt,
	}
	if ex.TimeUnit != nil {
		unit := string(*ex.TimeUnit)
		resp.TimeUnit = &unit
	}
	return resp
}

// MapExercisesToResponse converts a slice of domain.Exercise to DTOs.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

func timeUnitPtr(s *string) *domain.TimeUnit {
	if s == nil {
		return nil
	}
	u := domain.TimeUnit(*s)
	return &u
}

func modePtr(s *string) *domain.ExerciseMode {
	if s == nil {
		return nil
	}
	m := domain.ExerciseMode(*s)
	return &m
}

// --- Handler Methods ---

// ListExercises godoc
// @Summary List the exercises of a section
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Success 200 {array} ExerciseResponse
// @Failure 404 {object} gin.H
// @Router /sections/{id}/exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	exercises, err := h.exerciseService.List(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// CreateExercise godoc
// @Summary Add an exercise to a section
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Param exercise body CreateExerciseRequest true "Exercise fields"
// @Success 201 {object} ExerciseResponse
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /sections/{id}/exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "validation_failed", "Exercise name and mode are required")
		return
	}

	in := service.ExerciseInput{
		Name:      req.Name,
		Mode:      domain.ExerciseMode(req.Mode),
		Sets:      req.Sets,
		Reps:      req.Reps,
		TimeValue: req.TimeValue,
		TimeUnit:  timeUnitPtr(req.TimeUnit),
	}
	ex, err := h.exerciseService.Create(c.Request.Context(), userID, c.Param("id"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapExerciseToResponse(ex))
}

// GetExercise godoc
// @Summary Get a single exercise
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} ExerciseResponse
// @Failure 404 {object} gin.H
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	ex, err := h.exerciseService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(ex))
}

// UpdateExercise godoc
// @Summary Update exercise fields
// @Description Applies a partial update; the result is re-validated as a
// @Description whole, so mode and its field group always stay consistent.
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Param exercise body UpdateExerciseRequest true "Fields to change"
// @Success 200 {object} ExerciseResponse
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /exercises/{id} [patch]
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "validation_failed", "Malformed exercise update")
		return
	}

	in := service.ExerciseUpdate{
		Name:      req.Name,
		Mode:      modePtr(req.Mode),
		Sets:      req.Sets,
		Reps:      req.Reps,
		TimeValue: req.TimeValue,
		TimeUnit:  timeUnitPtr(req.TimeUnit),
	}
	ex, err := h.exerciseService.Update(c.Request.Context(), userID, c.Param("id"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(ex))
}

// DeleteExercise godoc
// @Summary Delete an exercise
// @Tags Exercises
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 204
// @Failure 404 {object} gin.H
// @Router /exercises/{id} [delete]
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	if err := h.exerciseService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
