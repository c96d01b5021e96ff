package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vasilikapapa/workout-app/internal/domain"
	"github.com/vasilikapapa/workout-app/internal/service"
)

// DayHandler holds the day service dependency. Section listing lives here
// too, since sections have no lifecycle of their own.
type DayHandler struct {
	dayService service.DayService
}

// NewDayHandler creates a new DayHandler.
func NewDayHandler(dayService service.DayService) *DayHandler {
	return &DayHandler{dayService: dayService}
}

// --- DTOs ---

type CreateDayRequest struct {
	// Name is optional; a blank name defaults to "Day <order>".
	Name string `json:"name"`
}

type RenameDayRequest struct {
	Name string `json:"name" binding:"required"`
}

type SectionResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	SectionOrder int       `json:"sectionOrder"`
	DayID        string    `json:"dayId"`
	CreatedAt    time.Time `json:"createdAt"`
}

type DayResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	DayOrder  int       `json:"dayOrder"`
	PlanID    string    `json:"planId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// Sections is populated on creation responses only; day listings stay
	// flat and sections are fetched per day.
	Sections []SectionResponse `json:"sections,omitempty"`
}

// MapDayToResponse converts a domain.Day to a DayResponse DTO.
func MapDayToResponse(day *domain.Day) DayResponse {
	if day == nil {
		return DayResponse{}
	}
	return DayResponse{
		ID:        day.ID,
		Name:      day.Name,
		DayOrder:  day.DayOrder,
		PlanID:    day.PlanID,
		CreatedAt: day.CreatedAt,
		UpdatedAt: day.UpdatedAt,
	}
}

// MapDaysToResponse converts a slice of domain.Day to DayResponse DTOs.
func MapDaysToResponse(days []domain.Day) []DayResponse {
	responses := make([]DayResponse, len(days))
	for i := range days {
		responses[i] = MapDayToResponse(&days[i])
	}
	return responses
}

// MapSectionToResponse converts a domain.Section to a SectionResponse DTO.
func MapSectionToResponse(section *domain.Section) SectionResponse {
	if section == nil {
		return SectionResponse{}
	}
	return SectionResponse{
		ID:           section.ID,
		Type:         string(section.Type),
		SectionOrder: section.SectionOrder,
		DayID:        section.DayID,
		CreatedAt:    section.CreatedAt,
	}
}

// MapSectionsToResponse converts a slice of domain.Section to DTOs.
func MapSectionsToResponse(sections []domain.Section) []SectionResponse {
	responses := make([]SectionResponse, len(sections))
	for i := range sections {
		responses[i] = MapSectionToResponse(&sections[i])
	}
	return responses
}

// --- Handler Methods ---

// ListDays godoc
// @Summary List the days of a plan
// @Tags Days
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {array} DayResponse
// @Failure 404 {object} gin.H
// @Router /plans/{id}/days [get]
func (h *DayHandler) ListDays(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	days, err := h.dayService.List(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapDaysToResponse(days))
}

// CreateDay godoc
// @Summary Add a day to a plan
// @Description Creates the day and its three sections atomically.
// @Tags Days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param day body CreateDayRequest false "Optional day name"
// @Success 201 {object} DayResponse
// @Failure 404 {object} gin.H
// @Router /plans/{id}/days [post]
func (h *DayHandler) CreateDay(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req CreateDayRequest
	// Body is optional; ignore binding errors for an empty body.
	_ = c.ShouldBindJSON(&req)

	day, sections, err := h.dayService.Create(c.Request.Context(), userID, c.Param("id"), req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp := MapDayToResponse(day)
	resp.Sections = MapSectionsToResponse(sections)
	c.JSON(http.StatusCreated, resp)
}

// RenameDay godoc
// @Summary Rename a day
// @Tags Days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Day ID"
// @Param day body RenameDayRequest true "New name"
// @Success 200 {object} DayResponse
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /days/{id} [patch]
func (h *DayHandler) RenameDay(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req RenameDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "name_required", "Day name required")
		return
	}
	day, err := h.dayService.Rename(c.Request.Context(), userID, c.Param("id"), req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapDayToResponse(day))
}

// DeleteDay godoc
// @Summary Delete a day and its sections and exercises
// @Tags Days
// @Security BearerAuth
// @Param id path string true "Day ID"
// @Success 204
// @Failure 404 {object} gin.H
// @Router /days/{id} [delete]
func (h *DayHandler) DeleteDay(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	if err := h.dayService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSections godoc
// @Summary List the three sections of a day
// @Tags Sections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Day ID"
// @Success 200 {array} SectionResponse
// @Failure 404 {object} gin.H
// @Router /days/{id}/sections [get]
func (h *DayHandler) ListSections(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	sections, err := h.dayService.ListSections(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapSectionsToResponse(sections))
}
