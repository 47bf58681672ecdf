package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/erdem/tamatch/internal/app/models/dto"
	"github.com/erdem/tamatch/internal/app/services"
	"github.com/erdem/tamatch/internal/middleware"
)

// ExperienceController handles the experience ledger
type ExperienceController struct {
	experienceService services.ExperienceService
}

// NewExperienceController creates a new ExperienceController
func NewExperienceController(experienceService services.ExperienceService) *ExperienceController {
	return &ExperienceController{
		experienceService: experienceService,
	}
}

// AddExperience records prior experience with a course
// @Summary Report prior course experience
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CreateExperienceRequest true "Experience information"
// @Success 201 {object} dto.APIResponse{data=dto.ExperienceResponse} "Experience recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/experiences [post]
func (c *ExperienceController) AddExperience(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateExperienceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.experienceService.AddExperience(ctx, userID, courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// DeleteExperience removes an own experience record
// @Summary Delete an experience record
// @Tags experiences
// @Produce json
// @Security BearerAuth
// @Param id path int true "Experience ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Experience deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Experience not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /experiences/{id} [delete]
func (c *ExperienceController) DeleteExperience(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	experienceID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.experienceService.DeleteExperience(ctx, userID, experienceID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Experience deleted"},
		Timestamp: time.Now(),
	})
}

// ListExperiences lists the caller's experience records
// @Summary List own experience records
// @Tags experiences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ExperienceListResponse} "Experiences retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /experiences [get]
func (c *ExperienceController) ListExperiences(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	resp, err := c.experienceService.ListExperiences(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}
