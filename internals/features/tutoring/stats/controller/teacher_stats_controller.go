package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsModel "mudarris_backend/internals/features/tutoring/stats/model"
	statsService "mudarris_backend/internals/features/tutoring/stats/service"
	helper "mudarris_backend/internals/helpers"
	helperAuth "mudarris_backend/internals/helpers/auth"
)

type TeacherStatsController struct {
	DB *gorm.DB
}

func NewTeacherStatsController(db *gorm.DB) *TeacherStatsController {
	return &TeacherStatsController{DB: db}
}

// GET /api/a/stats
func (ctrl *TeacherStatsController) GetDashboard(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var stats statsModel.TeacherStatsModel
	err = ctrl.DB.
		Where("teacher_stats_teacher_id = ?", teacherID).
		First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No summary row yet; derive one on the spot.
		if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
			return statsService.RecomputeTeacherStats(tx, teacherID)
		}); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
		}
		if err := ctrl.DB.
			Where("teacher_stats_teacher_id = ?", teacherID).
			First(&stats).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load stats")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load stats")
	}

	return helper.JsonOK(c, "OK", stats)
}

// POST /api/a/stats/recalculate
// Rederives every counter from the source tables. Safe to call repeatedly.
func (ctrl *TeacherStatsController) Recalculate(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return statsService.RecomputeTeacherStats(tx, teacherID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to recalculate stats")
	}

	var stats statsModel.TeacherStatsModel
	if err := ctrl.DB.
		Where("teacher_stats_teacher_id = ?", teacherID).
		First(&stats).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load stats")
	}

	return helper.JsonUpdated(c, "Stats recalculated", stats)
}
