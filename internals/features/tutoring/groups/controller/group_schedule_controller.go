package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupDTO "mudarris_backend/internals/features/tutoring/groups/dto"
	groupModel "mudarris_backend/internals/features/tutoring/groups/model"
	groupService "mudarris_backend/internals/features/tutoring/groups/service"
	helper "mudarris_backend/internals/helpers"
	helperAuth "mudarris_backend/internals/helpers/auth"
)

// GET /api/a/groups/:id/schedule
func (ctrl *GroupController) GetSchedule(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	if err := ctrl.ensureGroupOwned(teacherID, groupID); err != nil {
		return err
	}

	slots, err := groupService.LoadSchedule(ctrl.DB, groupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schedule")
	}

	return helper.JsonOK(c, "OK", groupDTO.NewScheduleSlotResponses(slots))
}

// PUT /api/a/groups/:id/schedule
// The stored slot set is replaced wholesale; slots have no identity across
// edits so the set is never diffed.
func (ctrl *GroupController) ReplaceSchedule(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var req groupDTO.ReplaceScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var saved []groupModel.GroupScheduleModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		group, err := groupService.LockGroupForUpdate(tx, teacherID, groupID)
		if err != nil {
			return err
		}
		saved = make([]groupModel.GroupScheduleModel, 0, len(req.Slots))
		for _, s := range req.Slots {
			saved = append(saved, s.ToModel(groupID, group.GroupLocation))
		}
		return groupService.ReplaceSchedule(tx, groupID, saved)
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save schedule")
	}

	return helper.JsonUpdated(c, "Schedule saved", groupDTO.NewScheduleSlotResponses(saved))
}

// GET /api/a/groups/:id/schedule-conflicts
// Advisory scan for other groups of the same teacher meeting at overlapping
// times. Saving a conflicting schedule is never blocked.
func (ctrl *GroupController) GetScheduleConflicts(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	if err := ctrl.ensureGroupOwned(teacherID, groupID); err != nil {
		return err
	}

	slots, err := groupService.LoadSchedule(ctrl.DB, groupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schedule")
	}

	conflicts, err := groupService.FindScheduleConflicts(ctrl.DB, teacherID, groupID, slots)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to scan for conflicts")
	}

	return helper.JsonOK(c, "OK", conflicts)
}

func (ctrl *GroupController) ensureGroupOwned(teacherID, groupID uuid.UUID) error {
	var count int64
	if err := ctrl.DB.Model(&groupModel.GroupModel{}).
		Where("group_id = ? AND group_teacher_id = ?", groupID, teacherID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load group")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Group not found")
	}
	return nil
}
