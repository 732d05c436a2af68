package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupDTO "mudarris_backend/internals/features/tutoring/groups/dto"
	groupModel "mudarris_backend/internals/features/tutoring/groups/model"
	groupService "mudarris_backend/internals/features/tutoring/groups/service"
	statsService "mudarris_backend/internals/features/tutoring/stats/service"
	studentModel "mudarris_backend/internals/features/tutoring/students/model"
	helper "mudarris_backend/internals/helpers"
	helperAuth "mudarris_backend/internals/helpers/auth"
)

// GET /api/a/groups/:id/candidates?search=
// Students eligible for enrollment into this group. A full or inactive group
// proposes nobody.
func (ctrl *GroupController) ListCandidates(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var group groupModel.GroupModel
	if err := ctrl.DB.
		Where("group_id = ? AND group_teacher_id = ?", groupID, teacherID).
		First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load group")
	}

	memberIDs, err := groupService.LoadMemberIDs(ctrl.DB, groupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load members")
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_teacher_id = ?", teacherID).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}

	candidates := groupService.FilterCandidates(&group, memberIDs, students, c.Query("search"))
	return helper.JsonOK(c, "OK", groupDTO.NewCandidateResponses(candidates))
}

// POST /api/a/groups/:id/students
// All-or-nothing batch enrollment. Overflow rejects the whole batch with the
// free-seat count; nothing is partially applied.
func (ctrl *GroupController) EnrollStudents(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var req groupDTO.EnrollStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var (
		group    *groupModel.GroupModel
		enrolled []uuid.UUID
	)
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		g, ids, err := groupService.EnrollStudents(tx, teacherID, groupID, req.StudentIDs)
		if err != nil {
			return err
		}
		group, enrolled = g, ids
		return statsService.RecomputeTeacherStats(tx, teacherID)
	})
	if txErr != nil {
		var (
			full    *groupService.CapacityExceededError
			unknown *groupService.UnknownStudentsError
		)
		switch {
		case errors.Is(txErr, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
		case errors.As(txErr, &full):
			return helper.JsonError(c, fiber.StatusConflict,
				fmt.Sprintf("Group is full: only %d seat(s) free", full.FreeSeats))
		case errors.As(txErr, &unknown):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity,
				fmt.Sprintf("%d of the requested students do not belong to you", len(unknown.StudentIDs)))
		case errors.Is(txErr, groupService.ErrGroupInactive):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Group is not active")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to enroll students")
		}
	}

	return helper.JsonUpdated(c, "Students enrolled", fiber.Map{
		"group":                groupDTO.NewGroupResponse(group, nil),
		"enrolled_student_ids": enrolled,
	})
}

// DELETE /api/a/groups/:id/students/:studentId
// Idempotent: removing a non-member changes nothing. The console asks the
// user to confirm before calling this.
func (ctrl *GroupController) RemoveStudent(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var group *groupModel.GroupModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		g, err := groupService.RemoveStudent(tx, teacherID, groupID, studentID)
		if err != nil {
			return err
		}
		group = g
		return statsService.RecomputeTeacherStats(tx, teacherID)
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove student")
	}

	return helper.JsonUpdated(c, "Student removed", groupDTO.NewGroupResponse(group, nil))
}

// GET /api/a/groups/:id/students
func (ctrl *GroupController) ListMembers(c *fiber.Ctx) error {
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

	var students []studentModel.StudentModel
	if err := ctrl.DB.
		Joins("JOIN group_students gs ON gs.group_student_student_id = students.student_id").
		Where("gs.group_student_group_id = ?", groupID).
		Order("students.student_name ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load members")
	}

	return helper.JsonOK(c, "OK", groupDTO.NewCandidateResponses(students))
}
