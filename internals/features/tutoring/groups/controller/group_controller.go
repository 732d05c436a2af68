package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupDTO "mudarris_backend/internals/features/tutoring/groups/dto"
	groupModel "mudarris_backend/internals/features/tutoring/groups/model"
	groupService "mudarris_backend/internals/features/tutoring/groups/service"
	statsService "mudarris_backend/internals/features/tutoring/stats/service"
	helper "mudarris_backend/internals/helpers"
	helperAuth "mudarris_backend/internals/helpers/auth"
)

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

// POST /api/a/groups
func (ctrl *GroupController) CreateGroup(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req groupDTO.GroupCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	group := req.ToModel(teacherID)
	var slots []groupModel.GroupScheduleModel

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		slots = make([]groupModel.GroupScheduleModel, 0, len(req.Slots))
		for _, s := range req.Slots {
			slots = append(slots, s.ToModel(group.GroupID, group.GroupLocation))
		}
		if err := tx.Create(&slots).Error; err != nil {
			return err
		}
		return statsService.RecomputeTeacherStats(tx, teacherID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create group")
	}

	return helper.JsonCreated(c, "Group created", groupDTO.NewGroupResponse(group, slots))
}

// GET /api/a/groups
func (ctrl *GroupController) ListGroups(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&groupModel.GroupModel{}).
		Where("group_teacher_id = ?", teacherID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("group_name ILIKE ?", "%"+search+"%")
	}
	if grade := strings.TrimSpace(c.Query("grade")); grade != "" {
		q = q.Where("group_grade = ?", grade)
	}
	if subjectID := strings.TrimSpace(c.Query("subject_id")); subjectID != "" {
		if sid, err := uuid.Parse(subjectID); err == nil {
			q = q.Where("group_subject_id = ?", sid)
		}
	}
	if c.Query("active") == "true" {
		q = q.Where("group_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count groups")
	}

	var items []groupModel.GroupModel
	if err := q.Order("group_created_at DESC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list groups")
	}

	return helper.JsonList(c, "OK",
		groupDTO.NewGroupResponses(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/groups/:id
func (ctrl *GroupController) GetGroupByID(c *fiber.Ctx) error {
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

	slots, err := groupService.LoadSchedule(ctrl.DB, groupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schedule")
	}

	return helper.JsonOK(c, "OK", groupDTO.NewGroupResponse(&group, slots))
}

// PATCH /api/a/groups/:id
// Shrinking group_max_students below the current headcount is rejected.
func (ctrl *GroupController) UpdateGroup(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var req groupDTO.GroupUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var group *groupModel.GroupModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		g, err := groupService.LockGroupForUpdate(tx, teacherID, groupID)
		if err != nil {
			return err
		}
		if req.GroupMaxStudents != nil {
			if err := groupService.ValidateCapacityChange(g, *req.GroupMaxStudents); err != nil {
				return err
			}
		}
		req.Apply(g)
		if err := tx.Save(g).Error; err != nil {
			return err
		}
		group = g
		return statsService.RecomputeTeacherStats(tx, teacherID)
	})
	if txErr != nil {
		var invalid *groupService.InvalidCapacityError
		switch {
		case errors.Is(txErr, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
		case errors.As(txErr, &invalid):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, invalid.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update group")
		}
	}

	return helper.JsonUpdated(c, "Group updated", groupDTO.NewGroupResponse(group, nil))
}

// DELETE /api/a/groups/:id
// Cascades: schedule slots and membership rows go with the group.
func (ctrl *GroupController) DeleteGroup(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := groupService.LockGroupForUpdate(tx, teacherID, groupID); err != nil {
			return err
		}
		if err := tx.
			Where("group_schedule_group_id = ?", groupID).
			Delete(&groupModel.GroupScheduleModel{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("group_student_group_id = ?", groupID).
			Delete(&groupModel.GroupStudentModel{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("group_id = ?", groupID).
			Delete(&groupModel.GroupModel{}).Error; err != nil {
			return err
		}
		return statsService.RecomputeTeacherStats(tx, teacherID)
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete group")
	}

	return helper.JsonDeleted(c, "Group deleted", nil)
}
