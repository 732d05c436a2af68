package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "mudarris_backend/internals/features/tutoring/groups/model"
	sessionDTO "mudarris_backend/internals/features/tutoring/sessions/dto"
	sessionModel "mudarris_backend/internals/features/tutoring/sessions/model"
	statsService "mudarris_backend/internals/features/tutoring/stats/service"
	helper "mudarris_backend/internals/helpers"
	helperAuth "mudarris_backend/internals/helpers/auth"
)

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

// POST /api/a/sessions
func (ctrl *SessionController) CreateSession(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req sessionDTO.SessionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	// The session must point at one of the teacher's own groups.
	var group groupModel.GroupModel
	if err := ctrl.DB.
		Where("group_id = ? AND group_teacher_id = ?", req.ClassSessionGroupID, teacherID).
		First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load group")
	}

	session, err := req.ToModel(teacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session date")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		return statsService.RecomputeTeacherStats(tx, teacherID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	return helper.JsonCreated(c, "Session created", sessionDTO.NewSessionResponse(session))
}

// GET /api/a/sessions
func (ctrl *SessionController) ListSessions(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&sessionModel.ClassSessionModel{}).
		Where("class_session_teacher_id = ?", teacherID)

	if groupID := strings.TrimSpace(c.Query("group_id")); groupID != "" {
		gid, err := uuid.Parse(groupID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group_id")
		}
		q = q.Where("class_session_group_id = ?", gid)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !sessionModel.ValidSessionStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		q = q.Where("class_session_status = ?", status)
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		q = q.Where("class_session_date >= ?", from)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		q = q.Where("class_session_date <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count sessions")
	}

	var items []sessionModel.ClassSessionModel
	if err := q.Order("class_session_date DESC, class_session_start_time DESC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list sessions")
	}

	return helper.JsonList(c, "OK",
		sessionDTO.NewSessionResponses(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/sessions/:id
func (ctrl *SessionController) GetSessionByID(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	session, ferr := ctrl.findOwned(c, teacherID)
	if ferr != nil {
		return ferr
	}
	return helper.JsonOK(c, "OK", sessionDTO.NewSessionResponse(session))
}

// PATCH /api/a/sessions/:id
func (ctrl *SessionController) UpdateSession(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req sessionDTO.SessionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	session, ferr := ctrl.findOwned(c, teacherID)
	if ferr != nil {
		return ferr
	}

	if err := req.Apply(session); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session date")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(session).Error; err != nil {
			return err
		}
		return statsService.RecomputeTeacherStats(tx, teacherID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update session")
	}

	return helper.JsonUpdated(c, "Session updated", sessionDTO.NewSessionResponse(session))
}

// DELETE /api/a/sessions/:id
func (ctrl *SessionController) DeleteSession(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	session, ferr := ctrl.findOwned(c, teacherID)
	if ferr != nil {
		return ferr
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(session).Error; err != nil {
			return err
		}
		return statsService.RecomputeTeacherStats(tx, teacherID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete session")
	}

	return helper.JsonDeleted(c, "Session deleted", nil)
}

func (ctrl *SessionController) findOwned(c *fiber.Ctx, teacherID uuid.UUID) (*sessionModel.ClassSessionModel, error) {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var session sessionModel.ClassSessionModel
	if err := ctrl.DB.
		Where("class_session_id = ? AND class_session_teacher_id = ?", sessionID, teacherID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Session not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load session")
	}
	return &session, nil
}
