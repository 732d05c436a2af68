package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectDTO "mudarris_backend/internals/features/tutoring/subjects/dto"
	subjectModel "mudarris_backend/internals/features/tutoring/subjects/model"
	statsService "mudarris_backend/internals/features/tutoring/stats/service"
	helper "mudarris_backend/internals/helpers"
	helperAuth "mudarris_backend/internals/helpers/auth"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// POST /api/a/subjects
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req subjectDTO.SubjectCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	subject := req.ToModel(teacherID)
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(subject).Error; err != nil {
			return err
		}
		return statsService.RecomputeTeacherStats(tx, teacherID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}

	return helper.JsonCreated(c, "Subject created", subjectDTO.NewSubjectResponse(subject))
}

// GET /api/a/subjects
func (ctrl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_teacher_id = ?", teacherID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("subject_name ILIKE ?", "%"+search+"%")
	}
	if grade := strings.TrimSpace(c.Query("grade")); grade != "" {
		q = q.Where("subject_grade = ?", grade)
	}
	if c.Query("active") == "true" {
		q = q.Where("subject_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count subjects")
	}

	var items []subjectModel.SubjectModel
	if err := q.Order("subject_name ASC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list subjects")
	}

	return helper.JsonList(c, "OK",
		subjectDTO.NewSubjectResponses(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/subjects/:id
func (ctrl *SubjectController) GetSubjectByID(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	var subject subjectModel.SubjectModel
	if err := ctrl.DB.
		Where("subject_id = ? AND subject_teacher_id = ?", subjectID, teacherID).
		First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subject")
	}

	return helper.JsonOK(c, "OK", subjectDTO.NewSubjectResponse(&subject))
}

// PATCH /api/a/subjects/:id
func (ctrl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	var req subjectDTO.SubjectUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var subject subjectModel.SubjectModel
	if err := ctrl.DB.
		Where("subject_id = ? AND subject_teacher_id = ?", subjectID, teacherID).
		First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subject")
	}

	req.Apply(&subject)
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&subject).Error; err != nil {
			return err
		}
		return statsService.RecomputeTeacherStats(tx, teacherID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subject")
	}

	return helper.JsonUpdated(c, "Subject updated", subjectDTO.NewSubjectResponse(&subject))
}

// DELETE /api/a/subjects/:id (soft delete)
func (ctrl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("subject_id = ? AND subject_teacher_id = ?", subjectID, teacherID).
			Delete(&subjectModel.SubjectModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return statsService.RecomputeTeacherStats(tx, teacherID)
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}

	return helper.JsonDeleted(c, "Subject deleted", nil)
}
