package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "mudarris_backend/internals/features/tutoring/groups/model"
	groupService "mudarris_backend/internals/features/tutoring/groups/service"
	statsService "mudarris_backend/internals/features/tutoring/stats/service"
	studentDTO "mudarris_backend/internals/features/tutoring/students/dto"
	studentModel "mudarris_backend/internals/features/tutoring/students/model"
	studentService "mudarris_backend/internals/features/tutoring/students/service"
	helper "mudarris_backend/internals/helpers"
	helperAuth "mudarris_backend/internals/helpers/auth"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// POST /api/a/students
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req studentDTO.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	student := req.ToModel(teacherID)
	if student.StudentCode == "" {
		student.StudentCode = studentService.GenerateStudentCode(student.StudentName, student.StudentGrade)
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(student).Error; err != nil {
			return err
		}
		return statsService.RecomputeTeacherStats(tx, teacherID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.JsonCreated(c, "Student created", studentDTO.NewStudentResponse(student, nil))
}

// GET /api/a/students
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_teacher_id = ?", teacherID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("student_name ILIKE ? OR student_code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if grade := strings.TrimSpace(c.Query("grade")); grade != "" {
		q = q.Where("student_grade = ?", grade)
	}
	if subject := strings.TrimSpace(c.Query("subject")); subject != "" {
		q = q.Where("student_subject = ?", subject)
	}
	if c.Query("active") == "true" {
		q = q.Where("student_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var items []studentModel.StudentModel
	if err := q.Order("student_name ASC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list students")
	}

	groupIDs, err := ctrl.loadGroupIDs(items)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load memberships")
	}

	return helper.JsonList(c, "OK",
		studentDTO.NewStudentResponses(items, groupIDs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/students/:id
func (ctrl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_id = ? AND student_teacher_id = ?", studentID, teacherID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	groupIDs, err := ctrl.loadGroupIDs([]studentModel.StudentModel{student})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load memberships")
	}

	return helper.JsonOK(c, "OK", studentDTO.NewStudentResponse(&student, groupIDs[student.StudentID]))
}

// PATCH /api/a/students/:id
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req studentDTO.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_id = ? AND student_teacher_id = ?", studentID, teacherID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	req.Apply(&student)
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&student).Error; err != nil {
			return err
		}
		return statsService.RecomputeTeacherStats(tx, teacherID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	return helper.JsonUpdated(c, "Student updated", studentDTO.NewStudentResponse(&student, nil))
}

// DELETE /api/a/students/:id
// Removes the student from every group (fixing the headcounts) before the
// soft delete.
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var student studentModel.StudentModel
		if err := tx.
			Where("student_id = ? AND student_teacher_id = ?", studentID, teacherID).
			First(&student).Error; err != nil {
			return err
		}
		if err := groupService.RemoveStudentEverywhere(tx, teacherID, studentID); err != nil {
			return err
		}
		if err := tx.Delete(&student).Error; err != nil {
			return err
		}
		return statsService.RecomputeTeacherStats(tx, teacherID)
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}

	return helper.JsonDeleted(c, "Student deleted", nil)
}

// loadGroupIDs maps student_id → group ids via the membership rows.
func (ctrl *StudentController) loadGroupIDs(students []studentModel.StudentModel) (map[uuid.UUID][]uuid.UUID, error) {
	out := make(map[uuid.UUID][]uuid.UUID, len(students))
	if len(students) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(students))
	for i := range students {
		ids = append(ids, students[i].StudentID)
	}

	var rows []groupModel.GroupStudentModel
	if err := ctrl.DB.
		Where("group_student_student_id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, r := range rows {
		out[r.GroupStudentStudentID] = append(out[r.GroupStudentStudentID], r.GroupStudentGroupID)
	}
	return out, nil
}
