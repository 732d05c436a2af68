package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "mudarris_backend/internals/features/tutoring/subjects/controller"
)

// SubjectRoutes mounts subject CRUD under the authenticated admin group.
func SubjectRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	subjects := admin.Group("/subjects")
	subjects.Post("/", ctrl.CreateSubject)
	subjects.Get("/", ctrl.ListSubjects)
	subjects.Get("/:id", ctrl.GetSubjectByID)
	subjects.Patch("/:id", ctrl.UpdateSubject)
	subjects.Delete("/:id", ctrl.DeleteSubject)
}
