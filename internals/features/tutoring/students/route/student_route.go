package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "mudarris_backend/internals/features/tutoring/students/controller"
)

// StudentRoutes mounts the student CRUD under the authenticated admin group.
func StudentRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := admin.Group("/students")
	students.Post("/", ctrl.CreateStudent)
	students.Get("/", ctrl.ListStudents)
	students.Get("/:id", ctrl.GetStudentByID)
	students.Patch("/:id", ctrl.UpdateStudent)
	students.Delete("/:id", ctrl.DeleteStudent)
}
