package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupController "mudarris_backend/internals/features/tutoring/groups/controller"
)

// GroupRoutes mounts group CRUD, schedule editing and enrollment under the
// authenticated admin group.
func GroupRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := groupController.NewGroupController(db)

	groups := admin.Group("/groups")
	groups.Post("/", ctrl.CreateGroup)
	groups.Get("/", ctrl.ListGroups)
	groups.Get("/:id", ctrl.GetGroupByID)
	groups.Patch("/:id", ctrl.UpdateGroup)
	groups.Delete("/:id", ctrl.DeleteGroup)

	// Schedule
	groups.Get("/:id/schedule", ctrl.GetSchedule)
	groups.Put("/:id/schedule", ctrl.ReplaceSchedule)
	groups.Get("/:id/schedule-conflicts", ctrl.GetScheduleConflicts)

	// Enrollment
	groups.Get("/:id/candidates", ctrl.ListCandidates)
	groups.Get("/:id/students", ctrl.ListMembers)
	groups.Post("/:id/students", ctrl.EnrollStudents)
	groups.Delete("/:id/students/:studentId", ctrl.RemoveStudent)
}
