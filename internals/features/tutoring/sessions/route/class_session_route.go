package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "mudarris_backend/internals/features/tutoring/sessions/controller"
)

// SessionRoutes mounts the class-session CRUD under the authenticated admin group.
func SessionRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewSessionController(db)

	sessions := admin.Group("/sessions")
	sessions.Post("/", ctrl.CreateSession)
	sessions.Get("/", ctrl.ListSessions)
	sessions.Get("/:id", ctrl.GetSessionByID)
	sessions.Patch("/:id", ctrl.UpdateSession)
	sessions.Delete("/:id", ctrl.DeleteSession)
}
