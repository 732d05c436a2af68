package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsController "mudarris_backend/internals/features/tutoring/stats/controller"
)

// StatsRoutes mounts the dashboard summary endpoints under the authenticated
// admin group.
func StatsRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := statsController.NewTeacherStatsController(db)

	stats := admin.Group("/stats")
	stats.Get("/", ctrl.GetDashboard)
	stats.Post("/recalculate", ctrl.Recalculate)
}
