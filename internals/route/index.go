package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "mudarris_backend/internals/features/users/auth/route"

	groupRoute "mudarris_backend/internals/features/tutoring/groups/route"
	paymentRoute "mudarris_backend/internals/features/tutoring/payments/route"
	sessionRoute "mudarris_backend/internals/features/tutoring/sessions/route"
	statsRoute "mudarris_backend/internals/features/tutoring/stats/route"
	studentRoute "mudarris_backend/internals/features/tutoring/students/route"
	subjectRoute "mudarris_backend/internals/features/tutoring/subjects/route"

	authMiddleware "mudarris_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature. Public surface: auth + the Midtrans
// notification webhook. Everything else lives behind the JWT middleware
// under /api/a.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
	paymentRoute.PaymentWebhookRoutes(app, db)

	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	subjectRoute.SubjectRoutes(admin, db)
	studentRoute.StudentRoutes(admin, db)
	groupRoute.GroupRoutes(admin, db)
	sessionRoute.SessionRoutes(admin, db)
	paymentRoute.PaymentRoutes(admin, db)
	statsRoute.StatsRoutes(admin, db)
}
