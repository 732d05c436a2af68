package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "mudarris_backend/internals/features/tutoring/payments/controller"
)

// PaymentRoutes mounts the tuition payment endpoints under the authenticated
// admin group.
func PaymentRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	payments := admin.Group("/payments")
	payments.Post("/", ctrl.CreatePayment)
	payments.Get("/", ctrl.ListPayments)
	payments.Patch("/:id/mark-paid", ctrl.MarkPaid)
	payments.Post("/:id/pay-link", ctrl.CreatePayLink)
	payments.Delete("/:id", ctrl.DeletePayment)
}

// PaymentWebhookRoutes mounts the public Midtrans notification endpoint. The
// auth middleware skips this path.
func PaymentWebhookRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)
	app.Post("/api/payments/notification", ctrl.HandleMidtransNotification)
}
