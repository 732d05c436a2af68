package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	paymentModel "mudarris_backend/internals/features/tutoring/payments/model"
	statsService "mudarris_backend/internals/features/tutoring/stats/service"
)

// HandlePaymentStatusWebhook processes a Midtrans status notification and
// flips the matching payment row. Paid-side stats are recomputed in the same
// transaction.
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] incomplete webhook payload:", body)
		return fmt.Errorf("invalid payload")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var payment paymentModel.PaymentModel
		if err := tx.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
			log.Println("[ERROR] payment not found for order:", orderID)
			return fmt.Errorf("payment with order_id %s not found", orderID)
		}

		switch status {
		case "capture", "settlement":
			now := time.Now()
			payment.PaymentStatus = paymentModel.PaymentStatusPaid
			payment.PaymentPaidAt = &now
			method := "midtrans"
			payment.PaymentMethod = &method
		case "expire", "cancel", "deny":
			payment.PaymentStatus = paymentModel.PaymentStatusUnpaid
			payment.PaymentPaidAt = nil
		default:
			log.Println("[INFO] ignoring transaction status:", status)
			return nil
		}

		if err := tx.Save(&payment).Error; err != nil {
			return err
		}
		return statsService.RecomputeTeacherStats(tx, payment.PaymentTeacherID)
	})
}
