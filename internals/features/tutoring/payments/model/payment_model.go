package model

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// PaymentModel is one student's monthly fee for a group.
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:payment_id" json:"payment_id"`

	PaymentTeacherID uuid.UUID `gorm:"type:uuid;not null;column:payment_teacher_id;index:idx_payments_teacher" json:"payment_teacher_id"`
	PaymentStudentID uuid.UUID `gorm:"type:uuid;not null;column:payment_student_id;uniqueIndex:uq_payment_month" json:"payment_student_id"`
	PaymentGroupID   uuid.UUID `gorm:"type:uuid;not null;column:payment_group_id;uniqueIndex:uq_payment_month" json:"payment_group_id"`

	// "YYYY-MM"
	PaymentMonth  string `gorm:"type:varchar(7);not null;column:payment_month;uniqueIndex:uq_payment_month" json:"payment_month"`
	PaymentAmount int    `gorm:"not null;column:payment_amount" json:"payment_amount"`

	// unpaid | paid
	PaymentStatus string     `gorm:"type:varchar(20);not null;default:'unpaid';column:payment_status" json:"payment_status"`
	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`
	PaymentMethod *string    `gorm:"type:varchar(50);column:payment_method" json:"payment_method,omitempty"`

	PaymentOrderID         *string        `gorm:"type:varchar(64);column:payment_order_id;index" json:"payment_order_id,omitempty"`
	PaymentGatewayResponse datatypes.JSON `gorm:"type:jsonb;column:payment_gateway_response" json:"payment_gateway_response,omitempty"`

	PaymentNotes *string `gorm:"type:text;column:payment_notes" json:"payment_notes,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"-"`
}

func (PaymentModel) TableName() string { return "payments" }

func (m *PaymentModel) ensureConsistency() error {
	if !monthPattern.MatchString(m.PaymentMonth) {
		return fmt.Errorf("payment_month must look like YYYY-MM, got %q", m.PaymentMonth)
	}
	if m.PaymentAmount < 0 {
		return fmt.Errorf("payment_amount must be >= 0")
	}
	switch m.PaymentStatus {
	case PaymentStatusUnpaid, PaymentStatusPaid:
	default:
		return fmt.Errorf("payment_status must be unpaid|paid, got %q", m.PaymentStatus)
	}
	if m.PaymentStatus == PaymentStatusPaid && m.PaymentPaidAt == nil {
		now := time.Now()
		m.PaymentPaidAt = &now
	}
	return nil
}

func (m *PaymentModel) BeforeCreate(_ *gorm.DB) error { return m.ensureConsistency() }
func (m *PaymentModel) BeforeUpdate(_ *gorm.DB) error { return m.ensureConsistency() }
