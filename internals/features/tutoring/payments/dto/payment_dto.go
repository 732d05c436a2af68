package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "mudarris_backend/internals/features/tutoring/payments/model"
)

/* ----------------- CREATE REQUEST ----------------- */

type PaymentCreateRequest struct {
	PaymentStudentID uuid.UUID `json:"payment_student_id" validate:"required"`
	PaymentGroupID   uuid.UUID `json:"payment_group_id"   validate:"required"`
	PaymentMonth     string    `json:"payment_month"      validate:"required,len=7"`
	// Zero means "use the group's monthly price".
	PaymentAmount int     `json:"payment_amount" validate:"omitempty,min=0"`
	PaymentNotes  *string `json:"payment_notes"  validate:"omitempty,max=2000"`
}

func (r *PaymentCreateRequest) Normalize() {
	r.PaymentMonth = strings.TrimSpace(r.PaymentMonth)
	r.PaymentNotes = trimPtr(r.PaymentNotes)
}

func (r PaymentCreateRequest) ToModel(teacherID uuid.UUID) *m.PaymentModel {
	return &m.PaymentModel{
		PaymentTeacherID: teacherID,
		PaymentStudentID: r.PaymentStudentID,
		PaymentGroupID:   r.PaymentGroupID,
		PaymentMonth:     r.PaymentMonth,
		PaymentAmount:    r.PaymentAmount,
		PaymentStatus:    m.PaymentStatusUnpaid,
		PaymentNotes:     r.PaymentNotes,
	}
}

/* ----------------- MARK PAID REQUEST ----------------- */

type PaymentMarkPaidRequest struct {
	PaymentMethod *string `json:"payment_method" validate:"omitempty,max=50"`
}

func (r *PaymentMarkPaidRequest) Normalize() {
	r.PaymentMethod = trimPtr(r.PaymentMethod)
}

/* ----------------- RESPONSE ----------------- */

type PaymentResponse struct {
	PaymentID        uuid.UUID  `json:"payment_id"`
	PaymentStudentID uuid.UUID  `json:"payment_student_id"`
	PaymentGroupID   uuid.UUID  `json:"payment_group_id"`
	PaymentMonth     string     `json:"payment_month"`
	PaymentAmount    int        `json:"payment_amount"`
	PaymentStatus    string     `json:"payment_status"`
	PaymentPaidAt    *time.Time `json:"payment_paid_at,omitempty"`
	PaymentMethod    *string    `json:"payment_method,omitempty"`
	PaymentOrderID   *string    `json:"payment_order_id,omitempty"`
	PaymentNotes     *string    `json:"payment_notes,omitempty"`
	PaymentCreatedAt time.Time  `json:"payment_created_at"`
}

func NewPaymentResponse(p *m.PaymentModel) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:        p.PaymentID,
		PaymentStudentID: p.PaymentStudentID,
		PaymentGroupID:   p.PaymentGroupID,
		PaymentMonth:     p.PaymentMonth,
		PaymentAmount:    p.PaymentAmount,
		PaymentStatus:    p.PaymentStatus,
		PaymentPaidAt:    p.PaymentPaidAt,
		PaymentMethod:    p.PaymentMethod,
		PaymentOrderID:   p.PaymentOrderID,
		PaymentNotes:     p.PaymentNotes,
		PaymentCreatedAt: p.PaymentCreatedAt,
	}
}

func NewPaymentResponses(items []m.PaymentModel) []*PaymentResponse {
	out := make([]*PaymentResponse, 0, len(items))
	for i := range items {
		out = append(out, NewPaymentResponse(&items[i]))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
