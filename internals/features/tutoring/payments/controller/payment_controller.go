package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "mudarris_backend/internals/features/tutoring/groups/model"
	paymentDTO "mudarris_backend/internals/features/tutoring/payments/dto"
	paymentModel "mudarris_backend/internals/features/tutoring/payments/model"
	paymentService "mudarris_backend/internals/features/tutoring/payments/service"
	statsService "mudarris_backend/internals/features/tutoring/stats/service"
	studentModel "mudarris_backend/internals/features/tutoring/students/model"
	helper "mudarris_backend/internals/helpers"
	helperAuth "mudarris_backend/internals/helpers/auth"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// POST /api/a/payments
func (ctrl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req paymentDTO.PaymentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var group groupModel.GroupModel
	if err := ctrl.DB.
		Where("group_id = ? AND group_teacher_id = ?", req.PaymentGroupID, teacherID).
		First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load group")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_id = ? AND student_teacher_id = ?", req.PaymentStudentID, teacherID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	payment := req.ToModel(teacherID)
	if payment.PaymentAmount == 0 {
		payment.PaymentAmount = group.GroupMonthlyPrice
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return statsService.RecomputeTeacherStats(tx, teacherID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment")
	}

	return helper.JsonCreated(c, "Payment created", paymentDTO.NewPaymentResponse(payment))
}

// GET /api/a/payments
func (ctrl *PaymentController) ListPayments(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Where("payment_teacher_id = ?", teacherID)

	if month := strings.TrimSpace(c.Query("month")); month != "" {
		q = q.Where("payment_month = ?", month)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("payment_status = ?", status)
	}
	if groupID := strings.TrimSpace(c.Query("group_id")); groupID != "" {
		gid, err := uuid.Parse(groupID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group_id")
		}
		q = q.Where("payment_group_id = ?", gid)
	}
	if studentID := strings.TrimSpace(c.Query("student_id")); studentID != "" {
		sid, err := uuid.Parse(studentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		q = q.Where("payment_student_id = ?", sid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count payments")
	}

	var items []paymentModel.PaymentModel
	if err := q.Order("payment_month DESC, payment_created_at DESC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list payments")
	}

	return helper.JsonList(c, "OK",
		paymentDTO.NewPaymentResponses(items),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /api/a/payments/:id/mark-paid
func (ctrl *PaymentController) MarkPaid(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req paymentDTO.PaymentMarkPaidRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
		}
	}
	req.Normalize()

	payment, ferr := ctrl.findOwned(c, teacherID)
	if ferr != nil {
		return ferr
	}

	now := time.Now()
	payment.PaymentStatus = paymentModel.PaymentStatusPaid
	payment.PaymentPaidAt = &now
	if req.PaymentMethod != nil {
		payment.PaymentMethod = req.PaymentMethod
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(payment).Error; err != nil {
			return err
		}
		return statsService.RecomputeTeacherStats(tx, teacherID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update payment")
	}

	return helper.JsonUpdated(c, "Payment marked paid", paymentDTO.NewPaymentResponse(payment))
}

// POST /api/a/payments/:id/pay-link
// Issues a Midtrans Snap token for online payment of this row.
func (ctrl *PaymentController) CreatePayLink(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	payment, ferr := ctrl.findOwned(c, teacherID)
	if ferr != nil {
		return ferr
	}
	if payment.PaymentStatus == paymentModel.PaymentStatusPaid {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payment is already paid")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_id = ?", payment.PaymentStudentID).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	if payment.PaymentOrderID == nil {
		orderID := fmt.Sprintf("TUITION-%d", time.Now().UnixNano())
		payment.PaymentOrderID = &orderID
		if err := ctrl.DB.Model(payment).
			Update("payment_order_id", orderID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store order id")
		}
	}

	token, redirectURL, err := paymentService.GenerateSnapToken(*payment, student.StudentName, student.StudentPhone)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to create payment link")
	}

	return helper.JsonOK(c, "Payment link created", fiber.Map{
		"token":        token,
		"redirect_url": redirectURL,
		"order_id":     *payment.PaymentOrderID,
	})
}

// POST /api/payments/notification (public, called by Midtrans)
func (ctrl *PaymentController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification payload")
	}

	if err := paymentService.HandlePaymentStatusWebhook(ctrl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process notification")
	}
	return helper.JsonOK(c, "OK", nil)
}

// DELETE /api/a/payments/:id
func (ctrl *PaymentController) DeletePayment(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	payment, ferr := ctrl.findOwned(c, teacherID)
	if ferr != nil {
		return ferr
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(payment).Error; err != nil {
			return err
		}
		return statsService.RecomputeTeacherStats(tx, teacherID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete payment")
	}

	return helper.JsonDeleted(c, "Payment deleted", nil)
}

func (ctrl *PaymentController) findOwned(c *fiber.Ctx, teacherID uuid.UUID) (*paymentModel.PaymentModel, error) {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment id")
	}

	var payment paymentModel.PaymentModel
	if err := ctrl.DB.
		Where("payment_id = ? AND payment_teacher_id = ?", paymentID, teacherID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payment")
	}
	return &payment, nil
}
