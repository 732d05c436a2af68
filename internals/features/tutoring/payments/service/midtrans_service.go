package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"mudarris_backend/internals/features/tutoring/payments/model"
)

var SnapClient snap.Client

// InitMidtrans wires the Snap client at bootstrap (sandbox).
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken creates a Snap token + redirect_url for a payment that
// already carries an order id.
func GenerateSnapToken(p model.PaymentModel, studentName, phone string) (string, string, error) {
	orderID := ""
	if p.PaymentOrderID != nil {
		orderID = *p.PaymentOrderID
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(p.PaymentAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: studentName,
			Phone: phone,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
