package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"schoolhub_backend/internals/features/tenants/billing/model"
)

var SnapClient snap.Client

// InitMidtrans wires the Snap client once at boot. Sandbox until the
// production key rollout is done.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken creates a hosted-payment token for an invoice. The
// invoice number doubles as the gateway order id so callbacks can be
// matched back without a lookup table.
func GenerateSnapToken(inv model.InvoiceModel, payerName, payerEmail string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.InvoiceNumber,
			GrossAmt: int64(inv.InvoiceAmount + inv.InvoiceTaxAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
