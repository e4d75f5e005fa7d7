// file: internals/features/tenants/billing/dto/invoice_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateInvoiceRequest struct {
	OrganizationID uuid.UUID `json:"invoice_organization_id" validate:"required"`
	SubscriptionID uuid.UUID `json:"invoice_subscription_id" validate:"required"`
	Amount         float64   `json:"invoice_amount" validate:"required,gt=0"`
	TaxAmount      float64   `json:"invoice_tax_amount" validate:"omitempty,gte=0"`
	Description    string    `json:"invoice_description" validate:"omitempty"`
	DueDate        time.Time `json:"invoice_due_date" validate:"required"`
}

func (r *CreateInvoiceRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
}

// MarkPaidRequest is optional detail for manual settlement.
type MarkPaidRequest struct {
	PaymentMethod string `json:"invoice_payment_method" validate:"omitempty,max=50"`
	TransactionID string `json:"invoice_payment_ref" validate:"omitempty,max=120"`
}

// PayInvoiceResponse carries the hosted-payment token back to the client.
type PayInvoiceResponse struct {
	InvoiceNumber string `json:"invoice_number"`
	SnapToken     string `json:"snap_token"`
}
