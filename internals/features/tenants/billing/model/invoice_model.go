// file: internals/features/tenants/billing/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

var AllInvoiceStatuses = []string{
	InvoiceStatusDraft,
	InvoiceStatusPending,
	InvoiceStatusPaid,
	InvoiceStatusOverdue,
	InvoiceStatusCancelled,
}

type InvoiceModel struct {
	InvoiceID             uuid.UUID `gorm:"column:invoice_id;type:uuid;default:gen_random_uuid();primaryKey" json:"invoice_id"`
	InvoiceOrganizationID uuid.UUID `gorm:"column:invoice_organization_id;type:uuid;not null;index" json:"invoice_organization_id"`
	InvoiceSubscriptionID uuid.UUID `gorm:"column:invoice_subscription_id;type:uuid;not null;index" json:"invoice_subscription_id"`
	InvoiceNumber         string    `gorm:"column:invoice_number;type:varchar(30);not null;uniqueIndex" json:"invoice_number"`
	InvoiceAmount         float64   `gorm:"column:invoice_amount;type:numeric(12,2);not null" json:"invoice_amount"`
	InvoiceTaxAmount      float64   `gorm:"column:invoice_tax_amount;type:numeric(12,2);not null;default:0" json:"invoice_tax_amount"`
	InvoiceStatus         string    `gorm:"column:invoice_status;type:varchar(15);not null;default:'draft'" json:"invoice_status"`
	InvoiceDescription    string    `gorm:"column:invoice_description;type:text" json:"invoice_description,omitempty"`

	InvoiceDueDate       time.Time  `gorm:"column:invoice_due_date;not null" json:"invoice_due_date"`
	InvoicePaidAt        *time.Time `gorm:"column:invoice_paid_at" json:"invoice_paid_at,omitempty"`
	InvoicePaymentMethod *string    `gorm:"column:invoice_payment_method;type:varchar(50)" json:"invoice_payment_method,omitempty"`
	InvoicePaymentRef    *string    `gorm:"column:invoice_payment_ref;type:varchar(120)" json:"invoice_payment_ref,omitempty"`

	InvoiceCreatedAt time.Time  `gorm:"column:invoice_created_at;not null;default:CURRENT_TIMESTAMP" json:"invoice_created_at"`
	InvoiceUpdatedAt *time.Time `gorm:"column:invoice_updated_at" json:"invoice_updated_at,omitempty"`
}

func (InvoiceModel) TableName() string { return "invoices" }
