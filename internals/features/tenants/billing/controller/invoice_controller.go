// file: internals/features/tenants/billing/controller/invoice_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/tenants/billing/dto"
	"schoolhub_backend/internals/features/tenants/billing/model"
	"schoolhub_backend/internals/features/tenants/billing/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type InvoiceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db, Validator: validator.New()}
}

/* ------------------------- owner side (/api/o) ------------------------- */

func (ctl *InvoiceController) Create(c *fiber.Ctx) error {
	var body dto.CreateInvoiceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}
	body.Normalize()

	ent := model.InvoiceModel{
		InvoiceOrganizationID: body.OrganizationID,
		InvoiceSubscriptionID: body.SubscriptionID,
		InvoiceNumber:         service.GenerateInvoiceNumber(time.Now()),
		InvoiceAmount:         body.Amount,
		InvoiceTaxAmount:      body.TaxAmount,
		InvoiceStatus:         model.InvoiceStatusPending,
		InvoiceDescription:    body.Description,
		InvoiceDueDate:        body.DueDate,
	}

	// One retry covers the astronomically rare suffix collision.
	if err := ctl.DB.Create(&ent).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			ent.InvoiceNumber = service.GenerateInvoiceNumber(time.Now())
			if err2 := ctl.DB.Create(&ent).Error; err2 != nil {
				return helper.JsonWriteError(c, err2, "invoice_number")
			}
		} else {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Insert failed")
		}
	}
	return helper.JsonCreated(c, "Invoice created", ent)
}

func (ctl *InvoiceController) ListAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	dbq := ctl.DB.Model(&model.InvoiceModel{})
	if v := c.Query("status"); v != "" {
		dbq = dbq.Where("invoice_status = ?", v)
	}
	if v := c.Query("organization_id"); v != "" {
		orgID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid organization_id")
		}
		dbq = dbq.Where("invoice_organization_id = ?", orgID)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Count failed")
	}

	var rows []model.InvoiceModel
	if err := dbq.
		Order("invoice_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

// MarkPaid is the manual settlement path for bank transfers that never
// touch the gateway.
func (ctl *InvoiceController) MarkPaid(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	// Body is optional for plain bank-transfer settlements.
	var body dto.MarkPaidRequest
	_ = c.BodyParser(&body)

	now := time.Now()
	updates := map[string]any{
		"invoice_status":     model.InvoiceStatusPaid,
		"invoice_paid_at":    now,
		"invoice_updated_at": now,
	}
	if body.PaymentMethod != "" {
		updates["invoice_payment_method"] = body.PaymentMethod
	}
	if body.TransactionID != "" {
		updates["invoice_payment_ref"] = body.TransactionID
	}

	res := ctl.DB.Model(&model.InvoiceModel{}).
		Where("invoice_id = ? AND invoice_status IN ?", id,
			[]string{model.InvoiceStatusPending, model.InvoiceStatusOverdue}).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonUpdated(c, "Invoice marked paid", nil)
}

/* ------------------------- tenant side (/api/a) ------------------------ */

func (ctl *InvoiceController) ListMine(c *fiber.Ctx) error {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No organization in scope")
	}

	p := helper.ResolvePaging(c, 25, 100)

	dbq := ctl.DB.Model(&model.InvoiceModel{}).
		Where("invoice_organization_id = ?", sc.OrganizationID)
	if v := c.Query("status"); v != "" {
		dbq = dbq.Where("invoice_status = ?", v)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Count failed")
	}

	var rows []model.InvoiceModel
	if err := dbq.
		Order("invoice_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

// Pay returns a Snap token for an unpaid invoice in the caller's org.
// Cross-tenant invoice ids come back 404, same as missing ones.
func (ctl *InvoiceController) Pay(c *fiber.Ctx) error {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No organization in scope")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.InvoiceModel
	if err := ctl.DB.
		First(&ent, "invoice_id = ? AND invoice_organization_id = ?", id, sc.OrganizationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	if ent.InvoiceStatus == model.InvoiceStatusPaid || ent.InvoiceStatus == model.InvoiceStatusCancelled {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Invoice is not payable")
	}

	payerName, payerEmail := billingContact(c)
	token, err := service.GenerateSnapToken(ent, payerName, payerEmail)
	if err != nil {
		log.Printf("[ERROR] snap token for %s: %v", ent.InvoiceNumber, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway unavailable")
	}

	return helper.JsonOK(c, "Payment token created", dto.PayInvoiceResponse{
		InvoiceNumber: ent.InvoiceNumber,
		SnapToken:     token,
	})
}

func billingContact(c *fiber.Ctx) (string, string) {
	name, _ := c.Locals("user_name").(string)
	email, _ := c.Locals("user_email").(string)
	if name == "" {
		name = "Billing Admin"
	}
	return name, email
}
