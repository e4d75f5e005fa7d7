// file: internals/helpers/errors.go
package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure (SQLSTATE 23505), either raw from pgx or translated by GORM.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// JsonConflict maps a unique violation to 409 naming the offending field set.
func JsonConflict(c *fiber.Ctx, fields string) error {
	return JsonErrorCode(c, fiber.StatusConflict, "CONFLICT",
		"Duplicate value for "+fields)
}

// JsonWriteError is the shared tail for create/update handlers: unique
// violations become Conflict, everything else is a 500.
func JsonWriteError(c *fiber.Ctx, err error, uniqueFields string) error {
	if IsUniqueViolation(err) {
		return JsonConflict(c, uniqueFields)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Write failed")
}

// FiberValidationErrors flattens validator.v10 errors into the field map the
// envelope expects.
func FiberValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			f := strings.ToLower(fe.Field())
			out[f] = append(out[f], fe.Tag())
		}
	} else if err != nil {
		out["body"] = append(out["body"], err.Error())
	}
	return out
}

// FromFiberError converts a *fiber.Error (thrown by middleware) into the
// standard envelope; used by the global error handler.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
