package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/openboard/issue-service/pkg/util"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseBody decodes a strict JSON request body into out and runs validator
// tags. Unknown fields are rejected deterministically.
func parseBody(c *fiber.Ctx, out any) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{"reason": err.Error()})
	}

	if err := validate.Struct(out); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return apperrors.NewValidationError(
				fmt.Sprintf("field %s failed on %q validation", strings.ToLower(fe.Field()), fe.Tag()),
				map[string]any{"field": strings.ToLower(fe.Field())})
		}
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return nil
}
