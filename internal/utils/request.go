package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/adnanmuhammad4393/henna-storefront/internal/api/middleware"
	appErrors "github.com/adnanmuhammad4393/henna-storefront/internal/errors"
	"github.com/adnanmuhammad4393/henna-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const sessionHeader = "X-Session-ID"

func DecodeJSONBody(r *http.Request, dest any) error {

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	defer r.Body.Close()

	if len(body) == 0 {
		return errors.New("request body cannot be empty")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	return nil
}

// ParseAndValidate decodes the body into dest and runs struct validation,
// writing the error response itself. Returns false when the request is bad.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	logger := middleware.Logger(r.Context())

	if err := DecodeJSONBody(r, dest); err != nil {
		logger.Warn("Invalid request", slog.String("error", err.Error()), slog.String("endpoint", r.URL.Path))
		response.Error(w, appErrors.BadRequestError(err.Error()))

		return false
	}

	if err := validate.Struct(dest); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()), slog.String("endpoint", r.URL.Path))
		response.Error(w, validationAppError(err))

		return false
	}

	return true
}

// SessionID resolves the storefront session from the X-Session-ID header.
func SessionID(r *http.Request) (uuid.UUID, error) {

	raw := r.Header.Get(sessionHeader)
	if raw == "" {
		return uuid.Nil, appErrors.BadRequestError("Session ID is required")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, appErrors.BadRequestError("Session ID is not valid").WithError(err)
	}

	return id, nil
}

func validationAppError(err error) *appErrors.AppError {

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]

		return appErrors.AddValidationError(first.Field(), first.Tag())
	}

	return appErrors.ValidationError("Invalid input data")
}
