package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	verrors "github.com/vpack/vpack/pkg/errors"
	"github.com/vpack/vpack/pkg/schema"
	"github.com/vpack/vpack/pkg/semver"
	"github.com/vpack/vpack/pkg/serializer"
	"github.com/vpack/vpack/pkg/vercode"
)

// Error codes exposed on the wire, aligned with the structured error taxonomy.
const (
	ErrCodeInvalidSchema      = string(verrors.ErrCodeInvalidSchema)
	ErrCodeValueRange         = string(verrors.ErrCodeValueRange)
	ErrCodeArityMismatch      = string(verrors.ErrCodeArityMismatch)
	ErrCodeInvalidRequest     = string(verrors.ErrCodeInvalidRequest)
	ErrCodeRateLimitExceeded  = string(verrors.ErrCodeRateLimitExceeded)
	ErrCodeInternalError      = string(verrors.ErrCodeInternal)
	ErrCodeMethodNotAllowed   = string(verrors.ErrCodeMethodNotAllowed)
	ErrCodeServiceUnavailable = string(verrors.ErrCodeUnavailable)
)

// ErrorResponse represents error responses returned by all API endpoints
type ErrorResponse struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"requestId"`
	Timestamp time.Time              `json:"timestamp"`
	Retryable bool                   `json:"retryable"`
}

// WriteError writes a structured error response
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code, message string, retryable bool, details map[string]interface{}) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// classifyError maps version core errors to HTTP status and wire codes.
// Validation failures are never retryable.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, schema.ErrEmptySchema),
		errors.Is(err, schema.ErrBlankName),
		errors.Is(err, schema.ErrNonPositiveWidth),
		errors.Is(err, schema.ErrDuplicateName),
		errors.Is(err, schema.ErrBitBudgetExceeded):
		return http.StatusBadRequest, ErrCodeInvalidSchema

	case errors.Is(err, vercode.ErrValueNegative),
		errors.Is(err, vercode.ErrValueTooLarge):
		return http.StatusBadRequest, ErrCodeValueRange

	case errors.Is(err, vercode.ErrTooFewValues),
		errors.Is(err, vercode.ErrTooManyValues):
		return http.StatusBadRequest, ErrCodeArityMismatch

	case errors.Is(err, vercode.ErrUnknownComponent),
		errors.Is(err, semver.ErrEmptyVersion),
		errors.Is(err, semver.ErrInvalidFormat),
		errors.Is(err, semver.ErrNonNumeric),
		errors.Is(err, semver.ErrUnknownLevel):
		return http.StatusBadRequest, ErrCodeInvalidRequest

	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}
