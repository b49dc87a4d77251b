package integration

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/catalogozord/backend/internal/domain/shared"
)

// Per-operation configuration errors, surfaced before any network call.
var (
	ErrPriceListNotConfigured = shared.NewConfigurationError("erp: price list id is not configured")
	ErrWarehouseNotConfigured = shared.NewConfigurationError("erp: warehouse id is not configured")
)

// UpstreamError is a non-2xx reply from the ERP. Body is truncated so it can
// be logged and echoed safely.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("erp: upstream returned status %d: %s", e.StatusCode, e.Body)
}

// NewUpstreamError builds an UpstreamError with the body capped at 500 bytes.
func NewUpstreamError(status int, body []byte) *UpstreamError {
	const maxBody = 500
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return &UpstreamError{StatusCode: status, Body: string(body)}
}

// IsRateLimited reports whether err is an upstream 429.
func IsRateLimited(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.StatusCode == http.StatusTooManyRequests
}
