package campussdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Stable error codes written by the service.
const (
	ErrorCodeValidation         = "validation_error"
	ErrorCodeUnauthenticated    = "unauthenticated"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeInvalidSender      = "invalid_sender"
	ErrorCodeInvalidReceivers   = "invalid_receivers"
	ErrorCodePersistence        = "persistence_error"
	ErrorCodePartialWrite       = "partial_write"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeAccountBlocked     = "account_blocked"
	ErrorCodeEmailTaken         = "email_taken"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeServerError        = "server_error"
)

// APIError is a non-success response from the service.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
	Emails      []string
}

func (e *APIError) Error() string {
	if len(e.Emails) > 0 {
		return fmt.Sprintf("%d %s: %s [%s]", e.StatusCode, e.Code, e.Description, strings.Join(e.Emails, ", "))
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Description)
}

// parseErrorResponse builds an APIError from a response body, tolerating
// bodies that are not JSON.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        er.Error,
			Description: er.ErrorDescription,
			Emails:      er.Emails,
		}
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        http.StatusText(resp.StatusCode),
		Description: strings.TrimSpace(string(body)),
	}
}

// IsCode reports whether err is an *APIError with the given code.
func IsCode(err error, code string) bool {
	e, ok := err.(*APIError)
	return ok && e.Code == code
}
