package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"skillbridge/internal/common"
)

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// Error maps a coded error to its HTTP status. Internal failures are
// masked with a generic message; the detail stays in the server log.
func Error(w http.ResponseWriter, err error) {
	status := statusFor(common.CodeOf(err))
	var coded *common.Error
	if !errors.As(err, &coded) || status == http.StatusInternalServerError {
		JSON(w, status, errorBody{Error: "server error"})
		return
	}
	JSON(w, status, errorBody{Error: coded.Message, Fields: coded.Fields})
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation, common.CodeOutOfRange:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeDuplicate, common.CodeDuplicateSkill, common.CodeConflict:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
