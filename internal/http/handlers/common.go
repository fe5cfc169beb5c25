package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"skillbridge/internal/common"
)

var validate = validator.New()

func decodeJSON(r *http.Request, target interface{}) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return common.NewError(common.CodeValidation, "request body is required", err)
		}
		return common.NewError(common.CodeValidation, "invalid json body", err)
	}
	return nil
}

func validateStruct(target interface{}) error {
	err := validate.Struct(target)
	if err == nil {
		return nil
	}
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return common.NewError(common.CodeValidation, "invalid request", err)
	}
	fields := make(map[string]string, len(invalid))
	for _, fieldErr := range invalid {
		name := strings.ToLower(fieldErr.Field()[:1]) + fieldErr.Field()[1:]
		fields[name] = name + " failed " + fieldErr.Tag() + " validation"
	}
	return common.NewValidationError("missing required fields", fields)
}

// pathParam returns the path segment counted from the end of the path,
// with 1 being the last segment. Segments are taken from the escaped
// path so values like a literal "%" survive a single decode.
func pathParam(r *http.Request, fromEnd int) (string, error) {
	segments := strings.Split(strings.Trim(r.URL.EscapedPath(), "/"), "/")
	if fromEnd < 1 || fromEnd > len(segments) {
		return "", common.NewError(common.CodeValidation, "invalid path", nil)
	}
	raw := segments[len(segments)-fromEnd]
	value, err := url.PathUnescape(raw)
	if err != nil || value == "" {
		return "", common.NewError(common.CodeValidation, "invalid path", err)
	}
	return value, nil
}

func indexParam(r *http.Request, fromEnd int) (int, error) {
	raw, err := pathParam(r, fromEnd)
	if err != nil {
		return 0, err
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, common.NewValidationError("invalid index", map[string]string{"index": "index must be an integer"})
	}
	return index, nil
}

type messageResponse struct {
	Message string `json:"message"`
}
