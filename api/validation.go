package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/chxlky/taskboard-api/internal/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	sourceBody  = "body"
	sourceQuery = "query"
	sourcePath  = "path"
)

var registerOnce sync.Once

// registerValidators installs the taskstatus rule and makes field errors
// report the wire name (json, form or uri tag) instead of the Go field name.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(wireName)
		if err := v.RegisterValidation("taskstatus", validTaskStatus); err != nil {
			panic(fmt.Sprintf("register taskstatus validation: %v", err))
		}
	})
}

func wireName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form", "uri"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func validTaskStatus(fl validator.FieldLevel) bool {
	return models.TaskStatus(fl.Field().String()).Valid()
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// requestError is a rejection from the request-schema layer. It renders as
// 400 with a list of field errors.
type requestError struct {
	source string
	err    error
}

func invalidRequest(source string, err error) *requestError {
	return &requestError{source: source, err: err}
}

func (e *requestError) Error() string { return "invalid " + e.source + ": " + e.err.Error() }

func (e *requestError) Unwrap() error { return e.err }

func (e *requestError) details() []fieldError {
	var verrs validator.ValidationErrors
	if errors.As(e.err, &verrs) {
		out := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(e.err, &typeErr) && typeErr.Field != "" {
		return []fieldError{{Field: typeErr.Field, Message: "must be of type " + typeErr.Type.String()}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(e.err, &syntaxErr) {
		return []fieldError{{Field: e.source, Message: "malformed JSON"}}
	}

	return []fieldError{{Field: e.source, Message: e.err.Error()}}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "uuid":
		return "must be a valid UUID"
	case "taskstatus":
		names := make([]string, len(models.TaskStatuses))
		for i, s := range models.TaskStatuses {
			names[i] = string(s)
		}
		return "must be one of " + strings.Join(names, ", ")
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
