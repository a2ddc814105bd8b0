package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/propease/propease-api/internal/models"
)

// BindNestedOrFlat binds the request body to obj. A body wrapping the
// payload under key (e.g. {"project": {...}}) binds the nested object;
// any other body is bound as is.
func BindNestedOrFlat(c *gin.Context, key string, obj interface{}) error {
	var bodyBytes []byte
	if c.Request.Body != nil {
		bodyBytes, _ = io.ReadAll(c.Request.Body)
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	var nestedMap map[string]json.RawMessage
	if err := json.Unmarshal(bodyBytes, &nestedMap); err == nil {
		if val, ok := nestedMap[key]; ok {
			return json.Unmarshal(val, obj)
		}
	}
	return json.Unmarshal(bodyBytes, obj)
}

// RegisterValidators adds the domain tags to gin's validator and makes
// errors report json field names
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return registerValidators(v)
}

func registerValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	tags := map[string]func(string) bool{
		"enquiry_status": models.ValidEnquiryStatus,
		"role":           models.ValidRole,
		"document_type":  models.ValidDocumentType,
	}
	for tag, valid := range tags {
		valid := valid
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		}); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// bindErrorMessage turns a binding failure into a message for the client
func bindErrorMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "Invalid request body"
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", fe.Field())
	case "email":
		return fmt.Sprintf("Field '%s' must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s in length", fe.Field(), fe.Param())
	case "enquiry_status":
		return "Invalid enquiry status"
	case "role":
		return "Role must be ADMIN or EMPLOYEE"
	case "document_type":
		return "Invalid document type"
	default:
		return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
	}
}
