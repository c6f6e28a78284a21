package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"warehouse/internal/model"
	"warehouse/pkg/apperror"
	"warehouse/pkg/response"
)

var registerOnce sync.Once

// RegisterValidators adds the import_status tag and json field names to gin's validator
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Println("handler: gin validator engine is not go-playground/validator, custom tags not registered")
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
		if err := v.RegisterValidation("import_status", func(fl validator.FieldLevel) bool {
			return model.ImportOrderStatus(fl.Field().String()).IsValid()
		}); err != nil {
			log.Printf("handler: register import_status validator: %v", err)
		}
	})
}

// respondError writes err as a response envelope. Database and internal causes
// are only exposed while gin runs in debug mode.
func respondError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	status := appErr.StatusCode()

	details := appErr.Details
	if status >= 500 {
		log.Printf("request failed: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		_ = c.Error(err)
		if gin.IsDebugging() && appErr.Err != nil {
			details = append(details, apperror.FieldError{Field: "cause", Message: appErr.Err.Error()})
		}
	}

	c.JSON(status, response.Error(status, appErr.Code, appErr.Message, details...))
}

// bindError converts a binding failure into a validation error
func bindError(err error) *apperror.Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]apperror.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, apperror.FieldError{Field: fieldPath(fe), Message: tagMessage(fe)})
		}
		return apperror.Validation("Invalid request", details...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperror.Validation("Invalid request",
			apperror.FieldError{Field: typeErr.Field, Message: "must be of type " + typeErr.Type.String()})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperror.Validation("Malformed JSON body")
	}

	return apperror.Validation("Invalid request", apperror.FieldError{Field: "body", Message: err.Error()})
}

// fieldPath drops the struct name from the validator namespace: CreateImportOrderInput.items[0].unit_price -> items[0].unit_price
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s element(s)", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "import_status":
		return "must be one of draft, pending, partial, received, cancelled"
	default:
		return "failed on " + fe.Tag()
	}
}
