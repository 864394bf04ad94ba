package validators

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/carnamarket/backend/pkg/errors"
)

// maxBodyBytes caps request bodies, matching the upload ceiling.
const maxBodyBytes = 10 << 20

var phoneRe = regexp.MustCompile(`^\+?[0-9 ().\-/]{6,20}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	must(v.RegisterValidation("password", passwordRule))
	must(v.RegisterValidation("phone", phoneRule))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// passwordRule requires one lowercase, one uppercase, one digit and one
// symbol on top of whatever min length the field declares.
func passwordRule(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range value {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}

func phoneRule(fl validator.FieldLevel) bool {
	return phoneRe.MatchString(fl.Field().String())
}

// DecodeJSONBody decodes and validates the payload. Unknown fields are
// ignored so clients may send extra keys (a body-supplied sellerId is
// dropped, never fatal). All field errors are reported at once.
func DecodeJSONBody(r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body").WithDetails(map[string]any{"error": err.Error()})
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "password":
		return "must contain a lowercase letter, an uppercase letter, a digit and a symbol"
	case "phone":
		return "must be a valid phone number"
	case "uuid":
		return "must be a valid id"
	}
	return "is invalid"
}
