package dto

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var walletNameRe = regexp.MustCompile(`^[a-zA-Z0-9 _\-]{2,50}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("wallet_name", validateWalletName)
		_ = v.RegisterValidation("account_number", validateAccountNumber)
	}
}

// validateWalletName allows 2-50 chars of alphanumerics, spaces, dashes
// and underscores, matching the domain rule used at the service layer.
func validateWalletName(fl validator.FieldLevel) bool {
	return walletNameRe.MatchString(strings.TrimSpace(fl.Field().String()))
}

// validateAccountNumber requires at least 10 digits.
func validateAccountNumber(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if len(s) < 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SanitizeStruct trims whitespace from every exported string field
// (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(strings.TrimSpace(elem.String()))
			}
		}
	}
}
