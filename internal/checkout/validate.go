package checkout

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/go-playground/validator/v10"
)

var (
	postalCodePattern = regexp.MustCompile(`^\d{5}$`)
	phonePattern      = regexp.MustCompile(`^(\+30|0030|30)?[2-9]\d{8,9}$`)
)

// ValidationError lists rejected fields as field name -> failed rule.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	return "invalid checkout form: " + strings.Join(names, ", ")
}

type addressForm struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone" validate:"required,gr_phone"`
	Line1      string `json:"line1" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required,postal_code"`
	Country    string `json:"country" validate:"required,iso3166_1_alpha2"`

	ShippingMethod string `json:"shipping_method" validate:"oneof=HOME PICKUP COURIER"`
	PaymentMethod  string `json:"payment_method" validate:"oneof=COD CARD"`
	Items          int    `json:"items" validate:"gt=0"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})
	_ = v.RegisterValidation("postal_code", func(fl validator.FieldLevel) bool {
		return ValidPostalCode(fl.Field().String())
	})
	_ = v.RegisterValidation("gr_phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	return v
}

func ValidPostalCode(code string) bool {
	return postalCodePattern.MatchString(code)
}

func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func (o *Orchestrator) validateForm(addr entities.Address, lines []entities.CartLine, method entities.ShippingMethod, pay entities.PaymentMethod) error {
	form := addressForm{
		Name:           strings.TrimSpace(addr.Name),
		Phone:          strings.TrimSpace(addr.Phone),
		Line1:          strings.TrimSpace(addr.Line1),
		City:           strings.TrimSpace(addr.City),
		PostalCode:     strings.TrimSpace(addr.PostalCode),
		Country:        strings.ToUpper(strings.TrimSpace(addr.Country)),
		ShippingMethod: string(method),
		PaymentMethod:  string(pay),
		Items:          len(lines),
	}
	if err := o.validate.Struct(form); err != nil {
		return &ValidationError{Fields: utils.FieldErrors(err)}
	}
	return nil
}
