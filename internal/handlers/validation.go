package handlers

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/SscSPs/invoicely/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// RegisterValidators installs the custom binding tags used by the dto package:
// "currency" (a code from the supported table) and "invoicestatus". Decimal fields are
// validated as float64 so tags such as gte=0 work on them.
func RegisterValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		if err := v.RegisterValidation("currency", validateCurrency); err != nil {
			validatorsErr = err
			return
		}
		validatorsErr = v.RegisterValidation("invoicestatus", validateInvoiceStatus)
	})
	return validatorsErr
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validateCurrency(fl validator.FieldLevel) bool {
	_, ok := domain.LookupCurrency(fl.Field().String())
	return ok
}

func validateInvoiceStatus(fl validator.FieldLevel) bool {
	return domain.InvoiceStatus(fl.Field().String()).IsValid()
}
