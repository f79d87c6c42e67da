package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/SundayYogurt/product_service/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report errors against the json field name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price" validate:"required,gte=0"`
	ImageURL      *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	StockQuantity *int     `json:"stock_quantity" validate:"required,gte=0"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	ImageURL      *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	StockQuantity *int     `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
}

func (r CreateProductRequest) Validate() error { return translate(validate.Struct(r)) }
func (r UpdateProductRequest) Validate() error { return translate(validate.Struct(r)) }

// translate converts the first validator violation into a domain.FieldError so
// callers get a structured field+rule pair instead of the library's error text.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		return &domain.FieldError{Field: fe.Field(), Rule: rule}
	}
	return err
}
