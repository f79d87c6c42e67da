package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SundayYogurt/product_service/internal/domain"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }

func validCreate() CreateProductRequest {
	return CreateProductRequest{
		Name:          "Camiseta",
		Price:         fptr(29.9),
		StockQuantity: iptr(5),
	}
}

func requireFieldError(t *testing.T, err error, field, rule string) {
	t.Helper()
	var fieldErr *domain.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, field, fieldErr.Field)
	assert.Equal(t, rule, fieldErr.Rule)
}

func TestCreateValidate_OK(t *testing.T) {
	req := validCreate()
	req.Description = sptr("good shirt")
	req.ImageURL = sptr("https://example.com/img.jpg")

	assert.NoError(t, req.Validate())
}

func TestCreateValidate_MissingName(t *testing.T) {
	req := validCreate()
	req.Name = ""

	requireFieldError(t, req.Validate(), "name", "required")
}

func TestCreateValidate_NegativePrice(t *testing.T) {
	req := validCreate()
	req.Price = fptr(-1)

	requireFieldError(t, req.Validate(), "price", "gte=0")
}

func TestCreateValidate_MissingPrice(t *testing.T) {
	req := validCreate()
	req.Price = nil

	requireFieldError(t, req.Validate(), "price", "required")
}

func TestCreateValidate_NegativeStock(t *testing.T) {
	req := validCreate()
	req.StockQuantity = iptr(-3)

	requireFieldError(t, req.Validate(), "stock_quantity", "gte=0")
}

func TestCreateValidate_MalformedImageURL(t *testing.T) {
	req := validCreate()
	req.ImageURL = sptr("not a url")

	requireFieldError(t, req.Validate(), "image_url", "url")
}

func TestUpdateValidate_EmptyRequestOK(t *testing.T) {
	assert.NoError(t, UpdateProductRequest{}.Validate())
}

func TestUpdateValidate_SuppliedFieldsFollowCreateRules(t *testing.T) {
	requireFieldError(t, UpdateProductRequest{Price: fptr(-0.01)}.Validate(), "price", "gte=0")
	requireFieldError(t, UpdateProductRequest{Name: sptr("")}.Validate(), "name", "min=1")
	requireFieldError(t, UpdateProductRequest{ImageURL: sptr("::bad::")}.Validate(), "image_url", "url")
	assert.NoError(t, UpdateProductRequest{StockQuantity: iptr(0)}.Validate())
}
