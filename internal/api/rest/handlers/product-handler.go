package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SundayYogurt/product_service/internal/domain"
	"github.com/SundayYogurt/product_service/internal/dto"
	"github.com/SundayYogurt/product_service/internal/helper/utils"
	"github.com/SundayYogurt/product_service/internal/services"
)

type ProductHandler struct {
	svc services.ProductService
}

func NewProductHandler(svc services.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// SetupRoutes registers the product routes. Reads are open; mutations and the
// audit trail go through the supplied auth middleware.
func (h *ProductHandler) SetupRoutes(app *fiber.App, auth fiber.Handler) {
	products := app.Group("/products")

	products.Get("/", h.ListProducts)
	products.Get("/search", h.SearchProducts)
	products.Get("/:id", h.GetProduct)

	products.Get("/:id/audit", auth, h.GetAuditTrail)
	products.Post("/", auth, h.CreateProduct)
	products.Put("/:id", auth, h.UpdateProduct)
	products.Patch("/:id", auth, h.UpdateProduct)
	products.Delete("/:id", auth, h.DeleteProduct)
}

func (h *ProductHandler) ListProducts(ctx *fiber.Ctx) error {
	// ?search= doubles as a filter, kept for the listing page
	term := ctx.Query("search")

	products, err := h.svc.Search(term)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return ctx.JSON(products)
}

func (h *ProductHandler) SearchProducts(ctx *fiber.Ctx) error {
	products, err := h.svc.Search(ctx.Query("term"))
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return ctx.JSON(products)
}

func (h *ProductHandler) GetProduct(ctx *fiber.Ctx) error {
	product, err := h.svc.Get(ctx.Params("id"))
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return ctx.JSON(product)
}

func (h *ProductHandler) CreateProduct(ctx *fiber.Ctx) error {
	var requestBody dto.CreateProductRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	if err := requestBody.Validate(); err != nil {
		return respondServiceError(ctx, err)
	}

	product, err := h.svc.Create(requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) UpdateProduct(ctx *fiber.Ctx) error {
	var requestBody dto.UpdateProductRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	if err := requestBody.Validate(); err != nil {
		return respondServiceError(ctx, err)
	}

	product, err := h.svc.Update(ctx.Params("id"), requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return ctx.JSON(product)
}

func (h *ProductHandler) DeleteProduct(ctx *fiber.Ctx) error {
	var performedBy *string
	if actor := ctx.Get("x-actor"); actor != "" {
		performedBy = &actor
	}

	if err := h.svc.Remove(ctx.Params("id"), performedBy); err != nil {
		return respondServiceError(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (h *ProductHandler) GetAuditTrail(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)

	records, err := h.svc.GetAuditTrail(ctx.Params("id"), limit)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return ctx.JSON(records)
}

func respondServiceError(ctx *fiber.Ctx, err error) error {
	var fieldErr *domain.FieldError
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return utils.ResponseError(ctx, fiber.StatusNotFound, "product not found")
	case errors.As(err, &fieldErr):
		return utils.ResponseInvalidInput(ctx, fieldErr.Field, fieldErr.Rule)
	default:
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "internal server error")
	}
}
