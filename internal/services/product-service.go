package services

import (
	"encoding/json"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/SundayYogurt/product_service/internal/domain"
	"github.com/SundayYogurt/product_service/internal/dto"
	"github.com/SundayYogurt/product_service/internal/interfaces"
	"github.com/SundayYogurt/product_service/internal/repository"
)

type ProductService interface {
	List() ([]domain.Product, error)
	Search(term string) ([]domain.Product, error)
	Get(id string) (*domain.Product, error)
	Create(input dto.CreateProductRequest) (*domain.Product, error)
	Update(id string, input dto.UpdateProductRequest) (*domain.Product, error)
	Remove(id string, performedBy *string) error
	GetAuditTrail(productID string, limit int) ([]domain.ProductAudit, error)
}

type productService struct {
	repo      repository.ProductRepository
	auditRepo repository.AuditRepository
	producer  interfaces.ProducerHandler
	logger    *zap.SugaredLogger
}

func NewProductService(
	repo repository.ProductRepository,
	auditRepo repository.AuditRepository,
	producer interfaces.ProducerHandler,
	logger *zap.SugaredLogger,
) ProductService {
	return &productService{
		repo:      repo,
		auditRepo: auditRepo,
		producer:  producer,
		logger:    logger,
	}
}

func (s *productService) List() ([]domain.Product, error) {
	return s.repo.FindAllActive()
}

func (s *productService) Search(term string) ([]domain.Product, error) {
	if term == "" {
		return s.repo.FindAllActive()
	}
	return s.repo.FindByNamePattern(term)
}

func (s *productService) Get(id string) (*domain.Product, error) {
	return s.repo.FindByID(id)
}

func (s *productService) Create(input dto.CreateProductRequest) (*domain.Product, error) {
	product := &domain.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         roundPrice(*input.Price),
		ImageURL:      input.ImageURL,
		StockQuantity: *input.StockQuantity,
	}

	if err := s.repo.Insert(product); err != nil {
		return nil, err
	}

	s.publishEvent(dto.EventProductCreated, product)

	return product, nil
}

func (s *productService) Update(id string, input dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	// merge: only fields present in the request overwrite the stored record
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Price != nil {
		product.Price = roundPrice(*input.Price)
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}

	if err := s.repo.Save(product); err != nil {
		return nil, err
	}

	s.publishEvent(dto.EventProductUpdated, product)

	return product, nil
}

// Remove soft-deletes the product, then writes an audit record and publishes a
// lifecycle event. Only the soft-delete itself decides success: audit and
// broker failures are logged and swallowed, never rolled back.
func (s *productService) Remove(id string, performedBy *string) error {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	snapshot, err := json.Marshal(product)
	if err != nil {
		s.logger.Errorw("marshal product snapshot error", "product_id", id, "error", err)
		snapshot = nil
	}

	if err := s.repo.MarkDeleted(product, time.Now()); err != nil {
		return err
	}

	audit := &domain.ProductAudit{
		ProductID:   product.ID,
		Action:      domain.ActionSoftDelete,
		Payload:     snapshot,
		PerformedBy: performedBy,
	}
	if err := s.auditRepo.Create(audit); err != nil {
		s.logger.Errorw("audit write failed after soft delete", "product_id", id, "error", err)
	}

	s.publishEvent(dto.EventProductDeleted, product)

	return nil
}

func (s *productService) GetAuditTrail(productID string, limit int) ([]domain.ProductAudit, error) {
	return s.auditRepo.GetByProductID(productID, limit)
}

func (s *productService) publishEvent(eventType string, product *domain.Product) {
	event := dto.ProductEvent{
		EventType:  eventType,
		ProductID:  product.ID,
		Name:       product.Name,
		OccurredAt: time.Now(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("marshal product event error", "event_type", eventType, "error", err)
		return
	}

	if err := s.producer.PublishMessage([]byte(product.ID), value); err != nil {
		s.logger.Errorw("publish product event error", "event_type", eventType, "product_id", product.ID, "error", err)
	}
}

func roundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
