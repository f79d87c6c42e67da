package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SundayYogurt/product_service/internal/domain"
)

type ProductRepository interface {
	FindByID(id string) (*domain.Product, error)
	FindAllActive() ([]domain.Product, error)
	FindByNamePattern(term string) ([]domain.Product, error)
	Insert(product *domain.Product) error
	Save(product *domain.Product) error
	MarkDeleted(product *domain.Product, at time.Time) error
}

type productRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

func NewProductRepository(db *gorm.DB, logger *zap.SugaredLogger) ProductRepository {
	return &productRepository{db: db, logger: logger}
}

// Soft-deleted rows stay in the table; every read filters them out here.
const activeFilter = "deleted_at IS NULL"

func (r *productRepository) FindByID(id string) (*domain.Product, error) {
	product := &domain.Product{}

	err := r.db.Where(activeFilter).First(product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		r.logger.Errorw("find product by id error", "product_id", id, "error", err)
		return nil, fmt.Errorf("find product by id: %w", err)
	}

	return product, nil
}

func (r *productRepository) FindAllActive() ([]domain.Product, error) {
	var products []domain.Product

	if err := r.db.Where(activeFilter).Find(&products).Error; err != nil {
		r.logger.Errorw("find all products error", "error", err)
		return nil, fmt.Errorf("find all products: %w", err)
	}

	return products, nil
}

func (r *productRepository) FindByNamePattern(term string) ([]domain.Product, error) {
	var products []domain.Product

	pattern := "%" + escapeLike(term) + "%"
	if err := r.db.Where(activeFilter).Where("name LIKE ?", pattern).Find(&products).Error; err != nil {
		r.logger.Errorw("find products by name pattern error", "term", term, "error", err)
		return nil, fmt.Errorf("find products by name pattern: %w", err)
	}

	return products, nil
}

func (r *productRepository) Insert(product *domain.Product) error {
	if product == nil {
		return errors.New("nil product")
	}

	if err := r.db.Create(product).Error; err != nil {
		r.logger.Errorw("create product error", "error", err)
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r *productRepository) Save(product *domain.Product) error {
	if product == nil {
		return errors.New("nil product")
	}

	if err := r.db.Save(product).Error; err != nil {
		r.logger.Errorw("save product error", "product_id", product.ID, "error", err)
		return fmt.Errorf("save product: %w", err)
	}

	return nil
}

func (r *productRepository) MarkDeleted(product *domain.Product, at time.Time) error {
	if product == nil {
		return errors.New("nil product")
	}

	if err := r.db.Model(product).Update("deleted_at", at).Error; err != nil {
		r.logger.Errorw("mark product deleted error", "product_id", product.ID, "error", err)
		return fmt.Errorf("mark product deleted: %w", err)
	}
	product.DeletedAt = &at

	return nil
}

// escapeLike neutralizes LIKE wildcards in user-supplied search terms.
func escapeLike(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, "%", `\%`)
	term = strings.ReplaceAll(term, "_", `\_`)
	return term
}
