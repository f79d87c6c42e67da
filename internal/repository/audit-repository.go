package repository

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SundayYogurt/product_service/internal/domain"
)

type AuditRepository interface {
	Create(audit *domain.ProductAudit) error
	GetByProductID(productID string, limit int) ([]domain.ProductAudit, error)
}

type auditRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

func NewAuditRepository(db *gorm.DB, logger *zap.SugaredLogger) AuditRepository {
	return &auditRepository{db: db, logger: logger}
}

func (r *auditRepository) Create(audit *domain.ProductAudit) error {
	if audit == nil {
		return errors.New("nil audit record")
	}

	if err := r.db.Create(audit).Error; err != nil {
		r.logger.Errorw("create audit record error", "product_id", audit.ProductID, "error", err)
		return fmt.Errorf("create audit record: %w", err)
	}

	return nil
}

func (r *auditRepository) GetByProductID(productID string, limit int) ([]domain.ProductAudit, error) {
	var records []domain.ProductAudit

	q := r.db.Where("product_id = ?", productID).Order("performed_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&records).Error; err != nil {
		r.logger.Errorw("get audit records error", "product_id", productID, "error", err)
		return nil, fmt.Errorf("get audit records: %w", err)
	}

	return records, nil
}
