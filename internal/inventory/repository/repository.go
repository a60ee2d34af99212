package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
	"gorm.io/gorm"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.Product{},
		&domain.ArchivedSale{},
		&domain.ProgressEvent{},
	)
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll() ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Product{}, id).Error
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}

// AddProgress applies a read-modify-write of quantity_completed and status and
// appends the progress event, all in one transaction. The re-read inside the
// transaction guards against a stale caller snapshot.
func (r *GormProductRepository) AddProgress(ctx context.Context, id uint, delta int, notes string) (*domain.ProgressResult, error) {
	var result domain.ProgressResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product domain.Product
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}

		before := product.QuantityCompleted
		after := before + delta
		if after > product.Quantity {
			return fmt.Errorf("progress exceeds remaining quantity: %d > %d", delta, product.Remaining())
		}

		status := product.Status
		if after >= product.Quantity {
			status = domain.StatusCompleted
		}

		if err := tx.Model(&domain.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
			"quantity_completed": after,
			"status":             status,
		}).Error; err != nil {
			return err
		}

		event := domain.ProgressEvent{
			ProductID:      id,
			QuantityAdded:  delta,
			QuantityBefore: before,
			QuantityAfter:  after,
			Notes:          notes,
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		product.QuantityCompleted = after
		product.Status = status
		result = domain.ProgressResult{
			Product:     &product,
			Event:       &event,
			NowComplete: after >= product.Quantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Archive snapshots the product into sales_history and removes the live row.
// Insert and delete commit together, so a failure on either side leaves both
// tables untouched.
func (r *GormProductRepository) Archive(ctx context.Context, id uint, action string, completedDate *time.Time) (*domain.ArchivedSale, error) {
	var sale domain.ArchivedSale

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product domain.Product
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}

		completed := completedDate
		if action == domain.ActionCompleted && completed == nil {
			today := time.Now().Truncate(24 * time.Hour)
			completed = &today
		}

		sale = domain.ArchivedSale{
			OriginalProductID: product.ID,
			ClientName:        product.ClientName,
			ProductType:       product.ProductType,
			Quantity:          product.Quantity,
			QuantityCompleted: product.QuantityCompleted,
			Price:             product.Price,
			TotalValue:        product.Price * float64(product.QuantityCompleted),
			DueDate:           product.DueDate,
			CompletedDate:     completed,
			Action:            action,
			ArchivedAt:        time.Now(),
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		return tx.Delete(&domain.Product{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

func (r *GormHistoryRepository) FindRecent(limit int) ([]domain.ArchivedSale, error) {
	var sales []domain.ArchivedSale
	err := r.db.Order("archived_at DESC").Limit(limit).Find(&sales).Error
	return sales, err
}

func (r *GormHistoryRepository) FindByMonth(year int, month time.Month) ([]domain.ArchivedSale, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var sales []domain.ArchivedSale
	err := r.db.
		Where("archived_at >= ? AND archived_at < ?", start, end).
		Order("archived_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *GormHistoryRepository) ClearAll() error {
	// Always-true predicate to satisfy gorm's global-delete guard
	return r.db.Where("id <> ?", 0).Delete(&domain.ArchivedSale{}).Error
}

func (r *GormHistoryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.ArchivedSale{}).Count(&count).Error
	return count, err
}
