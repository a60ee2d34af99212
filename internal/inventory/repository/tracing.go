package repository

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormProductRepositoryWithTracing wraps GormProductRepository with tracing
// for the multi-step operations
type GormProductRepositoryWithTracing struct {
	*GormProductRepository
}

// NewGormProductRepositoryWithTracing creates a new repository with tracing
func NewGormProductRepositoryWithTracing(db *gorm.DB) *GormProductRepositoryWithTracing {
	return &GormProductRepositoryWithTracing{
		GormProductRepository: NewGormProductRepository(db),
	}
}

// AddProgress traces the transactional progress addition
func (r *GormProductRepositoryWithTracing) AddProgress(ctx context.Context, id uint, delta int, notes string) (*domain.ProgressResult, error) {
	ctx, span := tracer.Start(ctx, "repository.AddProgress",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.Int("progress.delta", delta),
		),
	)
	defer span.End()

	result, err := r.GormProductRepository.AddProgress(ctx, id, delta, notes)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("progress.after", result.Event.QuantityAfter),
		attribute.Bool("progress.now_complete", result.NowComplete),
	)
	return result, nil
}

// Archive traces the transactional archival
func (r *GormProductRepositoryWithTracing) Archive(ctx context.Context, id uint, action string, completedDate *time.Time) (*domain.ArchivedSale, error) {
	ctx, span := tracer.Start(ctx, "repository.Archive",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.String("archive.action", action),
		),
	)
	defer span.End()

	sale, err := r.GormProductRepository.Archive(ctx, id, action, completedDate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Float64("archive.total_value", sale.TotalValue),
		attribute.String("archive.client_name", sale.ClientName),
	)
	return sale, nil
}
