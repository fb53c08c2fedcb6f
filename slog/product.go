package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/emontes/prodex"
)

// Ensure LoggingProductService implements prodex.ProductService.
var _ prodex.ProductService = (*LoggingProductService)(nil)

// LoggingProductService wraps a ProductService with operation logging.
type LoggingProductService struct {
	next   prodex.ProductService
	logger *slog.Logger
}

// NewLoggingProductService creates a new LoggingProductService.
func NewLoggingProductService(next prodex.ProductService, logger *slog.Logger) *LoggingProductService {
	return &LoggingProductService{next: next, logger: logger}
}

// CreateProduct delegates to the wrapped service and logs the operation.
func (s *LoggingProductService) CreateProduct(ctx context.Context, rec *prodex.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create product",
			"url", rec.URL,
			"title", rec.Title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateProduct(ctx, rec)
}

// FindProductByURL delegates to the wrapped service and logs the operation.
func (s *LoggingProductService) FindProductByURL(ctx context.Context, url string) (rec *prodex.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find product",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindProductByURL(ctx, url)
}

// FindProducts delegates to the wrapped service and logs the operation.
func (s *LoggingProductService) FindProducts(ctx context.Context, filter prodex.ProductFilter) (records []*prodex.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find products",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindProducts(ctx, filter)
}

// DeleteProduct delegates to the wrapped service and logs the operation.
func (s *LoggingProductService) DeleteProduct(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete product",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteProduct(ctx, url)
}
