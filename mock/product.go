package mock

import (
	"context"

	"github.com/emontes/prodex"
)

var _ prodex.ProductService = (*ProductService)(nil)

// ProductService is a mock implementation of prodex.ProductService.
type ProductService struct {
	CreateProductFn    func(ctx context.Context, rec *prodex.Record) error
	FindProductByURLFn func(ctx context.Context, url string) (*prodex.Record, error)
	FindProductsFn     func(ctx context.Context, filter prodex.ProductFilter) ([]*prodex.Record, error)
	DeleteProductFn    func(ctx context.Context, url string) error
}

func (s *ProductService) CreateProduct(ctx context.Context, rec *prodex.Record) error {
	return s.CreateProductFn(ctx, rec)
}

func (s *ProductService) FindProductByURL(ctx context.Context, url string) (*prodex.Record, error) {
	return s.FindProductByURLFn(ctx, url)
}

func (s *ProductService) FindProducts(ctx context.Context, filter prodex.ProductFilter) ([]*prodex.Record, error) {
	return s.FindProductsFn(ctx, filter)
}

func (s *ProductService) DeleteProduct(ctx context.Context, url string) error {
	return s.DeleteProductFn(ctx, url)
}
