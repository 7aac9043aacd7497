package catalogue

import (
	"context"
	"errors"
)

type ProductCache interface {
	Get(ctx context.Context, id string) (*Product, error)
	Set(ctx context.Context, id string, product *Product) error
	Delete(ctx context.Context, id string) error
}

var ErrCacheMiss = errors.New("cache miss")
