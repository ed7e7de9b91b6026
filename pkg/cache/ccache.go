package cache

import (
	"reflect"
	"time"

	"github.com/karlseguin/ccache/v2"
)

//go:generate go run github.com/vektra/mockery/v2 --name Cache
type Cache[T any] interface {
	Contains(key string) bool
	Expire(key string) bool
	Get(key string) (T, bool)
	Set(key string, value T)
	SetX(key string, value T, ttl time.Duration)
	ProvideWithError(key string, provider func() (T, error)) (T, error)
}

type cache[T any] struct {
	base *ccache.Cache
	ttl  time.Duration
}

func New[T any](maxSize int64, pruneCount uint32, ttl time.Duration) Cache[T] {
	config := ccache.Configure()
	config.MaxSize(maxSize)
	config.ItemsToPrune(pruneCount)

	return NewWithConfiguration[T](*config, ttl)
}

func NewWithConfiguration[T any](config ccache.Configuration, ttl time.Duration) Cache[T] {
	return &cache[T]{
		base: ccache.New(&config),
		ttl:  ttl,
	}
}

func (c *cache[T]) Set(key string, value T) {
	c.base.Set(key, value, c.ttl)
}

func (c *cache[T]) SetX(key string, value T, ttl time.Duration) {
	c.base.Set(key, value, ttl)
}

func (c *cache[T]) Get(key string) (T, bool) {
	item := c.base.Get(key)

	if item == nil || item.Expired() {
		var noResult T

		return noResult, false
	}

	return item.Value().(T), true
}

func (c *cache[T]) Contains(key string) bool {
	_, ok := c.Get(key)

	return ok
}

func (c *cache[T]) Expire(key string) bool {
	item := c.base.Get(key)

	if item == nil {
		return false
	}

	// extend the time until the item expires to the current time minus one second
	item.Extend(-time.Second)

	return true
}

// ProvideWithError returns the cached value for the key or computes, caches and
// returns a fresh one. Only successfully computed non-zero values are cached.
func (c *cache[T]) ProvideWithError(key string, provider func() (T, error)) (T, error) {
	if result, ok := c.Get(key); ok {
		return result, nil
	}

	result, err := provider()
	if err != nil {
		var noResult T

		return noResult, err
	}

	if !isZero(result) {
		c.Set(key, result)
	}

	return result, nil
}

func isZero[T any](v T) bool {
	// a plain comparison against the zero value would require T to be
	// comparable, which would rule out slices and functions
	return reflect.ValueOf(&v).Elem().IsZero()
}
