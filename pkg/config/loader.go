package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu      sync.RWMutex
	cache        = make(map[string]any)
	dotenvLoaded sync.Once
)

// Load populates cfg from the environment based on its `env` field tags. A
// .env file, if present, is read once per process before the first parse.
// Each configuration type is parsed a single time; later calls for the same
// type return the cached value, so every component sees identical settings.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	dotenvLoaded.Do(func() {
		// Missing .env is fine; the environment itself is authoritative.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	cacheMu.RLock()
	cached, ok := cache[key]
	cacheMu.RUnlock()
	if ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if cached, ok := cache[key]; ok {
		// Another goroutine parsed the same type first; keep its copy.
		*cfg = cached.(T)
		return nil
	}
	cache[key] = *cfg
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
