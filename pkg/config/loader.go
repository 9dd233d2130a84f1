// Package config loads typed configuration structs from environment
// variables, optionally seeded from a .env file in the working directory.
//
// Each struct type is parsed once per process; later Load calls for the same
// type return the cached value, so packages can load their own config section
// without coordinating with main:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache      sync.Map // reflect.Type -> *entry
	dotenvOnce sync.Once
)

// Load fills v from the environment. The result, or the parse error, is
// cached per type T.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// A missing .env file is the normal case outside local development.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	e, _ := cache.LoadOrStore(key, &entry{})
	ent := e.(*entry)

	ent.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			ent.err = errors.Join(ErrParsingConfig, err)
			return
		}
		ent.value = parsed
	})

	if ent.err != nil {
		return ent.err
	}
	*v = ent.value.(T)
	return nil
}
