package xmapping

import (
	"errors"
	"sync"
)

// MapperFactory constructs mappers from a config blob.
type MapperFactory func(cfg map[string]any) (Mapper, error)

var (
	mapperRegistryMu sync.RWMutex
	mapperRegistry   = map[string]MapperFactory{}
)

// RegisterMapper registers a mapper factory under an alias.
func RegisterMapper(alias string, factory MapperFactory) error {
	if alias == "" {
		return errors.New("mapper alias must not be empty")
	}
	if factory == nil {
		return errors.New("mapper factory must not be nil")
	}
	mapperRegistryMu.Lock()
	mapperRegistry[alias] = factory
	mapperRegistryMu.Unlock()
	return nil
}

// NewMapper constructs a mapper by alias with config.
func NewMapper(alias string, cfg map[string]any) (Mapper, error) {
	mapperRegistryMu.RLock()
	f, ok := mapperRegistry[alias]
	mapperRegistryMu.RUnlock()
	if !ok {
		return nil, ErrUnknownMapper{name: alias}
	}
	return f(cfg)
}
