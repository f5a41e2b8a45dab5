//go:build wireinject
// +build wireinject

package di

import (
	"memory-gateway/infrastructure/config"

	"github.com/google/wire"
)

// InitializeContainer builds the dependency container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(
		ProviderSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil
}
