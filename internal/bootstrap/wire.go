//go:build wireinject

package bootstrap

import (
	"context"

	"github.com/google/wire"
)

var infraSet = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideDB,
	ProvideQuoteTable,
	ProvideHTTPClient,
	ProvideQuoteSource,
	ProvideRunLock,
	ProvideExtractLoadService,
)

// InitJob builds the extract-load job and its cleanup.
func InitJob(ctx context.Context) (*Job, func(), error) {
	wire.Build(
		infraSet,
		ProvideJob,
	)
	return nil, nil, nil
}
