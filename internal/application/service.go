package application

import (
	"context"
	"fmt"

	"commodities-etl/internal/domain"
	"commodities-etl/internal/infrastructure/logx"

	"go.uber.org/zap"
)

const lockKeyPrefix = "commodities-etl:lock:"

type ExtractLoadService struct {
	source  QuoteSource
	table   QuoteTable
	lock    RunLock
	symbols []string
	clock   Clock
	idgen   IDGen
	log     *zap.Logger
}

type Option func(*ExtractLoadService)

func WithClock(c Clock) Option { return func(s *ExtractLoadService) { s.clock = c } }
func WithIDGen(g IDGen) Option { return func(s *ExtractLoadService) { s.idgen = g } }
func WithLogger(l *zap.Logger) Option { return func(s *ExtractLoadService) { s.log = l } }
func WithRunLock(l RunLock) Option { return func(s *ExtractLoadService) { s.lock = l } }
func WithSymbols(symbols []string) Option { return func(s *ExtractLoadService) { s.symbols = symbols } }

func NewExtractLoadService(source QuoteSource, table QuoteTable, opts ...Option) *ExtractLoadService {
	s := &ExtractLoadService{
		source:  source,
		table:   table,
		symbols: domain.Commodities,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	if s.idgen == nil {
		s.idgen = defaultIDGen{}
	}
	if s.lock == nil {
		s.lock = NoopLock{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// FetchOne returns the provider's closing series for symbol, unfiltered.
// Empty period or interval fall back to the defaults.
func (s *ExtractLoadService) FetchOne(ctx context.Context, symbol string, period domain.Period, interval domain.Interval) ([]domain.Quote, error) {
	if period == "" {
		period = domain.DefaultPeriod
	}
	if interval == "" {
		interval = domain.DefaultInterval
	}
	if !domain.ValidPeriod(period) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, period)
	}
	if !domain.ValidInterval(interval) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidInterval, interval)
	}

	log := logx.WithFields(ctx, s.log).With(zap.String("symbol", symbol))
	rows, err := s.source.History(ctx, symbol, period, interval)
	if err != nil {
		log.Error("fetch.symbol_failed", zap.Error(err))
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}
	log.Info("fetch.symbol_done",
		zap.String("period", string(period)),
		zap.String("interval", string(interval)),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}

// FetchAll fetches every symbol in order with the default window and
// concatenates the blocks. The first failure aborts with no partial result.
func (s *ExtractLoadService) FetchAll(ctx context.Context, symbols []string) ([]domain.Quote, error) {
	if len(symbols) == 0 {
		return nil, ErrNoSymbols
	}
	var all []domain.Quote
	for _, sym := range symbols {
		rows, err := s.FetchOne(ctx, sym, domain.DefaultPeriod, domain.DefaultInterval)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}
	return all, nil
}

// Load replaces the commodities table in schema with rows.
func (s *ExtractLoadService) Load(ctx context.Context, rows []domain.Quote, schema string) error {
	log := logx.WithFields(ctx, s.log).With(zap.String("schema", schema))
	if err := s.table.Replace(ctx, schema, rows); err != nil {
		log.Error("load.failed", zap.Error(err))
		return fmt.Errorf("load %s: %w", schema, err)
	}
	log.Info("load.done", zap.Int("rows", len(rows)))
	return nil
}

// Run performs one fetch-all-then-load pass against schema. The destination
// is not touched unless every symbol was fetched.
func (s *ExtractLoadService) Run(ctx context.Context, schema string) (domain.RunResult, error) {
	res := domain.RunResult{
		RunID:     s.idgen.New(),
		Schema:    schema,
		Status:    domain.RunStatusFetching,
		StartedAt: s.clock.Now(),
	}
	ctx = logx.ContextWithRunID(ctx, res.RunID)
	log := logx.WithFields(ctx, s.log).With(zap.String("schema", schema))

	fail := func(err error) (domain.RunResult, error) {
		res.Status = domain.RunStatusFailed
		res.FinishedAt = s.clock.Now()
		log.Error("run.failed", zap.Error(err))
		return res, err
	}

	key := lockKeyPrefix + schema
	ok, err := s.lock.TryAcquire(ctx, key, res.RunID)
	if err != nil {
		return fail(fmt.Errorf("acquire run lock: %w", err))
	}
	if !ok {
		return fail(fmt.Errorf("%w: %s", ErrRunLocked, key))
	}
	defer func() {
		if err := s.lock.Release(context.WithoutCancel(ctx), key, res.RunID); err != nil {
			log.Warn("run.lock_release_failed", zap.Error(err))
		}
	}()

	log.Info("run.started", zap.Strings("symbols", s.symbols))
	rows, err := s.FetchAll(ctx, s.symbols)
	if err != nil {
		return fail(err)
	}
	if err := s.Load(ctx, rows, schema); err != nil {
		return fail(err)
	}

	res.Status = domain.RunStatusLoaded
	res.Rows = len(rows)
	res.Symbols = domain.Symbols(rows)
	res.FinishedAt = s.clock.Now()
	log.Info("run.loaded",
		zap.Int("rows", res.Rows),
		zap.Strings("symbols", res.Symbols),
		zap.Duration("took", res.FinishedAt.Sub(res.StartedAt)),
	)
	return res, nil
}
