package loader

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rshade/appbrowser/internal/application"
)

// DefaultPageSize is the number of records requested per page.
const DefaultPageSize = 5

// PageSource fetches one page of records. page is 1-based; limit is the page size.
// An empty, error-free result means there are no further pages.
type PageSource interface {
	FetchPage(ctx context.Context, page, limit int) ([]application.Record, error)
}

// PageSourceFunc adapts a function to PageSource.
type PageSourceFunc func(ctx context.Context, page, limit int) ([]application.Record, error)

// FetchPage implements PageSource.
func (f PageSourceFunc) FetchPage(ctx context.Context, page, limit int) ([]application.Record, error) {
	return f(ctx, page, limit)
}

// Loader owns pagination state for one mounted list view.
//
// mu guards the flags only. It is released before the source is called, so a
// concurrent LoadNextPage observes isLoading and is rejected instead of waiting.
type Loader struct {
	source   PageSource
	pageSize int
	logger   zerolog.Logger

	mu             sync.Mutex
	accumulated    []application.Record
	lastLoadedPage int
	isLoading      bool
	hasError       bool
	hasMore        bool
	lastErr        error
}

// Option configures a Loader.
type Option func(*Loader)

// WithPageSize sets the page size sent as the limit parameter. Values < 1 are ignored.
func WithPageSize(n int) Option {
	return func(l *Loader) {
		if n >= 1 {
			l.pageSize = n
		}
	}
}

// WithLogger sets the logger used for guard diagnostics and fetch outcomes.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// New returns a Loader in its initial state: no page loaded, not loading,
// no error, more pages assumed.
func New(source PageSource, opts ...Option) *Loader {
	l := &Loader{
		source:      source,
		pageSize:    DefaultPageSize,
		logger:      zerolog.Nop(),
		accumulated: []application.Record{},
		hasMore:     true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadNextPage fetches requestedPage and returns its records.
//
// The call is rejected with an empty result, no request and no state change if
// a fetch is already in flight, or if requestedPage <= the last loaded page.
//
// On success the error flag is cleared and the page becomes the last loaded
// page; an empty page permanently clears HasMore. On failure the error flag is
// set and an empty slice returned; the last loaded page and HasMore are
// unchanged. The loading flag is always cleared before returning.
//
// Returned records are not accumulated; call Append to merge them.
func (l *Loader) LoadNextPage(ctx context.Context, requestedPage int) []application.Record {
	if reason, ok := l.begin(requestedPage); !ok {
		l.logger.Debug().Ctx(ctx).
			Str("reason", reason).
			Int("page", requestedPage).
			Msg(reason)
		return []application.Record{}
	}

	l.logger.Debug().Ctx(ctx).Int("page", requestedPage).Int("limit", l.pageSize).Msg("fetching page")

	records, err := l.fetch(ctx, requestedPage)
	return l.finish(ctx, requestedPage, records, err)
}

// begin applies both guards and marks the loader busy if they pass.
func (l *Loader) begin(page int) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.isLoading {
		return ReasonAlreadyLoading, false
	}
	if page <= l.lastLoadedPage {
		return ReasonAlreadyLoaded, false
	}
	l.isLoading = true
	return "", true
}

// fetch calls the source, converting a panic into an error so finish always runs.
//
//nolint:nonamedreturns // Named returns are required to recover into err.
func (l *Loader) fetch(ctx context.Context, page int) (records []application.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = fmt.Errorf("%w: %v", ErrSourcePanic, r)
		}
	}()
	return l.source.FetchPage(ctx, page, l.pageSize)
}

// finish records the outcome and releases the loading flag.
func (l *Loader) finish(
	ctx context.Context,
	page int,
	records []application.Record,
	err error,
) []application.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	defer func() { l.isLoading = false }()

	if err != nil {
		l.hasError = true
		l.lastErr = err
		l.logger.Warn().Ctx(ctx).Err(err).Int("page", page).Msg("failed to load applications page")
		return []application.Record{}
	}

	if len(records) == 0 {
		l.hasMore = false
		l.logger.Info().Ctx(ctx).Int("page", page).Msg("no more applications")
	}
	l.hasError = false
	l.lastErr = nil
	l.lastLoadedPage = page

	l.logger.Debug().Ctx(ctx).Int("page", page).Int("count", len(records)).Msg("loaded page")

	if records == nil {
		return []application.Record{}
	}
	return records
}

// Append adds records to the accumulated list in the given order. No dedup is performed.
func (l *Loader) Append(records ...application.Record) {
	if len(records) == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accumulated = append(l.accumulated, records...)
}

// Snapshot returns a copy of the current state. The Records slice is a copy.
func (l *Loader) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	records := make([]application.Record, len(l.accumulated))
	copy(records, l.accumulated)

	return Snapshot{
		Records:        records,
		LastLoadedPage: l.lastLoadedPage,
		IsLoading:      l.isLoading,
		HasError:       l.hasError,
		HasMore:        l.hasMore,
		Err:            l.lastErr,
	}
}

// State returns the explicit state derived from the current flags.
func (l *Loader) State() State {
	return l.Snapshot().State()
}

// NextPage returns the page after the last loaded one.
func (l *Loader) NextPage() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastLoadedPage + 1
}

// PageSize returns the configured page size.
func (l *Loader) PageSize() int {
	return l.pageSize
}
