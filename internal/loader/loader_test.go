package loader

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/appbrowser/internal/application"
)

// fakeSource serves canned pages and counts calls.
type fakeSource struct {
	mu     sync.Mutex
	pages  map[int][]application.Record
	errs   map[int]error
	calls  []int
	limits []int
}

func (f *fakeSource) FetchPage(_ context.Context, page, limit int) ([]application.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, page)
	f.limits = append(f.limits, limit)
	if err := f.errs[page]; err != nil {
		return nil, err
	}
	return f.pages[page], nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func rec(id string) application.Record {
	return application.Record{ID: id}
}

func newTestLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).Level(zerolog.DebugLevel)
}

func TestNew_InitialState(t *testing.T) {
	l := New(&fakeSource{})
	s := l.Snapshot()

	assert.Empty(t, s.Records)
	assert.NotNil(t, s.Records)
	assert.Equal(t, 0, s.LastLoadedPage)
	assert.False(t, s.IsLoading)
	assert.False(t, s.HasError)
	assert.True(t, s.HasMore)
	assert.NoError(t, s.Err)
	assert.Equal(t, StateIdle, l.State())
	assert.Equal(t, 1, l.NextPage())
	assert.Equal(t, DefaultPageSize, l.PageSize())
}

func TestWithPageSize(t *testing.T) {
	src := &fakeSource{pages: map[int][]application.Record{1: {rec("1")}}}
	l := New(src, WithPageSize(25))
	l.LoadNextPage(context.Background(), 1)
	assert.Equal(t, []int{25}, src.limits)

	assert.Equal(t, DefaultPageSize, New(src, WithPageSize(0)).PageSize())
}

func TestLoadNextPage_EndToEnd(t *testing.T) {
	src := &fakeSource{pages: map[int][]application.Record{
		1: {rec("1")},
		2: {},
	}}
	l := New(src)
	ctx := context.Background()

	got := l.LoadNextPage(ctx, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	assert.Empty(t, l.Snapshot().Records, "loader does not accumulate on its own")

	l.Append(got...)
	s := l.Snapshot()
	assert.Equal(t, 1, s.LastLoadedPage)
	assert.True(t, s.HasMore)
	assert.Len(t, s.Records, 1)
	assert.Equal(t, StateIdle, s.State())

	got = l.LoadNextPage(ctx, 2)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	s = l.Snapshot()
	assert.False(t, s.HasMore)
	assert.Equal(t, 2, s.LastLoadedPage)
	assert.False(t, s.IsLoading)
	assert.Equal(t, StateExhausted, s.State())
	assert.Equal(t, []int{1, 2}, src.calls)
}

func TestLoadNextPage_DuplicatePageRejected(t *testing.T) {
	var buf bytes.Buffer
	src := &fakeSource{pages: map[int][]application.Record{1: {rec("1")}, 2: {rec("2")}}}
	l := New(src, WithLogger(newTestLogger(&buf)))
	ctx := context.Background()

	require.Len(t, l.LoadNextPage(ctx, 1), 1)
	before := l.Snapshot()

	got := l.LoadNextPage(ctx, 1)
	assert.Empty(t, got)
	assert.Equal(t, before, l.Snapshot())
	assert.Equal(t, 1, src.callCount())
	assert.Contains(t, buf.String(), ReasonAlreadyLoaded)

	// Earlier pages are rejected too.
	require.Len(t, l.LoadNextPage(ctx, 2), 1)
	assert.Empty(t, l.LoadNextPage(ctx, 1))
	assert.Equal(t, 2, src.callCount())
}

func TestLoadNextPage_PageZeroRejected(t *testing.T) {
	src := &fakeSource{}
	l := New(src)
	assert.Empty(t, l.LoadNextPage(context.Background(), 0))
	assert.Equal(t, 0, src.callCount())
}

func TestLoadNextPage_ConcurrentRequestRejected(t *testing.T) {
	var buf bytes.Buffer
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	src := PageSourceFunc(func(_ context.Context, page, _ int) ([]application.Record, error) {
		calls.Add(1)
		close(started)
		<-release
		return []application.Record{rec("1")}, nil
	})

	l := New(src, WithLogger(newTestLogger(&buf)))
	ctx := context.Background()

	done := make(chan []application.Record)
	go func() { done <- l.LoadNextPage(ctx, 1) }()
	<-started

	s := l.Snapshot()
	assert.True(t, s.IsLoading)
	assert.Equal(t, StateLoading, s.State())

	// Any page is rejected while a request is in flight.
	for _, page := range []int{1, 2, 7} {
		assert.Empty(t, l.LoadNextPage(ctx, page))
	}
	during := l.Snapshot()
	assert.Equal(t, 0, during.LastLoadedPage)
	assert.True(t, during.HasMore)
	assert.Empty(t, during.Records)
	assert.Contains(t, buf.String(), ReasonAlreadyLoading)

	close(release)
	got := <-done
	require.Len(t, got, 1)
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, l.Snapshot().IsLoading)
	assert.Equal(t, 1, l.Snapshot().LastLoadedPage)
}

func TestLoadNextPage_FetchFailure(t *testing.T) {
	netErr := errors.New("network error")
	src := &fakeSource{
		pages: map[int][]application.Record{1: {rec("1")}, 2: {rec("2")}},
		errs:  map[int]error{2: netErr},
	}
	l := New(src)
	ctx := context.Background()

	l.Append(l.LoadNextPage(ctx, 1)...)

	got := l.LoadNextPage(ctx, 2)
	assert.Empty(t, got)

	s := l.Snapshot()
	assert.True(t, s.HasError)
	assert.False(t, s.IsLoading)
	assert.True(t, s.HasMore, "a failed page does not imply exhaustion")
	assert.Equal(t, 1, s.LastLoadedPage)
	assert.Len(t, s.Records, 1)
	require.ErrorIs(t, s.Err, netErr)
	assert.Equal(t, StateErrored, s.State())
	assert.Equal(t, 2, l.NextPage(), "failed page is retried next")

	// A later success clears the error.
	delete(src.errs, 2)
	got = l.LoadNextPage(ctx, 2)
	require.Len(t, got, 1)
	s = l.Snapshot()
	assert.False(t, s.HasError)
	assert.NoError(t, s.Err)
	assert.Equal(t, 2, s.LastLoadedPage)
	assert.Equal(t, StateIdle, s.State())
}

func TestLoadNextPage_FirstPageRejected(t *testing.T) {
	src := &fakeSource{errs: map[int]error{1: errors.New("Network error")}}
	l := New(src)

	assert.Empty(t, l.LoadNextPage(context.Background(), 1))
	s := l.Snapshot()
	assert.True(t, s.HasError)
	assert.False(t, s.IsLoading)
	assert.Empty(t, s.Records)
	assert.Equal(t, 0, s.LastLoadedPage)
}

func TestLoadNextPage_SourcePanicIsFetchFailure(t *testing.T) {
	src := PageSourceFunc(func(context.Context, int, int) ([]application.Record, error) {
		panic("boom")
	})
	l := New(src)

	var got []application.Record
	require.NotPanics(t, func() { got = l.LoadNextPage(context.Background(), 1) })
	assert.Empty(t, got)

	s := l.Snapshot()
	assert.False(t, s.IsLoading)
	assert.True(t, s.HasError)
	require.ErrorIs(t, s.Err, ErrSourcePanic)
}

func TestLoadNextPage_ExhaustionIsTerminal(t *testing.T) {
	src := &fakeSource{pages: map[int][]application.Record{
		1: {},
		2: {rec("late")},
	}}
	l := New(src)
	ctx := context.Background()

	l.LoadNextPage(ctx, 1)
	require.False(t, l.Snapshot().HasMore)

	// The loader itself has no exhaustion guard; a caller that keeps going still
	// cannot flip HasMore back.
	got := l.LoadNextPage(ctx, 2)
	assert.Len(t, got, 1)
	assert.False(t, l.Snapshot().HasMore)
	assert.Equal(t, StateExhausted, l.State())

	src.errs = map[int]error{3: errors.New("down")}
	l.LoadNextPage(ctx, 3)
	assert.False(t, l.Snapshot().HasMore)
}

func TestLoadNextPage_NilPageNormalised(t *testing.T) {
	l := New(PageSourceFunc(func(context.Context, int, int) ([]application.Record, error) {
		return nil, nil
	}))
	got := l.LoadNextPage(context.Background(), 1)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.False(t, l.Snapshot().HasMore)
}

func TestAppend_PreservesOrderWithoutDedup(t *testing.T) {
	l := New(&fakeSource{})
	l.Append(rec("1"), rec("2"))
	l.Append()
	l.Append(rec("2"))

	ids := make([]string, 0)
	for _, r := range l.Snapshot().Records {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"1", "2", "2"}, ids)
}

func TestSnapshot_RecordsAreCopied(t *testing.T) {
	l := New(&fakeSource{})
	l.Append(rec("1"))

	s := l.Snapshot()
	s.Records[0].ID = "mutated"
	assert.Equal(t, "1", l.Snapshot().Records[0].ID)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "errored", StateErrored.String())
	assert.Equal(t, "exhausted", StateExhausted.String())
	assert.Equal(t, "unknown", State(99).String())
}

func TestSnapshot_StatePrecedence(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want State
	}{
		{name: "initial", snap: Snapshot{HasMore: true}, want: StateIdle},
		{name: "loading beats error", snap: Snapshot{IsLoading: true, HasError: true, HasMore: true}, want: StateLoading},
		{name: "errored", snap: Snapshot{HasError: true, HasMore: true}, want: StateErrored},
		{name: "exhausted beats error", snap: Snapshot{HasError: true}, want: StateExhausted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.snap.State())
		})
	}
}
