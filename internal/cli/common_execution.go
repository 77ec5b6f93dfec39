package cli

import (
	"fmt"

	"github.com/rshade/appbrowser/internal/api"
	"github.com/rshade/appbrowser/internal/config"
	"github.com/rshade/appbrowser/internal/format"
	"github.com/rshade/appbrowser/internal/loader"
	"github.com/rshade/appbrowser/internal/logging"
	"github.com/rshade/appbrowser/pkg/version"
)

// exitCodeFetchFailed is returned when a page could not be fetched.
const exitCodeFetchFailed = 2

// FetchExitError reports a failed page fetch with the process exit code to use.
type FetchExitError struct {
	ExitCode int
	Page     int
	Err      error
}

func (e *FetchExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("error loading applications page %d", e.Page)
	}
	return fmt.Sprintf("error loading applications page %d: %v", e.Page, e.Err)
}

func (e *FetchExitError) Unwrap() error {
	return e.Err
}

// newLoader wires the HTTP source into a fresh loader.
func newLoader(cfg *config.Config, pageSize int) *loader.Loader {
	base := config.GetLogger()

	client := api.NewClient(cfg.API.BaseURL, cfg.Timeout(), base)
	client.UserAgent = version.UserAgent()

	return loader.New(client,
		loader.WithPageSize(pageSize),
		loader.WithLogger(logging.ComponentLogger(base, "loader")),
	)
}

// newFormatter applies the display settings.
func newFormatter(cfg *config.Config) (*format.Formatter, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return format.New(
		format.WithCurrencySymbol(cfg.Display.CurrencySymbol),
		format.WithLocation(loc),
	), nil
}
