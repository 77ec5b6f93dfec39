package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/appbrowser/internal/cli/pagination"
	"github.com/rshade/appbrowser/internal/format"
	"github.com/rshade/appbrowser/internal/loader"
	"github.com/rshade/appbrowser/internal/logging"
)

// tabPadding is the column gap of table output.
const tabPadding = 2

// listResult is the JSON document written by list --output json.
type listResult struct {
	Applications []format.Display `json:"applications"`
	Pagination   pagination.Meta  `json:"pagination"`
}

func newListCmd(s *session) *cobra.Command {
	var params pagination.Params

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print applications page by page",
		Long: `Fetch pages of applications and print them.

Paging starts at --page and stops after --pages pages, at the first empty page,
or at the first failed request. A failed request exits with status 2 after
printing whatever was loaded before it.`,
		Example: `  appbrowser list
  appbrowser list --pages 1 --page-size 10
  appbrowser list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("page-size") {
				params.PageSize = s.cfg.API.PageSize
			}
			return runList(cmd.Context(), cmd.OutOrStdout(), s, params)
		},
	}

	defaults := pagination.NewParams(0)
	cmd.Flags().IntVar(&params.Page, "page", defaults.Page, "first page to fetch (1-based)")
	cmd.Flags().IntVar(&params.Pages, "pages", defaults.Pages, "maximum number of pages to fetch (0 = until exhausted)")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 0, "applications per page (default from config)")
	cmd.Flags().StringVar(&params.Output, "output", defaults.Output, "output format: table or json")

	return cmd
}

// runList validates params, pages through the source and renders the result.
func runList(ctx context.Context, w io.Writer, s *session, params pagination.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	formatter, err := newFormatter(s.cfg)
	if err != nil {
		return err
	}

	ld := newLoader(s.cfg, params.PageSize)
	fetchErr := collectPages(ctx, ld, params)

	snap := ld.Snapshot()
	rows := make([]format.Display, 0, len(snap.Records))
	for _, r := range snap.Records {
		rows = append(rows, formatter.Record(r))
	}
	meta := pagination.NewMeta(params, snap.LastLoadedPage, len(rows), snap.HasMore, snap.HasError)

	var renderErr error
	if params.IsJSON() {
		renderErr = renderListJSON(w, rows, meta)
	} else {
		renderErr = renderListTable(w, rows, meta)
	}
	if fetchErr != nil {
		return fetchErr
	}
	return renderErr
}

// collectPages loads pages into ld until the range ends, a page is empty, or a
// fetch fails.
func collectPages(ctx context.Context, ld *loader.Loader, params pagination.Params) error {
	log := logging.FromContext(ctx)

	for page := params.Page; params.Within(page); {
		if err := ctx.Err(); err != nil {
			return err
		}

		records := ld.LoadNextPage(ctx, page)
		snap := ld.Snapshot()
		if snap.HasError {
			return &FetchExitError{ExitCode: exitCodeFetchFailed, Page: page, Err: snap.Err}
		}
		ld.Append(records...)
		if !snap.HasMore {
			log.Debug().Ctx(ctx).Int("page", page).Msg("source exhausted")
			return nil
		}
		page = snap.NextPage()
	}
	return nil
}

func renderListTable(w io.Writer, rows []format.Display, meta pagination.Meta) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(tw, "ID\tCompany\tName\tEmail\tLoan Amount\tApplication Date\tExpiry date")
	fmt.Fprintln(tw, "--\t-------\t----\t-----\t-----------\t----------------\t-----------")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Company, r.Name, r.Email, r.LoanAmount, r.DateCreated, r.ExpiryDate)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if meta.PagesFetched > 0 {
		fmt.Fprintf(w, "%d applications, pages %d-%d\n", meta.TotalItems, meta.StartPage, meta.LastLoadedPage)
	}
	if !meta.HasNext {
		fmt.Fprintln(w, "There are no more applications to load. Please check back later.")
	}
	return nil
}

func renderListJSON(w io.Writer, rows []format.Display, meta pagination.Meta) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listResult{Applications: rows, Pagination: meta})
}
