package pagination

// Meta summarises a paging run.
type Meta struct {
	StartPage      int  `json:"start_page"       yaml:"start_page"`
	LastLoadedPage int  `json:"last_loaded_page" yaml:"last_loaded_page"`
	PagesFetched   int  `json:"pages_fetched"    yaml:"pages_fetched"`
	PageSize       int  `json:"page_size"        yaml:"page_size"`
	TotalItems     int  `json:"total_items"      yaml:"total_items"`
	HasNext        bool `json:"has_next"         yaml:"has_next"`
	HasError       bool `json:"has_error"        yaml:"has_error"`
}

// NewMeta builds the metadata for a run that started at params.Page.
// lastLoaded is 0 when no page succeeded.
func NewMeta(params Params, lastLoaded, totalItems int, hasMore, hasError bool) Meta {
	fetched := 0
	if lastLoaded >= params.Page {
		fetched = lastLoaded - params.Page + 1
	}
	return Meta{
		StartPage:      params.Page,
		LastLoadedPage: lastLoaded,
		PagesFetched:   fetched,
		PageSize:       params.PageSize,
		TotalItems:     totalItems,
		HasNext:        hasMore,
		HasError:       hasError,
	}
}
