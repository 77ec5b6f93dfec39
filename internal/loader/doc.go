// Package loader implements the page cursor behind the applications list.
//
// A Loader tracks which page was loaded last, whether a request is in flight,
// whether the last request failed and whether the source is exhausted. Its only
// mutator is LoadNextPage, which fetches one page from a PageSource.
//
// Guards reject overlapping calls and calls for pages already loaded. Rejected
// calls return an empty slice, make no request and leave state untouched. The
// loader never queues callers. Accumulating fetched records is left to the
// caller through Append so it can dedupe or transform pages before merging.
package loader
