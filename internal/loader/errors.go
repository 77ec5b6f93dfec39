package loader

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrSourcePanic wraps a panic recovered from a PageSource.
const ErrSourcePanic = constError("page source panicked")

// Guard rejection reasons, logged verbatim as the diagnostic message.
const (
	ReasonAlreadyLoading = "Already loading applications"
	ReasonAlreadyLoaded  = "Already loaded this page"
)
