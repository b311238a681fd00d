package market

import "fmt"

// UpstreamError reports a transport failure or non-2xx response from an
// external data source. Body holds a snippet of the HTTP error body when one
// was available, already truncated for safe forwarding.
type UpstreamError struct {
	Source     string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.Source)
	}
	return fmt.Sprintf("%s request failed: %v", e.Source, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// NoDataError reports a well-formed upstream response that contained no
// usable rows for the requested symbol.
type NoDataError struct {
	Symbol string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no usable klines for %s", e.Symbol)
}

// UnsupportedPairError reports that the rate source had no rate for the
// requested currency pair.
type UnsupportedPairError struct {
	From string
	To   string
}

func (e *UnsupportedPairError) Error() string {
	return fmt.Sprintf("unsupported pair %s->%s", e.From, e.To)
}
