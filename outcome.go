package linkwalk

import "context"

// Outcome is the result of one successful fetch-and-parse cycle.
type Outcome struct {
	URL         string
	Status      int
	Links       []string // raw href values in document order
	ContentHash string   // xxhash64 of the body, hex encoded
	Bytes       int
}

// SkipReason explains why a fetch produced no Outcome.
type SkipReason int

// Skip reasons reported by fetch workers.
const (
	SkipNone SkipReason = iota
	SkipTransport
	SkipStatus
	SkipParse
	SkipSend
)

// String returns a short label for the reason.
func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipTransport:
		return "transport"
	case SkipStatus:
		return "status"
	case SkipParse:
		return "parse"
	case SkipSend:
		return "send"
	default:
		return "unknown"
	}
}

// Attempt is the tagged result of one fetch worker: either an Outcome or a
// skip reason with its cause.
type Attempt struct {
	URL     string
	Outcome *Outcome
	Reason  SkipReason
	Err     error
}

// OK reports whether the attempt produced an Outcome.
func (a Attempt) OK() bool {
	return a.Outcome != nil && a.Reason == SkipNone
}

// OutcomeRecorder receives every successful Outcome of a crawl.
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, o *Outcome) error
}
