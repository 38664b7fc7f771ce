package content

import (
	"strings"

	"github.com/illuscio-dev/spancontent-go/encoding"
	"github.com/illuscio-dev/spancontent-go/spanerrors"
	"github.com/illuscio-dev/spancontent-go/weighted"
	"golang.org/x/xerrors"
)

// Name of the header field clients advertise acceptable codings on.
const AcceptEncodingHeader = "Accept-Encoding"

// Interface for header objects that can list every value set for a field,
// such as http.Header. HTTP allows the same field to appear more than once,
// so parsing needs all occurrences, not just the first.
type headerLister interface {
	Values(key string) []string
}

// Interface for object used to set headers such as http.Request.Header or
// http.Response.Header.
type headerSetter interface {
	Set(key string, value string)
}

// Interface for object used to fetch headers such as http.Request.Header or
// http.Response.Header.
type headerFetcher interface {
	Get(string) string
}

/*
Client header advertising available compression codings.

Directives are held in the order they were declared (or pushed) until Sort()
or Negotiate() reorders them. The wildcard directive is tracked as a flag
rather than an entry.

Each AcceptEncoding belongs to a single request context and is not safe for
concurrent mutation.
*/
type AcceptEncoding struct {
	wildcard bool
	entries  []EncodingProposal
}

// Create a new empty instance of AcceptEncoding.
func NewAcceptEncoding() *AcceptEncoding {
	return &AcceptEncoding{}
}

/*
AcceptEncodingFromHeader extracts an AcceptEncoding from request headers. All
occurrences of the Accept-Encoding field are combined as though they had been
sent as one comma-joined value.

Returns nil when the header is not present at all. A header that is present
but yields no usable directives still returns a non-nil value, so callers can
tell "absent" apart from "present but empty".

Directives naming codings this module does not model are skipped. A malformed
or out-of-range quality weight fails the whole parse and no partial result is
returned.
*/
func AcceptEncodingFromHeader(headers headerLister) (*AcceptEncoding, error) {
	occurrences := headers.Values(AcceptEncodingHeader)
	if len(occurrences) == 0 {
		return nil, nil
	}

	accept := NewAcceptEncoding()

	for _, value := range occurrences {
		for _, directive := range strings.Split(value, ",") {
			directive = strings.TrimSpace(directive)

			// Handle empty strings and wildcard directives.
			if directive == "" {
				continue
			}
			if directive == "*" {
				accept.wildcard = true
				continue
			}

			proposal, ok, err := proposalFromString(directive)
			if err != nil {
				return nil, xerrors.Errorf(
					"error parsing %v header: %w", AcceptEncodingHeader, err,
				)
			}
			if !ok {
				continue
			}
			accept.entries = append(accept.entries, proposal)
		}
	}

	return accept, nil
}

// Push a directive onto the end of the entry list.
func (accept *AcceptEncoding) Push(proposal EncodingProposal) {
	accept.entries = append(accept.entries, proposal)
}

// PushEncoding adds a coding as a weightless directive.
func (accept *AcceptEncoding) PushEncoding(enc encoding.Encoding) {
	accept.Push(NewEncodingProposal(enc))
}

// Number of directives currently held. The wildcard flag is not counted.
func (accept *AcceptEncoding) Len() int {
	return len(accept.entries)
}

// Returns true if a wildcard directive was passed.
func (accept *AcceptEncoding) Wildcard() bool {
	return accept.wildcard
}

// Set the wildcard directive.
func (accept *AcceptEncoding) SetWildcard(wildcard bool) {
	accept.wildcard = wildcard
}

// Entries returns a copy of the directive list in its current order. Mutating
// the returned slice does not affect the header; use Range for in-place
// updates.
func (accept *AcceptEncoding) Entries() []EncodingProposal {
	entries := make([]EncodingProposal, len(accept.entries))
	copy(entries, accept.entries)
	return entries
}

// Range calls visit for each directive in current order, passing a pointer so
// entries can be updated in place. Traversal stops early if visit returns
// false.
func (accept *AcceptEncoding) Range(
	visit func(index int, proposal *EncodingProposal) bool,
) {
	for index := range accept.entries {
		if !visit(index, &accept.entries[index]) {
			return
		}
	}
}

/*
Sort the header directives by weight.

Directives with a higher q= value come first. If two directives have the same
weight, the directive that was declared later comes first. Directives without
an explicit weight count as 1.0.
*/
func (accept *AcceptEncoding) Sort() {
	weighted.Sort(accept.entries)
}

/*
Negotiate determines the most suitable coding from available.

The directives are sorted, then scanned from most to least preferred; the
first one present in available wins, regardless of where in available it
sits. When nothing matches and a wildcard directive was sent, the server's
first choice is used instead. The entry order of the header is mutated by the
sort.

If no suitable coding is found, a spanerrors.NotAcceptableError (HTTP 406) is
returned.
*/
func (accept *AcceptEncoding) Negotiate(
	available []encoding.Encoding,
) (*ContentEncoding, error) {
	// Start by ordering the directives.
	accept.Sort()

	// Try and find the first directive that matches.
	for _, proposal := range accept.entries {
		for _, enc := range available {
			if proposal.Encoding == enc {
				return &ContentEncoding{Encoding: proposal.Encoding}, nil
			}
		}
	}

	// If no directive matches and wildcard is set, send whichever coding the
	// server prefers.
	if accept.wildcard && len(available) > 0 {
		return &ContentEncoding{Encoding: available[0]}, nil
	}

	return nil, spanerrors.NotAcceptableError.New(
		"no suitable content encoding found", nil, nil,
	)
}

// HeaderValue renders the directives in their current order, with a trailing
// wildcard token when the flag is set.
func (accept *AcceptEncoding) HeaderValue() string {
	rendered := strings.Builder{}

	for index, proposal := range accept.entries {
		if index > 0 {
			rendered.WriteString(", ")
		}
		rendered.WriteString(proposal.String())
	}

	if accept.wildcard {
		if rendered.Len() > 0 {
			rendered.WriteString(", ")
		}
		rendered.WriteString("*")
	}

	return rendered.String()
}

// Sets the Accept-Encoding header.
func (accept *AcceptEncoding) Apply(headers headerSetter) {
	headers.Set(AcceptEncodingHeader, accept.HeaderValue())
}
