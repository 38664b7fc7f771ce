package content

import (
	"math"
	"strconv"
	"strings"

	"github.com/illuscio-dev/spancontent-go/encoding"
	"golang.org/x/xerrors"
)

// A single directive from an Accept-Encoding header: a coding plus an optional
// quality weight.
type EncodingProposal struct {
	// The coding being proposed.
	Encoding encoding.Encoding

	weight    float64
	hasWeight bool
}

// Returns a proposal with no explicit weight. Weightless proposals order as
// 1.0 but remember that no weight was declared, so they render without a q=
// parameter.
func NewEncodingProposal(enc encoding.Encoding) EncodingProposal {
	return EncodingProposal{Encoding: enc}
}

// Returns a proposal with an explicit quality weight. Weights outside of
// 0.0 - 1.0 are rejected.
func NewWeightedProposal(
	enc encoding.Encoding, weight float64,
) (EncodingProposal, error) {
	// NaN compares false against everything, so it has to be rejected
	// explicitly or it would slip through the range check.
	if math.IsNaN(weight) || weight < 0.0 || weight > 1.0 {
		return EncodingProposal{}, xerrors.Errorf(
			"weight %v is outside of range 0.0 - 1.0", weight,
		)
	}

	return EncodingProposal{Encoding: enc, weight: weight, hasWeight: true}, nil
}

// The declared weight of the proposal, and whether one was declared at all. A
// proposal without a declared weight is not the same as one with an explicit
// weight of 1.0, even though the two order identically.
func (proposal EncodingProposal) Weight() (weight float64, declared bool) {
	return proposal.weight, proposal.hasWeight
}

// SortWeight implements weighted.Sortable. Proposals without an explicit
// weight count as 1.0.
func (proposal EncodingProposal) SortWeight() float64 {
	if !proposal.hasWeight {
		return 1.0
	}
	return proposal.weight
}

// Directive rendering of the proposal for use in a header value.
func (proposal EncodingProposal) String() string {
	if !proposal.hasWeight {
		return string(proposal.Encoding)
	}
	return string(proposal.Encoding) +
		";q=" + strconv.FormatFloat(proposal.weight, 'f', -1, 64)
}

/*
Parses a single non-wildcard directive.

Directives naming codings this module does not model are reported with ok as
false and no error -- the coding is checked before the weight, so an unknown
coding is skipped even when its weight is garbage. A malformed or out-of-range
weight on a known coding is an error.
*/
func proposalFromString(
	directive string,
) (proposal EncodingProposal, ok bool, err error) {
	codingPart, weightPart, hasWeightPart := strings.Cut(directive, ";")

	enc := encoding.FromString(codingPart)
	if !enc.Known() {
		return EncodingProposal{}, false, nil
	}

	if !hasWeightPart {
		return NewEncodingProposal(enc), true, nil
	}

	weightPart = strings.TrimSpace(weightPart)
	if !strings.HasPrefix(weightPart, "q=") {
		return EncodingProposal{}, false, xerrors.New(
			"malformed weight in directive '" + directive + "'",
		)
	}

	weight, parseErr := strconv.ParseFloat(strings.TrimPrefix(weightPart, "q="), 64)
	if parseErr != nil {
		return EncodingProposal{}, false, xerrors.Errorf(
			"malformed weight in directive '%v': %w", directive, parseErr,
		)
	}

	proposal, err = NewWeightedProposal(enc, weight)
	if err != nil {
		return EncodingProposal{}, false, xerrors.Errorf(
			"invalid weight in directive '%v': %w", directive, err,
		)
	}

	return proposal, true, nil
}
