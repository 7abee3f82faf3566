package parser

import (
	"fmt"

	"github.com/eubelhor/house-scraper/app/member"
)

// Source kinds understood by the parsers. Each kind corresponds to one
// upstream directory of representatives.
const (
	KindHouse       = "house"
	KindBallotpedia = "ballotpedia"
	KindGovTrack    = "govtrack"
)

// SourceParser turns one source's raw response into member records.
// Malformed individual entries are skipped and counted; only a document
// whose overall structure is unexpected produces a ParseError.
type SourceParser interface {
	Kind() string
	Parse(data []byte) ([]member.Member, int, error)
}

// ParseError indicates the response's structural shape was unexpected,
// e.g. the expected listing container is absent. It signals the acquirer
// to fall back to the next source.
type ParseError struct {
	Kind   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Kind, e.Reason)
}

// ForKind returns the parser implementation for a source kind.
func ForKind(kind string) (SourceParser, error) {
	switch kind {
	case KindHouse:
		return NewHouseParser(), nil
	case KindBallotpedia:
		return NewBallotpediaParser(), nil
	case KindGovTrack:
		return NewGovTrackParser(), nil
	}
	return nil, fmt.Errorf("unknown source kind: %s", kind)
}
