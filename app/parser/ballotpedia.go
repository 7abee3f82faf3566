package parser

import (
	"bytes"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/eubelhor/house-scraper/app/member"
)

// districtCellRe matches Ballotpedia's district naming, e.g.
// "California's 12th Congressional District" or "Wyoming's At-Large
// Congressional District".
var districtCellRe = regexp.MustCompile(`(?i)^(.+?)'s\s+(at-large|\d+)(?:st|nd|rd|th)?\s+congressional\s+district$`)

// BallotpediaParser extracts representatives from Ballotpedia's list of
// current members. The listing is a single table with district,
// officeholder and party columns; the district column carries both the
// state and the district number.
type BallotpediaParser struct{}

func NewBallotpediaParser() *BallotpediaParser {
	return &BallotpediaParser{}
}

func (p *BallotpediaParser) Kind() string {
	return KindBallotpedia
}

func (p *BallotpediaParser) Parse(data []byte) ([]member.Member, int, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, 0, &ParseError{Kind: p.Kind(), Reason: err.Error()}
	}

	table := p.findListingTable(doc)
	if table == nil {
		return nil, 0, &ParseError{Kind: p.Kind(), Reason: "officeholder table not found"}
	}

	var members []member.Member
	skipped := 0

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if row.Find("th").Length() > 0 {
			return // header row
		}
		m, ok := p.parseRow(row)
		if !ok {
			skipped++
			slog.Debug("Skipping malformed row", "source", p.Kind(), "row", i)
			return
		}
		members = append(members, m)
	})

	slog.Debug("Parsed ballotpedia listing", "members", len(members), "skipped", skipped)
	return members, skipped, nil
}

// findListingTable locates the members table by its header columns rather
// than by id, since Ballotpedia's markup attributes change periodically.
func (p *BallotpediaParser) findListingTable(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		header := strings.ToLower(table.Find("tr").First().Text())
		if strings.Contains(header, "district") && strings.Contains(header, "officeholder") {
			found = table
			return false
		}
		return true
	})
	return found
}

func (p *BallotpediaParser) parseRow(row *goquery.Selection) (member.Member, bool) {
	cells := row.Find("td")
	if cells.Length() < 3 {
		return member.Member{}, false
	}

	matches := districtCellRe.FindStringSubmatch(strings.TrimSpace(cells.Eq(0).Text()))
	if matches == nil {
		return member.Member{}, false
	}

	nameCell := cells.Eq(1)
	name := member.CleanName(nameCell.Text())

	m := member.Member{
		Name:     name,
		State:    member.NormalizeState(matches[1]),
		District: member.NormalizeDistrict(matches[2]),
		Party:    member.NormalizeParty(cells.Eq(2).Text()),
		Source:   p.Kind(),
	}
	m.FirstName, m.LastName = member.SplitName(name)

	if href, ok := nameCell.Find("a").First().Attr("href"); ok {
		m.ProfileURL = strings.TrimSpace(href)
	}

	if err := m.Validate(); err != nil {
		return member.Member{}, false
	}
	return m, true
}
