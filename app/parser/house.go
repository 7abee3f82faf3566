package parser

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/eubelhor/house-scraper/app/member"
)

// HouseParser extracts representatives from the house.gov directory. The
// page lists one table per state, with the state name in the caption and
// one row per seat: district, name, party, office room, phone.
type HouseParser struct{}

func NewHouseParser() *HouseParser {
	return &HouseParser{}
}

func (p *HouseParser) Kind() string {
	return KindHouse
}

func (p *HouseParser) Parse(data []byte) ([]member.Member, int, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, 0, &ParseError{Kind: p.Kind(), Reason: err.Error()}
	}

	tables := doc.Find("table.table")
	if tables.Length() == 0 {
		return nil, 0, &ParseError{Kind: p.Kind(), Reason: "no state tables found"}
	}

	var members []member.Member
	skipped := 0

	tables.Each(func(_ int, table *goquery.Selection) {
		state := member.NormalizeState(strings.TrimSpace(table.Find("caption").First().Text()))

		table.Find("tbody tr").Each(func(i int, row *goquery.Selection) {
			m, ok := p.parseRow(state, row)
			if !ok {
				skipped++
				slog.Debug("Skipping malformed row", "source", p.Kind(), "state", state, "row", i)
				return
			}
			members = append(members, m)
		})
	})

	slog.Debug("Parsed house.gov directory", "members", len(members), "skipped", skipped)
	return members, skipped, nil
}

func (p *HouseParser) parseRow(state string, row *goquery.Selection) (member.Member, bool) {
	cells := row.Find("td")
	if cells.Length() < 3 {
		return member.Member{}, false
	}

	nameCell := cells.Eq(1)
	name := member.CleanName(nameCell.Text())

	m := member.Member{
		Name:     name,
		State:    state,
		District: member.NormalizeDistrict(cells.Eq(0).Text()),
		Party:    member.NormalizeParty(cells.Eq(2).Text()),
		Source:   p.Kind(),
	}
	m.FirstName, m.LastName = member.SplitName(name)

	if href, ok := nameCell.Find("a").First().Attr("href"); ok {
		m.ProfileURL = strings.TrimSpace(href)
	}
	if cells.Length() > 3 {
		m.OfficeAddress = strings.TrimSpace(cells.Eq(3).Text())
	}
	if cells.Length() > 4 {
		m.Phone = strings.TrimSpace(cells.Eq(4).Text())
	}

	if err := m.Validate(); err != nil {
		return member.Member{}, false
	}
	return m, true
}
