package parser

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/eubelhor/house-scraper/app/member"
)

// GovTrack decorates names with the role, e.g. "Rep. Jared Huffman [D-CA2]".
var roleSuffixRe = regexp.MustCompile(`\s*\[[^\]]*\]$`)

// GovTrackParser decodes the GovTrack role API response
// (https://www.govtrack.us/api/v2/role?current=true&role_type=representative).
// GovTrack needs no API key and carries contact details the HTML sources
// often lack (phone, office, website).
type GovTrackParser struct{}

func NewGovTrackParser() *GovTrackParser {
	return &GovTrackParser{}
}

type govtrackRole struct {
	RoleType string `json:"role_type"`
	State    string `json:"state"`
	District *int   `json:"district"`
	Party    string `json:"party"`
	Website  string `json:"website"`
	Phone    string `json:"phone"`
	Office   string `json:"office"`
	Person struct {
		Name      string `json:"name"`
		FirstName string `json:"firstname"`
		LastName  string `json:"lastname"`
		Link      string `json:"link"`
	} `json:"person"`
}

type govtrackResponse struct {
	Objects []govtrackRole `json:"objects"`
}

func (p *GovTrackParser) Kind() string {
	return KindGovTrack
}

func (p *GovTrackParser) Parse(data []byte) ([]member.Member, int, error) {
	var resp govtrackResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, 0, &ParseError{Kind: p.Kind(), Reason: err.Error()}
	}
	if resp.Objects == nil {
		return nil, 0, &ParseError{Kind: p.Kind(), Reason: "response has no 'objects' field"}
	}

	var members []member.Member
	skipped := 0

	for i, role := range resp.Objects {
		if role.RoleType != "representative" {
			continue
		}

		m, ok := p.convertRole(role)
		if !ok {
			skipped++
			slog.Debug("Skipping malformed role", "source", p.Kind(), "index", i)
			continue
		}
		members = append(members, m)
	}

	slog.Debug("Parsed govtrack response", "members", len(members), "skipped", skipped)
	return members, skipped, nil
}

func (p *GovTrackParser) convertRole(role govtrackRole) (member.Member, bool) {
	district := ""
	if role.District != nil {
		district = member.NormalizeDistrict(strconv.Itoa(*role.District))
	}

	name := member.CleanName(roleSuffixRe.ReplaceAllString(role.Person.Name, ""))

	m := member.Member{
		Name:          name,
		FirstName:     role.Person.FirstName,
		LastName:      role.Person.LastName,
		State:         member.NormalizeState(role.State),
		District:      district,
		Party:         member.NormalizeParty(role.Party),
		OfficeAddress: role.Office,
		Phone:         role.Phone,
		Website:       role.Website,
		ProfileURL:    role.Person.Link,
		Source:        p.Kind(),
	}
	if m.FirstName == "" || m.LastName == "" {
		m.FirstName, m.LastName = member.SplitName(name)
	}

	if err := m.Validate(); err != nil {
		return member.Member{}, false
	}
	return m, true
}
