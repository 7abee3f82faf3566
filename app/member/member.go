package member

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Member is one representative's normalized attribute set. The pair
// (State, District) identifies a seat; no other field is guaranteed unique.
type Member struct {
	Name          string `json:"name"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	State         string `json:"state"`
	District      string `json:"district"`
	Party         string `json:"party"`
	OfficeAddress string `json:"office_address"`
	Phone         string `json:"phone,omitempty"`
	Website       string `json:"website,omitempty"`
	ProfileURL    string `json:"profile_url,omitempty"`
	Source        string `json:"source"`
}

// SeatKey returns the deduplication key for the member's seat.
func (m Member) SeatKey() string {
	return fmt.Sprintf("%s|%s", m.State, m.District)
}

// Validate checks that the member carries enough structure to be emitted.
// Every emitted record must have a non-empty state and district, and the
// name must look like an actual person's name.
func (m Member) Validate() error {
	if m.State == "" {
		return fmt.Errorf("missing state")
	}
	if m.District == "" {
		return fmt.Errorf("missing district")
	}
	if len(strings.Fields(m.Name)) < 2 {
		return fmt.Errorf("name %q does not look like a name", m.Name)
	}
	return nil
}

// Merge fills empty fields of the preferred record from the fallback
// record. Preferred values always win field-by-field; the fallback is
// consulted only for gaps.
func Merge(preferred, fallback Member) Member {
	merged := preferred
	merged.Name = coalesce(preferred.Name, fallback.Name)
	merged.FirstName = coalesce(preferred.FirstName, fallback.FirstName)
	merged.LastName = coalesce(preferred.LastName, fallback.LastName)
	merged.Party = coalesce(preferred.Party, fallback.Party)
	merged.OfficeAddress = coalesce(preferred.OfficeAddress, fallback.OfficeAddress)
	merged.Phone = coalesce(preferred.Phone, fallback.Phone)
	merged.Website = coalesce(preferred.Website, fallback.Website)
	merged.ProfileURL = coalesce(preferred.ProfileURL, fallback.ProfileURL)
	return merged
}

// Sort orders members by state, then by district. At-large seats sort
// before numbered districts within a state.
func Sort(members []Member) {
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].State != members[j].State {
			return members[i].State < members[j].State
		}
		return districtOrder(members[i].District) < districtOrder(members[j].District)
	})
}

func districtOrder(district string) int {
	if n, err := strconv.Atoi(district); err == nil {
		return n
	}
	// "At-Large" and anything non-numeric
	return 0
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
