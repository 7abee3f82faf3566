package member

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var stateCodes = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
	"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY",
	// Non-voting delegate seats also appear in House listings
	"district of columbia": "DC", "puerto rico": "PR", "guam": "GU",
	"american samoa": "AS", "u.s. virgin islands": "VI", "virgin islands": "VI",
	"northern mariana islands": "MP",
}

var stateNames = func() map[string]string {
	caser := cases.Title(language.AmericanEnglish)
	names := make(map[string]string, len(stateCodes))
	for name, code := range stateCodes {
		names[code] = caser.String(name)
	}
	names["DC"] = "District of Columbia"
	names["VI"] = "U.S. Virgin Islands"
	return names
}()

var honorificRe = regexp.MustCompile(`(?i)\b(rep|representative|hon|honorable|mr|mrs|ms|dr)\.?\s+`)
var whitespaceRe = regexp.MustCompile(`\s+`)
var districtNumRe = regexp.MustCompile(`(?i)(?:district\s*(\d+))|(?:(\d+)(?:st|nd|rd|th)?(?:\s*(?:congressional\s+)?district)?)`)

// NormalizeState maps a state name, slug ("new-york") or USPS code to the
// two-letter code. Unrecognized input is returned unchanged after trimming.
func NormalizeState(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if len(s) == 2 {
		upper := strings.ToUpper(s)
		if _, ok := stateNames[upper]; ok {
			return upper
		}
	}
	key := strings.ToLower(whitespaceRe.ReplaceAllString(strings.ReplaceAll(s, "-", " "), " "))
	if code, ok := stateCodes[key]; ok {
		return code
	}
	return s
}

// StateName returns the full state name for a USPS code, or the input
// when the code is unknown.
func StateName(code string) string {
	if name, ok := stateNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// NormalizeDistrict canonicalizes a district designation. At-large seats
// (including GovTrack's district 0) become "At-Large"; numbered districts
// lose ordinal suffixes and surrounding text: "4th District" -> "4".
func NormalizeDistrict(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	if s == "" || s == "0" || strings.Contains(lower, "at large") || strings.Contains(lower, "at-large") || lower == "delegate" || lower == "resident commissioner" {
		return "At-Large"
	}
	if m := districtNumRe.FindStringSubmatch(lower); m != nil {
		if m[1] != "" {
			return strings.TrimLeft(m[1], "0")
		}
		if m[2] != "" {
			return strings.TrimLeft(m[2], "0")
		}
	}
	return s
}

// NormalizeParty maps the party spellings found across the sources to a
// canonical label.
func NormalizeParty(s string) string {
	switch strings.ToUpper(strings.Trim(strings.TrimSpace(s), "()")) {
	case "R", "REP", "REPUBLICAN", "GOP":
		return "Republican"
	case "D", "DEM", "DEMOCRAT", "DEMOCRATIC":
		return "Democrat"
	case "I", "IND", "INDEPENDENT":
		return "Independent"
	case "":
		return ""
	}
	return strings.TrimSpace(s)
}

// CleanName strips honorifics and collapses whitespace. Scraped pages
// frequently prefix names with "Rep." or "Hon.".
func CleanName(s string) string {
	s = honorificRe.ReplaceAllString(s, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// SplitName derives first and last name from a full name, tolerating the
// "Last, First" order used by some directories.
func SplitName(full string) (first, last string) {
	full = CleanName(full)
	if i := strings.Index(full, ","); i >= 0 {
		return strings.TrimSpace(full[i+1:]), strings.TrimSpace(full[:i])
	}
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return full, ""
	}
	return parts[0], parts[len(parts)-1]
}
