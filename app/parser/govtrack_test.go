package parser

import (
	"errors"
	"testing"
)

const govtrackFixture = `{
  "meta": {"limit": 500, "offset": 0, "total_count": 3},
  "objects": [
    {
      "role_type": "representative",
      "state": "CA",
      "district": 2,
      "party": "Democrat",
      "website": "https://huffman.house.gov",
      "phone": "202-225-5161",
      "office": "2445 Rayburn House Office Building",
      "person": {
        "name": "Rep. Jared Huffman [D-CA2]",
        "firstname": "Jared",
        "lastname": "Huffman",
        "link": "https://www.govtrack.us/congress/members/jared_huffman/412511"
      }
    },
    {
      "role_type": "representative",
      "state": "AK",
      "district": 0,
      "party": "Republican",
      "website": "https://begich.house.gov",
      "phone": "202-225-5765",
      "office": "153 Cannon House Office Building",
      "person": {
        "name": "Rep. Nick Begich [R-AK0]",
        "firstname": "Nick",
        "lastname": "Begich"
      }
    },
    {
      "role_type": "senator",
      "state": "CA",
      "district": null,
      "party": "Democrat",
      "person": {"name": "Sen. Alex Padilla [D-CA]", "firstname": "Alex", "lastname": "Padilla"}
    }
  ]
}`

func TestGovTrackParser_Parse(t *testing.T) {
	p := NewGovTrackParser()

	members, skipped, err := p.Parse([]byte(govtrackFixture))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(members) != 2 {
		t.Fatalf("Expected 2 representatives (senator excluded), got %d", len(members))
	}
	if skipped != 0 {
		t.Errorf("Expected 0 skipped, got %d", skipped)
	}

	first := members[0]
	if first.Name != "Jared Huffman" {
		t.Errorf("Expected role prefix and suffix stripped, got '%s'", first.Name)
	}
	if first.State != "CA" || first.District != "2" {
		t.Errorf("Expected CA-2, got %s-%s", first.State, first.District)
	}
	if first.Party != "Democrat" {
		t.Errorf("Expected party 'Democrat', got '%s'", first.Party)
	}
	if first.Phone != "202-225-5161" {
		t.Errorf("Expected phone, got '%s'", first.Phone)
	}
	if first.OfficeAddress != "2445 Rayburn House Office Building" {
		t.Errorf("Expected office address, got '%s'", first.OfficeAddress)
	}
	if first.Website != "https://huffman.house.gov" {
		t.Errorf("Expected website, got '%s'", first.Website)
	}
	if first.FirstName != "Jared" || first.LastName != "Huffman" {
		t.Errorf("Expected Jared/Huffman, got %s/%s", first.FirstName, first.LastName)
	}
	if first.Source != KindGovTrack {
		t.Errorf("Expected source '%s', got '%s'", KindGovTrack, first.Source)
	}

	atLarge := members[1]
	if atLarge.State != "AK" || atLarge.District != "At-Large" {
		t.Errorf("Expected AK At-Large for district 0, got %s-%s", atLarge.State, atLarge.District)
	}
}

func TestGovTrackParser_Parse_BadShape(t *testing.T) {
	p := NewGovTrackParser()

	_, _, err := p.Parse([]byte(`{"detail": "rate limit exceeded"}`))
	if err == nil {
		t.Fatal("Expected structural parse error for response without objects")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("Expected *ParseError, got %T", err)
	}

	if _, _, err := p.Parse([]byte(`not json`)); err == nil {
		t.Error("Expected parse error for invalid JSON")
	}
}

func TestForKind(t *testing.T) {
	for _, kind := range []string{KindHouse, KindBallotpedia, KindGovTrack} {
		p, err := ForKind(kind)
		if err != nil {
			t.Errorf("ForKind(%s): unexpected error: %v", kind, err)
			continue
		}
		if p.Kind() != kind {
			t.Errorf("ForKind(%s): parser reports kind '%s'", kind, p.Kind())
		}
	}

	if _, err := ForKind("senate"); err == nil {
		t.Error("Expected error for unknown kind")
	}
}
