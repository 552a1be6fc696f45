package models

import (
	"encoding/json"
	"testing"
)

func TestKeywordUnmarshalObjectAndString(t *testing.T) {
	var ks []Keyword
	if err := json.Unmarshal([]byte(`[{"keyword":"fuzzy logic"},"AI"]`), &ks); err != nil {
		t.Fatalf("unmarshal keywords: %v", err)
	}
	if len(ks) != 2 || ks[0].Keyword != "fuzzy logic" || ks[1].Keyword != "AI" {
		t.Fatalf("unexpected keywords: %+v", ks)
	}
}

func TestPublicationYearForms(t *testing.T) {
	cases := map[string]*int{
		`{"title":"A","year":2020}`:   intp(2020),
		`{"title":"B","year":"2019"}`: intp(2019),
		`{"title":"C","year":null}`:   nil,
		`{"title":"D"}`:               nil,
		`{"title":"E","year":"n/a"}`:  nil,
	}
	for raw, want := range cases {
		var p Publication
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if (p.Year == nil) != (want == nil) {
			t.Fatalf("%s: year presence mismatch: %v", raw, p.Year)
		}
		if want != nil && *p.Year != *want {
			t.Fatalf("%s: year %d want %d", raw, *p.Year, *want)
		}
	}
}

func TestResearcherAbsentFieldsDecode(t *testing.T) {
	raw := `{"researcher":{"full_name":null,"orcid_id":"0000-1111"}}`
	var r Researcher
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal researcher: %v", err)
	}
	if r.Researcher.FullName != "" || r.Researcher.OrcidID != "0000-1111" {
		t.Fatalf("unexpected identity: %+v", r.Researcher)
	}
	if r.Affiliations != nil || r.Publications != nil {
		t.Fatalf("absent arrays should decode to nil before normalization")
	}
}

func intp(v int) *int { return &v }
