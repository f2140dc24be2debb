package profile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPayloadValidatesInputs(t *testing.T) {
	if _, err := NewPayload(nil, []byte("{}")); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := NewPayload(SourceFromFile("data/profile.json"), nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestPayloadRawIsDefensiveCopy(t *testing.T) {
	raw := []byte(`{"profile":{"name":"Jane"}}`)
	payload := MustNewPayload(SourceFromFile("data/profile.json"), raw)

	clone := payload.Raw()
	clone[0] = 'X'

	if got := payload.Raw()[0]; got != '{' {
		t.Fatalf("payload mutated through Raw(): got %q", got)
	}
}

func TestDecodeFullDocument(t *testing.T) {
	raw := []byte(`{
		"profile": {
			"name": "Jane Roe",
			"title": "Research Engineer",
			"organization": "Acme Labs",
			"profileImage": "images/jane.jpg",
			"cvPath": "files/cv.pdf",
			"metrics": ["50+ Publications", "10 Years Experience"]
		},
		"bio": {
			"introduction": "<p>Hello</p>",
			"background": "<p>Before</p>",
			"researchFocus": "<p>Now</p>"
		},
		"navigation": [{"href": "#about", "label": "About"}],
		"contact": {"email": "jane@example.com", "github": "https://github.com/jane"},
		"publications": [{
			"title": "On Things",
			"venue": "J. Things",
			"description": "A paper.",
			"links": {"status": "under review", "github": "https://github.com/jane/things"}
		}],
		"projects": [{
			"title": "Widget",
			"year": "2023",
			"shortDescription": "Makes widgets.",
			"metrics": [{"value": "3x", "label": "Faster"}],
			"techStack": ["Go", "SQL"]
		}],
		"skills": {"salesforce": ["Apex"], "professional": ["Writing"]},
		"certifications": [{"name": "Cert", "credentialId": "abc-123", "date": "15 January 2022"}],
		"education": [{"degree": "Master's in CS", "institution": "State U", "location": "Springfield"}],
		"siteConfig": {"themeColors": {"primary": "#123456"}}
	}`)

	payload := MustNewPayload(SourceFromFile("data/profile.json"), raw)
	doc, err := payload.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := Document{
		Profile: Person{
			Name:         "Jane Roe",
			Title:        "Research Engineer",
			Organization: "Acme Labs",
			ProfileImage: "images/jane.jpg",
			CVPath:       "files/cv.pdf",
			Metrics:      []string{"50+ Publications", "10 Years Experience"},
		},
		Bio: Bio{
			Introduction:  "<p>Hello</p>",
			Background:    "<p>Before</p>",
			ResearchFocus: "<p>Now</p>",
		},
		Navigation: []NavLink{{Href: "#about", Label: "About"}},
		Contact:    Contact{Email: "jane@example.com", GitHub: "https://github.com/jane"},
		Publications: []Publication{{
			Title:       "On Things",
			Venue:       "J. Things",
			Description: "A paper.",
			Links:       PublicationLinks{Status: "under review", GitHub: "https://github.com/jane/things"},
		}},
		Projects: []Project{{
			Title:            "Widget",
			Year:             "2023",
			ShortDescription: "Makes widgets.",
			Metrics:          []Metric{{Value: "3x", Label: "Faster"}},
			TechStack:        []string{"Go", "SQL"},
		}},
		Skills:         SkillSet{Salesforce: []string{"Apex"}, Professional: []string{"Writing"}},
		Certifications: []Certification{{Name: "Cert", CredentialID: "abc-123", Date: "15 January 2022"}},
		Education:      []Education{{Degree: "Master's in CS", Institution: "State U", Location: "Springfield"}},
		SiteConfig:     SiteConfig{ThemeColors: map[string]string{"primary": "#123456"}},
	}

	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTreatsMissingFieldsAsZero(t *testing.T) {
	payload := MustNewPayload(SourceFromFS("profile.json"), []byte(`{"profile":{"name":"Jane"}}`))
	doc, err := payload.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if doc.Profile.Name != "Jane" {
		t.Fatalf("unexpected name %q", doc.Profile.Name)
	}
	if doc.Publications != nil || doc.Navigation != nil {
		t.Fatal("expected nil slices for absent sections")
	}
	if doc.SiteConfig.ThemeColors != nil {
		t.Fatal("expected nil theme colors for absent siteConfig")
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	payload := MustNewPayload(SourceFromFile("broken.json"), []byte(`{"profile":`))
	if _, err := payload.Decode(); err == nil {
		t.Fatal("expected decode error")
	}
}
