package orchestrator

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"

	"github.com/goliatone/go-profilegen/pkg/page"
	"github.com/goliatone/go-profilegen/pkg/profile"
	"github.com/goliatone/go-profilegen/pkg/render"
	"github.com/goliatone/go-profilegen/pkg/sections"
)

const hostFixture = `<!DOCTYPE html>
<html>
<head><title>Fallback</title></head>
<body>
  <div id="logo">Site</div>
  <ul id="nav-links"></ul>
  <h1 id="profile-name">Static Name</h1>
  <p id="profile-title"></p>
  <div id="publications-grid"></div>
  <div id="projects-grid"></div>
  <div id="skills-container"></div>
  <div id="certifications-grid"></div>
  <div id="education-grid"></div>
</body>
</html>`

const documentFixture = `{
  "profile": {"name": "Jane Roe", "title": "Engineer", "organization": "Acme"},
  "navigation": [{"href": "#about", "label": "About"}]
}`

func testPayload(t *testing.T) *profile.Payload {
	t.Helper()
	payload, err := profile.NewPayload(profile.SourceFromFile("profile.json"), []byte(documentFixture))
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}
	return &payload
}

func TestRunPopulatesPage(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	o := New(WithLogger(logger))

	result, err := o.Run(context.Background(), Request{
		Payload:  testPayload(t),
		PageHTML: []byte(hostFixture),
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !result.Rendered() {
		t.Fatalf("unexpected status %q", result.Status)
	}

	out, err := result.HTML()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "Jane Roe") {
		t.Fatal("profile name missing from output")
	}
	if !strings.Contains(html, "Engineer | Acme") {
		t.Fatal("title line missing from output")
	}
	if !strings.Contains(html, "<title>Jane Roe</title>") {
		t.Fatal("document title not updated")
	}

	for _, entry := range hook.Entries {
		if entry.Level <= logrus.ErrorLevel {
			t.Fatalf("unexpected error entry: %s", entry.Message)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	logger, _ := logrustest.NewNullLogger()
	o := New(WithLogger(logger))
	payload := testPayload(t)

	result, err := o.Run(context.Background(), Request{Payload: payload, PageHTML: []byte(hostFixture)})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := result.HTML()
	if err != nil {
		t.Fatalf("serialize first: %v", err)
	}

	again, err := o.Run(context.Background(), Request{Payload: payload, Page: result.Page})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := again.HTML()
	if err != nil {
		t.Fatalf("serialize second: %v", err)
	}

	if string(first) != string(second) {
		t.Fatal("double render changed the page")
	}
}

func TestRunDegradesWhenDocumentUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	logger, hook := logrustest.NewNullLogger()
	o := New(
		WithLogger(logger),
		WithLoaderOptions(profile.WithHTTPFallback(0)),
	)

	host, err := page.ParseBytes([]byte(hostFixture))
	if err != nil {
		t.Fatalf("parse host: %v", err)
	}
	before, err := host.HTML()
	if err != nil {
		t.Fatalf("serialize before: %v", err)
	}

	result, err := o.Run(context.Background(), Request{
		Source: profile.SourceFromURL(server.URL + "/profile.json"),
		Page:   host,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Status != StatusUnavailable {
		t.Fatalf("unexpected status %q", result.Status)
	}

	after, err := result.HTML()
	if err != nil {
		t.Fatalf("serialize after: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("page mutated despite unavailable document")
	}

	var errorEntries int
	for _, entry := range hook.Entries {
		if entry.Level == logrus.ErrorLevel {
			errorEntries++
		}
	}
	if errorEntries != 1 {
		t.Fatalf("expected exactly one error entry, got %d", errorEntries)
	}
}

func TestRunDegradesOnMalformedDocument(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	o := New(WithLogger(logger))

	payload, err := profile.NewPayload(profile.SourceFromFile("profile.json"), []byte("{not json"))
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}

	result, err := o.Run(context.Background(), Request{Payload: &payload, PageHTML: []byte(hostFixture)})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Status != StatusUnavailable {
		t.Fatalf("unexpected status %q", result.Status)
	}
	if len(hook.Entries) != 1 || hook.LastEntry().Level != logrus.ErrorLevel {
		t.Fatalf("expected one error entry, got %+v", hook.Entries)
	}
}

func TestRunRequiresPage(t *testing.T) {
	logger, _ := logrustest.NewNullLogger()
	o := New(WithLogger(logger))

	if _, err := o.Run(context.Background(), Request{Payload: testPayload(t)}); err == nil {
		t.Fatal("expected error without a page")
	}
}

type failingSection struct{}

func (failingSection) Name() string { return "failing" }

func (failingSection) Render(context.Context, profile.Document, page.Target) error {
	return errors.New("boom")
}

func TestRunContinuesPastSectionFailures(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()

	registry := render.NewRegistry()
	registry.MustRegister(failingSection{})
	defaults, err := sections.DefaultRegistry(sections.Options{Logger: logger})
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	for _, section := range defaults.Ordered() {
		registry.MustRegister(section)
	}

	o := New(WithLogger(logger), WithRegistry(registry))
	result, err := o.Run(context.Background(), Request{Payload: testPayload(t), PageHTML: []byte(hostFixture)})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !result.Rendered() {
		t.Fatalf("unexpected status %q", result.Status)
	}

	out, err := result.HTML()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !strings.Contains(string(out), "Jane Roe") {
		t.Fatal("later sections did not run after the failure")
	}

	var sawFailure bool
	for _, entry := range hook.Entries {
		if entry.Level == logrus.ErrorLevel && entry.Data["section"] == "failing" {
			sawFailure = true
		}
	}
	if !sawFailure {
		t.Fatal("section failure was not logged")
	}
}
