package profilegen

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-profilegen/pkg/orchestrator"
	"github.com/goliatone/go-profilegen/pkg/profile"
)

const hostPage = `<!DOCTYPE html>
<html>
<head><title>Fallback</title></head>
<body>
  <h1 id="profile-name">Static Name</h1>
  <p id="profile-title"></p>
</body>
</html>`

func TestRenderPageFromFS(t *testing.T) {
	files := fstest.MapFS{
		"profile.json": &fstest.MapFile{Data: []byte(`{
			"profile": {"name": "Jane Roe", "title": "Engineer", "organization": "Acme"}
		}`)},
	}

	out, err := RenderPage(
		context.Background(),
		profile.SourceFromFS("profile.json"),
		[]byte(hostPage),
		orchestrator.WithLoaderOptions(profile.WithFileSystem(files)),
	)
	if err != nil {
		t.Fatalf("render page: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "Jane Roe") {
		t.Fatal("profile name missing")
	}
	if !strings.Contains(html, "Engineer | Acme") {
		t.Fatal("title line missing")
	}
}

func TestRenderPageFromPayload(t *testing.T) {
	payload, err := profile.NewPayload(profile.SourceFromFile("profile.json"), []byte(`{
		"profile": {"name": "Jane Roe"}
	}`))
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}

	out, err := RenderPageFromPayload(context.Background(), payload, []byte(hostPage))
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	if !strings.Contains(string(out), "<title>Jane Roe</title>") {
		t.Fatal("document title not updated")
	}
}

func TestEmbeddedBundles(t *testing.T) {
	if _, err := EmbeddedTemplates().Open("templates/nav.tmpl"); err != nil {
		t.Fatalf("open embedded template: %v", err)
	}
	if EmbeddedPageMap().Empty() {
		t.Fatal("default page map is empty")
	}
}
