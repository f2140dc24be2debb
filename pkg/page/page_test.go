package page

import (
	"strings"
	"testing"
)

const fixture = `<!DOCTYPE html>
<html><head><title>Static</title></head>
<body>
<div id="logo">old</div>
<ul id="nav-links"><li>existing</li></ul>
</body></html>`

func mustParse(t *testing.T, markup string) *Page {
	t.Helper()
	p, err := ParseBytes([]byte(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return p
}

func TestElementByID(t *testing.T) {
	p := mustParse(t, fixture)

	if n := p.ElementByID("logo"); n == nil {
		t.Fatal("expected logo element")
	}
	if n := p.ElementByID("missing"); n != nil {
		t.Fatal("expected nil for unknown id")
	}
	if n := p.ElementByID(""); n != nil {
		t.Fatal("expected nil for empty id")
	}
}

func TestElementByTag(t *testing.T) {
	p := mustParse(t, fixture)

	title := p.ElementByTag("title")
	if title == nil {
		t.Fatal("expected title element")
	}
	if got := Text(title); got != "Static" {
		t.Fatalf("unexpected title text %q", got)
	}
	if p.DocumentElement() == nil {
		t.Fatal("expected html element")
	}
}

func TestSetTextEscapes(t *testing.T) {
	p := mustParse(t, fixture)
	logo := p.ElementByID("logo")

	SetText(logo, `<script>alert("x")</script>`)

	out, err := p.HTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), `<script>alert`) {
		t.Fatal("text content was not escaped")
	}
	if got := Text(logo); got != `<script>alert("x")</script>` {
		t.Fatalf("unexpected text content %q", got)
	}
}

func TestSetFragmentReplacesChildren(t *testing.T) {
	p := mustParse(t, fixture)
	nav := p.ElementByID("nav-links")

	if err := SetFragment(nav, `<li><a href="#a">A</a></li><li><a href="#b">B</a></li>`); err != nil {
		t.Fatalf("set fragment: %v", err)
	}

	out, err := p.HTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "existing") {
		t.Fatal("old children were not cleared")
	}
	if !strings.Contains(html, `<a href="#a">A</a>`) || !strings.Contains(html, `<a href="#b">B</a>`) {
		t.Fatalf("fragment content missing from output:\n%s", html)
	}
}

func TestSetFragmentIsIdempotent(t *testing.T) {
	p := mustParse(t, fixture)
	nav := p.ElementByID("nav-links")

	if err := SetFragment(nav, `<li>one</li>`); err != nil {
		t.Fatalf("set fragment: %v", err)
	}
	first, err := p.HTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if err := SetFragment(nav, `<li>one</li>`); err != nil {
		t.Fatalf("set fragment: %v", err)
	}
	second, err := p.HTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if string(first) != string(second) {
		t.Fatal("repeated renders produced different output")
	}
}

func TestAttrHelpers(t *testing.T) {
	p := mustParse(t, fixture)
	logo := p.ElementByID("logo")

	if _, ok := Attr(logo, "class"); ok {
		t.Fatal("unexpected class attribute")
	}

	SetAttr(logo, "class", "site-logo")
	if v, ok := Attr(logo, "class"); !ok || v != "site-logo" {
		t.Fatalf("unexpected class %q", v)
	}

	SetAttr(logo, "class", "logo")
	if v, _ := Attr(logo, "class"); v != "logo" {
		t.Fatalf("attribute was appended instead of replaced: %q", v)
	}
}

func TestTargetSlot(t *testing.T) {
	p := mustParse(t, fixture)
	target := Target{"logo": p.ElementByID("logo"), "gone": nil}

	if _, ok := target.Slot("logo"); !ok {
		t.Fatal("expected logo slot")
	}
	if target.Has("gone") {
		t.Fatal("nil slot should report absent")
	}
	if Target(nil).Has("logo") {
		t.Fatal("nil target should report absent")
	}
}
