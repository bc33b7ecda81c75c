package whatsapp

import (
	"net/url"
	"strings"
	"testing"
)

func TestDeepLink(t *testing.T) {
	link := DeepLink("+62 812-3456 7890", "Yth. Budi, jadwal Anda besok.")

	if !strings.HasPrefix(link, "https://wa.me/6281234567890?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if strings.Contains(link, "+") {
		t.Fatalf("link must not contain '+': %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatal(err)
	}
	if got := u.Query().Get("text"); got != "Yth. Budi, jadwal Anda besok." {
		t.Fatalf("round-tripped text = %q", got)
	}
}

func TestDeepLinkMultilineMessage(t *testing.T) {
	link := DeepLink("0812 3456 7890", "line one\nline two")
	u, err := url.Parse(link)
	if err != nil {
		t.Fatal(err)
	}
	if got := u.Query().Get("text"); got != "line one\nline two" {
		t.Fatalf("round-tripped text = %q", got)
	}
}
