package usecase

import (
	"strings"
	"testing"
)

func TestRenderQuoteCreatedBody(t *testing.T) {
	body := renderQuoteCreatedBody("Maria Souza", "Tradução Juramentada", "qr-1")

	for _, want := range []string{"Maria Souza", "Tradução Juramentada", "qr-1"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q, got %q", want, body)
		}
	}
	if strings.Contains(body, "{{") {
		t.Fatalf("expected every placeholder substituted, got %q", body)
	}
}
