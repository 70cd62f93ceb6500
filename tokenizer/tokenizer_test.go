package tokenizer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantTokens []string
	}{
		{
			name:       "simple statement",
			input:      "Build the API",
			wantTokens: []string{"Build", "the", "API"},
		},
		{
			name:       "punctuation separates tokens",
			input:      "Build A, then build B.",
			wantTokens: []string{"Build", "A", "then", "build", "B"},
		},
		{
			name:       "currency and hyphens stay attached",
			input:      "ship production-ready work for $500",
			wantTokens: []string{"ship", "production-ready", "work", "for", "$500"},
		},
		{
			name:       "stray dashes are dropped",
			input:      "plan - execute - review",
			wantTokens: []string{"plan", "execute", "review"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize(tt.input)
			if len(n.Tokens) != len(tt.wantTokens) {
				t.Fatalf("token count = %d, want %d (%v)", len(n.Tokens), len(tt.wantTokens), n.Tokens)
			}
			for i, want := range tt.wantTokens {
				if n.Tokens[i].Text != want {
					t.Errorf("token %d = %q, want %q", i, n.Tokens[i].Text, want)
				}
			}
		})
	}
}

func TestNormalizePreservesOffsets(t *testing.T) {
	raw := "Build A, THEN deploy"
	n := Normalize(raw)

	for _, tok := range n.Tokens {
		if got := raw[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("token %d: raw[%d:%d] = %q, want %q", tok.Index, tok.Start, tok.End, got, tok.Text)
		}
	}

	// Lowercase shadow is for matching only; original casing survives.
	if n.Tokens[2].Text != "THEN" || n.Tokens[2].Lower != "then" {
		t.Errorf("token 2 = %q/%q, want THEN/then", n.Tokens[2].Text, n.Tokens[2].Lower)
	}
}

func TestTokenAt(t *testing.T) {
	n := Normalize("build then test")

	if got := n.TokenAt(0); got != 0 {
		t.Errorf("TokenAt(0) = %d, want 0", got)
	}
	if got := n.TokenAt(6); got != 1 {
		t.Errorf("TokenAt(6) = %d, want 1", got)
	}
	// Offset 5 is the space between tokens.
	if got := n.TokenAt(5); got != -1 {
		t.Errorf("TokenAt(5) = %d, want -1", got)
	}
}

func TestTokenNear(t *testing.T) {
	n := Normalize("build then test")

	if got := n.TokenNear(5); got != 1 {
		t.Errorf("TokenNear(5) = %d, want 1", got)
	}
	if got := n.TokenNear(100); got != 2 {
		t.Errorf("TokenNear(100) = %d, want last token", got)
	}
}
