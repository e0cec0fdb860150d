package cache

import (
	"strings"
	"testing"
)

func TestDefaultKeyer_Deterministic(t *testing.T) {
	k := NewDefaultKeyer()

	a := k.Key("chart", "#revenue-panel")
	b := k.Key("chart", "#revenue-panel")

	if a != b {
		t.Errorf("Key() not deterministic: %q != %q", a, b)
	}
}

func TestDefaultKeyer_Distinct(t *testing.T) {
	k := NewDefaultKeyer()

	if k.Key("chart", "#a") == k.Key("chart", "#b") {
		t.Error("different targets produced the same key")
	}
	if k.Key("chart", "#a") == k.Key("graph", "#a") {
		t.Error("different scopes produced the same key")
	}
}

func TestDefaultKeyer_Format(t *testing.T) {
	k := NewDefaultKeyer()

	key := k.Key("chart", "#revenue-panel")
	if !strings.HasPrefix(key, "size:chart:") {
		t.Errorf("Key() = %q, want size:chart: prefix", key)
	}
	if got := len(strings.TrimPrefix(key, "size:chart:")); got != 16 {
		t.Errorf("hash length = %d, want 16", got)
	}
}

func TestDefaultKeyer_AwkwardTargetIDs(t *testing.T) {
	k := NewDefaultKeyer()

	// IDs with newlines or excessive length still hash to valid keys.
	key := k.Key("chart", "line1\nline2\r"+strings.Repeat("x", 2048))
	if err := ValidateKey(key); err != nil {
		t.Errorf("ValidateKey(%q) = %v, want nil", key, err)
	}
}

func TestValidateKey(t *testing.T) {
	cases := []struct {
		name string
		key  string
		want error
	}{
		{"valid", "size:chart:abc123", nil},
		{"empty", "", ErrInvalidKey},
		{"whitespace", "   ", ErrInvalidKey},
		{"newline", "size:a\nb", ErrInvalidKey},
		{"too long", strings.Repeat("k", MaxKeyLength+1), ErrKeyTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateKey(tc.key); got != tc.want {
				t.Errorf("ValidateKey() = %v, want %v", got, tc.want)
			}
		})
	}
}
