package i18n

import (
	"testing"
	"time"
)

func TestFallbackChain(t *testing.T) {
	vi := For("vi")
	if got := vi.T("tab.clauses"); got != "Điều khoản" {
		t.Errorf("vi tab.clauses = %q", got)
	}
	// Missing in vi, present in ko.
	if got := vi.T("docs.delete_confirm"); got != ko["docs.delete_confirm"] {
		t.Errorf("vi fallback = %q, want Korean", got)
	}
	if got := vi.T("no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key = %q, want the key", got)
	}
}

func TestUnsupportedLanguageUsesDefault(t *testing.T) {
	tr := For("fr")
	if tr.Lang() != Default {
		t.Errorf("Lang() = %q, want %q", tr.Lang(), Default)
	}
	if got := tr.T("tab.summary"); got != "요약" {
		t.Errorf("tab.summary = %q", got)
	}
}

func TestEnglishComplete(t *testing.T) {
	for key := range ko {
		if key == "app.name" {
			continue
		}
		if _, ok := en[key]; !ok {
			t.Errorf("en is missing %q", key)
		}
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 3, 4, 9, 5, 0, 0, time.UTC)
	tests := []struct {
		lang, want string
	}{
		{"ko", "2025년 3월 4일 09:05"},
		{"en", "Mar 4, 2025 09:05"},
		{"vi", "04/03/2025 09:05"},
	}
	for _, tt := range tests {
		if got := For(tt.lang).FormatDate(ts); got != tt.want {
			t.Errorf("FormatDate(%s) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestRiskLabels(t *testing.T) {
	if got := For("en").Risk("높음"); got != "High" {
		t.Errorf("Risk(높음) = %q", got)
	}
	if got := For("en").Risk("알수없음"); got != "알수없음" {
		t.Errorf("unknown risk = %q", got)
	}
	if got := For("en").F("docs.count", 3); got != "3 documents" {
		t.Errorf("F = %q", got)
	}
}
