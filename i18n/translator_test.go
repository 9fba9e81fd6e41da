package i18n

import "testing"

func TestCatalog_Languages(t *testing.T) {
	if got := T("union_no_match", nil); got != "value matches none of the accepted shapes" {
		t.Fatalf("unexpected default message %q", got)
	}

	SetLanguage("ja")
	defer SetLanguage("en")
	if got := T("invalid_type", nil); got != "型が不正です" {
		t.Fatalf("expected japanese message, got %q", got)
	}
}

func TestCatalog_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	if c := NewCatalog("fr"); c.Lang() != "en" {
		t.Fatalf("expected en fallback, got %q", c.Lang())
	}
}

func TestCatalog_Placeholders(t *testing.T) {
	catalogs["en"]["test_field"] = "field {field} is {what}"
	defer delete(catalogs["en"], "test_field")

	got := NewCatalog("en").Message("test_field", map[string]string{"field": "name"})
	if got != "field name is {what}" {
		t.Fatalf("unexpected substitution %q", got)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if got := T("required", nil); got != "X:required" {
		t.Fatalf("custom translator not used: %q", got)
	}
	SetTranslator(nil)
	if got := T("required", nil); got != "required property missing" {
		t.Fatalf("expected reset to en, got %q", got)
	}
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("expected code echo, got %q", got)
	}
}
