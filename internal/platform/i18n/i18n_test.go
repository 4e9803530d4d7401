package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestMatchDefaultsForEmptyOrUnknown(t *testing.T) {
	if got := Match(""); got != language.AmericanEnglish {
		t.Fatalf("Match(\"\") = %v, want en-US", got)
	}
	if got := Match("not a tag!!"); got != language.AmericanEnglish {
		t.Fatalf("Match(invalid) = %v, want en-US", got)
	}
}

func TestDirSuffix(t *testing.T) {
	cases := []struct {
		pref string
		want string
	}{
		{"", ""},
		{"en", ""},
		{"en-US", ""},
		{"pt-BR", "pt-BR"},
		{"pt", "pt-BR"},
	}
	for _, tc := range cases {
		if got := DirSuffix(tc.pref); got != tc.want {
			t.Fatalf("DirSuffix(%q) = %q, want %q", tc.pref, got, tc.want)
		}
	}
}

func TestPrinterTranslates(t *testing.T) {
	en := Printer("en").Sprintf("logout.not_logged_in")
	if en != "You are not logged in." {
		t.Fatalf("en translation = %q", en)
	}
	pt := Printer("pt-BR").Sprintf("logout.not_logged_in")
	if pt != "Você não está conectado." {
		t.Fatalf("pt-BR translation = %q", pt)
	}
}

func TestPrinterFallsBackToDefaultLanguage(t *testing.T) {
	// help_hint is only registered for en-US.
	got := Printer("pt-BR").Sprintf("command.help_hint", "NickServ", "LOGIN")
	want := "Use \x02/msg NickServ HELP LOGIN\x02 for more information."
	if got != want {
		t.Fatalf("fallback translation = %q, want %q", got, want)
	}
}
