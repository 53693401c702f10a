package transcribe

import "testing"

func TestISOFromScribe(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"spa", "es"},
		{"eng", "en"},
		{"fra", "fr"},
		{"deu", "de"},
		{"jpn", "ja"},
		{"zho", "zh"},
		{"hin", "hi"},
		{"SPA", "es"},
		{"nld", "nl"}, // not in the table, truncated
		{"pl", "pl"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ISOFromScribe(tc.in); got != tc.want {
			t.Errorf("ISOFromScribe(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestISOFromWhisper(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"spanish", "es"},
		{"English", "en"},
		{"russian", "ru"},
		{"es", "es"}, // already a code
		{"klingon", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ISOFromWhisper(tc.in); got != tc.want {
			t.Errorf("ISOFromWhisper(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestLikelyEnglish(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want bool
	}{
		{"I think that it is going to rain", true},
		{"the cat and the dog", true},
		{"hola como estas", false},
		{"", false},
		{"bonjour", false},
	}
	for _, tc := range cases {
		if got := LikelyEnglish(tc.text); got != tc.want {
			t.Errorf("LikelyEnglish(%q): expected %v, got %v", tc.text, tc.want, got)
		}
	}
}
