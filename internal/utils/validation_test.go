package utils

import "testing"

func TestValidLanguage(t *testing.T) {
	valid := []string{"en", "de", "fr", "zh-min-nan"}
	for _, lang := range valid {
		if !ValidLanguage(lang) {
			t.Errorf("expected %q to be valid", lang)
		}
	}

	invalid := []string{"", "en_US", "EN", "en US", "-en", "en-", "en1"}
	for _, lang := range invalid {
		if ValidLanguage(lang) {
			t.Errorf("expected %q to be invalid", lang)
		}
	}
}

func TestHumanSize(t *testing.T) {
	cases := map[int64]string{
		0:                  "0 B",
		512:                "512 B",
		2048:               "2.0 KiB",
		5 * 1024 * 1024:    "5.0 MiB",
		3 << 30:            "3.0 GiB",
		1536 * 1024 * 1024: "1.5 GiB",
	}
	for n, want := range cases {
		if got := HumanSize(n); got != want {
			t.Errorf("HumanSize(%d) = %q, want %q", n, got, want)
		}
	}
}
