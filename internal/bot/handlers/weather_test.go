package handlers

import "testing"

func TestCapitalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"broken clouds", "Broken clouds"},
		{"Light rain", "Light rain"},
		{"éclaircies", "Éclaircies"},
		{"переменная облачность", "Переменная облачность"},
		{"雷雨", "雷雨"},
	}
	for _, c := range cases {
		if got := capitalize(c.in); got != c.want {
			t.Errorf("capitalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
