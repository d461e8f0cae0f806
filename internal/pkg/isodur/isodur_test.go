package isodur

import "testing"

func TestSeconds(t *testing.T) {
	cases := []struct {
		token string
		want  int
	}{
		{"PT0S", 0},
		{"PT1H", 3600},
		{"PT4M13S", 253},
		{"PT1H2M3S", 3723},
		{"PT45S", 45},
		{"PT10M", 600},
		{"PT25H", 90000},
	}

	for _, c := range cases {
		if got := Seconds(c.token); got != c.want {
			t.Errorf("Seconds(%q) = %d, want %d", c.token, got, c.want)
		}
	}
}

func TestSecondsSentinel(t *testing.T) {
	// 空串或乱码都落到哨兵值 0，不向调用方抛错
	for _, token := range []string{"", "P1D", "PT", "1H2M", "PTXS", "pt1h"} {
		if got := Seconds(token); got != 0 {
			t.Errorf("Seconds(%q) = %d, want sentinel 0", token, got)
		}
	}
}
