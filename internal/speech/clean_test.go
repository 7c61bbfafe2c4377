package speech

import "testing"

func TestCleanText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Master volume", "Master volume"},
		{"sprite tag", `Reload <sprite name="key_r"> to retry`, "Reload to retry"},
		{"markup tags", "<b>New</b> <color=#FF0000>Game</color>", "New Game"},
		{"nested markup", "<i><b>Ironman</b></i>", "Ironman"},
		{"collapse whitespace", "Load   Game\n\tslot  1", "Load Game slot 1"},
		{"non-breaking space", "80 %", "80 %"},
		{"only markup", "<sprite index=3>", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanText(tc.in); got != tc.want {
				t.Fatalf("CleanText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
