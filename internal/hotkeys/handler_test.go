package hotkeys

import "testing"

func TestTranslateModMask(t *testing.T) {
	tests := []struct {
		name    string
		mask    string
		want    string
		wantErr bool
	}{
		{"ctrl alt", "<Ctrl><Alt>", "Control-Mod1-", false},
		{"alternate spelling", "<Control><Shift>", "Control-Shift-", false},
		{"super", "<Super>", "Mod4-", false},
		{"case insensitive", "<CTRL>", "Control-", false},
		{"empty", "", "", false},
		{"unknown modifier", "<Hyper>", "", true},
		{"missing brackets", "Ctrl", "", true},
		{"unterminated", "<Ctrl", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := translateModMask(tt.mask)
			if tt.wantErr {
				if err == nil {
					t.Errorf("translateModMask(%q) should fail", tt.mask)
				}
				return
			}
			if err != nil {
				t.Fatalf("translateModMask(%q) returned error: %v", tt.mask, err)
			}
			if got != tt.want {
				t.Errorf("translateModMask(%q) = %q, want %q", tt.mask, got, tt.want)
			}
		})
	}
}
