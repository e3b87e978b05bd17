package language

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Selection
		wantErr bool
	}{
		{"french", "French", French, false},
		{"spanish", "Spanish", Spanish, false},
		{"hindi", "Hindi", Hindi, false},
		{"english", "English", English, false},
		{"none", "None", None, false},
		{"empty defaults to none", "", None, false},
		{"unknown rejected", "Klingon", None, true},
		{"wrong case rejected", "french", None, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		sel  Selection
		want string
	}{
		{French, "fr"},
		{Spanish, "es"},
		{Hindi, "hi"},
		{English, "en"},
		{None, ""},
	}

	for _, tt := range tests {
		if got := tt.sel.Code(); got != tt.want {
			t.Errorf("%v.Code() = %q, want %q", tt.sel, got, tt.want)
		}
	}
}

func TestRequested(t *testing.T) {
	if None.Requested() {
		t.Error("None.Requested() = true, want false")
	}
	if !French.Requested() {
		t.Error("French.Requested() = false, want true")
	}
}
