package palette

import "testing"

func TestForIndex(t *testing.T) {
	if got := ForIndex(0); got != "#FF6B6B" {
		t.Errorf("ForIndex(0) = %s, want #FF6B6B", got)
	}
	if got := ForIndex(len(Colors)); got != Colors[0] {
		t.Errorf("ForIndex wraps: got %s, want %s", got, Colors[0])
	}
	if got := ForIndex(16); got != Colors[1] {
		t.Errorf("ForIndex(16) = %s, want %s", got, Colors[1])
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "#FF6B6B", want: "#ff6b6b"},
		{in: "#f0a", want: "#ff00aa"},
		{in: "red", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Normalize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
