package runner

import "testing"

func TestNormalizeHide(t *testing.T) {
	tests := []struct {
		in      string
		want    HideSet
		wantErr bool
	}{
		{"", HideSet{}, false},
		{"none", HideSet{}, false},
		{"false", HideSet{}, false},
		{"out", HideSet{Out: true}, false},
		{"stdout", HideSet{Out: true}, false},
		{"err", HideSet{Err: true}, false},
		{"stderr", HideSet{Err: true}, false},
		{"both", HideSet{Out: true, Err: true}, false},
		{"true", HideSet{Out: true, Err: true}, false},
		{"sideways", HideSet{}, true},
		{"OUT", HideSet{}, true},
	}
	for _, tt := range tests {
		got, err := NormalizeHide(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizeHide(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeHide(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
