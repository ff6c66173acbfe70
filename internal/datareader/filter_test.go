package datareader

import "testing"

func TestKeep(t *testing.T) {
	tests := []struct {
		name  string
		white []string
		black []string
		want  bool
	}{
		{"aclang.1", []string{"aclang"}, nil, true},
		{"aclang.1", []string{"itext"}, nil, false},
		{"aclang.1", []string{"itext", "clang"}, nil, true},
		{"aclang.1", []string{"aclang"}, []string{".1"}, false},
		{"aclang.1", []string{"aclang"}, []string{"itext"}, true},
		{"aclang.1", []string{""}, nil, true},
		{"aclang.1", []string{"aclang"}, []string{""}, false},
		// An empty white list keeps nothing, even without a black list.
		{"aclang.1", nil, nil, false},
		{"aclang.1", []string{}, []string{"itext"}, false},
	}
	for _, tt := range tests {
		if got := Keep(tt.name, tt.white, tt.black); got != tt.want {
			t.Errorf("Keep(%q, %q, %q) = %v, want %v", tt.name, tt.white, tt.black, got, tt.want)
		}
	}
}
