package prefilter

import "testing"

func TestBuildEmpty(t *testing.T) {
	if _, ok := Build(nil); ok {
		t.Error("Build(nil) = ok, want !ok")
	}
}

func TestLiteralSetCouldMatchAt(t *testing.T) {
	set, ok := Build([][]byte{[]byte("GET"), []byte("POST"), []byte("HEAD")})
	if !ok {
		t.Fatal("Build returned !ok")
	}

	tests := []struct {
		name   string
		source string
		offset int
		want   bool
	}{
		{"literal at offset", "GET /x HTTP/1.1", 0, true},
		{"different literal at offset", "POST /x HTTP/1.1", 0, true},
		{"no literal at offset", "PUT /x HTTP/1.1", 0, false},
		{"literal present but not at offset", "xGET", 0, false},
		{"offset past end", "GET", 10, false},
		{"offset at end", "GET", 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := set.CouldMatchAt([]byte(tt.source), tt.offset); got != tt.want {
				t.Errorf("CouldMatchAt(%q, %d) = %v, want %v", tt.source, tt.offset, got, tt.want)
			}
		})
	}
}
