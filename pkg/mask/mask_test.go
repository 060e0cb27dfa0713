package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "well formed key is masked",
			key:  "docs/AbCdEfGh__report.pdf",
			want: "docs/XXXXXXGh__report.pdf",
		},
		{
			name: "no slash",
			key:  "weird_key_no_slash",
			want: "weird_key_no_slash",
		},
		{
			name: "token too short",
			key:  "a/short7__f.txt",
			want: "a/short7__f.txt",
		},
		{
			name: "token too long",
			key:  "a/ninechars__f.txt",
			want: "a/ninechars__f.txt",
		},
		{
			name: "no token separator",
			key:  "docs/AbCdEfGh-report.pdf",
			want: "docs/AbCdEfGh-report.pdf",
		},
		{
			name: "more than one slash",
			key:  "a/b/AbCdEfGh__f.txt",
			want: "a/b/AbCdEfGh__f.txt",
		},
		{
			name: "empty token",
			key:  "docs/__report.pdf",
			want: "docs/__report.pdf",
		},
		{
			name: "filename keeps later separators",
			key:  "docs/AbCdEfGh__re__port.pdf",
			want: "docs/XXXXXXGh__re__port.pdf",
		},
		{
			name: "empty key",
			key:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.key))
		})
	}
}
