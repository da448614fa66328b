package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestPatch_Apply(t *testing.T) {
	base := User{ID: 1, Name: "Ada", Username: "ada", Email: "ada@x.com"}

	tests := []struct {
		name  string
		patch Patch
		want  User
	}{
		{"empty patch keeps everything", Patch{}, base},
		{"email only", Patch{Email: ptr("new@x.com")}, User{ID: 1, Name: "Ada", Username: "ada", Email: "new@x.com"}},
		{"all fields", Patch{Name: ptr("Grace"), Username: ptr("grace"), Email: ptr("g@x.com")}, User{ID: 1, Name: "Grace", Username: "grace", Email: "g@x.com"}},
		{"explicit empty string overwrites", Patch{Name: ptr("")}, User{ID: 1, Name: "", Username: "ada", Email: "ada@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.Apply(base))
		})
	}
}
