package stamp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	output := filepath.Join(t.TempDir(), "gles", "bindings.go")
	s := New(output)
	assert.Equal(t, output+".stamp", s.Path())

	st, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, st)

	want := &Stamp{
		Header:    "/ndk/include/GLES3/gl31.h",
		SHA256:    "abc123",
		Includes:  []string{"/ndk/include"},
		Settings:  "package=gles ldflags=-lGLESv3",
		Generated: "2024-01-02T03:04:05Z",
	}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadInvalid(t *testing.T) {
	output := filepath.Join(t.TempDir(), "bindings.go")
	require.NoError(t, os.WriteFile(output+Suffix, []byte("header = ["), 0644))

	_, err := New(output).Load()
	assert.Error(t, err)
}

func TestMatches(t *testing.T) {
	recorded := &Stamp{
		Header:    "/a/gl.h",
		SHA256:    "1",
		Includes:  []string{"/a", "temp"},
		Settings:  "package=gles",
		Generated: "2024-01-02T03:04:05Z",
	}

	same := func(edit func(s *Stamp)) *Stamp {
		s := &Stamp{
			Header:   "/a/gl.h",
			SHA256:   "1",
			Includes: []string{"/a", "temp"},
			Settings: "package=gles",
		}
		edit(s)
		return s
	}

	tests := []struct {
		name string
		want *Stamp
		ok   bool
	}{
		{"same inputs", same(func(s *Stamp) {}), true},
		{"hash changed", same(func(s *Stamp) { s.SHA256 = "2" }), false},
		{"header moved", same(func(s *Stamp) { s.Header = "/b/gl.h" }), false},
		{"include dirs reordered", same(func(s *Stamp) { s.Includes = []string{"temp", "/a"} }), false},
		{"include dir added", same(func(s *Stamp) { s.Includes = append(s.Includes, "/b") }), false},
		{"settings changed", same(func(s *Stamp) { s.Settings = "package=gl" }), false},
		{"nothing to compare", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, recorded.Matches(tt.want))
		})
	}

	var missing *Stamp
	assert.False(t, missing.Matches(recorded))
}

func TestMatchesAfterRoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "bindings.go"))
	recorded := &Stamp{Header: "/a/gl.h", SHA256: "1", Settings: "package=gles"}
	require.NoError(t, s.Save(recorded))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.True(t, loaded.Matches(&Stamp{Header: "/a/gl.h", SHA256: "1", Settings: "package=gles"}))
}

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gl.h")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0644))

	sum, err := HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", sum)

	_, err = HashFile(filepath.Join(t.TempDir(), "missing.h"))
	assert.Error(t, err)
}
