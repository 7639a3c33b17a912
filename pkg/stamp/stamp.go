// pkg/stamp/stamp.go
package stamp

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// Suffix is appended to the output path to name its stamp file
const Suffix = ".stamp"

// Stamp records the inputs a binding file was generated from
type Stamp struct {
	Header    string   `toml:"header"`
	SHA256    string   `toml:"sha256"`
	Includes  []string `toml:"includes"`
	Settings  string   `toml:"settings"`
	Generated string   `toml:"generated"`
}

// Store reads and writes the stamp for one output file
type Store struct {
	path string
}

// New creates a Store for the binding file at output
func New(output string) *Store {
	return &Store{
		path: output + Suffix,
	}
}

// Path returns the stamp file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the stamp. A missing stamp returns nil without error.
func (s *Store) Load() (*Stamp, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stamp: reading %s: %w", s.path, err)
	}

	var st Stamp
	if _, err := toml.Decode(string(data), &st); err != nil {
		return nil, fmt.Errorf("stamp: failed to parse %s: %w", s.path, err)
	}

	return &st, nil
}

// Save writes the stamp, replacing any previous one
func (s *Store) Save(st *Stamp) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(st); err != nil {
		return fmt.Errorf("stamp: encoding: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("stamp: creating directory: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("stamp: writing %s: %w", s.path, err)
	}

	return nil
}

// Matches reports whether st was recorded for the same inputs as want.
// The generation time is ignored.
func (st *Stamp) Matches(want *Stamp) bool {
	if st == nil || want == nil {
		return false
	}
	return st.Header == want.Header &&
		st.SHA256 == want.SHA256 &&
		slices.Equal(st.Includes, want.Includes) &&
		st.Settings == want.Settings
}

// HashFile returns the hex SHA-256 of the file at path
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
