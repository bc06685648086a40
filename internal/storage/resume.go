package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowed resume extensions, lowercase, without the dot
var allowedExtensions = map[string]struct{}{
	"pdf":  {},
	"doc":  {},
	"docx": {},
}

// AllowedExtension reports whether the filename carries an accepted resume
// extension.
func AllowedExtension(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	_, ok := allowedExtensions[ext]
	return ok
}

// SanitizeFilename strips path components and characters that have no
// business in a stored filename.
func SanitizeFilename(name string) string {
	// drop any directory part the client may have sent
	name = filepath.Base(filepath.ToSlash(name))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	cleaned := strings.Trim(b.String(), "._")
	return cleaned
}

// Store persists resume files in a single directory. Stored names carry a
// random prefix so two applicants uploading "resume.pdf" never collide.
type Store struct {
	Dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{Dir: dir}, nil
}

// Save writes the upload and returns the stored filename. The caller is
// expected to have validated the extension already; Save checks again so a
// bad file can never land on disk.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	if !AllowedExtension(filename) {
		return "", fmt.Errorf("disallowed extension: %s", filename)
	}

	cleaned := SanitizeFilename(filename)
	if cleaned == "" {
		return "", fmt.Errorf("empty filename after sanitizing")
	}

	stored := uuid.NewString() + "_" + cleaned

	f, err := os.OpenFile(filepath.Join(s.Dir, stored), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create resume file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write resume file: %w", err)
	}
	return stored, nil
}

// Path resolves a stored filename for serving. Names that would escape the
// store directory are rejected.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid resume name: %q", name)
	}
	p := filepath.Join(s.Dir, name)
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return p, nil
}
