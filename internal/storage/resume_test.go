package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAllowedExtension(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"resume.doc", true},
		{"resume.docx", true},
		{"payload.exe", false},
		{"resume.pdf.exe", false},
		{"noextension", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := AllowedExtension(tc.name); got != tc.ok {
			t.Errorf("AllowedExtension(%q) = %v, want %v", tc.name, got, tc.ok)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\evil.pdf", "evil.pdf"},
		{"my resume (final).pdf", "my_resume__final_.pdf"},
		{"...", ""},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSaveNeverCollides(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	first, err := s.Save("resume.pdf", strings.NewReader("applicant one"))
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := s.Save("resume.pdf", strings.NewReader("applicant two"))
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if first == second {
		t.Fatalf("identical upload names collided on %q", first)
	}

	data, err := os.ReadFile(filepath.Join(s.Dir, first))
	if err != nil {
		t.Fatalf("read first: %v", err)
	}
	if string(data) != "applicant one" {
		t.Fatalf("first upload was overwritten: %q", data)
	}
}

func TestSaveRejectsBadExtension(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := s.Save("malware.exe", strings.NewReader("MZ")); err == nil {
		t.Fatal("expected error for .exe upload")
	}
}

func TestPathRejectsTraversal(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	stored, err := s.Save("resume.pdf", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := s.Path(stored); err != nil {
		t.Fatalf("expected stored file to resolve: %v", err)
	}
	if _, err := s.Path("../" + stored); err == nil {
		t.Fatal("expected traversal name to be rejected")
	}
	if _, err := s.Path("missing.pdf"); err == nil {
		t.Fatal("expected missing file to error")
	}
}
