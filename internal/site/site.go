package site

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// ErrRejected reports a static path that resolved outside the static root or
// onto something that is not a regular file.
var ErrRejected = errors.New("site: path rejected")

// Site locates and reads the HTML templates and static assets served by the
// web process. Both roots are fixed to canonical absolute form at
// construction so traversal checks compare like with like.
type Site struct {
	templatesDir string
	staticDir    string
}

// New resolves both root directories. The directories do not have to exist
// yet; resolution is lexical, with symlinks followed when present.
func New(templatesDir, staticDir string) (*Site, error) {
	t, err := canonical(templatesDir)
	if err != nil {
		return nil, fmt.Errorf("resolve templates dir: %w", err)
	}
	s, err := canonical(staticDir)
	if err != nil {
		return nil, fmt.Errorf("resolve static dir: %w", err)
	}
	return &Site{templatesDir: t, staticDir: s}, nil
}

func canonical(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// Page reads a named template (index.html, message.html, error.html) fully
// into memory. It is only ever called with fixed names, never request input.
func (s *Site) Page(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.templatesDir, name))
}

// ResolveStatic maps a path relative to the static mount onto a file under
// the static root. Anything that escapes the root after canonicalization
// (".." segments or symlinks pointing out) is rejected, as is anything that
// is not a regular file. Pure aside from the filesystem existence check.
func (s *Site) ResolveStatic(rel string) (string, error) {
	joined := filepath.Join(s.staticDir, filepath.FromSlash(rel))

	resolved, err := filepath.EvalSymlinks(joined)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRejected, rel)
	}
	if resolved != s.staticDir && !strings.HasPrefix(resolved, s.staticDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s escapes static root", ErrRejected, rel)
	}

	info, err := os.Stat(resolved)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", ErrRejected, rel)
	}
	return resolved, nil
}

// ReadStatic resolves rel and reads the file, returning its bytes and a
// content type guessed from the extension (generic binary when unknown).
func (s *Site) ReadStatic(rel string) ([]byte, string, error) {
	path, err := s.ResolveStatic(rel)
	if err != nil {
		return nil, "", err
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return body, ContentTypeFor(path), nil
}

// FaviconPath returns the favicon location and whether a regular file exists
// there. The favicon is looked up by its fixed name only: unlike the static
// mount it carries no request-supplied path, so it skips the resolver.
func (s *Site) FaviconPath() (string, bool) {
	p := filepath.Join(s.staticDir, "favicon.ico")
	info, err := os.Stat(p)
	return p, err == nil && info.Mode().IsRegular()
}

// ContentTypeFor guesses a content type from the file extension, falling back
// to application/octet-stream for unrecognized extensions.
func ContentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
