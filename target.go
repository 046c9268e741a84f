package restyle

import (
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// ResolveTarget turns the configured path into the single file to rewrite.
//
// Unless glob is set the path is always literal and returned unchanged, so
// Next.js segments such as "[id]" never act as character classes and a
// missing file is reported by Load. With glob set, a path naming an existing
// file is still used as-is; otherwise it is expanded with doublestar and must
// match exactly one regular file.
func ResolveTarget(path string, glob bool) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.WithStack(ErrNoTarget)
	}

	if !glob {
		return path, nil
	}

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, nil
	}

	matches, err := doublestar.FilepathGlob(path)
	if err != nil {
		return "", errors.Errorf("expanding target pattern %q: %w", path, err)
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err == nil && !info.IsDir() {
			files = append(files, match)
		}
	}

	switch len(files) {
	case 0:
		return "", errors.Errorf("%w: %q matched nothing", ErrNoTarget, path)
	case 1:
		return files[0], nil
	default:
		return "", errors.Errorf("%w: %q matched %d files (%s, ...)", ErrAmbiguousTarget, path, len(files), files[0])
	}
}
