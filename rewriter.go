package restyle

import (
	"context"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Config holds rewrite configuration
type Config struct {
	Path     string // File to rewrite
	Glob     bool   // Treat Path as a doublestar pattern matching exactly one file
	Encoding string // Text encoding label (default: utf-8)
	DryRun   bool   // Compute the result without writing the file
	Rules    []Rule // Rules to apply in order; nil selects DefaultRules
}

// Result describes one rewrite run
type Result struct {
	Path     string // Resolved file path
	Encoding string // Canonical encoding name
	Original string // Buffer as loaded
	Final    string // Buffer after all rules
	Modified bool   // Final differs from Original
	DryRun   bool
	Written  bool // The file was overwritten
}

// Load reads the whole file at path and decodes it with the named encoding.
func Load(path, encodingLabel string) (string, error) {
	te, err := lookupEncoding(encodingLabel)
	if err != nil {
		return "", err
	}
	return load(path, te)
}

func load(path string, te textEncoding) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WithStack(&IOError{Op: "read", Path: path, Err: err})
	}

	text, err := te.decode(data)
	if err != nil {
		return "", errors.WithStack(&EncodingError{Encoding: te.name, Path: path, Err: err})
	}
	return text, nil
}

// Persist overwrites the file at path with buf, encoded with the named
// encoding. The whole buffer is written in one call; an existing file keeps
// its permission bits.
func Persist(path, buf, encodingLabel string) error {
	te, err := lookupEncoding(encodingLabel)
	if err != nil {
		return err
	}
	return persist(path, buf, te)
}

func persist(path, buf string, te textEncoding) error {
	data, err := te.encode(buf)
	if err != nil {
		return errors.WithStack(&EncodingError{Encoding: te.name, Path: path, Err: err})
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, data, mode); err != nil {
		return errors.WithStack(&IOError{Op: "write", Path: path, Err: err})
	}
	return nil
}

// Rewrite is the main entry point: resolve, load, transform, persist.
//
// The file is written back even when the buffer is unchanged, so an
// unwritable target fails the same way whether or not a rule matched.
// Nothing is written when the run fails before the persist step or when
// config.DryRun is set. The logger is taken from ctx (zerolog.Ctx).
func Rewrite(ctx context.Context, config Config) (*Result, error) {
	log := zerolog.Ctx(ctx)

	rules := config.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}

	te, err := lookupEncoding(config.Encoding)
	if err != nil {
		return nil, err
	}

	path, err := ResolveTarget(config.Path, config.Glob)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Str("encoding", te.name).Int("rules", len(rules)).Msg("rewriting")

	original, err := load(path, te)
	if err != nil {
		return nil, err
	}

	final := Transform(original, rules)
	result := &Result{
		Path:     path,
		Encoding: te.name,
		Original: original,
		Final:    final,
		Modified: Report(original, final),
		DryRun:   config.DryRun,
	}
	log.Debug().Int("bytes_before", len(original)).Int("bytes_after", len(final)).Bool("modified", result.Modified).Msg("transformed")

	if config.DryRun {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := persist(path, final, te); err != nil {
		return nil, err
	}
	result.Written = true
	log.Debug().Str("path", path).Msg("written")

	return result, nil
}
