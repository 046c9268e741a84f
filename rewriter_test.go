package restyle

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRewrite(t *testing.T) {
	path := writeFile(t, t.TempDir(), "PatientDetailClient.tsx",
		`<div className="rounded-3xl shadow-2xl font-black">X</div>`)

	result, err := Rewrite(context.Background(), Config{Path: path})
	require.NoError(t, err)

	assert.True(t, result.Modified)
	assert.True(t, result.Written)
	assert.False(t, result.DryRun)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, "utf-8", result.Encoding)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `<div className="rounded-2xl shadow-sm font-medium">X</div>`, string(data))
	assert.Equal(t, result.Final, string(data))
}

func TestRewritePreservesFileMode(t *testing.T) {
	path := writeFile(t, t.TempDir(), "page.tsx", "font-black")
	require.NoError(t, os.Chmod(path, 0o600))

	_, err := Rewrite(context.Background(), Config{Path: path})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRewriteDryRun(t *testing.T) {
	original := `<p className="italic">x</p>`
	path := writeFile(t, t.TempDir(), "page.tsx", original)

	result, err := Rewrite(context.Background(), Config{Path: path, DryRun: true})
	require.NoError(t, err)

	assert.True(t, result.Modified)
	assert.False(t, result.Written)
	assert.Equal(t, `<p className="">x</p>`, result.Final)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestRewriteUnchanged(t *testing.T) {
	original := "<p className=\"text-sm\">x</p>\n"
	path := writeFile(t, t.TempDir(), "page.tsx", original)

	result, err := Rewrite(context.Background(), Config{Path: path})
	require.NoError(t, err)

	assert.False(t, result.Modified)
	assert.True(t, result.Written)
	assert.Equal(t, original, result.Final)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestRewriteUnchangedStillWrites(t *testing.T) {
	path := writeFile(t, t.TempDir(), "page.tsx", "text-sm")
	old := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, old, old))

	result, err := Rewrite(context.Background(), Config{Path: path})
	require.NoError(t, err)
	assert.False(t, result.Modified)
	assert.True(t, result.Written)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().After(old), "mtime %s", info.ModTime())
}

func TestRewriteCustomRules(t *testing.T) {
	path := writeFile(t, t.TempDir(), "page.tsx", "a b")

	result, err := Rewrite(context.Background(), Config{
		Path:  path,
		Rules: []Rule{Literal{Old: "a", New: "b"}, Literal{Old: "b", New: "c"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "c c", result.Final)
}

func TestRewriteInvalidRules(t *testing.T) {
	path := writeFile(t, t.TempDir(), "page.tsx", "a")

	_, err := Rewrite(context.Background(), Config{Path: path, Rules: []Rule{Literal{}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRule))
}

func TestRewriteMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.tsx")

	_, err := Rewrite(context.Background(), Config{Path: path})
	require.Error(t, err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Op)
	assert.Equal(t, path, ioErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRewriteMissingDynamicSegment(t *testing.T) {
	t.Run("no sibling", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pacientes", "[id]", "PatientDetailClient.tsx")

		_, err := Rewrite(context.Background(), Config{Path: path})
		require.Error(t, err)

		var ioErr *IOError
		require.True(t, errors.As(err, &ioErr), "got %v", err)
		assert.Equal(t, "read", ioErr.Op)
		assert.Equal(t, path, ioErr.Path)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("sibling is left alone", func(t *testing.T) {
		dir := t.TempDir()
		sibling := writeFile(t, dir, "pacientes/i/PatientDetailClient.tsx", "font-black")
		path := filepath.Join(dir, "pacientes", "[id]", "PatientDetailClient.tsx")

		_, err := Rewrite(context.Background(), Config{Path: path})
		require.Error(t, err)

		var ioErr *IOError
		require.True(t, errors.As(err, &ioErr), "got %v", err)
		assert.Equal(t, "read", ioErr.Op)
		assert.True(t, errors.Is(err, os.ErrNotExist))

		data, err := os.ReadFile(sibling)
		require.NoError(t, err)
		assert.Equal(t, "font-black", string(data))
	})
}

func TestRewriteUnknownEncodingTouchesNothing(t *testing.T) {
	path := writeFile(t, t.TempDir(), "page.tsx", "font-black")

	_, err := Rewrite(context.Background(), Config{Path: path, Encoding: "klingon-8"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEncoding))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "font-black", string(data))
}

func TestRewriteInvalidUTF8(t *testing.T) {
	path := writeFile(t, t.TempDir(), "page.tsx", "caf\xe9 font-black")

	_, err := Rewrite(context.Background(), Config{Path: path})
	require.Error(t, err)

	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, "utf-8", encErr.Encoding)
}

func TestRewriteWindows1252(t *testing.T) {
	path := writeFile(t, t.TempDir(), "page.tsx", "caf\xe9 font-black")

	result, err := Rewrite(context.Background(), Config{Path: path, Encoding: "windows-1252"})
	require.NoError(t, err)
	assert.Equal(t, "café font-medium", result.Final)
	assert.Equal(t, "windows-1252", result.Encoding)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("caf\xe9 font-medium"), data)
}

func TestRewriteCanceledContextDoesNotWrite(t *testing.T) {
	path := writeFile(t, t.TempDir(), "page.tsx", "font-black")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Rewrite(ctx, Config{Path: path})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "font-black", string(data))
}

func TestRewriteGlobTarget(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app/pacientes/[id]/PatientDetailClient.tsx", "shadow-2xl")

	result, err := Rewrite(context.Background(), Config{
		Path: filepath.Join(dir, "app", "**", "PatientDetailClient.tsx"),
		Glob: true,
	})
	require.NoError(t, err)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, "shadow-sm", result.Final)
}

func TestRewriteLogsToContextLogger(t *testing.T) {
	path := writeFile(t, t.TempDir(), "page.tsx", "font-black")

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logger.WithContext(context.Background())

	_, err := Rewrite(ctx, Config{Path: path})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"message":"rewriting"`)
	assert.Contains(t, buf.String(), `"message":"written"`)
}

func TestLoadAndPersist(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.tsx", "hola")

	text, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "hola", text)

	require.NoError(t, Persist(path, "adiós", "utf-8"))
	text, err = Load(path, "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "adiós", text)
}

func TestPersistWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "page.tsx")

	err := Persist(path, "x", "utf-8")
	require.Error(t, err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)
}

func TestPersistUnrepresentableText(t *testing.T) {
	path := writeFile(t, t.TempDir(), "page.tsx", "")

	err := Persist(path, "日本語", "windows-1252")
	require.Error(t, err)

	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
}

func TestLookupEncoding(t *testing.T) {
	tests := []struct {
		label   string
		want    string
		wantErr bool
	}{
		{label: "", want: "utf-8"},
		{label: "UTF-8", want: "utf-8"},
		{label: "utf8", want: "utf-8"},
		{label: " windows-1252 ", want: "windows-1252"},
		{label: "shift_jis", want: "shift_jis"},
		{label: "nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			te, err := lookupEncoding(tt.label)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownEncoding))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, te.name)
		})
	}
}
