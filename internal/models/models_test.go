package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestManifestKeepsDocumentOrder(t *testing.T) {
	doc := `
zlib: "1.2.13"
numpy: 1.10
ert: v2.38.0
libres: 3
`
	var m Manifest
	require.NoError(t, yaml.Unmarshal([]byte(doc), &m))

	entries := m.Entries()
	require.Len(t, entries, 4)

	assert.Equal(t, Entry{Package: "zlib", Version: StringVersion("1.2.13")}, entries[0])
	assert.Equal(t, Entry{Package: "numpy", Version: NumericVersion("1.10")}, entries[1])
	assert.Equal(t, Entry{Package: "ert", Version: StringVersion("v2.38.0")}, entries[2])
	assert.Equal(t, Entry{Package: "libres", Version: NumericVersion("3")}, entries[3])

	assert.True(t, m.Has("numpy"))
	assert.False(t, m.Has("scipy"))
	assert.Equal(t, 4, m.Len())
}

func TestManifestNullVersionIsAbsent(t *testing.T) {
	var m Manifest
	require.NoError(t, yaml.Unmarshal([]byte("foo:\n"), &m))

	ver, ok := m.Lookup("foo")
	require.True(t, ok)
	assert.True(t, ver.IsZero())
}

func TestManifestRejectsDuplicatePackages(t *testing.T) {
	var m Manifest
	err := yaml.Unmarshal([]byte("foo: 1.0.0\nfoo: 2.0.0\n"), &m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "foo selected more than once")

	_, err = NewManifest(Entry{Package: "a"}, Entry{Package: "a"})
	assert.Error(t, err)
}

func TestManifestRejectsNonMapping(t *testing.T) {
	var m Manifest
	assert.Error(t, yaml.Unmarshal([]byte("- foo\n- bar\n"), &m))
	assert.Error(t, yaml.Unmarshal([]byte("foo: [1, 2]\n"), &m))
}

func TestRepositoryDecodesKeyPresence(t *testing.T) {
	doc := `
foo:
  1.0.0:
    maintainer: alice
    depends:
      - bar
      - baz
    source: pypi
  1.10:
    maintainer:
bar:
  2.0.0:
    make: sh
  3.0.0:
    depends: []
`
	var repo Repository
	require.NoError(t, yaml.Unmarshal([]byte(doc), &repo))

	rel, ok := repo.Release("foo", StringVersion("1.0.0"))
	require.True(t, ok)
	assert.Equal(t, Release{Maintainer: "alice", HasMaintainer: true, Depends: []string{"bar", "baz"}, HasDepends: true}, rel)

	// numeric keys are looked up by their literal text
	rel, ok = repo.Release("foo", NumericVersion("1.10"))
	require.True(t, ok)
	assert.True(t, rel.HasMaintainer)
	assert.Empty(t, rel.Maintainer)

	rel, ok = repo.Release("bar", StringVersion("2.0.0"))
	require.True(t, ok)
	assert.False(t, rel.HasMaintainer)
	assert.False(t, rel.HasDepends)

	rel, ok = repo.Release("bar", StringVersion("3.0.0"))
	require.True(t, ok)
	assert.True(t, rel.HasDepends)
	assert.Empty(t, rel.Depends)

	_, ok = repo.Release("bar", Version{})
	assert.False(t, ok)
	assert.False(t, repo.HasPackage("baz"))
}

func TestErrorKindMessages(t *testing.T) {
	assert.Equal(t, "missing package", MissingPackage.String())
	assert.Equal(t, "dangerous version (float interpretable)", FloatVersion.String())
	assert.Equal(t, "", ErrNone.String())
	assert.False(t, Passed("foo", StringVersion("1.0.0"), "alice").Failed())
	assert.True(t, PackageMissing("foo").Failed())
}

func TestKomodoErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("loading: %w", &KomodoError{Type: ErrDecode, Path: "repo.yml", Err: cause})

	var komodoErr *KomodoError
	require.True(t, errors.As(err, &komodoErr))
	assert.Equal(t, ErrDecode, komodoErr.Type)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[Decode] repo.yml: boom", komodoErr.Error())

	lintErr := &KomodoError{Type: ErrLintFailed, Err: errors.New("error in komodo configuration")}
	assert.Equal(t, "[LintFailed] error in komodo configuration", lintErr.Error())
}
