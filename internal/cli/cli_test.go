package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
	"github.com/ralt/komodo-lint/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const repositoryYAML = `
foo:
  1.0.0:
    maintainer: alice
    depends:
      - bar
      - baz
bar:
  2.0.0:
    maintainer: bob
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLintNoErrors(t *testing.T) {
	dir := t.TempDir()
	pkgs := writeFile(t, dir, "pkgs.yml", "bar: 2.0.0\n")
	repo := writeFile(t, dir, "repository.yml", repositoryYAML)

	out, err := execute(t, pkgs, repo)

	require.NoError(t, err)
	assert.Equal(t, "1 packages\nNo errors found\n", out)
}

func TestLintReportsErrors(t *testing.T) {
	dir := t.TempDir()
	pkgs := writeFile(t, dir, "pkgs.yml", "foo: 1.0.0\nbar: 2.0.0\nqux: 1.10\n")
	repo := writeFile(t, dir, "repository.yml", repositoryYAML)

	out, err := execute(t, pkgs, repo)

	require.Error(t, err)
	var komodoErr *models.KomodoError
	require.True(t, errors.As(err, &komodoErr))
	assert.Equal(t, models.ErrLintFailed, komodoErr.Type)
	assert.ErrorIs(t, err, ErrConfiguration)

	assert.Equal(t, "3 packages\n"+
		"missing package for qux \n"+
		"missing dependency for foo 1.0.0: baz\n"+
		"dangerous version (float interpretable) for qux 1.10\n"+
		"malformed version for qux 1.10\n", out)
}

func TestLintQuiet(t *testing.T) {
	dir := t.TempDir()
	pkgs := writeFile(t, dir, "pkgs.yml", "bar: 2.0.0\n")
	repo := writeFile(t, dir, "repository.yml", repositoryYAML)

	out, err := execute(t, "--quiet", pkgs, repo)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLintArgumentErrors(t *testing.T) {
	dir := t.TempDir()
	pkgs := writeFile(t, dir, "pkgs.yml", "bar: 2.0.0\n")

	_, err := execute(t, pkgs)
	assert.Error(t, err, "REPOFILE is required")

	_, err = execute(t, pkgs, filepath.Join(dir, "missing.yml"))
	var komodoErr *models.KomodoError
	require.True(t, errors.As(err, &komodoErr))
	assert.Equal(t, models.ErrFileOp, komodoErr.Type)

	_, err = execute(t, "--signature", "repo.asc", pkgs, pkgs)
	require.True(t, errors.As(err, &komodoErr))
	assert.Equal(t, models.ErrInvalidConfig, komodoErr.Type)
}

func TestLintVerifiesRepositorySignature(t *testing.T) {
	dir := t.TempDir()
	config := &packet.Config{Algorithm: packet.PubKeyAlgoEdDSA}

	entity, err := openpgp.NewEntity("Komodo", "", "komodo@example.com", config)
	require.NoError(t, err)

	var key bytes.Buffer
	w, err := armor.Encode(&key, openpgp.PublicKeyType, nil)
	require.NoError(t, err)
	require.NoError(t, entity.Serialize(w))
	require.NoError(t, w.Close())
	keyring := writeFile(t, dir, "keyring.asc", key.String())

	var sig bytes.Buffer
	require.NoError(t, openpgp.ArmoredDetachSign(&sig, entity, bytes.NewReader([]byte(repositoryYAML)), config))

	pkgs := writeFile(t, dir, "pkgs.yml", "bar: 2.0.0\n")
	repo := writeFile(t, dir, "repository.yml", repositoryYAML)
	writeFile(t, dir, "repository.yml.asc", sig.String())

	out, err := execute(t, "--keyring", keyring, pkgs, repo)
	require.NoError(t, err)
	assert.Contains(t, out, "No errors found")

	// A modified repository no longer matches its signature
	writeFile(t, dir, "repository.yml", repositoryYAML+"baz:\n  1.0.0: {}\n")
	_, err = execute(t, "--keyring", keyring, pkgs, repo)

	var komodoErr *models.KomodoError
	require.True(t, errors.As(err, &komodoErr))
	assert.Equal(t, models.ErrSignature, komodoErr.Type)
}
