// Package loader reads komodo manifest and repository files.
package loader

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/ralt/komodo-lint/internal/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ReadFile reads path without decompressing it
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.KomodoError{Type: models.ErrFileOp, Path: path, Err: err}
	}

	sum := sha256.Sum256(data)
	logrus.Debugf("Read %s (%d bytes, sha256 %s)", path, len(data), hex.EncodeToString(sum[:]))
	return data, nil
}

// LoadManifest reads and decodes the manifest at path
func LoadManifest(path string) (*models.Manifest, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeManifest(path, data)
}

// LoadRepository reads and decodes the repository at path
func LoadRepository(path string) (models.Repository, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeRepository(path, data)
}

// DecodeManifest decodes raw, possibly compressed, manifest data read from path
func DecodeManifest(path string, raw []byte) (*models.Manifest, error) {
	manifest := &models.Manifest{}
	if err := decode(path, raw, manifest); err != nil {
		return nil, err
	}

	logrus.Infof("Loaded manifest %s with %d packages", path, manifest.Len())
	return manifest, nil
}

// DecodeRepository decodes raw, possibly compressed, repository data read
// from path
func DecodeRepository(path string, raw []byte) (models.Repository, error) {
	repo := models.Repository{}
	if err := decode(path, raw, &repo); err != nil {
		return nil, err
	}
	if repo == nil {
		repo = models.Repository{}
	}

	logrus.Infof("Loaded repository %s with %d packages", path, len(repo))
	return repo, nil
}

func decode(path string, raw []byte, out interface{}) error {
	data, err := Decompress(path, raw)
	if err != nil {
		return &models.KomodoError{Type: models.ErrDecompress, Path: path, Err: err}
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return &models.KomodoError{
			Type: models.ErrDecode,
			Path: path,
			Err:  fmt.Errorf("failed to parse YAML: %w", err),
		}
	}
	return nil
}
