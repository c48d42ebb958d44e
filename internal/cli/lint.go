package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/ralt/komodo-lint/internal/lint"
	"github.com/ralt/komodo-lint/internal/loader"
	"github.com/ralt/komodo-lint/internal/models"
	"github.com/ralt/komodo-lint/internal/report"
	"github.com/ralt/komodo-lint/internal/verify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrConfiguration is returned when the komodo setup has lint errors
var ErrConfiguration = errors.New("error in komodo configuration")

func validateConfig(config *models.LintConfig) error {
	if config.ManifestPath == "" {
		return &models.KomodoError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("PKGFILE is required"),
		}
	}

	if config.RepositoryPath == "" {
		return &models.KomodoError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("REPOFILE is required"),
		}
	}

	if config.SignaturePath != "" && config.KeyringPath == "" {
		return &models.KomodoError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("--signature requires --keyring"),
		}
	}

	// Default the signature next to the repository file
	if config.KeyringPath != "" && config.SignaturePath == "" {
		config.SignaturePath = config.RepositoryPath + ".asc"
	}

	return nil
}

func runLint(cmd *cobra.Command, config *models.LintConfig) error {
	// Step 1: Load the manifest
	manifest, err := loader.LoadManifest(config.ManifestPath)
	if err != nil {
		return err
	}

	// Step 2: Load the repository, checking its signature first
	rawRepo, err := loader.ReadFile(config.RepositoryPath)
	if err != nil {
		return err
	}

	if config.KeyringPath != "" {
		if err := verifyRepository(config, rawRepo); err != nil {
			return err
		}
	}

	repo, err := loader.DecodeRepository(config.RepositoryPath, rawRepo)
	if err != nil {
		return err
	}

	// Step 3: Lint
	result := lint.New(lint.WithLogger(logrus.StandardLogger())).Lint(manifest, repo)

	// Step 4: Report
	out := cmd.OutOrStdout()
	if config.Quiet && result.OK() {
		out = io.Discard
	}

	failed, err := report.Write(out, result)
	if err != nil {
		return &models.KomodoError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to write report: %w", err),
		}
	}

	if failed {
		return &models.KomodoError{Type: models.ErrLintFailed, Err: ErrConfiguration}
	}
	return nil
}

func verifyRepository(config *models.LintConfig, rawRepo []byte) error {
	v, err := verify.NewKeyringVerifier(config.KeyringPath)
	if err != nil {
		return &models.KomodoError{Type: models.ErrSignature, Path: config.KeyringPath, Err: err}
	}

	sig, err := loader.ReadFile(config.SignaturePath)
	if err != nil {
		return err
	}

	signer, err := v.VerifyDetached(rawRepo, sig)
	if err != nil {
		return &models.KomodoError{Type: models.ErrSignature, Path: config.RepositoryPath, Err: err}
	}

	logrus.Infof("Repository %s signed by %s", config.RepositoryPath, signer)
	return nil
}
