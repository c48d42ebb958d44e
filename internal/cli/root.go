package cli

import (
	"github.com/ralt/komodo-lint/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var config models.LintConfig

	rootCmd := &cobra.Command{
		Use:   "komodo-lint PKGFILE REPOFILE",
		Short: "Lint a komodo setup",
		Long: `komodo-lint checks that every package selected in PKGFILE exists in
REPOFILE at the selected version, has a maintainer and a strict
MAJOR.MINOR.PATCH version number, and that all of its dependencies are
selected as well.

Both files are YAML and may be gzip, zstd or xz compressed.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config.ManifestPath = args[0]
			config.RepositoryPath = args[1]

			if err := validateConfig(&config); err != nil {
				return err
			}

			logrus.Debugf("Configuration: %+v", config)
			return runLint(cmd, &config)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Massive amount of outputs")

	rootCmd.Flags().StringVarP(&config.KeyringPath, "keyring", "k", "", "Verify REPOFILE against this OpenPGP public keyring")
	rootCmd.Flags().StringVar(&config.SignaturePath, "signature", "", "Detached signature of REPOFILE (defaults to REPOFILE.asc)")
	rootCmd.Flags().BoolVarP(&config.Quiet, "quiet", "q", false, "Print nothing when no errors are found")

	return rootCmd
}
