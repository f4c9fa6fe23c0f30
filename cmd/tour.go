package cmd

import (
	"storage-facade/feature/tour"

	"github.com/spf13/cobra"
)

var tourFlags tour.Config

// tourCmd represents the tour command
var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Run every storage operation against a transient bucket",
	Long: `Creates a transient bucket, blocks public access, uploads a local file, copies a
file from the primary bucket, lists, downloads, presigns and finally deletes
everything it created. Failed steps are reported and the tour keeps going; the
command exits non-zero if any step failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		cfg := mergeTourConfig(rt.cfg.Tour, tourFlags)
		report := tour.NewRunner(rt.service, cfg, cmd.OutOrStdout(), rt.logger).Run(cmd.Context())
		return report.Err()
	},
}

// mergeTourConfig overrides base with every non-empty flag value.
func mergeTourConfig(base, flags tour.Config) tour.Config {
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&base.PrimaryBucket, flags.PrimaryBucket)
	override(&base.TransientBucket, flags.TransientBucket)
	override(&base.UploadDir, flags.UploadDir)
	override(&base.DownloadDir, flags.DownloadDir)
	override(&base.UploadFile, flags.UploadFile)
	override(&base.CopyFile, flags.CopyFile)
	return base
}

func init() {
	RootCmd.AddCommand(tourCmd)

	f := tourCmd.Flags()
	f.StringVar(&tourFlags.PrimaryBucket, "primary", "", "Existing bucket holding the file to copy")
	f.StringVar(&tourFlags.TransientBucket, "bucket", "", "Transient bucket name (default tour-<random>)")
	f.StringVar(&tourFlags.UploadDir, "upload-dir", "", "Directory containing the file to upload")
	f.StringVar(&tourFlags.DownloadDir, "download-dir", "", "Directory to download into")
	f.StringVar(&tourFlags.UploadFile, "upload-file", "", "File to upload")
	f.StringVar(&tourFlags.CopyFile, "copy-file", "", "File to copy from the primary bucket and download")
}
