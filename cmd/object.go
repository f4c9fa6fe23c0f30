package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	dirFlag string
	keyFlag string
)

// objectCmd represents the object command
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Manage objects",
}

var objectUploadCmd = &cobra.Command{
	Use:   "upload <bucket> <file>",
	Short: "Upload a local file",
	Long:  `Uploads <dir>/<file> to the bucket. The key defaults to the file name.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		bucket, file := args[0], args[1]
		key := keyFlag
		if key == "" {
			key = filepath.Base(file)
		}
		if err := rt.service.UploadFile(cmd.Context(), bucket, file, dirFlag, key); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s to %s/%s\n", filepath.Join(dirFlag, file), bucket, key)
		return nil
	},
}

var objectDownloadCmd = &cobra.Command{
	Use:   "download <bucket> <key> [file]",
	Short: "Download an object to a local file",
	Long:  `Downloads the object into <dir>/<file>. The file name defaults to the last path segment of the key.`,
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		bucket, key := args[0], args[1]
		file := filepath.Base(key)
		if len(args) == 3 {
			file = args[2]
		}
		if err := rt.service.DownloadFile(cmd.Context(), bucket, file, dirFlag, key); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "downloaded %s/%s to %s\n", bucket, key, filepath.Join(dirFlag, file))
		return nil
	},
}

var objectDeleteCmd = &cobra.Command{
	Use:   "delete <bucket> <key>",
	Short: "Delete an object (absent keys are ignored)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		return rt.service.DeleteFile(cmd.Context(), args[0], args[1])
	},
}

var objectCopyCmd = &cobra.Command{
	Use:   "copy <src-bucket> <src-key> <dst-bucket> [dst-key]",
	Short: "Copy an object between buckets",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		dstKey := args[1]
		if len(args) == 4 {
			dstKey = args[3]
		}
		return rt.service.CopyFile(cmd.Context(), args[0], args[2], args[1], dstKey)
	},
}

var objectPresignCmd = &cobra.Command{
	Use:   "presign <bucket> <key>",
	Short: "Print a temporary GET URL for an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		presigned, err := rt.service.CreatePresignedURL(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), presigned.URL)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(objectCmd)
	objectCmd.AddCommand(objectUploadCmd, objectDownloadCmd, objectDeleteCmd, objectCopyCmd, objectPresignCmd)

	objectUploadCmd.Flags().StringVarP(&dirFlag, "dir", "d", ".", "Local directory containing the file")
	objectUploadCmd.Flags().StringVarP(&keyFlag, "key", "k", "", "Object key (default: file name)")
	objectDownloadCmd.Flags().StringVarP(&dirFlag, "dir", "d", ".", "Local directory to write into")
}
