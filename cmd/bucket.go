package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recursiveFlag bool

// bucketCmd represents the bucket command
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Manage buckets",
}

var bucketCreateCmd = &cobra.Command{
	Use:   "create <bucket>",
	Short: "Create a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if err := rt.service.CreateBucket(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", args[0])
		return nil
	},
}

var bucketDeleteCmd = &cobra.Command{
	Use:   "delete <bucket>",
	Short: "Delete a bucket",
	Long:  `Deletes an empty bucket. With --recursive every key is deleted first; the bucket is kept if any key could not be deleted.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if recursiveFlag {
			err = rt.service.DeleteBucketRecursive(cmd.Context(), args[0])
		} else {
			err = rt.service.DeleteBucket(cmd.Context(), args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

var bucketBlockCmd = &cobra.Command{
	Use:   "block-public <bucket>",
	Short: "Block all public access to a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		return rt.service.BlockPublicAccess(cmd.Context(), args[0])
	},
}

var bucketListCmd = &cobra.Command{
	Use:   "list <bucket>",
	Short: "List every key in a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		keys, err := rt.service.ListFiles(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}

var bucketExistsCmd = &cobra.Command{
	Use:   "exists <bucket>",
	Short: "Report whether a bucket exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		ok, err := rt.service.BucketExists(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ok)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(bucketCmd)
	bucketCmd.AddCommand(bucketCreateCmd, bucketDeleteCmd, bucketBlockCmd, bucketListCmd, bucketExistsCmd)

	bucketDeleteCmd.Flags().BoolVarP(&recursiveFlag, "recursive", "r", false, "Delete every key before deleting the bucket")
}
