// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"brewkit/cli/internal/errors"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	uploadBucket string
	uploadName   string
)

// uploadCmd represents the upload command for pushing local files into a
// storage bucket. Object names are suffixed with a short unique id by
// default so repeated uploads of the same file never clobber each other.
var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a local file to a storage bucket",
	Long: `The upload command pushes a local file into a backend storage bucket and
prints the public URL of the stored object.

By default the object is stored under its base filename with a short
unique suffix, so uploading logo.png twice produces two distinct objects.
Use --name to pin an exact object name instead.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		localPath := args[0]

		f, err := os.Open(localPath)
		if err != nil {
			return errors.Wrap(errors.StorageFailed, "open file", err)
		}
		defer f.Close()

		objectName := uploadName
		if objectName == "" {
			base := filepath.Base(localPath)
			ext := filepath.Ext(base)
			stem := strings.TrimSuffix(base, ext)
			objectName = fmt.Sprintf("%s-%s%s", stem, uuid.NewString()[:8], ext)
		}

		client, err := newClient(false)
		if err != nil {
			return err
		}

		bucket := client.Bucket(uploadBucket)
		res := bucket.Upload(cmd.Context(), objectName, filepath.Base(localPath), f)
		if res.Error != nil {
			return errors.Wrap(errors.StorageFailed, "upload failed", res.Error)
		}

		pterm.Success.Printf("Uploaded %s\n", objectName)
		pterm.Printf("Public URL: %s\n", bucket.PublicURL(objectName))
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadBucket, "bucket", "cms-assets", "Target storage bucket")
	uploadCmd.Flags().StringVar(&uploadName, "name", "", "Exact object name (overrides the unique suffix)")
	rootCmd.AddCommand(uploadCmd)
}
