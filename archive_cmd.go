package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var archiveFormat string

var archiveCmd = &cobra.Command{
	Use:   "archive FOLDER",
	Short: "Pack a folder into a .zip or .tar.gz archive",
	Long: `Archive packs a folder into a single archive file in the current
directory, named after the folder. Entry paths are kept relative to the
folder's parent, so extracting recreates the folder itself.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if archiveFormat != formatZip && archiveFormat != formatTar {
			return fmt.Errorf("%s: %w (use zip or tar)", archiveFormat, ErrUnsupportedFormat)
		}
		out, err := packArchive(args[0], archiveFormat, ".")
		if err != nil {
			return err
		}
		fmt.Printf("Created archive: %s\n", out)
		return nil
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract ARCHIVE",
	Short: "Unpack a .zip or .tar.gz archive into the current directory",
	Long: `Extract unpacks an archive into the current directory, recreating its
relative directory structure. The container format is implied by the file
extension (.zip, .tar.gz, or .tgz); the content is never sniffed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := extractArchive(args[0], ".")
		if err != nil {
			return err
		}
		fmt.Printf("Extracted %d files from %s\n", count, args[0])
		return nil
	},
}

func init() {
	archiveCmd.Flags().StringVar(&archiveFormat, "format", formatZip, "Archive format: zip or tar")
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(extractCmd)
}
