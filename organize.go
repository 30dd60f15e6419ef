package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	organizePath   string
	organizeDryRun bool
)

var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Move files into category subdirectories based on extension",
	Long: `Organize classifies the files directly inside a directory by their
extension and moves each into a category subdirectory (Documents, Images,
Archives, ...). The extension-to-category table comes from the organize_map
section of the config file. Files with an unmapped extension are left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOrganize()
	},
}

func init() {
	organizeCmd.Flags().StringVar(&organizePath, "path", "", "Directory to organize (default: downloads directory)")
	organizeCmd.Flags().BoolVar(&organizeDryRun, "dry-run", false, "Report the plan without moving files")
	rootCmd.AddCommand(organizeCmd)
}

func runOrganize() error {
	target, err := resolveTarget(organizePath, downloadsPath())
	if err != nil || target == "" {
		return err
	}

	// Immediate children only: category subdirectories created by a
	// previous run must not be re-scanned.
	scan, err := collectFiles(target, walkOptions{ShowHidden: showHidden})
	if err != nil {
		return err
	}
	reportSkipped(scan.Skipped)

	plan := planOrganize(target, scan.Files, viper.GetStringMapString("organize_map"))

	fmt.Printf("Organizing files in: %s\n", target)
	if organizeDryRun {
		var b strings.Builder
		for _, action := range plan {
			b.WriteString(fmt.Sprintf("Would move: %s -> %s/\n", filepath.Base(action.Source), action.Category))
		}
		if err := emitReport(b.String()); err != nil {
			return err
		}
		fmt.Printf("Would move %d files\n", len(plan))
		return nil
	}

	outcomes, sum := executePlan(plan)
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(os.Stderr, "Failed: %v\n", o.Err)
			continue
		}
		fmt.Printf("Moved: %s -> %s/\n", filepath.Base(o.Action.Source), o.Action.Category)
	}
	fmt.Printf("Moved %d files", sum.Succeeded)
	if sum.Failed > 0 {
		fmt.Printf(" (%d failed)", sum.Failed)
	}
	fmt.Println()
	return nil
}
