package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	cleanupDays   int
	cleanupPath   string
	cleanupDryRun bool
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete files older than a number of days",
	Long: `Cleanup recursively deletes every file under a directory whose last
modification is older than the given number of days. The cutoff is computed
once, when the command starts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCleanup()
	},
}

func init() {
	cleanupCmd.Flags().IntVar(&cleanupDays, "days", 0, "Delete files last modified more than N days ago")
	cleanupCmd.MarkFlagRequired("days")
	cleanupCmd.Flags().StringVar(&cleanupPath, "path", "", "Directory to clean (default: current directory)")
	cleanupCmd.Flags().BoolVar(&cleanupDryRun, "dry-run", false, "Report the plan without deleting files")
	rootCmd.AddCommand(cleanupCmd)
}

func runCleanup() error {
	if cleanupDays < 0 {
		return fmt.Errorf("--days must be >= 0, got %d", cleanupDays)
	}
	target, err := resolveTarget(cleanupPath, ".")
	if err != nil || target == "" {
		return err
	}

	cutoff := time.Now().Add(-time.Duration(cleanupDays) * 24 * time.Hour)

	scan, err := collectFiles(target, walkOptions{Recursive: true, ShowHidden: showHidden, NoIgnore: noIgnore})
	if err != nil {
		return err
	}
	reportSkipped(scan.Skipped)

	stale, _ := partitionByAge(scan.Files, cutoff)
	plan := planDeletes(stale)

	if cleanupDryRun {
		var b strings.Builder
		for _, action := range plan {
			b.WriteString(fmt.Sprintf("Would delete: %s (%s)\n", action.Source, formatBytes(action.Size)))
		}
		if err := emitReport(b.String()); err != nil {
			return err
		}
		sum := summarizePlan(plan)
		fmt.Printf("Would delete %d files (%s total)\n", sum.Succeeded, formatBytes(sum.Bytes))
		return nil
	}

	outcomes, sum := executePlan(plan)
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(os.Stderr, "Failed: %v\n", o.Err)
			continue
		}
		fmt.Printf("Deleted: %s\n", o.Action.Source)
	}
	fmt.Printf("Deleted %d files (%s freed)", sum.Succeeded, formatBytes(sum.Bytes))
	if sum.Failed > 0 {
		fmt.Printf(" (%d failed)", sum.Failed)
	}
	fmt.Println()
	return nil
}
