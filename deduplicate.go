package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var dedupDryRun bool

var deduplicateCmd = &cobra.Command{
	Use:   "deduplicate [PATH]",
	Short: "Remove files with identical content, keeping one copy",
	Long: `Deduplicate fingerprints every file under a directory and groups the
ones with identical content. The first copy found in traversal order is kept;
the rest are removed. Name, path, and timestamps play no part in the choice.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDeduplicate(args)
	},
}

func init() {
	deduplicateCmd.Flags().BoolVar(&dedupDryRun, "dry-run", false, "Report duplicates without removing them")
	rootCmd.AddCommand(deduplicateCmd)
}

func runDeduplicate(args []string) error {
	var target string
	if len(args) == 1 {
		target = args[0]
	} else if interactiveMode {
		picked, err := pickDirectory()
		if err != nil || picked == "" {
			return err
		}
		target = picked
	} else {
		return fmt.Errorf("PATH argument required (or use --interactive)")
	}

	scan, err := collectFiles(target, walkOptions{Recursive: true, ShowHidden: showHidden, NoIgnore: noIgnore})
	if err != nil {
		return err
	}

	groups, hashSkipped := groupDuplicates(scan.Files)
	reportSkipped(append(scan.Skipped, hashSkipped...))

	verb := "DELETE"
	if dedupDryRun {
		verb = "WOULD DELETE"
	}
	var b strings.Builder
	for _, g := range groups {
		b.WriteString(fmt.Sprintf("Duplicate files (fingerprint: %.8s...):\n", g.Fingerprint))
		b.WriteString(fmt.Sprintf("  KEEP: %s\n", g.Survivor().Path))
		for _, r := range g.Redundant() {
			b.WriteString(fmt.Sprintf("  %s: %s\n", verb, r.Path))
		}
	}
	if err := emitReport(b.String()); err != nil {
		return err
	}

	plan := planDeduplicate(groups)
	if dedupDryRun {
		fmt.Printf("Would remove %d duplicate files\n", len(plan))
		return nil
	}

	outcomes, sum := executePlan(plan)
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(os.Stderr, "Failed: %v\n", o.Err)
		}
	}
	fmt.Printf("Removed %d duplicate files (%s freed)", sum.Succeeded, formatBytes(sum.Bytes))
	if sum.Failed > 0 {
		fmt.Printf(" (%d failed)", sum.Failed)
	}
	fmt.Println()
	return nil
}
