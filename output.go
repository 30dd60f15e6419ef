package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// emitReport routes a rendered report to its destination: a file if -f was
// given, the clipboard if -c was given, stdout otherwise. Clipboard failures
// fall back to stdout so the report is never lost.
func emitReport(report string) error {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(report), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outputFile, err)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
		return nil
	}
	if copyToClipboard {
		if err := clipboard.WriteAll(report); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: clipboard write failed: %v\n", err)
			fmt.Print(report)
			return nil
		}
		fmt.Println("Report copied to clipboard.")
		return nil
	}
	fmt.Print(report)
	return nil
}

// reportSkipped prints one warning per file the scan could not process, so
// skipped files are visible instead of silently swallowed.
func reportSkipped(skipped []SkippedFile) {
	for _, s := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", s.Path, s.Err)
	}
	if len(skipped) > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d unreadable files\n", len(skipped))
	}
}

// formatBytes renders a byte count in human-readable units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
