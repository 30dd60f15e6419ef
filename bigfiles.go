package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var bigfilesTop int

var bigfilesCmd = &cobra.Command{
	Use:   "bigfiles [PATH]",
	Short: "Report the largest files under a directory",
	Long: `Bigfiles ranks every file under a directory by size and reports the
largest ones. It never modifies anything.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBigfiles(args)
	},
}

func init() {
	bigfilesCmd.Flags().IntVar(&bigfilesTop, "top", 10, "Number of largest files to show")
	viper.BindPFlag("top", bigfilesCmd.Flags().Lookup("top"))
	rootCmd.AddCommand(bigfilesCmd)
}

func runBigfiles(args []string) error {
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
	reportSkipped(scan.Skipped)

	n := viper.GetInt("top")
	ranked := topBySize(scan.Files, n)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Top %d largest files in %s:\n", n, target))
	for i, rec := range ranked {
		b.WriteString(fmt.Sprintf("%2d. %10s  %s\n", i+1, formatBytes(rec.Size), rec.Path))
	}
	return emitReport(b.String())
}
