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
	// Walk behavior
	showHidden bool
	noIgnore   bool

	// Report destination
	outputFile      string
	copyToClipboard bool

	// Interactive directory selection for commands run without a path
	interactiveMode bool
)

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "tidy",
	Short: "Tidy keeps directory trees in order.",
	Long: `Tidy scans a directory tree and organizes files by extension, removes
stale or duplicate files, reports the largest files, and packs or unpacks
directory archives. Mutating commands support --dry-run to preview the plan
without touching the filesystem.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&showHidden, "hidden", "H", false, "Include hidden files and directories")
	viper.BindPFlag("hidden", rootCmd.PersistentFlags().Lookup("hidden"))
	rootCmd.PersistentFlags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect .gitignore files")
	viper.BindPFlag("no_ignore", rootCmd.PersistentFlags().Lookup("no-ignore"))
	rootCmd.PersistentFlags().StringVarP(&outputFile, "file", "f", "", "Save report to specified file")
	viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
	rootCmd.PersistentFlags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy report to clipboard")
	viper.BindPFlag("clipboard", rootCmd.PersistentFlags().Lookup("clipboard"))
	rootCmd.PersistentFlags().BoolVar(&interactiveMode, "interactive", false, "Pick the target directory interactively")
	viper.BindPFlag("interactive", rootCmd.PersistentFlags().Lookup("interactive"))

	viper.SetDefault("hidden", false)
	viper.SetDefault("no_ignore", false)
	viper.SetDefault("interactive", false)
	viper.SetDefault("downloads_path", "auto")
	viper.SetDefault("top", 10)
	viper.SetDefault("organize_map", defaultOrganizeMap())
}

// defaultOrganizeMap is the built-in extension-to-category table; a config
// file's organize_map section replaces it wholesale.
func defaultOrganizeMap() map[string]string {
	return map[string]string{
		".pdf":    "Documents",
		".docx":   "Documents",
		".md":     "Documents",
		".jpg":    "Images",
		".jpeg":   "Images",
		".png":    "Images",
		".webp":   "Images",
		".zip":    "Archives",
		".tar.gz": "Archives",
		".mp4":    "Videos",
		".mov":    "Videos",
		".mp3":    "Music",
		".iso":    "OS_Images",
		".dmg":    "OS_Images",
	}
}

// initConfig reads in the config file and TIDY_* environment variables.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.AddConfigPath(filepath.Join(home, ".config", "tidy"))
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TIDY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
	}
}

// downloadsPath resolves the default organize target. The "auto" sentinel
// means the user's Downloads directory.
func downloadsPath() string {
	configured := viper.GetString("downloads_path")
	if configured != "" && configured != "auto" {
		return configured
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// resolveTarget picks the directory a command operates on: the explicit
// path if given, the interactive picker if requested, the fallback
// otherwise. An empty path with a nil error means the user aborted.
func resolveTarget(explicit, fallback string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if interactiveMode {
		return pickDirectory()
	}
	return fallback, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
