// Package cmd provides the root command and CLI setup for hanrename.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dsptools/hanrename/internal/adapter"
	"github.com/dsptools/hanrename/internal/controller"
	"github.com/dsptools/hanrename/internal/dict"
	m "github.com/dsptools/hanrename/internal/model"
)

var treeFS adapter.TreeFS
var ui controller.UI

// excludePatterns is a root-level flag naming directories skipped together
// with their subtrees.
var excludePatterns []string

// verboseFlag switches the file log to debug level.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	treeFS = adapter.NewLocalTreeFS()
}

const rootLongDescription = `Hanrename renames files and directories whose names contain Chinese
characters. Recognized Dyson Sphere Program terms are replaced from a curated
dictionary; everything else is sent to a LibreTranslate-compatible endpoint
(the API served by Argos Translate).

Renames happen in place, bottom-up, so nested Chinese-named directories and
their contents are handled in one pass. File extensions are never translated.`

const renameLongDescription = `Rename every Chinese-named file and directory under the given directory
(default: current directory).

Dictionary terms win over machine translation, longest term first. Name
collisions get a _1, _2, ... suffix before the extension. Use --dry-run to
preview without touching the filesystem.`

const scanLongDescription = `List the entries that would be renamed, resolving names against the
dictionary only. Runs fully offline: unmatched Chinese text is shown as-is
and nothing is renamed.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hanrename",
		Short: "Rename Chinese-named files and folders to English",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "directory names to skip entirely (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). Interrupts stop the run between candidates.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

// resolveRoot validates the positional directory argument before any
// scanning begins. A missing argument means the current directory.
func resolveRoot(args []string) (m.Path, error) {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("invalid directory %q: %w", target, err)
	}

	if !treeFS.IsDir(m.Path(abs)) {
		return "", fmt.Errorf("%s is not a valid directory", abs)
	}

	return m.Path(abs), nil
}

// loadDictionary builds the active dictionary: the built-in table, extended
// by the user's YAML overlay when one is configured.
func loadDictionary() (*dict.Dictionary, error) {
	overlayPath := viper.GetString(dictionaryFileKey)
	if overlayPath == "" {
		return dict.Default(), nil
	}

	overlay, err := dict.LoadFile(overlayPath)
	if err != nil {
		return nil, err
	}

	return dict.New(dict.Merge(dict.DefaultEntries(), overlay)), nil
}

func excludeList() []string {
	return viper.GetStringSlice(excludeConfigKey)
}
