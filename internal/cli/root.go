package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"taggen/internal/domain/config"
	"taggen/internal/logging"
)

const defaultConfigFile = "taggen.yaml"

var Version = "0.3.0"

var (
	cfgPath   string
	sourceDir string
	outputDir string
	sourceExt string
	outputExt string
	indexPath string
	verbose   bool
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taggen",
		Short: "Tag index generator for Jekyll-style posts",
		Long: `taggen scans the front matter of a directory of posts, collects the
declared tags and writes one tag index file per distinct tag.

Configuration comes from taggen.yaml in the working directory (all fields
optional); flags override whatever the file says.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Config file path (default taggen.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&sourceDir, "source-dir", "", "Directory of posts to scan (overrides config)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "Directory tag files are written to (overrides config)")
	rootCmd.PersistentFlags().StringVar(&sourceExt, "extension", "", "Post file extension, e.g. .md (overrides config)")
	rootCmd.PersistentFlags().StringVar(&outputExt, "output-extension", "", "Tag file extension, e.g. .md (overrides config)")
	rootCmd.PersistentFlags().StringVar(&indexPath, "index", "", "Tag index database path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")

	rootCmd.Version = Version

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newTagsCmd())
	rootCmd.AddCommand(newCleanCmd())

	return rootCmd
}

// buildConfig 先读文件再叠加 flag，最后统一校验。
// --config 指了文件就必须存在；默认路径的 taggen.yaml 没有则整套用默认值
func buildConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.LoadOrDefault(defaultConfigFile)
	}
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if sourceDir != "" {
		cfg.Source.Dir = sourceDir
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if sourceExt != "" {
		cfg.Source.Extension = sourceExt
	}
	if outputExt != "" {
		cfg.Output.Extension = outputExt
	}
	if indexPath != "" {
		cfg.Index.Path = indexPath
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}
