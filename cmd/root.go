package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/gopak/clipsearch/internal/alfred"
	"github.com/gopak/clipsearch/internal/archive"
	"github.com/gopak/clipsearch/internal/assets"
	"github.com/gopak/clipsearch/internal/config"
	"github.com/gopak/clipsearch/internal/logging"
	"github.com/gopak/clipsearch/internal/ui/console"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

const (
	formatJSON  = "json"
	formatTable = "table"
)

type options struct {
	cfgFile string
	verbose bool
	format  string
	pick    bool
}

func Execute() error { return newRootCmd().ExecuteContext(context.Background()) }

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "clipsearch <keyword> <database>",
		Short: "Search the clipboard history archive and print Alfred results",
		Long: `Searches the clipboard table of an archive database for entries containing
<keyword> and prints them newest first as Alfred script filter JSON.

When <database> does not exist a single hint item is printed instead,
asking the user to create a backup first.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.initConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context(), cmd.OutOrStdout(), args[0], args[1])
		},
	}
	cmd.Version = version
	cmd.Flags().StringVar(&o.cfgFile, "config", "", "path to any YAML file inside the config directory (default dir: ~/.config/clipsearch); all *.yaml in that directory are merged")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "mirror debug logging to stderr")
	cmd.Flags().StringVarP(&o.format, "format", "f", formatJSON, "output format: json or table")
	cmd.Flags().BoolVar(&o.pick, "pick", false, "choose one result interactively and print its text")
	return cmd
}

func configDir(cfgFile string) string {
	if cfgFile != "" {
		return filepath.Dir(cfgFile)
	}
	dir, _ := os.UserConfigDir()
	if su := os.Getenv("SUDO_USER"); su != "" {
		if u, err := user.Lookup(su); err == nil && u.HomeDir != "" {
			dir = filepath.Join(u.HomeDir, ".config")
		}
	}
	return filepath.Join(dir, "clipsearch")
}

func yamlFiles(dir string) []string {
	entries, _ := os.ReadDir(dir)
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		low := strings.ToLower(e.Name())
		if strings.HasSuffix(low, ".yaml") || strings.HasSuffix(low, ".yml") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files
}

// initConfig merges the embedded defaults with the config directory, then
// applies environment overrides and opens the log file. A missing or
// read-only config directory falls back to the defaults.
func (o *options) initConfig() error {
	if o.format != formatJSON && o.format != formatTable {
		return fmt.Errorf("unknown format %q (want %s or %s)", o.format, formatJSON, formatTable)
	}
	logging.SetVerbose(o.verbose)
	cfgDir := configDir(o.cfgFile)
	if err := assets.WriteDefaultConfigIfMissing(cfgDir); err != nil {
		logging.Debug("default config not written: " + err.Error())
	}
	cfg, err := config.LoadDefaultsAndFiles(assets.DefaultConfig(), yamlFiles(cfgDir))
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		return fmt.Errorf("schema error: %w", err)
	}
	cfg = config.ApplyEnv(cfg, os.LookupEnv)

	logPath := cfg.LogFile
	if logPath == "" {
		logPath = logging.DefaultPath(cfgDir)
	}
	if err := logging.Init(logPath); err != nil {
		logging.Debug("log file unavailable: " + err.Error())
	}
	return nil
}

func (o *options) run(ctx context.Context, out io.Writer, keyword, dbPath string) error {
	cfg := config.Get()
	if !archive.Exists(dbPath) {
		logging.Info("archive missing", zap.String("db", dbPath))
		return alfred.MissingArchive(cfg.BackupKeyword, cfg.MissingIcon).Write(out)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	items, err := archive.Search(ctx, keyword, dbPath, archive.Formatter{Location: loc})
	if err != nil {
		return err
	}
	env := alfred.Assemble(items)

	switch {
	case o.pick:
		// Prompt on stderr so the chosen text can be piped.
		ui := console.NewConsoleUI(out, survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))
		return ui.RunPick(env)
	case o.format == formatTable:
		return console.NewConsoleUI(out).RunTable(env)
	default:
		return env.Write(out)
	}
}
