package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pask/internal/config"
	"pask/internal/period"
	"pask/internal/storage"
)

const debugLogName = "debug.log"

// app carries what every command needs once the config has been read.
type app struct {
	configPath string
	debug      bool

	cfg     config.Config
	logFile io.Closer
	stdin   io.Reader
	now     func() time.Time
}

func newApp(stdin io.Reader) *app {
	return &app{stdin: stdin, now: time.Now}
}

// Execute runs the root command
func Execute(version string) error {
	a := newApp(os.Stdin)
	defer a.close()

	root := a.rootCmd(version)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func (a *app) rootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "pask",
		Short: "pask - tasks for today, this week, this month and beyond",
		Long: `pask keeps one task list per period: your goals, today, this week and this month.

Pick the list first, then what to do with it:

  pask day add "gym" 7:00 8:00
  pask week display
  pask goals tui`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config.toml (default $"+config.EnvConfigPath+" or the user config dir)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "write a debug log next to the task lists")

	for _, k := range period.Kinds() {
		root.AddCommand(a.listCmd(k))
	}
	root.AddCommand(a.listsCmd())
	return root
}

// setup loads the config and routes the standard logger. The log never goes
// to the terminal so it cannot corrupt the interactive screen.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := a.configPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	a.cfg = cfg

	logPath := cfg.LogFile
	if logPath == "" && a.debug {
		logPath = filepath.Join(cfg.StorageRoot, debugLogName)
	}
	if logPath == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return err
	}
	f, err := tea.LogToFile(logPath, "pask")
	if err != nil {
		return fmt.Errorf("open log %s: %w", logPath, err)
	}
	a.logFile = f
	log.Printf("config %s backend=%s root=%s", path, cfg.Backend, cfg.StorageRoot)
	return nil
}

func (a *app) openStore() (storage.Store, error) {
	st, err := storage.Open(a.cfg.Backend, a.cfg.StorageRoot, a.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", a.cfg.Backend, err)
	}
	return st, nil
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}
