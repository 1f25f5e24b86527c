package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultStorageDir     = ".pask"
	DefaultDBName         = "pask.db"
	DefaultBackend        = "json"
	EnvConfigPath         = "PASK_CONFIG"
)

type Keymap struct {
	Insert    string `toml:"insert"`
	Edit      string `toml:"edit"`
	Quit      string `toml:"quit"`
	Confirm   string `toml:"confirm"`
	Cancel    string `toml:"cancel"`
	Backspace string `toml:"backspace"`
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Delete    string `toml:"delete"`
}

type Config struct {
	StorageRoot string `toml:"storage_root"`
	Backend     string `toml:"backend"`
	DBPath      string `toml:"db_path"`
	LogFile     string `toml:"log_file"`
	Keys        Keymap `toml:"keys"`
}

// ResolveConfigPath picks $PASK_CONFIG when set, otherwise config.toml in
// the user config directory, falling back to the home directory.
func ResolveConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return expandHome(p)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "pask", DefaultConfigFileName)
	}
	return filepath.Join(homeDir(), DefaultStorageDir, DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing the defaults first when
// the file does not exist.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg.normalized(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg.normalized(), nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default keeps db_path empty so that it follows storage_root.
func Default() Config {
	return Config{
		StorageRoot: filepath.Join("~", DefaultStorageDir),
		Backend:     DefaultBackend,
		Keys:        DefaultKeymap(),
	}
}

func DefaultKeymap() Keymap {
	return Keymap{
		Insert:    "i",
		Edit:      "e",
		Quit:      "q",
		Confirm:   "enter",
		Cancel:    "esc",
		Backspace: "backspace",
		Up:        "k",
		Down:      "j",
		Delete:    "d",
	}
}

// normalized expands "~" and refills fields a user file left empty.
func (c Config) normalized() Config {
	def := Default()
	if c.StorageRoot == "" {
		c.StorageRoot = def.StorageRoot
	}
	c.StorageRoot = expandHome(c.StorageRoot)
	if c.Backend == "" {
		c.Backend = def.Backend
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.StorageRoot, DefaultDBName)
	}
	c.DBPath = expandHome(c.DBPath)
	c.LogFile = expandHome(c.LogFile)
	c.Keys = c.Keys.withDefaults(def.Keys)
	return c
}

func (k Keymap) withDefaults(def Keymap) Keymap {
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&k.Insert, def.Insert)
	fill(&k.Edit, def.Edit)
	fill(&k.Quit, def.Quit)
	fill(&k.Confirm, def.Confirm)
	fill(&k.Cancel, def.Cancel)
	fill(&k.Backspace, def.Backspace)
	fill(&k.Up, def.Up)
	fill(&k.Down, def.Down)
	fill(&k.Delete, def.Delete)
	return k
}

func expandHome(p string) string {
	if p == "~" {
		return homeDir()
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(homeDir(), p[2:])
	}
	return p
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
