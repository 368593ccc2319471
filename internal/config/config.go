package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"horsemanager/internal/util"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for horsemanager.
type Config struct {
	Storage  Storage  `yaml:"storage"`
	Logging  Logging  `yaml:"logging"`
	Game     Game     `yaml:"game"`
	Calendar Calendar `yaml:"calendar"`
}

// Storage holds paths for data persistence.
type Storage struct {
	DataDir    string `yaml:"data_dir"`
	SQLitePath string `yaml:"sqlite_path"`
}

// Logging configures the application logger. File is only used by the
// interactive UI, which owns the terminal; it is rotated at MaxSizeMB.
type Logging struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Game holds the parameters of a new game.
type Game struct {
	PlayerName      string  `yaml:"player_name"`
	StartingBalance int     `yaml:"starting_balance"`
	ShopHorses      int     `yaml:"shop_horses"`
	ShopJockeys     int     `yaml:"shop_jockeys"`
	Seed            uint64  `yaml:"seed"`
	StartDate       string  `yaml:"start_date"`
	HolidayMarkup   float64 `yaml:"holiday_markup"`
}

// Calendar lists the recurring holidays as "MM-DD".
type Calendar struct {
	Holidays []string `yaml:"holidays"`
}

// DateLayout is the layout of Game.StartDate.
const DateLayout = "2006-01-02"

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Storage: Storage{
			DataDir:    "data",
			SQLitePath: filepath.Join("data", "horsemanager.db"),
		},
		Logging: Logging{
			Level:      "info",
			Format:     "text",
			File:       filepath.Join("data", "horsemanager.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Game: Game{
			PlayerName:      "Player",
			StartingBalance: 1000,
			ShopHorses:      8,
			ShopJockeys:     4,
			Seed:            1,
			StartDate:       "2026-12-24",
			HolidayMarkup:   1.25,
		},
		Calendar: Calendar{
			Holidays: append([]string(nil), util.DefaultHolidays...),
		},
	}
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Load reads the YAML configuration file at the given path on top of the
// defaults and then applies environment variable overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that an empty path or a missing file yields
// the defaults (still subject to environment overrides).
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		cfg, err := Load(path)
		if !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}
	cfg := Default()
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// applyEnvOverrides checks well-known environment variables and overrides the
// corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("HORSEMANAGER_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("HORSEMANAGER_DB"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HORSEMANAGER_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("HORSEMANAGER_SEED: %w", err)
		}
		cfg.Game.Seed = seed
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Storage.SQLitePath == "" {
		return errors.New("storage.sqlite_path is required")
	}
	if c.Game.StartingBalance < 0 {
		return fmt.Errorf("game.starting_balance = %d, must be >= 0", c.Game.StartingBalance)
	}
	if c.Game.ShopHorses < 0 || c.Game.ShopJockeys < 0 {
		return errors.New("game shop sizes must be >= 0")
	}
	if c.Game.HolidayMarkup < 0 {
		return fmt.Errorf("game.holiday_markup = %v, must be >= 0", c.Game.HolidayMarkup)
	}
	if _, err := c.StartDate(); err != nil {
		return err
	}
	if _, err := util.NewEventCalendar(c.Calendar.Holidays); err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	return nil
}

// StartDate parses Game.StartDate.
func (c *Config) StartDate() (time.Time, error) {
	t, err := time.Parse(DateLayout, c.Game.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("game.start_date: %w", err)
	}
	return t, nil
}
