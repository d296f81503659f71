package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/weekgrid/internal/backup"
	"github.com/julianstephens/weekgrid/internal/engine"
	"github.com/julianstephens/weekgrid/internal/logger"
	"github.com/julianstephens/weekgrid/internal/models"
	"github.com/julianstephens/weekgrid/internal/profile"
	"github.com/julianstephens/weekgrid/internal/storage"
	"github.com/julianstephens/weekgrid/internal/storage/postgres"
	"github.com/julianstephens/weekgrid/internal/storage/sqlite"
	"github.com/julianstephens/weekgrid/internal/utils"
)

type Context struct {
	Store   storage.Provider
	Profile string // YAML file layered over the stored settings
	JSON    bool
	Yes     bool      // skip confirmation prompts
	Out     io.Writer // defaults to os.Stdout
	Now     func() time.Time
}

// Stdout returns the writer commands print to.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Printf writes formatted output to Stdout.
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

// Println writes a line to Stdout.
func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Stdout(), args...)
}

// PrintJSON writes v as indented JSON.
func (c *Context) PrintJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	c.Println(string(data))
	return nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if !mgr.Supported() {
		return
	}
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Settings returns the stored settings with the profile, if any, layered on top.
func (c *Context) Settings() (models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	if c.Profile == "" {
		return settings, nil
	}
	settings, err = profile.Load(ExpandHome(c.Profile), settings)
	if err != nil {
		return models.Settings{}, err
	}
	logger.Debug("Applied profile", "path", c.Profile)
	return settings, nil
}

// Engine returns an analytics engine configured from Settings.
func (c *Context) Engine() (engine.Engine, models.Settings, error) {
	settings, err := c.Settings()
	if err != nil {
		return engine.Engine{}, models.Settings{}, err
	}
	return engine.New(settings.Analytics), settings, nil
}

// Today returns the user's calendar date as a UTC midnight.
func (c *Context) Today(settings models.Settings) (time.Time, error) {
	if c.Now == nil {
		return utils.TodayFromSettings(settings)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	return utils.WallDate(c.Now().In(loc)), nil
}

// Confirm asks a yes/no question. It answers yes without prompting when Yes is set.
func (c *Context) Confirm(title, description string) (bool, error) {
	if c.Yes {
		return true, nil
	}
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return ok, nil
}

// OpenStore returns the provider for target: a PostgreSQL store for URLs and
// DSNs, otherwise a sqlite file.
func OpenStore(target string) storage.Provider {
	if postgres.IsConnString(target) {
		return postgres.New(target)
	}
	return sqlite.NewStore(ExpandHome(target))
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
