// Package config resolves imgcurate settings from defaults, an optional YAML
// file, a .env file, IMGCURATE_* environment variables and command-line
// flags, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"imgcurate/internal/adapters/filesystem"
	"imgcurate/internal/application"
)

const (
	DefaultRoot      = "."
	DefaultStore     = "json"
	ConfigFileName   = ".imgcurate.yaml"
	EnvPrefix        = "IMGCURATE_"
	EnvConfig        = EnvPrefix + "CONFIG"
	EnvRoot          = EnvPrefix + "ROOT"
	EnvIndex         = EnvPrefix + "INDEX"
	EnvStore         = EnvPrefix + "STORE"
	EnvDB            = EnvPrefix + "DB"
	EnvAutoReconcile = EnvPrefix + "AUTO_RECONCILE"
	EnvConfirmDelete = EnvPrefix + "CONFIRM_DELETE"
	EnvViewer        = EnvPrefix + "VIEWER"
)

// Config holds the resolved settings
type Config struct {
	Root          string `yaml:"root"`
	IndexFile     string `yaml:"index"`
	Store         string `yaml:"store"`
	DBPath        string `yaml:"db"`
	AutoReconcile bool   `yaml:"auto_reconcile"`
	ConfirmDelete bool   `yaml:"confirm_delete"`
	Viewer        string `yaml:"viewer"`
	LogLevel      string `yaml:"log_level"`

	// File is the config file that was read, empty when none was found
	File string `yaml:"-"`
}

// Overrides carries values set on the command line. Empty strings and nil
// pointers leave the lower layers in place.
type Overrides struct {
	Root          string
	IndexFile     string
	Store         string
	DBPath        string
	Viewer        string
	AutoReconcile *bool
	ConfirmDelete *bool
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Root:  DefaultRoot,
		Store: DefaultStore,
	}
}

// Load resolves the configuration. A .env file in the working directory is
// loaded first if present; variables already set in the environment win.
func Load(flags Overrides) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	root := flags.Root
	if root == "" {
		root = os.Getenv(EnvRoot)
	}
	if root == "" {
		root = DefaultRoot
	}

	path, explicit := configFilePath(root)
	if err := cfg.readFile(path, explicit); err != nil {
		return Config{}, err
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.apply(flags)

	if err := cfg.finalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// configFilePath returns IMGCURATE_CONFIG when set, else the file in root
func configFilePath(root string) (string, bool) {
	if path := os.Getenv(EnvConfig); path != "" {
		return filesystem.ExpandPath(path), true
	}
	return filepath.Join(filesystem.ExpandPath(root), ConfigFileName), false
}

// readFile decodes a YAML config file over cfg. A missing file is only an
// error when it was named explicitly.
func (c *Config) readFile(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := Decode(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	c.File = path
	return nil
}

// Decode parses YAML settings into cfg, rejecting unknown keys
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv() error {
	for env, dst := range map[string]*string{
		EnvRoot:   &c.Root,
		EnvIndex:  &c.IndexFile,
		EnvStore:  &c.Store,
		EnvDB:     &c.DBPath,
		EnvViewer: &c.Viewer,
	} {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}

	for env, dst := range map[string]*bool{
		EnvAutoReconcile: &c.AutoReconcile,
		EnvConfirmDelete: &c.ConfirmDelete,
	} {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", env, v, err)
		}
		*dst = b
	}
	return nil
}

func (c *Config) apply(flags Overrides) {
	if flags.Root != "" {
		c.Root = flags.Root
	}
	if flags.IndexFile != "" {
		c.IndexFile = flags.IndexFile
	}
	if flags.Store != "" {
		c.Store = flags.Store
	}
	if flags.DBPath != "" {
		c.DBPath = flags.DBPath
	}
	if flags.Viewer != "" {
		c.Viewer = flags.Viewer
	}
	if flags.AutoReconcile != nil {
		c.AutoReconcile = *flags.AutoReconcile
	}
	if flags.ConfirmDelete != nil {
		c.ConfirmDelete = *flags.ConfirmDelete
	}
}

// finalize expands paths and validates the store kind
func (c *Config) finalize() error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	if err := application.ValidateStoreKind("store", c.Store); err != nil {
		return err
	}
	if err := application.ValidateRequired("rootPath", c.Root); err != nil {
		return err
	}

	c.Root = filesystem.ExpandPath(c.Root)
	if c.IndexFile != "" {
		c.IndexFile = filesystem.ExpandPath(c.IndexFile)
	}
	if c.DBPath != "" {
		c.DBPath = filesystem.ExpandPath(c.DBPath)
	}
	return nil
}
