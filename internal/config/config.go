// Package config loads knobctl settings from a YAML file and KNOBS_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/reconcile"
	"github.com/tarantool/go-knobs/settings"
	"github.com/tarantool/go-knobs/variable"
)

// EnvPrefix prefixes environment overrides, e.g. KNOBS_BACKEND.
const EnvPrefix = "KNOBS"

// Backends.
const (
	BackendMemory    = "memory"
	BackendEtcd      = "etcd"
	BackendTarantool = "tarantool"
)

// ErrInvalidConfig is returned by Load when a value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// EtcdConfig describes the etcd backend.
type EtcdConfig struct {
	Endpoints   []string      `mapstructure:"endpoints"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// TarantoolConfig describes the tarantool backend.
type TarantoolConfig struct {
	Address     string        `mapstructure:"address"`
	User        string        `mapstructure:"user"`
	Password    string        `mapstructure:"password"`
	Timeout     time.Duration `mapstructure:"timeout"`
	TxnFunction string        `mapstructure:"txn_function"`
}

// VolumeConfig says where profile blobs come from.
type VolumeConfig struct {
	// Dir holds <GUID>.bin sections. Empty disables the directory volume.
	Dir string `mapstructure:"dir"`
	// PublicKey enables signed sections stored in the backend.
	PublicKey string `mapstructure:"public_key"`
	Prefix    string `mapstructure:"prefix"`
}

// ProfileConfig drives profile selection.
type ProfileConfig struct {
	Active    string   `mapstructure:"active"`
	AllowList []string `mapstructure:"allow_list"`
	Generic   string   `mapstructure:"generic"`
}

// Config is the full knobctl configuration.
type Config struct {
	Backend       string          `mapstructure:"backend"`
	Prefix        string          `mapstructure:"prefix"`
	LogLevel      string          `mapstructure:"log_level"`
	ManagedPrefix string          `mapstructure:"managed_prefix"`
	Etcd          EtcdConfig      `mapstructure:"etcd"`
	Tarantool     TarantoolConfig `mapstructure:"tarantool"`
	Volume        VolumeConfig    `mapstructure:"volume"`
	Profile       ProfileConfig   `mapstructure:"profile"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendMemory)
	v.SetDefault("prefix", variable.DefaultPrefix)
	v.SetDefault("log_level", "info")
	v.SetDefault("managed_prefix", settings.DefaultManagedPrefix)

	v.SetDefault("etcd.endpoints", []string{"127.0.0.1:2379"})
	v.SetDefault("etcd.dial_timeout", 5*time.Second)

	v.SetDefault("tarantool.address", "127.0.0.1:3301")
	v.SetDefault("tarantool.user", "guest")
	v.SetDefault("tarantool.password", "")
	v.SetDefault("tarantool.timeout", 5*time.Second)
	v.SetDefault("tarantool.txn_function", "config.storage.txn")

	v.SetDefault("volume.dir", "")
	v.SetDefault("volume.public_key", "")
	v.SetDefault("volume.prefix", "/knobs/volume")

	v.SetDefault("profile.active", reconcile.GenericProfile.String())
	v.SetDefault("profile.allow_list", []string{})
	v.SetDefault("profile.generic", reconcile.GenericProfile.String())
}

// Load reads path, if set, applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the backend name and every profile GUID.
func (c Config) Validate() error {
	if !slices.Contains([]string{BackendMemory, BackendEtcd, BackendTarantool}, c.Backend) {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}

	if c.Backend == BackendMemory && c.Volume.PublicKey != "" {
		return fmt.Errorf("%w: signed volumes need a persistent backend", ErrInvalidConfig)
	}

	if _, err := c.ActiveProfile(); err != nil {
		return err
	}

	if _, err := c.GenericProfile(); err != nil {
		return err
	}

	_, err := c.AllowList()

	return err
}

func parseGUID(field, s string) (guid.GUID, error) {
	g, err := guid.Parse(s)
	if err != nil {
		return guid.Zero, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, field, err)
	}

	return g, nil
}

// ActiveProfile returns the profile the selector claims.
func (c Config) ActiveProfile() (guid.GUID, error) {
	return parseGUID("profile.active", c.Profile.Active)
}

// GenericProfile returns the fallback profile.
func (c Config) GenericProfile() (guid.GUID, error) {
	return parseGUID("profile.generic", c.Profile.Generic)
}

// AllowList returns the profiles the selector may choose from.
func (c Config) AllowList() ([]guid.GUID, error) {
	out := make([]guid.GUID, 0, len(c.Profile.AllowList))

	for _, s := range c.Profile.AllowList {
		g, err := parseGUID("profile.allow_list", s)
		if err != nil {
			return nil, err
		}

		out = append(out, g)
	}

	return out, nil
}
