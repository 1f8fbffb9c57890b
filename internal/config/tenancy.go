package config

import (
	"errors"
	"log"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// TenancyConfig tunes the schema-per-tenant machinery.
type TenancyConfig struct {
	SchemaPrefix   string        `mapstructure:"schemaPrefix"`
	DefaultSchema  string        `mapstructure:"defaultSchema"`
	RegistryTTL    time.Duration `mapstructure:"registryTTL"`
	AcquireTimeout time.Duration `mapstructure:"acquireTimeout"`
}

func DefaultTenancyConfig() TenancyConfig {
	return TenancyConfig{
		SchemaPrefix:   "tenant_",
		DefaultSchema:  "public",
		RegistryTTL:    time.Minute,
		AcquireTimeout: 5 * time.Second,
	}
}

var schemaPrefixPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// TenancyConfigHolder serves the current tenancy settings and hot-reloads
// them when the optional config file changes.
type TenancyConfigHolder struct {
	current atomic.Value // holds TenancyConfig
}

func NewTenancyConfigHolder() (*TenancyConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("tenancy")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/estoque")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ESTOQUE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultTenancyConfig()
	v.SetDefault("tenancy.schemaPrefix", defaults.SchemaPrefix)
	v.SetDefault("tenancy.defaultSchema", defaults.DefaultSchema)
	v.SetDefault("tenancy.registryTTL", defaults.RegistryTTL)
	v.SetDefault("tenancy.acquireTimeout", defaults.AcquireTimeout)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg TenancyConfig
	if err := v.UnmarshalKey("tenancy", &cfg); err != nil {
		return nil, err
	}
	if err := validateTenancyConfig(cfg); err != nil {
		return nil, err
	}

	holder := &TenancyConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated TenancyConfig
		if err := v.UnmarshalKey("tenancy", &updated); err != nil {
			log.Printf("[tenancy-config] reload failed: %v", err)
			return
		}
		if err := validateTenancyConfig(updated); err != nil {
			log.Printf("[tenancy-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[tenancy-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticTenancyConfigHolder wraps a fixed config, with no file
// watching. Used by tests and one-shot tooling.
func NewStaticTenancyConfigHolder(cfg TenancyConfig) *TenancyConfigHolder {
	holder := &TenancyConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *TenancyConfigHolder) Get() TenancyConfig {
	return h.current.Load().(TenancyConfig)
}

func validateTenancyConfig(cfg TenancyConfig) error {
	if !schemaPrefixPattern.MatchString(cfg.SchemaPrefix) {
		return errors.New("tenancy.schemaPrefix must be a plain sql identifier")
	}
	if !schemaPrefixPattern.MatchString(cfg.DefaultSchema) {
		return errors.New("tenancy.defaultSchema must be a plain sql identifier")
	}
	if cfg.RegistryTTL <= 0 {
		return errors.New("tenancy.registryTTL must be positive")
	}
	return nil
}
