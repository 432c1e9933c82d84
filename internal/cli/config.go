package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gatexray/pkg/cache"
	"github.com/matzehuels/gatexray/pkg/errors"
	"github.com/matzehuels/gatexray/pkg/pipeline"
	"github.com/matzehuels/gatexray/pkg/render/xray/layout"
	"github.com/matzehuels/gatexray/pkg/render/xray/styles"
	"github.com/matzehuels/gatexray/pkg/store/mongo"
)

// Cache backends.
const (
	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
	cacheBackendNone  = "none"
)

// Config is the user configuration file. Flags override it.
//
//	cell_size = 40
//	margin_x = 8
//	margin_y = 8
//	style = "handdrawn"
//	seed = 7
//	catalog = "~/gates.toml"
//
//	[cache]
//	backend = "redis"
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//	[server.mongo]
//	uri = "mongodb://localhost:27017"
type Config struct {
	layout.Metrics
	Style   string `toml:"style"`
	Seed    uint64 `toml:"seed"`
	Catalog string `toml:"catalog"`

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects the render cache backend.
type CacheConfig struct {
	Backend string            `toml:"backend"`
	Redis   cache.RedisConfig `toml:"redis"`
}

// ServerConfig configures `serve`.
type ServerConfig struct {
	Addr  string       `toml:"addr"`
	Store string       `toml:"store"` // memory, file or mongo
	Mongo mongo.Config `toml:"mongo"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Metrics: layout.DefaultMetrics(),
		Style:   pipeline.DefaultStyle,
		Seed:    pipeline.DefaultSeed,
		Cache:   CacheConfig{Backend: cacheBackendFile},
		Server:  ServerConfig{Addr: ":8080", Store: storeFile},
	}
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	if err := styles.ValidateName(c.Style); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case cacheBackendFile, cacheBackendRedis, cacheBackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q (want file, redis or none)", c.Cache.Backend)
	}
	switch c.Server.Store {
	case storeMemory, storeFile, storeMongo:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown store %q (want memory, file or mongo)", c.Server.Store)
	}
	return nil
}

// configPath returns the default config file location.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfig decodes path over the defaults. An empty path means the
// default location, which may be absent; an explicit path must exist.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}
