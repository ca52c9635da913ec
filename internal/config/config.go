// Package config resolves runtime settings from flags, KANADO_* env
// vars, and defaults, in that precedence order.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/kanado/internal/store"
)

// Config is the resolved server configuration.
type Config struct {
	// Mode is "prod" or "dev". Dev mode logs at debug level.
	Mode string
	// Addr is the bind address for the HTTP server.
	Addr string
	// Port is the bind port for the HTTP server.
	Port int
	// DBPath is the SQLite database file path.
	DBPath string
}

// IsDev reports whether the server runs in dev mode.
func (c *Config) IsDev() bool { return c.Mode != "prod" }

// ListenAddr is the addr:port the HTTP server binds to.
func (c *Config) ListenAddr() string { return fmt.Sprintf("%s:%d", c.Addr, c.Port) }

// BindFlags registers the config flags on fs and wires them into v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.String("mode", "prod", `server mode ("prod" or "dev")`)
	fs.String("addr", "127.0.0.1", "address to bind the server to")
	fs.Int("port", 8642, "port to bind the server to")
	fs.String("db", "", "path to the SQLite database file")

	_ = v.BindPFlag("mode", fs.Lookup("mode"))
	_ = v.BindPFlag("addr", fs.Lookup("addr"))
	_ = v.BindPFlag("port", fs.Lookup("port"))
	_ = v.BindPFlag("db", fs.Lookup("db"))
}

// New reads the bound flags and KANADO_* environment variables out of v
// and returns the resolved configuration.
func New(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("kanado")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	c := &Config{
		Mode:   v.GetString("mode"),
		Addr:   v.GetString("addr"),
		Port:   v.GetInt("port"),
		DBPath: v.GetString("db"),
	}
	if c.Mode != "prod" && c.Mode != "dev" {
		return nil, fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return nil, fmt.Errorf("config: invalid port %d", c.Port)
	}
	if c.DBPath == "" {
		path, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("config: resolve database path: %w", err)
		}
		c.DBPath = path
	}
	return c, nil
}
