package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 8000
)

type Config struct {
	Host string `conf:"host" validate:"required"`
	Port int    `conf:"port" validate:"gte=0,lte=65535"`
}

// raw mirrors Config before PORT is parsed, so a malformed value is
// reported as such instead of being coerced by the unmarshaller.
type raw struct {
	Host string `conf:"host"`
	Port string `conf:"port"`
}

var envKeys = map[string]string{
	"HOST": "host",
	"PORT": "port",
}

// Load reads HOST and PORT from the environment. Unset or empty variables
// fall back to the defaults; a PORT that is not an integer is an error.
func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"host": DefaultHost,
		"port": strconv.Itoa(DefaultPort),
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var r raw
	if err := k.UnmarshalWithConf("", &r, koanf.UnmarshalConf{Tag: "conf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	port, err := strconv.Atoi(strings.TrimSpace(r.Port))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", r.Port, err)
	}

	c := &Config{Host: r.Host, Port: port}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// envValue keeps only the variables this service reads, and drops empty ones.
func envValue(key, value string) (string, any) {
	name, ok := envKeys[key]
	if !ok || value == "" {
		return "", nil
	}
	return name, value
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr is the host:port pair the listener binds to.
func (c *Config) Addr() string { return net.JoinHostPort(c.Host, strconv.Itoa(c.Port)) }

func (c *Config) BaseURL() string { return "http://" + c.Addr() }
