// Package config loads mcclient's YAML configuration file, mirroring the
// Config-struct-plus-defaults pattern of
// _examples/dmitrymodder-minewire/main.go (there: server.yaml decoded into
// a Config struct, with zero-valued fields patched to defaults afterward).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Lemiort/mclib/protocol"
)

// Config is mcclient's on-disk configuration.
type Config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Version  int32  `yaml:"protocol_version"`
	Username string `yaml:"username"`

	// AccessToken authenticates a premium session join (spec.md §4.6
	// step 3); leave empty to log in offline-mode, which only works
	// against a server with online-mode disabled.
	AccessToken string `yaml:"access_token"`

	// ViewDistance, Locale, and MainHand seed the ClientSettings sent
	// once Play begins (SPEC_FULL.md §4.10); MainHand is "left" or
	// "right".
	ViewDistance uint8  `yaml:"view_distance"`
	Locale       string `yaml:"locale"`
	MainHand     string `yaml:"main_hand"`

	// CompressionThreshold, when non-negative, is installed on the
	// connection before Login starts; a SetCompression the server sends
	// during Login replaces it. -1 leaves compression off until the server
	// enables it.
	CompressionThreshold int32 `yaml:"compression_threshold"`

	LogLevel string `yaml:"log_level"`
}

const (
	defaultHost         = "127.0.0.1"
	defaultPort         = 25565
	defaultVersion      = int32(protocol.Minecraft_1_12_2)
	defaultViewDistance = 16
	defaultLocale       = "en_GB"
	defaultMainHand     = "right"
	defaultLogLevel     = "info"
)

// Default returns a Config with every field at its default value.
func Default() Config {
	return Config{
		Host:                 defaultHost,
		Port:                 defaultPort,
		Version:              defaultVersion,
		ViewDistance:         defaultViewDistance,
		Locale:               defaultLocale,
		MainHand:             defaultMainHand,
		CompressionThreshold: -1,
		LogLevel:             defaultLogLevel,
	}
}

// Load reads and decodes the YAML file at path, applying defaults to any
// field the file omits.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	// Decode over the defaulted struct: yaml.v3 only touches keys present
	// in the file, so an omitted field keeps its default.
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: invalid %s: %w", path, err)
	}

	return cfg, nil
}
