package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:",squash"`
	Line   LineConfig   `mapstructure:",squash"`
	Relay  RelayConfig  `mapstructure:",squash"`
}

type ServerConfig struct {
	Port string `mapstructure:"PORT"`
}

type LineConfig struct {
	ChannelToken string `mapstructure:"LINE_CHANNEL_TOKEN"`
	APIBase      string `mapstructure:"LINE_API_BASE"`
}

type RelayConfig struct {
	// DefaultRecipient is the legacy fallback target used when an event
	// carries no explicit target and no source identifiers.
	DefaultRecipient string `mapstructure:"DEFAULT_RECIPIENT_ID"`

	// Recognized ticket "type" markers. Source systems disagree on the
	// exact strings, so both the exact set and the prefix family are
	// configuration, comma separated.
	TicketMarkers        string `mapstructure:"TICKET_MARKERS"`
	TicketMarkerPrefixes string `mapstructure:"TICKET_MARKER_PREFIXES"`
}

// Load reads .env (if present) and the environment into a Config.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, relying on environment variables: %v", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("Unable to decode into struct: %v", err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Line.APIBase == "" {
		cfg.Line.APIBase = "https://api.line.me"
	}
	if cfg.Relay.TicketMarkers == "" {
		cfg.Relay.TicketMarkers = "ticket"
	}
	if cfg.Relay.TicketMarkerPrefixes == "" {
		cfg.Relay.TicketMarkerPrefixes = "Ticket-"
	}

	return cfg
}

// TicketMarkerList returns the exact-match ticket markers.
func (c RelayConfig) TicketMarkerList() []string {
	return splitList(c.TicketMarkers)
}

// TicketPrefixList returns the prefix-family ticket markers.
func (c RelayConfig) TicketPrefixList() []string {
	return splitList(c.TicketMarkerPrefixes)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
