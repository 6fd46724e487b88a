// Package main implements mcclient, a thin command-line driver around
// mclib: it loads a config file, connects, logs in, and pumps the Play
// loop while printing chat and disconnect events.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Lemiort/mclib/config"
	"github.com/Lemiort/mclib/core"
	"github.com/Lemiort/mclib/packets"
	"github.com/Lemiort/mclib/protocol"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "mcclient [[host] port]",
		Short: "connect to a Minecraft Java Edition server and hold the connection open",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, args)
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(configPath string, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	portArg := ""
	switch len(args) {
	case 1:
		portArg = args[0]
	case 2:
		cfg.Host = args[0]
		portArg = args[1]
	}
	if portArg != "" {
		port, err := strconv.Atoi(portArg)
		if err != nil {
			return fmt.Errorf("mcclient: invalid port %q: %w", portArg, err)
		}
		cfg.Port = port
	}
	if cfg.Username == "" {
		cfg.Username = "mcclient"
	}

	log := newLogger(cfg.LogLevel)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	log.WithField("addr", addr).Info("dialing")

	conn, err := core.Dial(addr, protocol.Version(cfg.Version), log.WithField("component", "connection"))
	if err != nil {
		return err
	}
	defer conn.Close()

	// Primes the frame layer's assumed compression threshold; a
	// SetCompression packet arriving during Login overrides this
	// reactively (core/login.go), same as a real server's own policy
	// would.
	if cfg.CompressionThreshold >= 0 {
		conn.SetCompressionThreshold(cfg.CompressionThreshold)
	}

	result, err := conn.Login(cfg.Host, uint16(cfg.Port), core.Credentials{
		Username:    cfg.Username,
		AccessToken: cfg.AccessToken,
	})
	if err != nil {
		return fmt.Errorf("mcclient: login: %w", err)
	}
	log.WithFields(logrus.Fields{"username": result.Username, "uuid": result.UUID}).Info("logged in")

	client := core.NewClient(conn, log.WithField("component", "client"))
	client.On("Chat", func(p packets.Inbound) {
		log.Info("chat message received")
	})

	settings := core.NewClientSettings().
		SetLocale(cfg.Locale).
		SetViewDistance(cfg.ViewDistance).
		SetMainHand(parseMainHand(cfg.MainHand))
	if err := client.SendSettings(settings); err != nil {
		log.WithError(err).Warn("send client settings")
	}

	status := client.Block()
	log.WithFields(logrus.Fields{"status": status, "reason": client.Err()}).Info("connection closed")
	if status != core.StatusDisconnected {
		return client.Err()
	}
	return nil
}

// parseMainHand maps the config file's "left"/"right" string onto
// core.MainHand, defaulting to right for anything else.
func parseMainHand(hand string) core.MainHand {
	if hand == "left" {
		return core.MainHandLeft
	}
	return core.MainHandRight
}

func newLogger(level string) *logrus.Entry {
	l := logrus.New()
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)
	return logrus.NewEntry(l)
}
