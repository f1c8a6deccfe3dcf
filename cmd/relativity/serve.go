package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-relativity/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the level menu.
Runs are stored per-server (all users share the same scoreboard) and
tagged with the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.relativity/host_key

Examples:
  relativity serve                           # Listen on :23234 with auto-generated key
  relativity serve --ssh :2222               # Listen on port 2222
  relativity serve --host-key ./my_host_key  # Use specific host key
  relativity serve --db ./runs.db            # Use specific database

Settings may also come from the environment or a .env file in the
working directory; flags given on the command line win:
  RELATIVITY_SSH_ADDR, RELATIVITY_HOST_KEY, RELATIVITY_DB,
  RELATIVITY_IDLE_TIMEOUT (minutes)

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := newLogger(false)
	if err := applyServeEnv(cmd); err != nil {
		return err
	}

	env, err := loadEnv(logger, false)
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, env)
	if err != nil {
		return err
	}

	fmt.Printf("Starting relativity SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// applyServeEnv fills flags the user did not set from the environment,
// loading .env first when present.
func applyServeEnv(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	set := func(flag, key string, dst *string) {
		if v := os.Getenv(key); v != "" && !cmd.Flags().Changed(flag) {
			*dst = v
		}
	}
	set("ssh", "RELATIVITY_SSH_ADDR", &flagSSHAddr)
	set("host-key", "RELATIVITY_HOST_KEY", &flagHostKey)
	set("db", "RELATIVITY_DB", &flagDBPath)

	if v := os.Getenv("RELATIVITY_IDLE_TIMEOUT"); v != "" && !cmd.Flags().Changed("idle-timeout") {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RELATIVITY_IDLE_TIMEOUT: %w", err)
		}
		flagIdleTimeout = minutes
	}
	return nil
}

// port returns the port part of a host:port address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
