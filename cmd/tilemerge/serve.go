package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tilemerge/internal/platform/tui"
	"github.com/vovakirdan/tilemerge/internal/platform/web"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagNoSSH       bool
	flagNoHTTP      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve tilemerge over SSH and websocket",
	Long: `Start an SSH server and an HTTP server sharing one leaderboard.

Each SSH connection gets its own session with a variant picker.
The HTTP server exposes:
  GET /health             - liveness probe
  GET /variants           - registered boards
  GET /scores/{variant}   - top runs (?limit=N)
  GET /ws                 - one game per websocket (?variant=&seed=&player=)

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tilemerge/host_key

Examples:
  tilemerge serve                          # SSH on :23234, HTTP on :8080
  tilemerge serve --ssh :2222 --http :9000
  tilemerge serve --no-ssh                 # websocket only
  tilemerge serve --host-key ./my_host_key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagNoSSH, "no-ssh", false, "Do not start the SSH server")
	serveCmd.Flags().BoolVar(&flagNoHTTP, "no-http", false, "Do not start the HTTP server")
}

func runServe(cmd *cobra.Command, _ []string) {
	srv := appCfg.Server
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		srv.SSHAddr = flagSSHAddr
	}
	if flags.Changed("http") {
		srv.HTTPAddr = flagHTTPAddr
	}
	if flags.Changed("host-key") {
		srv.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		srv.IdleTimeout = flagIdleTimeout
	}

	if flagNoSSH && flagNoHTTP {
		fmt.Fprintln(os.Stderr, "Error: nothing to serve, both --no-ssh and --no-http given")
		os.Exit(1)
	}

	store, err := storage.Open(appCfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if !flagNoSSH {
		sshServer, err := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     srv.SSHAddr,
			HostKeyPath: srv.HostKeyPath,
			IdleTimeout: time.Duration(srv.IdleTimeout) * time.Minute,
			Game:        appCfg.Game,
		}, store, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
			os.Exit(1)
		}
		g.Go(func() error { return sshServer.ListenAndServe(ctx) })
		fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(srv.SSHAddr))
	}

	if !flagNoHTTP {
		webServer := web.New(store, appCfg.Game, logger)
		g.Go(func() error { return webServer.ListenAndServe(ctx, srv.HTTPAddr) })
		fmt.Printf("Websocket endpoint: ws://localhost:%s/ws\n", portOf(srv.HTTPAddr))
	}

	fmt.Println("Press Ctrl+C to stop")

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
