package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/nstehr/shiny/bridge"
	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/config"
	"github.com/nstehr/shiny/ipc"
	"github.com/nstehr/shiny/plan"
)

const banner = `
 ___ _    _
/ __| |_ (_)_ _ _  _
\__ \ ' \| | ' \ || |
|___/_||_|_|_||_\_, |
                |__/

Setup Wizard Rules Bridge`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	fmt.Println(banner)

	cat := catalog.Default()
	if problems := catalog.Check(cat); len(problems) > 0 {
		for _, p := range problems {
			slog.Warn("catalog problem", "entity", p.Entity, "problem", p.Message)
		}
	}
	planner, err := plan.New(cat)
	if err != nil {
		slog.Error("failed to compile option sections", "error", err)
		os.Exit(1)
	}

	slog.Info("starting shiny",
		"setupCards", len(cat.SetupCards),
		"stories", len(cat.Stories),
		"expansions", len(cat.Expansions),
	)

	socketPath := cfg.SocketPath

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(socketPath); err != nil {
		slog.Error("failed to clean up socket", "path", socketPath, "error", err)
		os.Exit(1)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		slog.Error("failed to listen on socket", "path", socketPath, "error", err)
		os.Exit(1)
	}
	defer listener.Close()
	defer os.Remove(socketPath)

	slog.Info("listening on domain socket", "path", socketPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			slog.Info("new connection accepted")
			go handleConn(conn, cat, planner, cfg)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}

func handleConn(conn net.Conn, cat *catalog.Catalog, planner *plan.Planner, cfg config.Config) {
	c := ipc.NewConnection(conn, nil)
	bridge.New(c, cat, planner, cfg).Register()
	c.ReadLoop()
}
