package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zlog "github.com/rs/zerolog/log"

	"github.com/kemblesong/music-player-challenge/internal/config"
	"github.com/kemblesong/music-player-challenge/internal/library"
	"github.com/kemblesong/music-player-challenge/internal/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Log)

	// The canned library service runs in-process on a loopback
	// listener; the UI talks to it over plain HTTP like it would to a
	// real backend.
	ln, err := net.Listen("tcp", cfg.Library.Addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	srv := library.NewServer(time.Duration(cfg.Library.DelayMs) * time.Millisecond)
	go func() {
		if err := http.Serve(ln, srv); err != nil {
			zlog.Error().Err(err).Msg("library service stopped")
		}
	}()
	zlog.Info().Str("addr", ln.Addr().String()).Msg("library service listening")

	client := library.NewClient("http://" + ln.Addr().String())

	program := tea.NewProgram(
		newStartupModel(client, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
