package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/starwave/internal/audio"
	"github.com/tomz197/starwave/internal/config"
	"github.com/tomz197/starwave/internal/event"
	"github.com/tomz197/starwave/internal/highscore"
	"github.com/tomz197/starwave/internal/loop/client"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The terminal belongs to the game, so logs only go to a file when asked.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("STARWAVE_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{ReportTimestamp: true, Prefix: "starwave"})

	store, err := highscore.OpenSQLite(config.GetEnv("STARWAVE_DB", "starwave.db"), logger)
	if err != nil {
		return err
	}
	defer store.Close()

	seed := config.GetEnvInt("STARWAVE_SEED", 0)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", seed)

	var listeners []event.Listener
	if config.GetEnvBool("STARWAVE_SOUND", true) {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			// Non-fatal, the game runs without sound.
			logger.Warn("audio unavailable", "err", err)
		} else {
			defer player.Close()
			listeners = append(listeners, player)
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	c := client.NewClient(bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Username:  os.Getenv("USER"),
		Store:     store,
		Rand:      rand.New(rand.NewSource(seed)),
		Logger:    logger,
		Listeners: listeners,
	})
	return c.Run()
}
