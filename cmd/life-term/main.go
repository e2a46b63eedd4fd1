package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"sparse-life/internal/app"
	"sparse-life/internal/core"
	"sparse-life/internal/store"
	"sparse-life/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 1
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The terminal owns stdout, so logs go to a file next to the saves.
	if err := os.MkdirAll(cfg.Saves, 0o755); err != nil {
		log.Fatalf("create save dir: %v", err)
	}
	logFile, err := os.OpenFile(filepath.Join(cfg.Saves, "life-term.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer logFile.Close()
	logger := log.New(logFile, "life-term ", log.LstdFlags)

	sc, err := cfg.Session(cfg.Bounds(), store.NewDir(cfg.Saves), logger)
	if err != nil {
		log.Fatal(err)
	}
	session := core.NewSession(sc)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	var sound term.Sound
	if cfg.Sound {
		spk, err := term.NewSpeaker()
		if err != nil {
			logger.Printf("audio initialization failed: %v", err)
		} else {
			defer spk.Close()
			sound = spk
		}
	}

	host := term.NewHost(screen, session, sound, logger)
	runErr := host.Run()
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
