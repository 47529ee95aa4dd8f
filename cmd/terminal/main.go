package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/session"
	"github.com/automoto/squadfall/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	tickRate := flag.Int("tickrate", config.C.TPS, "Simulation tick rate (updates per second)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	logPath := flag.String("log", "", "Write the session log to this file (the terminal is busy drawing)")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("tick rate must be positive, got %d", *tickRate)
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	var opts []session.Option
	if *seed != 0 {
		opts = append(opts, session.WithSeed(*seed))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("open terminal: %v", err)
	}
	host := terminal.NewHost(screen, session.New(opts...), *tickRate)
	if err := host.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("terminal host: %v", err)
	}
}
