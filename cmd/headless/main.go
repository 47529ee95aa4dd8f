package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/squadfall/bot"
	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/headless"
	"github.com/automoto/squadfall/session"
)

func main() {
	tickRate := flag.Int("tickrate", cfg.C.TPS, "Simulation tick rate (updates per second)")
	duration := flag.Duration("duration", 0, "Stop after this long (0 = until interrupted)")
	ticks := flag.Int("ticks", 0, "Run this many ticks as fast as possible instead of in real time")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	champion := flag.String("champion", cfg.AllyGunGuy.String(), "Champion the autopilot picks")
	difficulty := flag.String("difficulty", "normal", "Autopilot difficulty: easy, normal or hard")
	logEvery := flag.Int("log-every", 0, "Ticks between summary lines (0 = every 10 seconds)")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("tick rate must be positive, got %d", *tickRate)
	}
	pick, ok := cfg.ParseAllyType(*champion)
	if !ok {
		log.Fatalf("unknown champion %q", *champion)
	}
	level, ok := cfg.ParseBotDifficulty(*difficulty)
	if !ok {
		log.Fatalf("unknown difficulty %q", *difficulty)
	}

	var opts []session.Option
	if *seed != 0 {
		opts = append(opts, session.WithSeed(*seed))
	}
	s := session.New(opts...)
	loop := headless.NewGameLoop(s, bot.New(level, pick), *tickRate)
	if *logEvery > 0 {
		loop.SetLogEvery(*logEvery)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()
	if *duration > 0 {
		time.AfterFunc(*duration, loop.Stop)
	}

	log.Printf("Starting headless session (champion %s, difficulty %s, tick rate %d/s)", pick, *difficulty, *tickRate)
	if *ticks > 0 {
		loop.RunTicks(*ticks)
		return
	}
	loop.Run()
}
