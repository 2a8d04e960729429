package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifeview/internal/config"
	"lifeview/internal/session"
	"lifeview/internal/term"
)

func main() {
	cfg, _, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	s, err := session.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fe := term.New(screen, s, time.Second/time.Duration(cfg.TPS))
	err = fe.Run(ctx)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
