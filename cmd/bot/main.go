package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yoteibot/yoteibot/config"
	"github.com/yoteibot/yoteibot/internal/bot"
	"github.com/yoteibot/yoteibot/internal/clients/caldav"
	"github.com/yoteibot/yoteibot/internal/clients/feed"
	"github.com/yoteibot/yoteibot/internal/scheduler"
	"github.com/yoteibot/yoteibot/internal/service"
	"github.com/yoteibot/yoteibot/internal/storage"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := storage.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}
	defer store.Close()

	var source service.EventSource
	if cfg.UseCalDAV() {
		source = caldav.NewClient(cfg.CalDAVURL, cfg.CalDAVUsername, cfg.CalDAVPassword, cfg.CalDAVCalendar)
		log.Println("Using CalDAV event source")
	} else {
		source = feed.NewClient(cfg.CalendarURL, cfg.FetchTimeout)
	}

	agendaSvc := service.NewAgendaService(source, cfg.Offset)

	tgBot, err := bot.New(cfg, store, agendaSvc)
	if err != nil {
		log.Fatalf("Failed to init bot: %v", err)
	}

	sched := scheduler.New(cfg, store, agendaSvc)
	sched.SetSender(tgBot)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := sched.Start(ctx); err != nil {
			log.Printf("Scheduler error: %v", err)
		}
	}()

	go func() {
		if err := tgBot.Start(ctx); err != nil {
			log.Printf("Bot error: %v", err)
		}
	}()

	log.Println("yoteibot started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")

	cancel()
	sched.Stop()

	log.Println("yoteibot stopped")
}
