package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/yoteibot/yoteibot/config"
	"github.com/yoteibot/yoteibot/internal/domain"
	"github.com/yoteibot/yoteibot/internal/service"
)

type MessageSender interface {
	SendMessage(chatID int64, text string) error
}

type SubscriptionSource interface {
	ListSubscriptions() ([]*domain.Subscription, error)
}

// Scheduler fires the daily agenda delivery at the configured local
// wall-clock time.
type Scheduler struct {
	cron   *cron.Cron
	cfg    *config.Config
	subs   SubscriptionSource
	agenda *service.AgendaService
	sender MessageSender
}

func New(cfg *config.Config, subs SubscriptionSource, agenda *service.AgendaService) *Scheduler {
	c := cron.New(cron.WithLocation(cfg.Timezone))

	return &Scheduler{
		cron:   c,
		cfg:    cfg,
		subs:   subs,
		agenda: agenda,
	}
}

func (s *Scheduler) SetSender(sender MessageSender) {
	s.sender = sender
}

func (s *Scheduler) Start(ctx context.Context) error {
	hour, minute, err := config.ParseClock(s.cfg.SendTime)
	if err != nil {
		return fmt.Errorf("parse send time: %w", err)
	}

	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	if _, err := s.cron.AddFunc(spec, s.DailyAgenda); err != nil {
		return fmt.Errorf("add daily agenda: %w", err)
	}

	s.cron.Start()
	log.Printf("Scheduler started (TZ: %s, send time: %s)", s.cfg.Timezone, s.cfg.SendTime)

	<-ctx.Done()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Scheduler stopped")
}

// DailyAgenda runs one scheduled tick: fetch tomorrow's events once, format
// once, deliver to every subscribed chat. Delivery failures are independent:
// one broken chat never blocks the rest. A fetch failure is delivered as an
// explicit failure notice, not silence.
func (s *Scheduler) DailyAgenda() {
	if s.sender == nil {
		return
	}

	subs, err := s.subs.ListSubscriptions()
	if err != nil {
		log.Printf("Error listing subscriptions: %v", err)
		return
	}
	if len(subs) == 0 {
		log.Println("Daily agenda: no subscribed chats, skipping")
		return
	}

	events, day, err := s.agenda.EventsForTomorrow(context.Background())

	var text string
	if err != nil {
		log.Printf("Error fetching tomorrow's events: %v", err)
		text = service.FetchFailureMessage
	} else {
		text = service.FormatAgenda(day, events, s.cfg.Timezone)
	}

	for _, sub := range subs {
		if err := s.sender.SendMessage(sub.ChatID, text); err != nil {
			log.Printf("Error sending daily agenda to chat %d: %v", sub.ChatID, err)
			continue
		}
	}
}
