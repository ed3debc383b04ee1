package telegram

import (
	"fmt"

	"github.com/ilyadubrovsky/grades-calculator/internal/config"
	"github.com/ilyadubrovsky/grades-calculator/internal/domain"
	"github.com/ilyadubrovsky/grades-calculator/internal/service"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"
)

type svc struct {
	coursesSvc service.Courses
	formStates *ttlcache.Cache[int64, domain.FormState]
	bot        *tele.Bot
	cfg        config.Telegram
}

func NewService(
	coursesSvc service.Courses,
	cfg config.Telegram,
) (*svc, error) {
	bot, err := createBot(cfg)
	if err != nil {
		return nil, fmt.Errorf("createBot: %w", err)
	}

	s := &svc{
		coursesSvc: coursesSvc,
		formStates: ttlcache.New[int64, domain.FormState](
			ttlcache.WithTTL[int64, domain.FormState](cfg.FormStateTTL),
		),
		bot: bot,
		cfg: cfg,
	}

	s.setBotSettings()

	return s, nil
}

func createBot(cfg config.Telegram) (*tele.Bot, error) {
	pref := tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: cfg.LongPollerDelay},
		OnError: func(err error, c tele.Context) {
			log.Error().Fields(extractTelebotFields(c)).
				Msgf("bot.OnError: %v", err.Error())
		},
	}

	abot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("tele.NewBot: %w", err)
	}

	return abot, nil
}

func (s *svc) setBotSettings() {
	// the course list belongs to a single owner
	s.bot.Use(middleware.Whitelist(s.cfg.OwnerID))

	s.bot.Handle("/start", s.handleStartCommand)

	s.bot.Handle("/help", s.handleHelpCommand)

	s.bot.Handle("/calc", s.handleCalcCommand)

	s.bot.Handle("/add", s.handleAddCommand)

	s.bot.Handle("/addfull", s.handleAddFullCommand)

	s.bot.Handle("/edit", s.handleEditCommand)

	s.bot.Handle("/cancel", s.handleCancelCommand)

	s.bot.Handle("/delete", s.handleDeleteCommand)

	s.bot.Handle("/list", s.handleListCommand)

	s.bot.Handle("/export", s.handleExportCommand)

	s.bot.Handle("/xlsx", s.handleXLSXCommand)

	s.bot.Handle(tele.OnDocument, s.handleDocument)

	s.bot.Handle(tele.OnText, s.handleText)
}

func (s *svc) SendMessageWithOpts(id int64, message string, opts ...interface{}) error {
	_, err := s.bot.Send(tele.ChatID(id), message, opts...)
	return err
}

func (s *svc) formState(chatID int64) domain.FormState {
	item := s.formStates.Get(chatID)
	if item == nil {
		return domain.FormState{}
	}

	return item.Value()
}

func (s *svc) saveFormState(chatID int64, state domain.FormState) {
	s.formStates.Set(chatID, state, ttlcache.DefaultTTL)
}

func (s *svc) Start() {
	go s.formStates.Start()
	s.bot.Start()
}

func (s *svc) Stop() {
	s.bot.Stop()
	s.formStates.Stop()
}

func extractTelebotFields(c tele.Context) map[string]interface{} {
	fields := make(map[string]interface{})
	if c == nil {
		return fields
	}

	if sender := c.Sender(); sender != nil {
		fields["user"] = sender.ID
	}
	if message := c.Message(); message != nil {
		fields["text"] = message.Text
	}

	return fields
}
