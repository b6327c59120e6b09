package logic

import (
	"post_bot/dal"
	"post_bot/shared"
	"post_bot/texts"
	"sync"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_bot_directory.go -package mocks post_bot/logic IBotDirectory

// IBotDirectory owns the live Bot Mode session of every user.
type IBotDirectory interface {
	// Get returns the user's session, creating it on first use.
	Get(userId string) IBotMode
	// Peek returns the user's session only if one exists.
	Peek(userId string) (IBotMode, bool)
	Drop(userId string) bool
	Count() int
	// New creates a session that is not tracked by the directory.
	New(userId string) IBotMode
}

type botDirectory struct {
	cfg      *shared.Config
	logger   shared.ILogger
	backend  IBackendClient
	repo     dal.IRepo
	sessions ISessionManager
	txt      texts.ITexts
	metrics  IMetrics
	mu       sync.Mutex
	bots     map[string]IBotMode
}

func NewBotDirectory(
	cfg *shared.Config,
	logger shared.ILogger,
	backend IBackendClient,
	repo dal.IRepo,
	sessions ISessionManager,
	txt texts.ITexts,
	metrics IMetrics,
) IBotDirectory {
	return &botDirectory{
		cfg:      cfg,
		logger:   logger,
		backend:  backend,
		repo:     repo,
		sessions: sessions,
		txt:      txt,
		metrics:  metrics,
		bots:     map[string]IBotMode{},
	}
}

func (bd *botDirectory) New(userId string) IBotMode {
	return NewBotMode(userId, bd.cfg, bd.logger, bd.backend, bd.repo, bd.sessions, bd.txt, bd.metrics)
}

func (bd *botDirectory) Get(userId string) IBotMode {
	bd.mu.Lock()
	defer bd.mu.Unlock()
	if bot, ok := bd.bots[userId]; ok {
		return bot
	}
	bot := bd.New(userId)
	bd.bots[userId] = bot
	bd.logger.Debugf("Created Bot Mode session for %s", userId)
	bd.metrics.LiveSessions(len(bd.bots))
	return bot
}

func (bd *botDirectory) Peek(userId string) (IBotMode, bool) {
	bd.mu.Lock()
	defer bd.mu.Unlock()
	bot, ok := bd.bots[userId]
	return bot, ok
}

func (bd *botDirectory) Drop(userId string) bool {
	bd.mu.Lock()
	defer bd.mu.Unlock()
	if _, ok := bd.bots[userId]; !ok {
		return false
	}
	delete(bd.bots, userId)
	bd.metrics.LiveSessions(len(bd.bots))
	return true
}

func (bd *botDirectory) Count() int {
	bd.mu.Lock()
	defer bd.mu.Unlock()
	return len(bd.bots)
}
