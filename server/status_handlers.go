package server

import (
	"net/http"
	"os"
	"post_bot/logic"
	"post_bot/shared"
	"strings"
	"time"
)

const versionFileName = "version.txt"

// Unauthenticated service status at the root.
type statusHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	bots      logic.IBotDirectory
	version   string
	startedAt time.Time
}

type statusModel struct {
	Service          string    `json:"service"`
	Version          string    `json:"version"`
	StartedAt        time.Time `json:"started_at"`
	UptimeSec        int64     `json:"uptime_sec"`
	LiveSessions     int       `json:"live_sessions"`
	AutopilotEnabled bool      `json:"autopilot_enabled"`
}

func NewStatusHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	bots logic.IBotDirectory,
) IHandlerGroup {
	res := statusHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		bots:      bots,
		startedAt: time.Now().UTC(),
	}
	versionBytes, _ := os.ReadFile(versionFileName)
	res.version = strings.TrimSpace(string(versionBytes))
	return &res
}

func (hg *statusHandlerGroup) Prefix() string {
	return "/status"
}

func (hg *statusHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", rootPlacholder, func(w http.ResponseWriter, r *http.Request) { hg.getStatus(w, r) }},
		{"GET", "", func(w http.ResponseWriter, r *http.Request) { hg.getStatus(w, r) }},
	}
}

func (hg *statusHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *statusHandlerGroup) getStatus(w http.ResponseWriter, r *http.Request) {
	model := statusModel{
		Service:          "post_bot",
		Version:          hg.version,
		StartedAt:        hg.startedAt,
		UptimeSec:        int64(time.Since(hg.startedAt).Seconds()),
		LiveSessions:     hg.bots.Count(),
		AutopilotEnabled: hg.cfg.Autopilot.Enabled,
	}
	writeJsonResponse(hg.logger, w, model)
}
