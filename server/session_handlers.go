package server

import (
	"github.com/gorilla/mux"
	"net/http"
	"post_bot/dto"
	"post_bot/logic"
	"post_bot/shared"
)

// Manages the LinkedIn connection of each user.
type sessionHandlerGroup struct {
	cfg      *shared.Config
	logger   shared.ILogger
	metrics  logic.IMetrics
	sessions logic.ISessionManager
}

func NewSessionHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	sessions logic.ISessionManager,
) IHandlerGroup {
	res := sessionHandlerGroup{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		sessions: sessions,
	}
	return &res
}

func (hg *sessionHandlerGroup) Prefix() string {
	return "/api/session"
}

func (hg *sessionHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/{user}", func(w http.ResponseWriter, r *http.Request) { hg.getSession(w, r) }},
		{"POST", "/{user}/linkedin", func(w http.ResponseWriter, r *http.Request) { hg.postLinkedIn(w, r) }},
		{"DELETE", "/{user}/linkedin", func(w http.ResponseWriter, r *http.Request) { hg.deleteLinkedIn(w, r) }},
		{"POST", "/{user}/verify", func(w http.ResponseWriter, r *http.Request) { hg.postVerify(w, r) }},
	}
}

func (hg *sessionHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return apiKeyMW(hg.cfg, hg.logger)
}

func (hg *sessionHandlerGroup) getSession(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("session")
	defer obs.Finish()

	sess, err := hg.sessions.Get(mux.Vars(r)["user"])
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, sess)
}

func (hg *sessionHandlerGroup) postLinkedIn(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("connect")
	defer obs.Finish()

	var req dto.ConnectIn
	if !readJsonBody(hg.logger, w, r, &req) {
		return
	}
	sess, err := hg.sessions.Connect(mux.Vars(r)["user"], req.UserUrn)
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, sess)
}

func (hg *sessionHandlerGroup) deleteLinkedIn(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("disconnect")
	defer obs.Finish()

	if err := hg.sessions.Disconnect(mux.Vars(r)["user"]); err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *sessionHandlerGroup) postVerify(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("verify")
	defer obs.Finish()

	sess, err := hg.sessions.Verify(r.Context(), mux.Vars(r)["user"])
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, sess)
}
