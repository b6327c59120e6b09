package server

import (
	"context"
	"github.com/gorilla/mux"
	"net/http"
	"post_bot/dal"
	"post_bot/dto"
	"post_bot/logic"
	"post_bot/shared"
	"strconv"
	"time"
)

// Exposes each user's Bot Mode session.
type botHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics logic.IMetrics
	bots    logic.IBotDirectory
	repo    dal.IRepo
}

func NewBotHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	bots logic.IBotDirectory,
	repo dal.IRepo,
) IHandlerGroup {
	res := botHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		bots:    bots,
		repo:    repo,
	}
	return &res
}

func (hg *botHandlerGroup) Prefix() string {
	return "/api/bot"
}

func (hg *botHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/{user}", func(w http.ResponseWriter, r *http.Request) { hg.getSnapshot(w, r) }},
		{"DELETE", "/{user}", func(w http.ResponseWriter, r *http.Request) { hg.deleteSession(w, r) }},
		{"POST", "/{user}/scan", func(w http.ResponseWriter, r *http.Request) { hg.postScan(w, r) }},
		{"POST", "/{user}/generate", func(w http.ResponseWriter, r *http.Request) { hg.postGenerate(w, r) }},
		{"POST", "/{user}/reset", func(w http.ResponseWriter, r *http.Request) { hg.postReset(w, r) }},
		{"PUT", "/{user}/posts/{id}", func(w http.ResponseWriter, r *http.Request) { hg.putPost(w, r) }},
		{"POST", "/{user}/posts/{id}/editing", func(w http.ResponseWriter, r *http.Request) { hg.postEditing(w, r) }},
		{"DELETE", "/{user}/posts/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deletePost(w, r) }},
		{"POST", "/{user}/posts/{id}/images", func(w http.ResponseWriter, r *http.Request) { hg.postImages(w, r) }},
		{"PUT", "/{user}/images/selection", func(w http.ResponseWriter, r *http.Request) { hg.putImageSelection(w, r) }},
		{"DELETE", "/{user}/images", func(w http.ResponseWriter, r *http.Request) { hg.deleteImages(w, r) }},
		{"POST", "/{user}/posts/{id}/publish", func(w http.ResponseWriter, r *http.Request) { hg.postPublish(w, r) }},
		{"POST", "/{user}/posts/{id}/schedule", func(w http.ResponseWriter, r *http.Request) { hg.postSchedule(w, r) }},
		{"POST", "/{user}/posts/{id}/save", func(w http.ResponseWriter, r *http.Request) { hg.postSave(w, r) }},
		{"GET", "/{user}/scheduled", func(w http.ResponseWriter, r *http.Request) { hg.getScheduled(w, r) }},
		{"PUT", "/{user}/scheduled/{sid}", func(w http.ResponseWriter, r *http.Request) { hg.putScheduled(w, r) }},
		{"DELETE", "/{user}/scheduled/{sid}", func(w http.ResponseWriter, r *http.Request) { hg.deleteScheduled(w, r) }},
		{"GET", "/{user}/usage", func(w http.ResponseWriter, r *http.Request) { hg.getUsage(w, r) }},
		{"GET", "/{user}/notices", func(w http.ResponseWriter, r *http.Request) { hg.getNotices(w, r) }},
		{"GET", "/{user}/history", func(w http.ResponseWriter, r *http.Request) { hg.getHistory(w, r) }},
	}
}

func (hg *botHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return apiKeyMW(hg.cfg, hg.logger)
}

// Returns the user's session, creating it. Only a scan starts a session.
func (hg *botHandlerGroup) bot(r *http.Request) logic.IBotMode {
	return hg.bots.Get(mux.Vars(r)["user"])
}

// Returns the user's session if there is one, or an untracked idle session otherwise.
func (hg *botHandlerGroup) existing(r *http.Request) logic.IBotMode {
	userId := mux.Vars(r)["user"]
	if bot, ok := hg.bots.Peek(userId); ok {
		return bot
	}
	return hg.bots.New(userId)
}

// Backend calls outlive the client's request; late results are settled by the session.
func detached(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func (hg *botHandlerGroup) getSnapshot(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("snapshot")
	defer obs.Finish()
	writeJsonResponse(hg.logger, w, hg.existing(r).Snapshot())
}

func (hg *botHandlerGroup) deleteSession(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("drop")
	defer obs.Finish()

	userId := mux.Vars(r)["user"]
	if !hg.bots.Drop(userId) {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}
	hg.logger.Infof("Dropped Bot Mode session for %s", userId)
	w.WriteHeader(http.StatusNoContent)
}

func (hg *botHandlerGroup) postScan(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("scan")
	defer obs.Finish()

	var req dto.ScanIn
	if !readJsonBody(hg.logger, w, r, &req) {
		return
	}
	res, err := hg.bot(r).Scan(detached(r), logic.ScanFilter{Hours: req.Hours, ActivityType: req.ActivityType})
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *botHandlerGroup) postGenerate(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("generate")
	defer obs.Finish()

	var req dto.GenerateIn
	if !readJsonBody(hg.logger, w, r, &req) {
		return
	}
	res, err := hg.existing(r).Generate(detached(r), req.ActivityIds, req.Style)
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *botHandlerGroup) postReset(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("reset")
	defer obs.Finish()

	bot := hg.existing(r)
	bot.Reset()
	writeJsonResponse(hg.logger, w, bot.Snapshot())
}

func (hg *botHandlerGroup) putPost(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("edit")
	defer obs.Finish()

	var req dto.EditIn
	if !readJsonBody(hg.logger, w, r, &req) {
		return
	}
	post, err := hg.existing(r).EditPost(mux.Vars(r)["id"], req.Content)
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, post)
}

func (hg *botHandlerGroup) postEditing(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("editing")
	defer obs.Finish()

	var req dto.EditingIn
	if !readJsonBody(hg.logger, w, r, &req) {
		return
	}
	bot := hg.existing(r)
	postId := mux.Vars(r)["id"]
	var post dto.Post
	var err error
	if req.Editing {
		post, err = bot.BeginEdit(postId)
	} else {
		post, err = bot.EndEdit(postId)
	}
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, post)
}

func (hg *botHandlerGroup) deletePost(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("discard")
	defer obs.Finish()

	if err := hg.existing(r).DiscardPost(mux.Vars(r)["id"]); err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *botHandlerGroup) postImages(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("images")
	defer obs.Finish()

	images, err := hg.existing(r).LoadImages(detached(r), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, map[string]any{"images": images})
}

func (hg *botHandlerGroup) putImageSelection(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("select_image")
	defer obs.Finish()

	var req dto.SelectImageIn
	if !readJsonBody(hg.logger, w, r, &req) {
		return
	}
	post, err := hg.existing(r).SelectImage(req.Url)
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, post)
}

func (hg *botHandlerGroup) deleteImages(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("close_images")
	defer obs.Finish()

	hg.existing(r).CloseImages()
	w.WriteHeader(http.StatusNoContent)
}

func (hg *botHandlerGroup) postPublish(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("publish")
	defer obs.Finish()

	var req dto.PublishIn
	if !readJsonBody(hg.logger, w, r, &req) {
		return
	}
	res, err := hg.existing(r).Publish(detached(r), mux.Vars(r)["id"], req.TestMode)
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *botHandlerGroup) getUsage(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("usage")
	defer obs.Finish()

	bot := hg.existing(r)
	usage, err := bot.RefreshUsage(detached(r))
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, map[string]any{
		"usage":         usage,
		"limit_reached": bot.IsLimitReached(),
	})
}

func (hg *botHandlerGroup) getNotices(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(hg.logger, w, map[string]any{"notices": hg.existing(r).DrainNotices()})
}

func (hg *botHandlerGroup) getHistory(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("history")
	defer obs.Finish()

	recs, err := hg.repo.GetPublishHistory(mux.Vars(r)["user"], historyLimit(r))
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	res := make([]dto.PublishRecord, 0, len(recs))
	for _, rec := range recs {
		res = append(res, dto.PublishRecord{
			PostId:         rec.PostId,
			ContentPreview: rec.ContentPreview,
			ImageUrl:       rec.ImageUrl,
			TestMode:       rec.TestMode,
			Success:        rec.Success,
			Error:          rec.Error,
			PublishedAt:    rec.PublishedAt,
		})
	}
	writeJsonResponse(hg.logger, w, map[string]any{"history": res})
}

func (hg *botHandlerGroup) postSchedule(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("schedule")
	defer obs.Finish()

	var req dto.ScheduleIn
	if !readJsonBody(hg.logger, w, r, &req) {
		return
	}
	res, err := hg.existing(r).Schedule(detached(r), mux.Vars(r)["id"], time.Unix(req.ScheduledTime, 0))
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *botHandlerGroup) postSave(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("save")
	defer obs.Finish()

	res, err := hg.existing(r).SaveDraft(detached(r), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *botHandlerGroup) getScheduled(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("scheduled")
	defer obs.Finish()

	includePast := r.URL.Query().Get("include_past") == "true"
	posts, err := hg.existing(r).ListScheduled(r.Context(), includePast)
	if err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	writeJsonResponse(hg.logger, w, map[string]any{"scheduled": posts})
}

func (hg *botHandlerGroup) putScheduled(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("reschedule")
	defer obs.Finish()

	sid, ok := scheduledId(w, r)
	if !ok {
		return
	}
	var req dto.RescheduleIn
	if !readJsonBody(hg.logger, w, r, &req) {
		return
	}
	if err := hg.existing(r).Reschedule(detached(r), sid, time.Unix(req.NewTime, 0)); err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *botHandlerGroup) deleteScheduled(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("cancel_scheduled")
	defer obs.Finish()

	sid, ok := scheduledId(w, r)
	if !ok {
		return
	}
	if err := hg.existing(r).CancelScheduled(detached(r), sid); err != nil {
		writeDomainError(hg.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func scheduledId(w http.ResponseWriter, r *http.Request) (int64, bool) {
	sid, err := strconv.ParseInt(mux.Vars(r)["sid"], 10, 64)
	if err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return 0, false
	}
	return sid, true
}
