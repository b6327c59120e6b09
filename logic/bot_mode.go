package logic

import (
	"context"
	"fmt"
	"post_bot/dal"
	"post_bot/dto"
	"post_bot/shared"
	"post_bot/texts"
	"sort"
	"strconv"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_bot_mode.go -package mocks post_bot/logic IBotMode

const (
	actionScan     = "scan"
	actionGenerate = "generate"
	actionImages   = "images"
)

const (
	publishModeLive = "live"
	publishModeTest = "test"
)

type ScanFilter struct {
	Hours        int
	ActivityType dto.ActivityType
}

// IBotMode is one user's scan -> generate -> publish session.
type IBotMode interface {
	UserId() string
	Scan(ctx context.Context, filter ScanFilter) (*dto.ScanOut, error)
	Generate(ctx context.Context, activityIds []string, style string) (*dto.GenerateOut, error)
	Reset()
	EditPost(postId, content string) (dto.Post, error)
	BeginEdit(postId string) (dto.Post, error)
	EndEdit(postId string) (dto.Post, error)
	DiscardPost(postId string) error
	LoadImages(ctx context.Context, postId string) ([]dto.Image, error)
	SelectImage(imageUrl *string) (dto.Post, error)
	CloseImages()
	Publish(ctx context.Context, postId string, testMode bool) (*dto.PublishOut, error)
	Schedule(ctx context.Context, postId string, at time.Time) (*dto.ScheduleOut, error)
	ListScheduled(ctx context.Context, includePast bool) ([]dto.ScheduledPost, error)
	CancelScheduled(ctx context.Context, scheduledId int64) error
	Reschedule(ctx context.Context, scheduledId int64, at time.Time) error
	SaveDraft(ctx context.Context, postId string) (*dto.SaveDraftOut, error)
	RefreshUsage(ctx context.Context) (*dto.Usage, error)
	Usage() *dto.Usage
	IsLimitReached() bool
	Snapshot() *dto.BotSnapshot
	DrainNotices() []dto.Notice
}

// ticket identifies one dispatched backend request. Its response is applied only if no newer
// request of the same action was dispatched and no reset happened in between.
type ticket struct {
	action string
	seq    uint64
	epoch  uint64
}

type imagePicker struct {
	postId  string
	images  []dto.Image
	loading bool
}

type botMode struct {
	userId   string
	cfg      *shared.Config
	logger   shared.ILogger
	backend  IBackendClient
	repo     dal.IRepo
	sessions ISessionManager
	txt      texts.ITexts
	metrics  IMetrics

	activities *activityStore
	posts      *postQueue
	usage      *usageGate
	notices    *noticeBoard

	mu             sync.Mutex
	state          dto.BotState
	suggestionMode bool
	suggested      []dto.Activity
	epoch          uint64
	lastSeq        map[string]uint64
	inFlight       map[string]uint64
	publishing     map[string]uint64 // post id -> epoch the request was sent in
	picker         *imagePicker
}

func NewBotMode(
	userId string,
	cfg *shared.Config,
	logger shared.ILogger,
	backend IBackendClient,
	repo dal.IRepo,
	sessions ISessionManager,
	txt texts.ITexts,
	metrics IMetrics,
) IBotMode {
	return &botMode{
		userId:     userId,
		cfg:        cfg,
		logger:     logger,
		backend:    backend,
		repo:       repo,
		sessions:   sessions,
		txt:        txt,
		metrics:    metrics,
		activities: newActivityStore(),
		posts:      newPostQueue(),
		usage:      newUsageGate(userId, backend),
		notices:    newNoticeBoard(cfg.Bot.MaxNotices),
		state:      dto.StateIdle,
		suggested:  []dto.Activity{},
		lastSeq:    map[string]uint64{},
		inFlight:   map[string]uint64{},
		publishing: map[string]uint64{},
	}
}

func (bm *botMode) UserId() string {
	return bm.userId
}

func (bm *botMode) dispatch(action string) ticket {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.dispatchLocked(action)
}

func (bm *botMode) dispatchLocked(action string) ticket {
	bm.lastSeq[action]++
	t := ticket{action, bm.lastSeq[action], bm.epoch}
	bm.inFlight[action] = t.seq
	return t
}

// settleLocked marks the request done and tells whether its response may still be applied.
func (bm *botMode) settleLocked(t ticket) bool {
	if bm.inFlight[t.action] == t.seq {
		delete(bm.inFlight, t.action)
	}
	if t.seq != bm.lastSeq[t.action] || t.epoch != bm.epoch {
		bm.logger.Infof("Dropping stale %s response for %s (seq %d, epoch %d)", t.action, bm.userId, t.seq, t.epoch)
		bm.metrics.StaleResponseDropped(t.action)
		return false
	}
	return true
}

func (bm *botMode) Scan(ctx context.Context, filter ScanFilter) (*dto.ScanOut, error) {

	hours := filter.Hours
	if hours <= 0 {
		hours = bm.cfg.Bot.DefaultScanHours
	}
	req := dto.ScanRequest{UserId: bm.userId, Hours: hours}
	filtered := filter.ActivityType.IsFilter()
	if filtered {
		req.ActivityType = filter.ActivityType
	}

	t := bm.dispatch(actionScan)
	bm.logger.Debugf("Scanning for %s: %d hours, type '%s'", bm.userId, hours, req.ActivityType)
	resp, err := bm.backend.Scan(ctx, &req)

	bm.mu.Lock()
	defer bm.mu.Unlock()

	if !bm.settleLocked(t) {
		return nil, ErrStaleResponse
	}
	if err != nil {
		bm.logger.Warnf("Scan failed for %s: %v", bm.userId, err)
		bm.metrics.ScanCompleted("error")
		bm.notices.Add(dto.NoticeError, bm.txt.WithVals("scan-failed", map[string]string{"error": UserMessage(err)}))
		return nil, err
	}

	hoursStr := strconv.Itoa(hours)
	found := resp.Activities
	if !filtered && len(found) == 0 {
		found = resp.AllActivities
	}

	res := &dto.ScanOut{}
	if len(found) > 0 {
		bm.activities.Replace(found)
		bm.suggestionMode = false
		bm.suggested = []dto.Activity{}
		bm.state = dto.StateScanned
		bm.metrics.ScanCompleted("found")
		bm.notices.Add(dto.NoticeSuccess, bm.txt.WithVals("scan-found", map[string]string{
			"count": strconv.Itoa(len(found)),
			"hours": hoursStr,
		}))
		bm.logger.Infof("Scan for %s found %d activities", bm.userId, len(found))
	} else if filtered && len(resp.AllActivities) > 0 {
		bm.activities.Clear()
		bm.suggestionMode = true
		bm.suggested = append([]dto.Activity{}, resp.AllActivities...)
		bm.state = dto.StateScanned
		bm.metrics.ScanCompleted("suggested")
		bm.notices.Add(dto.NoticeInfo, bm.txt.WithVals("scan-suggest", map[string]string{
			"type":  string(filter.ActivityType),
			"count": strconv.Itoa(len(resp.AllActivities)),
			"hours": hoursStr,
		}))
		bm.logger.Infof("Scan for %s found no %s activity; suggesting %d others",
			bm.userId, filter.ActivityType, len(resp.AllActivities))
	} else {
		res.NoActivity = true
		bm.metrics.ScanCompleted("empty")
		bm.notices.Add(dto.NoticeInfo, bm.txt.WithVals("scan-none", map[string]string{"hours": hoursStr}))
		bm.logger.Infof("Scan for %s found no activity in %d hours", bm.userId, hours)
	}

	res.State = bm.state
	res.SuggestionMode = bm.suggestionMode
	res.Activities = bm.activities.List()
	res.Suggested = append([]dto.Activity{}, bm.suggested...)
	return res, nil
}

// chooseActivitiesLocked resolves ids against scanned activities first, then suggestions.
// No ids means everything on offer.
func (bm *botMode) chooseActivitiesLocked(activityIds []string) []dto.Activity {
	if len(activityIds) == 0 {
		if bm.suggestionMode {
			return append([]dto.Activity{}, bm.suggested...)
		}
		return bm.activities.List()
	}
	res := bm.activities.Select(activityIds)
	want := map[string]bool{}
	for _, id := range activityIds {
		want[id] = true
	}
	for _, act := range res {
		delete(want, act.Id)
	}
	for _, act := range bm.suggested {
		if want[act.Id] {
			res = append(res, act)
			delete(want, act.Id)
		}
	}
	return res
}

func (bm *botMode) Generate(ctx context.Context, activityIds []string, style string) (*dto.GenerateOut, error) {

	if style == "" {
		style = bm.cfg.Bot.DefaultStyle
	}
	if !dto.IsKnownStyle(style) {
		return nil, ErrUnknownStyle
	}

	bm.mu.Lock()
	if bm.state == dto.StateIdle {
		bm.mu.Unlock()
		return nil, ErrNotScanned
	}
	chosen := bm.chooseActivitiesLocked(activityIds)
	if len(chosen) == 0 {
		bm.mu.Unlock()
		return nil, ErrNoActivitiesSelected
	}
	t := bm.dispatchLocked(actionGenerate)
	bm.mu.Unlock()

	bm.logger.Infof("Generating %d posts for %s in style %s", len(chosen), bm.userId, style)
	req := dto.BatchGenerateRequest{UserId: bm.userId, Activities: chosen, Style: style}
	resp, err := bm.backend.GenerateBatch(ctx, &req)
	if err == nil && resp.LimitExceeded {
		err = &BackendError{Kind: ErrKindApplication, Op: actionGenerate, Message: "daily generation limit exceeded"}
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	if !bm.settleLocked(t) {
		return nil, ErrStaleResponse
	}
	if err != nil {
		bm.logger.Warnf("Generation failed for %s: %v", bm.userId, err)
		bm.notices.Add(dto.NoticeError, bm.txt.WithVals("generate-failed", map[string]string{"error": UserMessage(err)}))
		return nil, err
	}

	posts := normalizeBatch(chosen, resp.Posts)
	bm.posts.Load(posts)
	bm.picker = nil
	bm.state = dto.StateGenerated

	res := &dto.GenerateOut{State: bm.state, Posts: bm.posts.List()}
	for _, post := range posts {
		if post.Status == dto.PostFailed {
			res.FailedCount++
		} else {
			res.GeneratedCount++
		}
	}
	bm.metrics.PostsGenerated(res.GeneratedCount, res.FailedCount)
	level := dto.NoticeSuccess
	if res.FailedCount > 0 {
		level = dto.NoticeInfo
	}
	bm.notices.Add(level, bm.txt.WithVals("generate-done", map[string]string{
		"generated": strconv.Itoa(res.GeneratedCount),
		"failed":    strconv.Itoa(res.FailedCount),
	}))
	bm.logger.Infof("Generated %d posts for %s; %d failed", res.GeneratedCount, bm.userId, res.FailedCount)
	return res, nil
}

func (bm *botMode) Reset() {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	bm.epoch++
	bm.state = dto.StateIdle
	bm.suggestionMode = false
	bm.suggested = []dto.Activity{}
	bm.inFlight = map[string]uint64{}
	bm.publishing = map[string]uint64{}
	bm.picker = nil
	bm.activities.Clear()
	bm.posts.Clear()
	bm.logger.Infof("Bot mode reset for %s", bm.userId)
}

func (bm *botMode) EditPost(postId, content string) (dto.Post, error) {
	return bm.posts.Edit(postId, content)
}

func (bm *botMode) BeginEdit(postId string) (dto.Post, error) {
	return bm.posts.BeginEdit(postId)
}

func (bm *botMode) EndEdit(postId string) (dto.Post, error) {
	return bm.posts.EndEdit(postId)
}

func (bm *botMode) DiscardPost(postId string) error {
	if err := bm.posts.Discard(postId); err != nil {
		return err
	}
	bm.logger.Debugf("Discarded post %s for %s", postId, bm.userId)
	return nil
}

func (bm *botMode) Publish(ctx context.Context, postId string, testMode bool) (*dto.PublishOut, error) {

	bm.mu.Lock()
	post, err := bm.posts.Publishable(postId)
	if err != nil {
		bm.mu.Unlock()
		return nil, err
	}
	if !testMode && bm.usage.IsLimitReached() {
		bm.mu.Unlock()
		bm.notices.Add(dto.NoticeError, bm.limitText())
		return nil, ErrQuotaExhausted
	}
	if _, busy := bm.publishing[postId]; busy {
		bm.mu.Unlock()
		return nil, ErrPublishInFlight
	}
	epoch := bm.epoch
	bm.publishing[postId] = epoch
	bm.mu.Unlock()

	defer bm.releasePublishing(postId, epoch)

	content := *post.Content
	hash := contentHash(content)
	if !testMode {
		bm.warnIfDuplicate(hash)
	}

	mode := publishModeLive
	if testMode {
		mode = publishModeTest
	}
	bm.logger.Infof("Publishing post %s for %s (%s): %s",
		postId, bm.userId, mode, shared.TruncateWithEllipsis(shared.OneLine(content), shared.PreviewLen))

	req := dto.FullPublishRequest{
		UserId:      bm.userId,
		PostContent: content,
		ImageUrl:    post.ImageUrl,
		TestMode:    testMode,
	}
	resp, err := bm.backend.PublishFull(ctx, &req)
	if err == nil && !testMode && !resp.TestMode && resp.Published != nil && !*resp.Published {
		err = &BackendError{Kind: ErrKindApplication, Op: "publish", Message: "backend did not publish the post"}
	}
	dryRun := testMode || (err == nil && resp.TestMode)
	bm.recordPublish(&post, hash, dryRun, err)

	if err != nil {
		bm.logger.Warnf("Publishing post %s for %s failed: %v", postId, bm.userId, err)
		bm.metrics.PostPublished(mode, "error")
		bm.notices.Add(dto.NoticeError, bm.txt.WithVals("publish-failed", map[string]string{"error": UserMessage(err)}))
		return nil, err
	}

	res := &dto.PublishOut{PostId: postId, TestMode: dryRun, Message: resp.Message}
	if dryRun {
		bm.metrics.PostPublished(publishModeTest, "ok")
		bm.notices.Add(dto.NoticeSuccess, bm.txt.Get("publish-dry-run"))
		res.Status = post.Status
		if current, ok := bm.posts.Get(postId); ok {
			res.Status = current.Status
		}
		return res, nil
	}

	bm.metrics.PostPublished(publishModeLive, "ok")
	bm.notices.Add(dto.NoticeSuccess, bm.txt.Get("publish-ok"))
	res.Status = dto.PostPublished
	bm.applySent(postId, content, epoch, bm.posts.MarkPublished)
	if _, err = bm.usage.Refresh(ctx); err != nil {
		bm.logger.Warnf("Failed to refresh usage for %s after publish: %v", bm.userId, err)
	}
	return res, nil
}

func (bm *botMode) releasePublishing(postId string, epoch uint64) {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if sent, ok := bm.publishing[postId]; ok && sent == epoch {
		delete(bm.publishing, postId)
	}
}

// applySent updates the queue after the backend accepted a post. The queue is left alone if
// the session was reset since the request went out, or the post was discarded or edited.
func (bm *botMode) applySent(postId, sentContent string, epoch uint64, apply func(id, content string) error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.epoch != epoch {
		bm.logger.Infof("Post %s went out after a reset for %s; queue left alone", postId, bm.userId)
		return
	}
	if err := apply(postId, sentContent); err != nil {
		bm.logger.Infof("Post %s went out but the queued draft no longer matches: %v", postId, err)
	}
}

func (bm *botMode) warnIfDuplicate(hash int64) {
	count, err := bm.repo.CountPublished(bm.userId, hash)
	if err != nil {
		bm.logger.Warnf("Failed to check publish history for %s: %v", bm.userId, err)
		return
	}
	if count > 0 {
		bm.logger.Warnf("User %s is publishing content that already went out %d time(s)", bm.userId, count)
	}
}

func (bm *botMode) recordPublish(post *dto.Post, hash int64, testMode bool, pubErr error) {
	rec := dal.PublishRecord{
		UserId:         bm.userId,
		PostId:         post.Id,
		ContentHash:    hash,
		ContentPreview: shared.Preview(*post.Content),
		ImageUrl:       post.ImageUrl,
		TestMode:       testMode,
		Success:        pubErr == nil,
		PublishedAt:    time.Now().UTC(),
	}
	if pubErr != nil {
		rec.Error = UserMessage(pubErr)
	}
	if err := bm.repo.AddPublishRecord(&rec); err != nil {
		bm.logger.Errorf("Failed to record publish of post %s for %s: %v", post.Id, bm.userId, err)
	}
}

func (bm *botMode) limitText() string {
	resets := "a while"
	if usage := bm.usage.Usage(); usage != nil && usage.ResetsInSeconds > 0 {
		resets = formatResets(usage.ResetsInSeconds)
	}
	return bm.txt.WithVals("limit-reached", map[string]string{"resets": resets})
}

func formatResets(secs int) string {
	hours := secs / 3600
	mins := (secs % 3600) / 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func (bm *botMode) RefreshUsage(ctx context.Context) (*dto.Usage, error) {
	usage, err := bm.usage.Refresh(ctx)
	if err != nil {
		bm.logger.Warnf("Failed to fetch usage for %s: %v", bm.userId, err)
		return nil, err
	}
	return usage, nil
}

func (bm *botMode) Usage() *dto.Usage {
	return bm.usage.Usage()
}

func (bm *botMode) IsLimitReached() bool {
	return bm.usage.IsLimitReached()
}

func (bm *botMode) Snapshot() *dto.BotSnapshot {

	connected := bm.sessions.IsConnected(bm.userId)

	bm.mu.Lock()
	defer bm.mu.Unlock()

	res := &dto.BotSnapshot{
		UserId:               bm.userId,
		State:                bm.state,
		SuggestionMode:       bm.suggestionMode,
		Activities:           bm.activities.List(),
		Suggested:            append([]dto.Activity{}, bm.suggested...),
		Posts:                []dto.PostView{},
		Usage:                bm.usage.Usage(),
		LimitReached:         bm.usage.IsLimitReached(),
		ScheduleLimitReached: bm.usage.IsScheduleLimitReached(),
		Busy: dto.BusyFlags{
			Scanning:      bm.inFlight[actionScan] != 0,
			Generating:    bm.inFlight[actionGenerate] != 0,
			LoadingImages: bm.picker != nil && bm.picker.loading,
			Publishing:    []string{},
		},
	}
	for _, post := range bm.posts.List() {
		_, publishing := bm.publishing[post.Id]
		view := dto.PostView{Post: post, Publishing: publishing}
		if post.Content != nil {
			view.CharCount = shared.CharCount(*post.Content)
			view.OverLimit = view.CharCount > bm.cfg.Bot.PostCharLimit
		}
		res.Posts = append(res.Posts, view)
	}
	for id := range bm.publishing {
		res.Busy.Publishing = append(res.Busy.Publishing, id)
	}
	sort.Strings(res.Busy.Publishing)
	if bm.picker != nil {
		res.ImagePicker = &dto.ImagePickerView{
			PostId:  bm.picker.postId,
			Images:  append([]dto.Image{}, bm.picker.images...),
			Loading: bm.picker.loading,
		}
	}
	res.LinkedInConnected = connected
	return res
}

func (bm *botMode) DrainNotices() []dto.Notice {
	return bm.notices.Drain()
}
