package logic

import (
	"context"
	"encoding/json"
	"post_bot/dto"
	"time"
)

const (
	publishModeScheduled = "scheduled"
	historyStatusDraft   = "draft"
	historyStatusPosted  = "published"
	defaultPostType      = "mixed"
)

// Schedule hands a draft to the backend's schedule. Once accepted, the draft leaves the queue.
func (bm *botMode) Schedule(ctx context.Context, postId string, at time.Time) (*dto.ScheduleOut, error) {

	if !at.After(time.Now()) {
		return nil, ErrScheduleInPast
	}

	bm.mu.Lock()
	post, err := bm.posts.Publishable(postId)
	if err != nil {
		bm.mu.Unlock()
		return nil, err
	}
	if bm.usage.IsScheduleLimitReached() {
		bm.mu.Unlock()
		bm.notices.Add(dto.NoticeError, bm.txt.Get("schedule-limit"))
		return nil, ErrScheduleQuotaFull
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
	req := dto.SchedulePostRequest{
		UserId:        bm.userId,
		PostContent:   content,
		ScheduledTime: at.Unix(),
		ImageUrl:      post.ImageUrl,
	}
	bm.logger.Infof("Scheduling post %s for %s at %s", postId, bm.userId, at.UTC().Format(time.RFC3339))
	resp, err := bm.backend.SchedulePost(ctx, &req)
	if err != nil {
		bm.logger.Warnf("Scheduling post %s for %s failed: %v", postId, bm.userId, err)
		bm.metrics.PostPublished(publishModeScheduled, "error")
		bm.notices.Add(dto.NoticeError, bm.txt.WithVals("schedule-failed", map[string]string{"error": UserMessage(err)}))
		return nil, err
	}

	bm.applySent(postId, content, epoch, bm.posts.RemoveSent)
	bm.metrics.PostPublished(publishModeScheduled, "ok")
	res := &dto.ScheduleOut{PostId: postId, ScheduledId: resp.PostId, ScheduledTime: resp.ScheduledTime}
	if res.ScheduledTime == 0 {
		res.ScheduledTime = req.ScheduledTime
	}
	bm.notices.Add(dto.NoticeSuccess, bm.txt.WithVals("schedule-ok", map[string]string{
		"time": time.Unix(res.ScheduledTime, 0).UTC().Format("2006-01-02 15:04 MST"),
	}))
	if _, err = bm.usage.Refresh(ctx); err != nil {
		bm.logger.Warnf("Failed to refresh usage for %s after scheduling: %v", bm.userId, err)
	}
	return res, nil
}

func (bm *botMode) ListScheduled(ctx context.Context, includePast bool) ([]dto.ScheduledPost, error) {
	return bm.backend.ListScheduled(ctx, bm.userId, includePast)
}

func (bm *botMode) CancelScheduled(ctx context.Context, scheduledId int64) error {
	if err := bm.backend.CancelScheduled(ctx, bm.userId, scheduledId); err != nil {
		return err
	}
	bm.logger.Infof("Cancelled scheduled post %d for %s", scheduledId, bm.userId)
	if _, err := bm.usage.Refresh(ctx); err != nil {
		bm.logger.Warnf("Failed to refresh usage for %s after cancelling: %v", bm.userId, err)
	}
	return nil
}

func (bm *botMode) Reschedule(ctx context.Context, scheduledId int64, at time.Time) error {
	if !at.After(time.Now()) {
		return ErrScheduleInPast
	}
	req := dto.RescheduleRequest{UserId: bm.userId, NewTime: at.Unix()}
	if err := bm.backend.Reschedule(ctx, scheduledId, &req); err != nil {
		return err
	}
	bm.logger.Infof("Moved scheduled post %d for %s to %s", scheduledId, bm.userId, at.UTC().Format(time.RFC3339))
	return nil
}

// SaveDraft stores a copy of the post in the backend's post history. The queue is unchanged.
func (bm *botMode) SaveDraft(ctx context.Context, postId string) (*dto.SaveDraftOut, error) {

	post, ok := bm.posts.Get(postId)
	if !ok {
		return nil, ErrPostNotFound
	}
	if post.Content == nil {
		return nil, ErrPostNotEditable
	}

	postType := string(post.ActivityType)
	if postType == "" {
		postType = defaultPostType
	}
	status := historyStatusDraft
	if post.Status == dto.PostPublished {
		status = historyStatusPosted
	}
	postCtx, _ := json.Marshal(map[string]string{
		"activity_id":    post.ActivityId,
		"activity_title": post.ActivityTitle,
	})
	req := dto.SavePostRequest{
		UserId:      bm.userId,
		PostContent: *post.Content,
		PostType:    postType,
		Context:     postCtx,
		Status:      status,
	}
	resp, err := bm.backend.SavePost(ctx, &req)
	if err != nil {
		bm.logger.Warnf("Saving post %s for %s failed: %v", postId, bm.userId, err)
		bm.notices.Add(dto.NoticeError, bm.txt.WithVals("save-failed", map[string]string{"error": UserMessage(err)}))
		return nil, err
	}

	res := &dto.SaveDraftOut{PostId: postId, HistoryId: resp.PostId}
	if resp.PostId != nil {
		bm.logger.Infof("Saved post %s for %s as history entry %d", postId, bm.userId, *resp.PostId)
	}
	bm.notices.Add(dto.NoticeSuccess, bm.txt.Get("draft-saved"))
	if _, err = bm.usage.Refresh(ctx); err != nil {
		bm.logger.Warnf("Failed to refresh usage for %s after saving: %v", bm.userId, err)
	}
	return res, nil
}
