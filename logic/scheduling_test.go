package logic_test

import (
	"context"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"post_bot/dto"
	"post_bot/logic"
	"post_bot/test"
	"testing"
	"time"
)

func Test_Schedule_Removes_Post_And_Refreshes_Usage(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Hello"), pendingPost("p2", "A2", "World"))

	at := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	h.mockBackend.EXPECT().SchedulePost(gomock.Any(), gomock.Eq(&dto.SchedulePostRequest{
		UserId: botUser, PostContent: "Hello", ScheduledTime: at.Unix(),
	})).Return(&dto.SchedulePostResponse{PostId: 42, ScheduledTime: at.Unix()}, nil)
	h.mockBackend.EXPECT().GetUsage(gomock.Any(), botUser).
		Return(&dto.Usage{PostsLimit: 5, PostsRemaining: 5, ScheduledLimit: 3, ScheduledRemaining: 0}, nil)

	res, err := bm.Schedule(context.Background(), "p1", at)

	assert.Nil(t, err)
	assert.Equal(t, int64(42), res.ScheduledId)
	assert.Equal(t, at.Unix(), res.ScheduledTime)
	snap := bm.Snapshot()
	assert.Equal(t, 1, len(snap.Posts))
	assert.Equal(t, "p2", snap.Posts[0].Id)
	assert.True(t, snap.ScheduleLimitReached)
	assert.False(t, snap.LimitReached)
	assert.True(t, hasNotice(bm.DrainNotices(), "schedule-ok"))

	// Quota now full: the backend is not called again
	_, err = bm.Schedule(context.Background(), "p2", at)
	assert.ErrorIs(t, err, logic.ErrScheduleQuotaFull)
	assert.True(t, hasNotice(bm.DrainNotices(), "schedule-limit"))
	assert.Equal(t, 1, len(bm.Snapshot().Posts))
}

func Test_Schedule_Rejects_Past_Time(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Hello"))

	_, err := bm.Schedule(context.Background(), "p1", time.Now().Add(-time.Minute))
	assert.ErrorIs(t, err, logic.ErrScheduleInPast)
	assert.Equal(t, 1, len(bm.Snapshot().Posts))
}

func Test_Schedule_Gate_Ignores_Missing_Limits(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Hello"))

	h.mockBackend.EXPECT().GetUsage(gomock.Any(), botUser).Return(&dto.Usage{PostsLimit: 5, PostsRemaining: 2}, nil).Times(2)
	_, _ = bm.RefreshUsage(context.Background())
	assert.False(t, bm.Snapshot().ScheduleLimitReached)

	h.mockBackend.EXPECT().SchedulePost(gomock.Any(), gomock.Any()).Return(&dto.SchedulePostResponse{PostId: 7}, nil)
	res, err := bm.Schedule(context.Background(), "p1", time.Now().Add(time.Hour))
	assert.Nil(t, err)
	assert.NotZero(t, res.ScheduledTime)
}

func Test_Schedule_Failure_Keeps_Post(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Hello"))

	berr := &logic.BackendError{Kind: logic.ErrKindApplication, Op: "schedule", Message: "Scheduling not available"}
	h.mockBackend.EXPECT().SchedulePost(gomock.Any(), gomock.Any()).Return(nil, berr)

	_, err := bm.Schedule(context.Background(), "p1", time.Now().Add(time.Hour))

	assert.ErrorIs(t, err, berr)
	assert.Equal(t, dto.PostPending, bm.Snapshot().Posts[0].Status)
	assert.True(t, hasNotice(bm.DrainNotices(), "schedule-failed"))
}

func Test_Schedule_Result_After_Reset_Keeps_New_Draft(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Old"))

	entered := make(chan struct{})
	release := make(chan struct{})
	h.mockBackend.EXPECT().SchedulePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *dto.SchedulePostRequest) (*dto.SchedulePostResponse, error) {
			close(entered)
			<-release
			return &dto.SchedulePostResponse{PostId: 1, ScheduledTime: req.ScheduledTime}, nil
		})
	h.mockBackend.EXPECT().GetUsage(gomock.Any(), botUser).Return(&dto.Usage{PostsLimit: -1}, nil)

	done := make(chan error)
	go func() {
		_, err := bm.Schedule(context.Background(), "p1", time.Now().Add(time.Hour))
		done <- err
	}()
	<-entered
	bm.Reset()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "New"))
	close(release)
	assert.Nil(t, <-done)

	snap := bm.Snapshot()
	assert.Equal(t, 1, len(snap.Posts))
	assert.Equal(t, "New", *snap.Posts[0].Content)
}

func Test_Scheduled_List_Cancel_And_Move(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()

	h.mockBackend.EXPECT().ListScheduled(gomock.Any(), botUser, false).
		Return([]dto.ScheduledPost{{Id: 3, Status: dto.ScheduledPending}}, nil)
	h.mockBackend.EXPECT().CancelScheduled(gomock.Any(), botUser, int64(3)).Return(nil)
	h.mockBackend.EXPECT().GetUsage(gomock.Any(), botUser).Return(&dto.Usage{ScheduledLimit: 3, ScheduledRemaining: 3}, nil)
	at := time.Now().Add(24 * time.Hour)
	h.mockBackend.EXPECT().Reschedule(gomock.Any(), int64(4), gomock.Eq(&dto.RescheduleRequest{UserId: botUser, NewTime: at.Unix()})).
		Return(nil)

	posts, err := bm.ListScheduled(context.Background(), false)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), posts[0].Id)
	assert.Nil(t, bm.CancelScheduled(context.Background(), 3))
	assert.Equal(t, 3, bm.Snapshot().Usage.ScheduledRemaining)
	assert.Nil(t, bm.Reschedule(context.Background(), 4, at))
	assert.ErrorIs(t, bm.Reschedule(context.Background(), 4, time.Now().Add(-time.Hour)), logic.ErrScheduleInPast)
}

func Test_Save_Draft_Sends_Context_And_Refreshes_Usage(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Hello"))

	h.mockBackend.EXPECT().SavePost(gomock.Any(), gomock.Cond(func(x any) bool {
		req := x.(*dto.SavePostRequest)
		var postCtx map[string]string
		_ = json.Unmarshal(req.Context, &postCtx)
		return req.UserId == botUser && req.PostContent == "Hello" && req.Status == "draft" &&
			req.PostType != "" && postCtx["activity_id"] == "A1"
	})).Return(&dto.SavePostResponse{PostId: test.Ptr(int64(11))}, nil)
	h.mockBackend.EXPECT().GetUsage(gomock.Any(), botUser).Return(&dto.Usage{PostsLimit: 5, PostsRemaining: 5}, nil)

	res, err := bm.SaveDraft(context.Background(), "p1")

	assert.Nil(t, err)
	assert.Equal(t, int64(11), *res.HistoryId)
	assert.Equal(t, dto.PostPending, bm.Snapshot().Posts[0].Status)
	assert.True(t, hasNotice(bm.DrainNotices(), "draft-saved"))

	_, err = bm.SaveDraft(context.Background(), "nope")
	assert.ErrorIs(t, err, logic.ErrPostNotFound)
}
