package logic_test

import (
	"context"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"post_bot/dal"
	"post_bot/dto"
	"post_bot/logic"
	"post_bot/shared"
	"post_bot/test"
	"post_bot/test/mocks"
	"strings"
	"testing"
)

const botUser = "u1"

type botModeHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockBackend  *mocks.MockIBackendClient
	mockRepo     *mocks.MockIRepo
	mockSessions *mocks.MockISessionManager
	mockTexts    *mocks.MockITexts
	mockMetrics  *mocks.MockIMetrics
}

func setupBotModeTest(t *testing.T) (*gomock.Controller, *botModeHarness, logic.IBotMode) {

	ctrl := gomock.NewController(t)

	h := &botModeHarness{
		cfg:          test.TestConfig(),
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockBackend:  mocks.NewMockIBackendClient(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockSessions: mocks.NewMockISessionManager(ctrl),
		mockTexts:    mocks.NewMockITexts(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
	}
	test.StubLogger(h.mockLogger)
	test.StubTexts(h.mockTexts)
	test.StubMetrics(ctrl, h.mockMetrics)
	h.mockSessions.EXPECT().IsConnected(gomock.Any()).Return(true).AnyTimes()

	bm := logic.NewBotMode(botUser, h.cfg, h.mockLogger, h.mockBackend, h.mockRepo,
		h.mockSessions, h.mockTexts, h.mockMetrics)
	return ctrl, h, bm
}

func activities(ids ...string) []dto.Activity {
	res := []dto.Activity{}
	for _, id := range ids {
		res = append(res, dto.Activity{Id: id, Type: dto.ActivityPush, Title: "Activity " + id})
	}
	return res
}

func pendingPost(id, activityId, content string) dto.Post {
	return dto.Post{Id: id, ActivityId: activityId, Content: test.Ptr(content), Status: dto.PostPending}
}

func hasNotice(notices []dto.Notice, prefix string) bool {
	for _, n := range notices {
		if strings.HasPrefix(n.Text, prefix) {
			return true
		}
	}
	return false
}

// Brings the bot to the generated state with the given posts, one activity per post.
func generatePosts(t *testing.T, h *botModeHarness, bm logic.IBotMode, posts ...dto.Post) {
	var ids []string
	for _, post := range posts {
		ids = append(ids, post.ActivityId)
	}
	h.mockBackend.EXPECT().Scan(gomock.Any(), gomock.Any()).
		Return(&dto.ScanResponse{Activities: activities(ids...), AllActivities: activities(ids...)}, nil)
	h.mockBackend.EXPECT().GenerateBatch(gomock.Any(), gomock.Any()).
		Return(&dto.BatchGenerateResponse{Posts: posts, GeneratedCount: len(posts)}, nil)
	_, err := bm.Scan(context.Background(), logic.ScanFilter{})
	assert.Nil(t, err)
	_, err = bm.Generate(context.Background(), nil, "")
	assert.Nil(t, err)
	bm.DrainNotices()
}

func expectPublishRecord(h *botModeHarness, testMode, success bool) {
	h.mockRepo.EXPECT().AddPublishRecord(gomock.Cond(func(x any) bool {
		rec := x.(*dal.PublishRecord)
		return rec.UserId == botUser && rec.TestMode == testMode && rec.Success == success
	})).Return(nil)
}

func Test_Scan_Filtered_Empty_Falls_Back_To_Suggestions(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()

	h.mockBackend.EXPECT().Scan(gomock.Any(), gomock.Eq(&dto.ScanRequest{
		UserId: botUser, Hours: 72, ActivityType: dto.ActivityPullRequest,
	})).Return(&dto.ScanResponse{Activities: []dto.Activity{}, AllActivities: activities("A1", "A2")}, nil)

	res, err := bm.Scan(context.Background(), logic.ScanFilter{Hours: 72, ActivityType: dto.ActivityPullRequest})

	assert.Nil(t, err)
	assert.Equal(t, dto.StateScanned, res.State)
	assert.True(t, res.SuggestionMode)
	assert.False(t, res.NoActivity)
	assert.Equal(t, 2, len(res.Suggested))
	assert.Equal(t, "A1", res.Suggested[0].Id)
	assert.Equal(t, 0, len(res.Activities))
	snap := bm.Snapshot()
	assert.Equal(t, dto.StateScanned, snap.State)
	assert.True(t, snap.SuggestionMode)
	assert.True(t, hasNotice(bm.DrainNotices(), "scan-suggest"))
}

func Test_Scan_Found_Stores_Activities(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()

	h.mockBackend.EXPECT().Scan(gomock.Any(), gomock.Eq(&dto.ScanRequest{UserId: botUser, Hours: 24})).
		Return(&dto.ScanResponse{Activities: activities("A1"), AllActivities: activities("A1")}, nil)

	// "all" is not a filter and the configured default window applies
	res, err := bm.Scan(context.Background(), logic.ScanFilter{ActivityType: dto.ActivityAll})

	assert.Nil(t, err)
	assert.Equal(t, dto.StateScanned, res.State)
	assert.False(t, res.SuggestionMode)
	assert.Equal(t, 1, len(res.Activities))
}

func Test_Scan_Nothing_Leaves_State_Alone(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()

	h.mockBackend.EXPECT().Scan(gomock.Any(), gomock.Any()).
		Return(&dto.ScanResponse{Activities: []dto.Activity{}, AllActivities: []dto.Activity{}}, nil)

	res, err := bm.Scan(context.Background(), logic.ScanFilter{Hours: 12, ActivityType: dto.ActivityNewRepo})

	assert.Nil(t, err)
	assert.True(t, res.NoActivity)
	assert.Equal(t, dto.StateIdle, res.State)
	assert.False(t, res.SuggestionMode)
	assert.True(t, hasNotice(bm.DrainNotices(), "scan-none"))
}

func Test_Scan_Error_Surfaces_Notice(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()

	berr := &logic.BackendError{Kind: logic.ErrKindApplication, Op: "scan", Message: "GitHub username not configured"}
	h.mockBackend.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(nil, berr)

	_, err := bm.Scan(context.Background(), logic.ScanFilter{})

	assert.ErrorIs(t, err, berr)
	assert.Equal(t, dto.StateIdle, bm.Snapshot().State)
	notices := bm.DrainNotices()
	assert.Equal(t, 1, len(notices))
	assert.Equal(t, dto.NoticeError, notices[0].Level)
	assert.Contains(t, notices[0].Text, "GitHub username not configured")
}

func Test_Generate_Requires_Scan(t *testing.T) {
	ctrl, _, bm := setupBotModeTest(t)
	defer ctrl.Finish()

	_, err := bm.Generate(context.Background(), nil, "")
	assert.ErrorIs(t, err, logic.ErrNotScanned)
	_, err = bm.Generate(context.Background(), nil, "limerick")
	assert.ErrorIs(t, err, logic.ErrUnknownStyle)
}

func Test_Generate_Single_Activity(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()

	h.mockBackend.EXPECT().Scan(gomock.Any(), gomock.Any()).
		Return(&dto.ScanResponse{Activities: activities("A1", "A2"), AllActivities: activities("A1", "A2")}, nil)
	h.mockBackend.EXPECT().GenerateBatch(gomock.Any(), gomock.Cond(func(x any) bool {
		req := x.(*dto.BatchGenerateRequest)
		return len(req.Activities) == 1 && req.Activities[0].Id == "A1" && req.Style == "build_in_public"
	})).Return(&dto.BatchGenerateResponse{
		Posts:          []dto.Post{pendingPost("p1", "A1", "Hello")},
		GeneratedCount: 1,
	}, nil)

	_, _ = bm.Scan(context.Background(), logic.ScanFilter{})
	res, err := bm.Generate(context.Background(), []string{"A1"}, "build_in_public")

	assert.Nil(t, err)
	assert.Equal(t, dto.StateGenerated, res.State)
	assert.Equal(t, 1, res.GeneratedCount)
	assert.Equal(t, 0, res.FailedCount)
	snap := bm.Snapshot()
	assert.Equal(t, 1, len(snap.Posts))
	assert.Equal(t, "p1", snap.Posts[0].Id)
	assert.Equal(t, "Hello", *snap.Posts[0].Content)
	assert.Equal(t, 5, snap.Posts[0].CharCount)
}

func Test_Generate_From_Suggestions(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()

	h.mockBackend.EXPECT().Scan(gomock.Any(), gomock.Any()).
		Return(&dto.ScanResponse{AllActivities: activities("A1", "A2")}, nil)
	h.mockBackend.EXPECT().GenerateBatch(gomock.Any(), gomock.Cond(func(x any) bool {
		return len(x.(*dto.BatchGenerateRequest).Activities) == 2
	})).Return(&dto.BatchGenerateResponse{Posts: []dto.Post{}}, nil)

	_, _ = bm.Scan(context.Background(), logic.ScanFilter{ActivityType: dto.ActivityCommits})
	res, err := bm.Generate(context.Background(), nil, "")

	assert.Nil(t, err)
	// Backend dropped both items: they come back as failed posts
	assert.Equal(t, 2, len(res.Posts))
	assert.Equal(t, 2, res.FailedCount)
	for _, post := range res.Posts {
		assert.Nil(t, post.Content)
		assert.Equal(t, dto.PostFailed, post.Status)
	}
	_, err = bm.Generate(context.Background(), []string{"nope"}, "")
	assert.ErrorIs(t, err, logic.ErrNoActivitiesSelected)
}

func Test_Generate_Partial_Failure(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()

	h.mockBackend.EXPECT().Scan(gomock.Any(), gomock.Any()).
		Return(&dto.ScanResponse{Activities: activities("A1", "A2", "A3")}, nil)
	h.mockBackend.EXPECT().GenerateBatch(gomock.Any(), gomock.Any()).Return(&dto.BatchGenerateResponse{
		Posts: []dto.Post{
			pendingPost("p1", "A1", "One"),
			{Id: "p2", ActivityId: "A2", Status: dto.PostFailed, Error: "model timeout"},
			pendingPost("p3", "A3", "Three"),
		},
		GeneratedCount: 2,
		FailedCount:    1,
	}, nil)

	_, _ = bm.Scan(context.Background(), logic.ScanFilter{})
	res, err := bm.Generate(context.Background(), nil, "")

	assert.Nil(t, err)
	assert.Equal(t, 3, len(res.Posts))
	assert.Equal(t, 2, res.GeneratedCount)
	assert.Equal(t, 1, res.FailedCount)
	assert.Equal(t, "model timeout", res.Posts[1].Error)
	assert.True(t, hasNotice(bm.DrainNotices(), "generate-done"))
}

func Test_Generate_Limit_Exceeded(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()

	h.mockBackend.EXPECT().Scan(gomock.Any(), gomock.Any()).
		Return(&dto.ScanResponse{Activities: activities("A1")}, nil)
	h.mockBackend.EXPECT().GenerateBatch(gomock.Any(), gomock.Any()).
		Return(&dto.BatchGenerateResponse{LimitExceeded: true, Remaining: test.Ptr(0)}, nil)

	_, _ = bm.Scan(context.Background(), logic.ScanFilter{})
	_, err := bm.Generate(context.Background(), nil, "")

	assert.True(t, logic.IsBackendKind(err, logic.ErrKindApplication))
	assert.Equal(t, dto.StateScanned, bm.Snapshot().State)
}

func Test_Publish_Test_Mode_Keeps_Status(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Hello"))

	h.mockBackend.EXPECT().PublishFull(gomock.Any(), gomock.Eq(&dto.FullPublishRequest{
		UserId: botUser, PostContent: "Hello", ImageUrl: nil, TestMode: true,
	})).Return(&dto.FullPublishResponse{TestMode: true}, nil)
	expectPublishRecord(h, true, true)

	res, err := bm.Publish(context.Background(), "p1", true)

	assert.Nil(t, err)
	assert.True(t, res.TestMode)
	assert.Equal(t, dto.PostPending, res.Status)
	assert.Equal(t, dto.PostPending, bm.Snapshot().Posts[0].Status)
	assert.True(t, hasNotice(bm.DrainNotices(), "publish-dry-run"))
}

func Test_Publish_Live_Marks_Published(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Hello"))
	_, _ = bm.BeginEdit("p1")

	h.mockRepo.EXPECT().CountPublished(botUser, gomock.Any()).Return(0, nil)
	h.mockBackend.EXPECT().PublishFull(gomock.Any(), gomock.Any()).
		Return(&dto.FullPublishResponse{Published: test.Ptr(true)}, nil)
	expectPublishRecord(h, false, true)
	h.mockBackend.EXPECT().GetUsage(gomock.Any(), botUser).
		Return(&dto.Usage{Tier: "free", PostsLimit: 5, PostsRemaining: 0}, nil)

	res, err := bm.Publish(context.Background(), "p1", false)

	assert.Nil(t, err)
	assert.Equal(t, dto.PostPublished, res.Status)
	snap := bm.Snapshot()
	assert.Equal(t, dto.PostPublished, snap.Posts[0].Status)
	assert.True(t, snap.LimitReached)
	assert.Equal(t, "free", snap.Usage.Tier)

	_, err = bm.Publish(context.Background(), "p1", true)
	assert.ErrorIs(t, err, logic.ErrNotPublishable)
}

func Test_Publish_Failure_Leaves_Post_Alone(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Hello"))

	h.mockRepo.EXPECT().CountPublished(botUser, gomock.Any()).Return(0, nil)
	berr := &logic.BackendError{Kind: logic.ErrKindTransport, Op: "publish", Status: 502, Message: "LinkedIn unavailable"}
	h.mockBackend.EXPECT().PublishFull(gomock.Any(), gomock.Any()).Return(nil, berr)
	expectPublishRecord(h, false, false)

	_, err := bm.Publish(context.Background(), "p1", false)

	assert.ErrorIs(t, err, berr)
	post := bm.Snapshot().Posts[0]
	assert.Equal(t, dto.PostPending, post.Status)
	assert.Equal(t, "", post.Error)
	assert.True(t, hasNotice(bm.DrainNotices(), "publish-failed"))
}

func Test_Publish_Blocked_By_Quota(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Hello"))

	h.mockBackend.EXPECT().GetUsage(gomock.Any(), botUser).
		Return(&dto.Usage{PostsLimit: 3, PostsRemaining: 0, ResetsInSeconds: 3600}, nil)
	_, err := bm.RefreshUsage(context.Background())
	assert.Nil(t, err)
	assert.True(t, bm.IsLimitReached())

	// No PublishFull expectation: the call must not reach the backend
	_, err = bm.Publish(context.Background(), "p1", false)
	assert.ErrorIs(t, err, logic.ErrQuotaExhausted)
	assert.True(t, hasNotice(bm.DrainNotices(), "limit-reached"))

	// Dry runs are not gated
	h.mockBackend.EXPECT().PublishFull(gomock.Any(), gomock.Any()).Return(&dto.FullPublishResponse{TestMode: true}, nil)
	expectPublishRecord(h, true, true)
	_, err = bm.Publish(context.Background(), "p1", true)
	assert.Nil(t, err)
}

func Test_Publish_Unlimited_Tier_Not_Gated(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()

	h.mockBackend.EXPECT().GetUsage(gomock.Any(), botUser).
		Return(&dto.Usage{Tier: "pro", PostsLimit: -1, PostsRemaining: -1}, nil)
	_, _ = bm.RefreshUsage(context.Background())
	assert.False(t, bm.IsLimitReached())
}

func Test_Discarded_Post_Cannot_Be_Published(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Hello"))

	assert.Nil(t, bm.DiscardPost("p1"))
	assert.Equal(t, 0, len(bm.Snapshot().Posts))

	_, err := bm.Publish(context.Background(), "p1", false)
	assert.ErrorIs(t, err, logic.ErrPostNotFound)
}

func Test_Edit_Never_Changes_Status(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Hello"))

	post, err := bm.EditPost("p1", strings.Repeat("x", 3001))
	assert.Nil(t, err)
	assert.Equal(t, dto.PostPending, post.Status)
	view := bm.Snapshot().Posts[0]
	assert.Equal(t, 3001, view.CharCount)
	assert.True(t, view.OverLimit)
}

func Test_Publish_In_Flight_Guard_Is_Per_Post(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "One"), pendingPost("p2", "A2", "Two"))

	entered := make(chan struct{})
	release := make(chan struct{})
	h.mockBackend.EXPECT().PublishFull(gomock.Any(), gomock.Cond(func(x any) bool {
		return x.(*dto.FullPublishRequest).PostContent == "One"
	})).DoAndReturn(func(ctx context.Context, req *dto.FullPublishRequest) (*dto.FullPublishResponse, error) {
		close(entered)
		<-release
		return &dto.FullPublishResponse{TestMode: true}, nil
	})
	h.mockBackend.EXPECT().PublishFull(gomock.Any(), gomock.Cond(func(x any) bool {
		return x.(*dto.FullPublishRequest).PostContent == "Two"
	})).Return(&dto.FullPublishResponse{TestMode: true}, nil)
	h.mockRepo.EXPECT().AddPublishRecord(gomock.Any()).Return(nil).Times(2)

	done := make(chan error)
	go func() {
		_, err := bm.Publish(context.Background(), "p1", true)
		done <- err
	}()
	<-entered

	assert.Equal(t, []string{"p1"}, bm.Snapshot().Busy.Publishing)
	_, err := bm.Publish(context.Background(), "p1", true)
	assert.ErrorIs(t, err, logic.ErrPublishInFlight)
	_, err = bm.Publish(context.Background(), "p2", true)
	assert.Nil(t, err)

	close(release)
	assert.Nil(t, <-done)
	assert.Equal(t, 0, len(bm.Snapshot().Busy.Publishing))
}

func Test_Stale_Scan_Response_Is_Dropped(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()

	entered := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		h.mockBackend.EXPECT().Scan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req *dto.ScanRequest) (*dto.ScanResponse, error) {
				close(entered)
				<-release
				return &dto.ScanResponse{Activities: activities("OLD")}, nil
			}),
		h.mockBackend.EXPECT().Scan(gomock.Any(), gomock.Any()).
			Return(&dto.ScanResponse{Activities: activities("NEW")}, nil),
	)

	done := make(chan error)
	go func() {
		_, err := bm.Scan(context.Background(), logic.ScanFilter{Hours: 1})
		done <- err
	}()
	<-entered
	assert.True(t, bm.Snapshot().Busy.Scanning)

	res, err := bm.Scan(context.Background(), logic.ScanFilter{Hours: 2})
	assert.Nil(t, err)
	assert.Equal(t, "NEW", res.Activities[0].Id)

	close(release)
	assert.ErrorIs(t, <-done, logic.ErrStaleResponse)
	snap := bm.Snapshot()
	assert.Equal(t, 1, len(snap.Activities))
	assert.Equal(t, "NEW", snap.Activities[0].Id)
	assert.False(t, snap.Busy.Scanning)
}

func Test_Reset_Clears_Everything_And_Drops_In_Flight(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Hello"))

	entered := make(chan struct{})
	release := make(chan struct{})
	h.mockBackend.EXPECT().GenerateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *dto.BatchGenerateRequest) (*dto.BatchGenerateResponse, error) {
			close(entered)
			<-release
			return &dto.BatchGenerateResponse{Posts: []dto.Post{pendingPost("p9", "A1", "Late")}}, nil
		})

	done := make(chan error)
	go func() {
		_, err := bm.Generate(context.Background(), nil, "")
		done <- err
	}()
	<-entered
	bm.Reset()
	close(release)

	assert.ErrorIs(t, <-done, logic.ErrStaleResponse)
	snap := bm.Snapshot()
	assert.Equal(t, dto.StateIdle, snap.State)
	assert.Equal(t, 0, len(snap.Activities))
	assert.Equal(t, 0, len(snap.Suggested))
	assert.Equal(t, 0, len(snap.Posts))
	assert.False(t, snap.SuggestionMode)
	assert.Nil(t, snap.ImagePicker)
}

func Test_Image_Selection_Flow(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Hello"))

	_, err := bm.SelectImage(test.Ptr("https://img/0.jpg"))
	assert.ErrorIs(t, err, logic.ErrNoImageTarget)

	images := []dto.Image{{Id: "i1", Url: "https://img/1.jpg"}, {Id: "i2", Url: "https://img/2.jpg"}}
	h.mockBackend.EXPECT().PreviewImages(gomock.Any(), gomock.Eq(&dto.ImagePreviewRequest{PostContent: "Hello", Count: 3})).
		Return(&dto.ImagePreviewResponse{Images: images}, nil)
	loaded, err := bm.LoadImages(context.Background(), "p1")
	assert.Nil(t, err)
	assert.Equal(t, 2, len(loaded))

	post, err := bm.SelectImage(test.Ptr("https://img/2.jpg"))
	assert.Nil(t, err)
	assert.Equal(t, "https://img/2.jpg", *post.ImageUrl)
	post, err = bm.SelectImage(nil)
	assert.Nil(t, err)
	assert.Nil(t, post.ImageUrl)

	// Failed reload empties the list but keeps the picker open
	h.mockBackend.EXPECT().PreviewImages(gomock.Any(), gomock.Any()).
		Return(nil, &logic.BackendError{Kind: logic.ErrKindTransport, Op: "images", Message: "unsplash down"})
	_, err = bm.LoadImages(context.Background(), "p1")
	assert.NotNil(t, err)
	snap := bm.Snapshot()
	assert.NotNil(t, snap.ImagePicker)
	assert.Equal(t, "p1", snap.ImagePicker.PostId)
	assert.Equal(t, 0, len(snap.ImagePicker.Images))
	assert.True(t, hasNotice(bm.DrainNotices(), "images-failed"))

	bm.CloseImages()
	assert.Nil(t, bm.Snapshot().ImagePicker)
	_, err = bm.SelectImage(nil)
	assert.ErrorIs(t, err, logic.ErrNoImageTarget)
}

func Test_Images_Need_Content(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, dto.Post{Id: "p1", ActivityId: "A1", Status: dto.PostFailed, Error: "boom"})

	_, err := bm.LoadImages(context.Background(), "p1")
	assert.ErrorIs(t, err, logic.ErrPostNotEditable)
	_, err = bm.LoadImages(context.Background(), "p2")
	assert.ErrorIs(t, err, logic.ErrPostNotFound)
}

func Test_Publish_Result_After_Reset_Leaves_New_Draft_Pending(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("post_0_A1", "A1", "Original draft"))

	entered := make(chan struct{})
	release := make(chan struct{})
	h.mockRepo.EXPECT().CountPublished(botUser, gomock.Any()).Return(0, nil)
	h.mockBackend.EXPECT().PublishFull(gomock.Any(), gomock.Cond(func(x any) bool {
		return x.(*dto.FullPublishRequest).PostContent == "Original draft"
	})).DoAndReturn(func(ctx context.Context, req *dto.FullPublishRequest) (*dto.FullPublishResponse, error) {
		close(entered)
		<-release
		return &dto.FullPublishResponse{Published: test.Ptr(true)}, nil
	})
	expectPublishRecord(h, false, true)
	h.mockBackend.EXPECT().GetUsage(gomock.Any(), botUser).
		Return(&dto.Usage{Tier: "free", PostsLimit: 5, PostsRemaining: 4}, nil)

	done := make(chan error)
	go func() {
		_, err := bm.Publish(context.Background(), "post_0_A1", false)
		done <- err
	}()
	<-entered

	bm.Reset()
	assert.Equal(t, 0, len(bm.Snapshot().Busy.Publishing))
	generatePosts(t, h, bm, pendingPost("post_0_A1", "A1", "Brand new draft never published"))

	// The new draft is not blocked by the old request's guard
	h.mockBackend.EXPECT().PublishFull(gomock.Any(), gomock.Cond(func(x any) bool {
		return x.(*dto.FullPublishRequest).PostContent == "Brand new draft never published"
	})).Return(&dto.FullPublishResponse{TestMode: true}, nil)
	expectPublishRecord(h, true, true)
	_, err := bm.Publish(context.Background(), "post_0_A1", true)
	assert.Nil(t, err)

	close(release)
	assert.Nil(t, <-done)

	snap := bm.Snapshot()
	assert.Equal(t, 1, len(snap.Posts))
	assert.Equal(t, dto.PostPending, snap.Posts[0].Status)
	assert.Equal(t, "Brand new draft never published", *snap.Posts[0].Content)
	assert.Equal(t, 0, len(snap.Busy.Publishing))
}

func Test_Publish_Result_After_Edit_Leaves_Post_Pending(t *testing.T) {
	ctrl, h, bm := setupBotModeTest(t)
	defer ctrl.Finish()
	generatePosts(t, h, bm, pendingPost("p1", "A1", "Hello"))

	entered := make(chan struct{})
	release := make(chan struct{})
	h.mockRepo.EXPECT().CountPublished(botUser, gomock.Any()).Return(0, nil)
	h.mockBackend.EXPECT().PublishFull(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *dto.FullPublishRequest) (*dto.FullPublishResponse, error) {
			close(entered)
			<-release
			return &dto.FullPublishResponse{Published: test.Ptr(true)}, nil
		})
	expectPublishRecord(h, false, true)
	h.mockBackend.EXPECT().GetUsage(gomock.Any(), botUser).Return(&dto.Usage{PostsLimit: 5, PostsRemaining: 4}, nil)

	done := make(chan error)
	go func() {
		_, err := bm.Publish(context.Background(), "p1", false)
		done <- err
	}()
	<-entered
	_, err := bm.EditPost("p1", "Hello, edited")
	assert.Nil(t, err)
	close(release)
	assert.Nil(t, <-done)

	post := bm.Snapshot().Posts[0]
	assert.Equal(t, dto.PostPending, post.Status)
	assert.Equal(t, "Hello, edited", *post.Content)
}
