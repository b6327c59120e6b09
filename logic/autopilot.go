package logic

import (
	"context"
	"errors"
	"fmt"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
	"post_bot/dto"
	"post_bot/shared"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_autopilot.go -package mocks post_bot/logic IAutopilot

const (
	autopilotRunTimeout  = 30 * time.Minute
	autopilotConcurrency = 4
	autopilotStopWaitSec = 30
)

const (
	skipOutsideCampaign = "campaign over"
	skipLimitReached    = "daily limit reached"
	skipNoActivity      = "no activity"
	skipNothingToPost   = "no post could be generated"
)

// IAutopilot runs the scan -> generate -> publish cycle on a schedule for configured users.
type IAutopilot interface {
	Start() error
	Stop()
	RunAll(ctx context.Context) []*dto.AutopilotOut
	RunOnce(ctx context.Context, userId string, testMode bool) (*dto.AutopilotOut, error)
}

type autopilot struct {
	cfg       *shared.Config
	logger    shared.ILogger
	bots      IBotDirectory
	metrics   IMetrics
	startedAt time.Time
	mu        sync.Mutex
	cron      *cron.Cron
}

func NewAutopilot(
	cfg *shared.Config,
	logger shared.ILogger,
	bots IBotDirectory,
	metrics IMetrics,
) IAutopilot {
	return &autopilot{
		cfg:       cfg,
		logger:    logger,
		bots:      bots,
		metrics:   metrics,
		startedAt: time.Now(),
	}
}

func (ap *autopilot) Start() error {

	if !ap.cfg.Autopilot.Enabled {
		ap.logger.Info("Autopilot is disabled")
		return nil
	}
	loc, err := time.LoadLocation(ap.cfg.Autopilot.Timezone)
	if err != nil {
		return fmt.Errorf("invalid autopilot timezone %s: %w", ap.cfg.Autopilot.Timezone, err)
	}

	ap.mu.Lock()
	defer ap.mu.Unlock()

	ap.cron = cron.New(cron.WithLocation(loc))
	_, err = ap.cron.AddFunc(ap.cfg.Autopilot.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), autopilotRunTimeout)
		defer cancel()
		ap.RunAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid autopilot schedule %s: %w", ap.cfg.Autopilot.Schedule, err)
	}
	ap.cron.Start()
	ap.logger.Infof("Autopilot scheduled at '%s' (%s) for %d users",
		ap.cfg.Autopilot.Schedule, ap.cfg.Autopilot.Timezone, len(ap.cfg.Autopilot.Users))
	return nil
}

func (ap *autopilot) Stop() {
	ap.mu.Lock()
	defer ap.mu.Unlock()
	if ap.cron == nil {
		return
	}
	ap.logger.Info("Stopping autopilot")
	select {
	case <-ap.cron.Stop().Done():
	case <-time.After(autopilotStopWaitSec * time.Second):
		ap.logger.Warn("Autopilot run still going after shutdown wait")
	}
	ap.cron = nil
}

func (ap *autopilot) inCampaign(now time.Time) bool {
	days := ap.cfg.Autopilot.CampaignDays
	return days <= 0 || now.Before(ap.startedAt.AddDate(0, 0, days))
}

// RunAll runs one cycle for every configured user. One user's failure does not stop the others.
func (ap *autopilot) RunAll(ctx context.Context) []*dto.AutopilotOut {

	users := ap.cfg.Autopilot.Users
	res := make([]*dto.AutopilotOut, len(users))
	if !ap.inCampaign(time.Now()) {
		ap.logger.Info("Autopilot campaign has ended; skipping run")
		for i, userId := range users {
			res[i] = &dto.AutopilotOut{UserId: userId, Skipped: skipOutsideCampaign}
			ap.metrics.AutopilotRun("skipped")
		}
		return res
	}

	var g errgroup.Group
	g.SetLimit(autopilotConcurrency)
	for i, userId := range users {
		i, userId := i, userId
		g.Go(func() error {
			out, err := ap.RunOnce(ctx, userId, ap.cfg.Autopilot.TestMode)
			if err != nil {
				ap.logger.Errorf("Autopilot run for %s failed: %v", userId, err)
				out = &dto.AutopilotOut{UserId: userId, Skipped: UserMessage(err)}
			}
			res[i] = out
			return nil
		})
	}
	_ = g.Wait()
	return res
}

// RunOnce scans, generates from everything found, and publishes the first good post.
func (ap *autopilot) RunOnce(ctx context.Context, userId string, testMode bool) (out *dto.AutopilotOut, err error) {

	defer func() {
		switch {
		case err != nil:
			ap.metrics.AutopilotRun("error")
		case out.Skipped != "":
			ap.metrics.AutopilotRun("skipped")
		default:
			ap.metrics.AutopilotRun("ok")
		}
	}()

	ap.logger.Infof("Autopilot run for %s (test mode: %v)", userId, testMode)
	out = &dto.AutopilotOut{UserId: userId, TestMode: testMode}
	bot := ap.bots.New(userId)

	if _, usageErr := bot.RefreshUsage(ctx); usageErr != nil {
		ap.logger.Warnf("Autopilot could not fetch usage for %s: %v", userId, usageErr)
	}
	if !testMode && bot.IsLimitReached() {
		out.Skipped = skipLimitReached
		return out, nil
	}

	filter := ScanFilter{
		Hours:        ap.cfg.Autopilot.Hours,
		ActivityType: dto.ActivityType(ap.cfg.Autopilot.ActivityType),
	}
	scan, err := bot.Scan(ctx, filter)
	if err != nil {
		return nil, err
	}
	if scan.NoActivity {
		out.Skipped = skipNoActivity
		return out, nil
	}
	out.Scanned = len(scan.Activities) + len(scan.Suggested)

	gen, err := bot.Generate(ctx, nil, ap.cfg.Autopilot.Style)
	if err != nil {
		return nil, err
	}
	out.Generated = gen.GeneratedCount
	out.Failed = gen.FailedCount

	for _, post := range gen.Posts {
		if post.Status != dto.PostPending {
			continue
		}
		_, err = bot.Publish(ctx, post.Id, testMode)
		if errors.Is(err, ErrQuotaExhausted) {
			out.Skipped = skipLimitReached
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out.PublishedId = post.Id
		ap.logger.Infof("Autopilot published post %s for %s", post.Id, userId)
		return out, nil
	}
	out.Skipped = skipNothingToPost
	return out, nil
}
