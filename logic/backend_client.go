package logic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"post_bot/dto"
	"post_bot/shared"
	"strconv"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_backend_client.go -package mocks post_bot/logic IBackendClient

// IBackendClient talks to the LinkedIn Post Bot backend. Calls are never retried;
// every failure comes back as a *BackendError.
type IBackendClient interface {
	Scan(ctx context.Context, req *dto.ScanRequest) (*dto.ScanResponse, error)
	GenerateBatch(ctx context.Context, req *dto.BatchGenerateRequest) (*dto.BatchGenerateResponse, error)
	PreviewImages(ctx context.Context, req *dto.ImagePreviewRequest) (*dto.ImagePreviewResponse, error)
	PublishFull(ctx context.Context, req *dto.FullPublishRequest) (*dto.FullPublishResponse, error)
	GetUsage(ctx context.Context, userId string) (*dto.Usage, error)
	RefreshAuth(ctx context.Context, userId string) (*dto.AuthRefreshResponse, error)
	GetTemplates(ctx context.Context) ([]dto.Template, error)
	ListScheduled(ctx context.Context, userId string, includePast bool) ([]dto.ScheduledPost, error)
	SchedulePost(ctx context.Context, req *dto.SchedulePostRequest) (*dto.SchedulePostResponse, error)
	CancelScheduled(ctx context.Context, userId string, scheduledId int64) error
	Reschedule(ctx context.Context, scheduledId int64, req *dto.RescheduleRequest) error
	SavePost(ctx context.Context, req *dto.SavePostRequest) (*dto.SavePostResponse, error)
}

type enveloped interface {
	Env() *dto.Envelope
}

type backendClient struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
	client    *http.Client
}

func NewBackendClient(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IBackendClient {
	client := &http.Client{}
	if cfg.Backend.TimeoutSec > 0 {
		client.Timeout = time.Duration(cfg.Backend.TimeoutSec) * time.Second
	}
	return &backendClient{cfg, logger, userAgent, metrics, client}
}

func (bc *backendClient) Scan(ctx context.Context, req *dto.ScanRequest) (*dto.ScanResponse, error) {
	var resp dto.ScanResponse
	if err := bc.call(ctx, "scan", "POST", "/api/github/scan", req, &resp); err != nil {
		return nil, err
	}
	if resp.Activities == nil {
		resp.Activities = []dto.Activity{}
	}
	if resp.AllActivities == nil {
		resp.AllActivities = []dto.Activity{}
	}
	return &resp, nil
}

func (bc *backendClient) GenerateBatch(ctx context.Context, req *dto.BatchGenerateRequest) (*dto.BatchGenerateResponse, error) {
	var resp dto.BatchGenerateResponse
	if err := bc.call(ctx, "generate", "POST", "/api/post/generate-batch", req, &resp); err != nil {
		return nil, err
	}
	if resp.Posts == nil {
		resp.Posts = []dto.Post{}
	}
	return &resp, nil
}

func (bc *backendClient) PreviewImages(ctx context.Context, req *dto.ImagePreviewRequest) (*dto.ImagePreviewResponse, error) {
	var resp dto.ImagePreviewResponse
	if err := bc.call(ctx, "images", "POST", "/api/image/preview", req, &resp); err != nil {
		return nil, err
	}
	if resp.Images == nil {
		resp.Images = []dto.Image{}
	}
	return &resp, nil
}

func (bc *backendClient) PublishFull(ctx context.Context, req *dto.FullPublishRequest) (*dto.FullPublishResponse, error) {
	var resp dto.FullPublishResponse
	if err := bc.call(ctx, "publish", "POST", "/api/publish/full", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (bc *backendClient) GetUsage(ctx context.Context, userId string) (*dto.Usage, error) {
	var resp dto.UsageResponse
	path := "/api/usage/" + shared.PathEscape(userId)
	if err := bc.call(ctx, "usage", "GET", path, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Usage == nil {
		return nil, &BackendError{Kind: ErrKindApplication, Op: "usage", Message: "response has no usage data"}
	}
	return resp.Usage, nil
}

func (bc *backendClient) RefreshAuth(ctx context.Context, userId string) (*dto.AuthRefreshResponse, error) {
	var resp dto.AuthRefreshResponse
	req := dto.AuthRefreshRequest{UserId: userId}
	if err := bc.call(ctx, "auth_refresh", "POST", "/api/auth/refresh", &req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (bc *backendClient) GetTemplates(ctx context.Context) ([]dto.Template, error) {
	var resp dto.TemplatesResponse
	if err := bc.call(ctx, "templates", "GET", "/api/templates", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Templates == nil {
		resp.Templates = []dto.Template{}
	}
	return resp.Templates, nil
}

func (bc *backendClient) ListScheduled(ctx context.Context, userId string, includePast bool) ([]dto.ScheduledPost, error) {
	var resp dto.ScheduledListResponse
	path := "/api/scheduled/" + shared.PathEscape(userId)
	if includePast {
		path += "?include_past=true"
	}
	if err := bc.call(ctx, "scheduled_list", "GET", path, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Posts == nil {
		resp.Posts = []dto.ScheduledPost{}
	}
	return resp.Posts, nil
}

func (bc *backendClient) SchedulePost(ctx context.Context, req *dto.SchedulePostRequest) (*dto.SchedulePostResponse, error) {
	var resp dto.SchedulePostResponse
	if err := bc.call(ctx, "schedule", "POST", "/api/scheduled", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (bc *backendClient) CancelScheduled(ctx context.Context, userId string, scheduledId int64) error {
	var resp dto.StatusResponse
	path := scheduledPath(scheduledId) + "?user_id=" + url.QueryEscape(userId)
	return bc.call(ctx, "scheduled_cancel", "DELETE", path, nil, &resp)
}

func (bc *backendClient) Reschedule(ctx context.Context, scheduledId int64, req *dto.RescheduleRequest) error {
	var resp dto.StatusResponse
	return bc.call(ctx, "scheduled_move", "PUT", scheduledPath(scheduledId), req, &resp)
}

func scheduledPath(scheduledId int64) string {
	return "/api/scheduled/" + strconv.FormatInt(scheduledId, 10)
}

func (bc *backendClient) SavePost(ctx context.Context, req *dto.SavePostRequest) (*dto.SavePostResponse, error) {
	var resp dto.SavePostResponse
	if err := bc.call(ctx, "save_post", "POST", "/api/posts", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (bc *backendClient) call(ctx context.Context, op, method, path string, reqObj any, respObj enveloped) error {

	obs := bc.metrics.StartBackendRequestOut(op)
	defer obs.Finish()

	var body io.Reader
	if reqObj != nil {
		bodyJson, err := json.Marshal(reqObj)
		if err != nil {
			return &BackendError{Kind: ErrKindTransport, Op: op, Message: err.Error()}
		}
		body = bytes.NewReader(bodyJson)
	}

	reqUrl := shared.JoinUrl(bc.cfg.Backend.BaseUrl, path)
	req, err := http.NewRequestWithContext(ctx, method, reqUrl, body)
	if err != nil {
		return &BackendError{Kind: ErrKindTransport, Op: op, Message: err.Error()}
	}
	bc.userAgent.AddUserAgent(req)
	req.Header.Set("Accept", "application/json")
	if reqObj != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bc.cfg.Secrets.BackendToken != "" {
		req.Header.Set("Authorization", "Bearer "+bc.cfg.Secrets.BackendToken)
	}

	resp, err := bc.client.Do(req)
	if err != nil {
		bc.logger.Warnf("Backend %s %s failed: %v", method, path, err)
		return &BackendError{Kind: ErrKindTransport, Op: op, Message: fmt.Sprintf("could not reach backend: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &BackendError{Kind: ErrKindTransport, Op: op, Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := messageFromBody(respBody)
		if msg == "" {
			msg = fmt.Sprintf("backend returned %s", resp.Status)
		}
		bc.logger.Warnf("Backend %s %s got status %d: %s", method, path, resp.StatusCode, msg)
		return &BackendError{Kind: ErrKindTransport, Op: op, Status: resp.StatusCode, Message: msg}
	}

	if err = json.Unmarshal(respBody, respObj); err != nil {
		bc.logger.Warnf("Backend %s %s returned unparseable body: %v", method, path, err)
		return &BackendError{Kind: ErrKindTransport, Op: op, Status: resp.StatusCode,
			Message: fmt.Sprintf("invalid response from backend: %v", err)}
	}

	env := respObj.Env()
	if env.Error != "" {
		msg := env.Error
		if env.Message != "" && env.Message != env.Error {
			msg += ": " + env.Message
		}
		bc.logger.Infof("Backend %s %s returned error: %s", method, path, msg)
		return &BackendError{Kind: ErrKindApplication, Op: op, Status: resp.StatusCode, Message: msg}
	}
	return nil
}

// Pulls a human-readable message out of an error body, if it has one.
func messageFromBody(body []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	for _, key := range []string{"error", "message", "detail"} {
		if str, ok := fields[key].(string); ok && str != "" {
			return str
		}
	}
	return ""
}
