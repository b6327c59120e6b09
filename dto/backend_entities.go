package dto

import "encoding/json"

// Entities exchanged with the LinkedIn Post Bot backend API.

type ActivityType string

const (
	ActivityPush        ActivityType = "push"
	ActivityPullRequest ActivityType = "pull_request"
	ActivityNewRepo     ActivityType = "new_repo"
	ActivityCommits     ActivityType = "commits"
	ActivityAll         ActivityType = "all"
	ActivityGeneric     ActivityType = "generic"
)

// IsFilter tells whether the type narrows a scan. "all", "generic" and empty do not.
func (at ActivityType) IsFilter() bool {
	return at != "" && at != ActivityAll && at != ActivityGeneric
}

type PostStatus string

const (
	PostPending   PostStatus = "pending"
	PostPublished PostStatus = "published"
	PostFailed    PostStatus = "failed"
	PostEditing   PostStatus = "editing"
)

// Styles accepted by the backend's generator.
var KnownStyles = []string{"standard", "build_in_public", "thought_leadership", "job_search"}

func IsKnownStyle(style string) bool {
	for _, s := range KnownStyles {
		if s == style {
			return true
		}
	}
	return false
}

type Activity struct {
	Id          string          `json:"id"`
	Type        ActivityType    `json:"type"`
	Icon        string          `json:"icon,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	TimeAgo     string          `json:"time_ago"`
	Repo        *string         `json:"repo,omitempty"`
	Context     json.RawMessage `json:"context,omitempty"` // Opaque; passed back verbatim to generation
}

type Post struct {
	Id            string       `json:"id"`
	ActivityId    string       `json:"activity_id"`
	ActivityType  ActivityType `json:"activity_type"`
	ActivityTitle string       `json:"activity_title"`
	Content       *string      `json:"content"`
	Status        PostStatus   `json:"status"`
	ImageUrl      *string      `json:"image_url"`
	Error         string       `json:"error,omitempty"`
}

type Usage struct {
	Tier               string  `json:"tier"`
	PostsToday         int     `json:"posts_today"`
	PostsLimit         int     `json:"posts_limit"` // -1: unlimited
	PostsRemaining     int     `json:"posts_remaining"`
	ScheduledCount     int     `json:"scheduled_count"`
	ScheduledLimit     int     `json:"scheduled_limit"`
	ScheduledRemaining int     `json:"scheduled_remaining"`
	ResetsInSeconds    int     `json:"resets_in_seconds"`
	ResetsAt           *string `json:"resets_at"`
}

type Image struct {
	Id           string `json:"id"`
	Url          string `json:"url"`
	Thumb        string `json:"thumb"`
	Description  string `json:"description"`
	Photographer string `json:"photographer"`
	DownloadUrl  string `json:"download_url"`
}

type Template struct {
	Id          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Context     json.RawMessage `json:"context,omitempty"`
}

// Envelope fields every backend response may carry.
type Envelope struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

type ScanRequest struct {
	UserId       string       `json:"user_id"`
	Hours        int          `json:"hours"`
	ActivityType ActivityType `json:"activity_type,omitempty"`
}

type ScanResponse struct {
	Envelope
	GithubUsername string     `json:"github_username,omitempty"`
	Activities     []Activity `json:"activities"`
	AllActivities  []Activity `json:"all_activities"`
}

type BatchGenerateRequest struct {
	UserId     string     `json:"user_id"`
	Activities []Activity `json:"activities"`
	Style      string     `json:"style"`
}

type BatchGenerateResponse struct {
	Envelope
	Posts          []Post `json:"posts"`
	GeneratedCount int    `json:"generated_count"`
	FailedCount    int    `json:"failed_count"`
	LimitExceeded  bool   `json:"limit_exceeded,omitempty"`
	Remaining      *int   `json:"remaining,omitempty"`
}

type ImagePreviewRequest struct {
	PostContent string `json:"post_content"`
	Count       int    `json:"count"`
}

type ImagePreviewResponse struct {
	Envelope
	Images []Image `json:"images"`
}

type FullPublishRequest struct {
	UserId      string  `json:"user_id"`
	PostContent string  `json:"post_content"`
	ImageUrl    *string `json:"image_url"`
	TestMode    bool    `json:"test_mode"`
}

type FullPublishResponse struct {
	Envelope
	TestMode  bool  `json:"test_mode"`
	Published *bool `json:"published,omitempty"`
	HasImage  *bool `json:"has_image,omitempty"`
}

type UsageResponse struct {
	Envelope
	Usage *Usage `json:"usage"`
}

type AuthRefreshRequest struct {
	UserId string `json:"user_id"`
}

type AuthRefreshResponse struct {
	Envelope
	Authenticated bool    `json:"authenticated"`
	UserUrn       *string `json:"user_urn,omitempty"`
}

type TemplatesResponse struct {
	Envelope
	Templates []Template `json:"templates"`
}

type ScheduledStatus string

const (
	ScheduledPending   ScheduledStatus = "pending"
	ScheduledPublished ScheduledStatus = "published"
	ScheduledFailed    ScheduledStatus = "failed"
	ScheduledCancelled ScheduledStatus = "cancelled"
)

// ScheduledPost lives in the backend's schedule. Times are unix seconds.
type ScheduledPost struct {
	Id            int64           `json:"id"`
	PostContent   string          `json:"post_content"`
	ImageUrl      *string         `json:"image_url"`
	ScheduledTime int64           `json:"scheduled_time"`
	Status        ScheduledStatus `json:"status"`
	ErrorMessage  *string         `json:"error_message"`
	CreatedAt     int64           `json:"created_at"`
	PublishedAt   *int64          `json:"published_at"`
}

type ScheduledListResponse struct {
	Envelope
	Posts []ScheduledPost `json:"posts"`
}

type SchedulePostRequest struct {
	UserId        string  `json:"user_id"`
	PostContent   string  `json:"post_content"`
	ScheduledTime int64   `json:"scheduled_time"`
	ImageUrl      *string `json:"image_url"`
}

type SchedulePostResponse struct {
	Envelope
	PostId        int64 `json:"post_id"`
	ScheduledTime int64 `json:"scheduled_time"`
}

type RescheduleRequest struct {
	UserId  string `json:"user_id"`
	NewTime int64  `json:"new_time"`
}

// Generic reply of endpoints that only report success.
type StatusResponse struct {
	Envelope
}

type SavePostRequest struct {
	UserId         string          `json:"user_id"`
	PostContent    string          `json:"post_content"`
	PostType       string          `json:"post_type"`
	Context        json.RawMessage `json:"context,omitempty"`
	Status         string          `json:"status"`
	LinkedinPostId *string         `json:"linkedin_post_id,omitempty"`
}

type SavePostResponse struct {
	Envelope
	PostId *int64 `json:"post_id"`
}

func (e *Envelope) Env() *Envelope {
	return e
}
