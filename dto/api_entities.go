package dto

import "time"

// Entities of the service's own JSON API.

type BotState string

const (
	StateIdle      BotState = "idle"
	StateScanned   BotState = "scanned"
	StateGenerated BotState = "generated"
)

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a transient, user-facing message, the equivalent of a toast.
type Notice struct {
	Level NoticeLevel `json:"level"`
	Text  string      `json:"text"`
	At    time.Time   `json:"at"`
}

type PostView struct {
	Post
	CharCount  int  `json:"char_count"`
	OverLimit  bool `json:"over_limit"`
	Publishing bool `json:"publishing"`
}

type ImagePickerView struct {
	PostId  string  `json:"post_id"`
	Images  []Image `json:"images"`
	Loading bool    `json:"loading"`
}

type BusyFlags struct {
	Scanning      bool     `json:"scanning"`
	Generating    bool     `json:"generating"`
	LoadingImages bool     `json:"loading_images"`
	Publishing    []string `json:"publishing"`
}

type BotSnapshot struct {
	UserId               string           `json:"user_id"`
	State                BotState         `json:"state"`
	SuggestionMode       bool             `json:"suggestion_mode"`
	Activities           []Activity       `json:"activities"`
	Suggested            []Activity       `json:"suggested_activities"`
	Posts                []PostView       `json:"posts"`
	ImagePicker          *ImagePickerView `json:"image_picker"`
	Busy                 BusyFlags        `json:"busy"`
	Usage                *Usage           `json:"usage"`
	LimitReached         bool             `json:"limit_reached"`
	ScheduleLimitReached bool             `json:"schedule_limit_reached"`
	LinkedInConnected    bool             `json:"linkedin_connected"`
}

type ScanIn struct {
	Hours        int          `json:"hours"`
	ActivityType ActivityType `json:"activity_type"`
}

type ScanOut struct {
	State          BotState   `json:"state"`
	NoActivity     bool       `json:"no_activity"`
	SuggestionMode bool       `json:"suggestion_mode"`
	Activities     []Activity `json:"activities"`
	Suggested      []Activity `json:"suggested_activities"`
}

type GenerateIn struct {
	ActivityIds []string `json:"activity_ids"`
	Style       string   `json:"style"`
}

type GenerateOut struct {
	State          BotState `json:"state"`
	Posts          []Post   `json:"posts"`
	GeneratedCount int      `json:"generated_count"`
	FailedCount    int      `json:"failed_count"`
}

type EditIn struct {
	Content string `json:"content"`
}

type EditingIn struct {
	Editing bool `json:"editing"`
}

type SelectImageIn struct {
	Url *string `json:"url"`
}

type PublishIn struct {
	TestMode bool `json:"test_mode"`
}

type PublishOut struct {
	PostId   string     `json:"post_id"`
	TestMode bool       `json:"test_mode"`
	Status   PostStatus `json:"status"`
	Message  string     `json:"message,omitempty"`
}

type ScheduleIn struct {
	ScheduledTime int64 `json:"scheduled_time"` // unix seconds
}

type ScheduleOut struct {
	PostId        string `json:"post_id"`
	ScheduledId   int64  `json:"scheduled_id"`
	ScheduledTime int64  `json:"scheduled_time"`
}

type RescheduleIn struct {
	NewTime int64 `json:"new_time"`
}

type SaveDraftOut struct {
	PostId    string `json:"post_id"`
	HistoryId *int64 `json:"history_id"`
}

type ConnectIn struct {
	UserUrn string `json:"user_urn"`
}

type LinkedInSession struct {
	UserId       string     `json:"user_id"`
	Connected    bool       `json:"connected"`
	UserUrn      string     `json:"user_urn,omitempty"`
	AuthVerified bool       `json:"auth_verified"`
	ConnectedAt  *time.Time `json:"connected_at,omitempty"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
}

type PublishRecord struct {
	PostId         string    `json:"post_id"`
	ContentPreview string    `json:"content_preview"`
	ImageUrl       *string   `json:"image_url"`
	TestMode       bool      `json:"test_mode"`
	Success        bool      `json:"success"`
	Error          string    `json:"error,omitempty"`
	PublishedAt    time.Time `json:"published_at"`
}

type AutopilotOut struct {
	UserId      string `json:"user_id"`
	Skipped     string `json:"skipped,omitempty"`
	Scanned     int    `json:"scanned"`
	Generated   int    `json:"generated"`
	Failed      int    `json:"failed"`
	PublishedId string `json:"published_id,omitempty"`
	TestMode    bool   `json:"test_mode"`
}
