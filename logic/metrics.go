package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"post_bot/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks post_bot/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartApiRequestIn(label string) IRequestObserver
	StartBackendRequestOut(label string) IRequestObserver
	ScanCompleted(outcome string)
	PostsGenerated(generated, failed int)
	PostPublished(mode, result string)
	StaleResponseDropped(action string)
	AutopilotRun(result string)
	ServiceStarted()
	LiveSessions(count int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg             *shared.Config
	apiRequestsIn   *prometheus.HistogramVec
	backendRequests *prometheus.HistogramVec
	scans           *prometheus.CounterVec
	postsGenerated  prometheus.Counter
	postsFailed     prometheus.Counter
	postsPublished  *prometheus.CounterVec
	staleResponses  *prometheus.CounterVec
	autopilotRuns   *prometheus.CounterVec
	serviceStarted  prometheus.Counter
	liveBotSessions prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.apiRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "api_requests_in_duration",
		Help: "Duration in seconds of API requests served.",
	}, []string{"label"})
	prometheus.Register(res.apiRequestsIn)

	res.backendRequests = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "backend_requests_out_duration",
		Help: "Duration in seconds of requests made to the backend.",
	}, []string{"label"})
	prometheus.Register(res.backendRequests)

	res.scans = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "activity_scans",
		Help: "Number of activity scans by outcome",
	}, []string{"outcome"})
	prometheus.Register(res.scans)

	res.postsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_generated",
		Help: "Number of post drafts generated",
	})
	prometheus.Register(res.postsGenerated)

	res.postsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_generation_failed",
		Help: "Number of post drafts whose generation failed",
	})
	prometheus.Register(res.postsFailed)

	res.postsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "posts_published",
		Help: "Number of publish attempts by mode and result",
	}, []string{"mode", "result"})
	prometheus.Register(res.postsPublished)

	res.staleResponses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stale_responses_dropped",
		Help: "Backend responses discarded because a newer request superseded them",
	}, []string{"action"})
	prometheus.Register(res.staleResponses)

	res.autopilotRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "autopilot_runs",
		Help: "Number of autopilot runs by result",
	}, []string{"result"})
	prometheus.Register(res.autopilotRuns)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.liveBotSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "live_bot_sessions",
		Help: "Number of users with an in-memory Bot Mode session",
	})
	prometheus.Register(res.liveBotSessions)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartApiRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apiRequestsIn}
}

func (m *metrics) StartBackendRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.backendRequests}
}

func (m *metrics) ScanCompleted(outcome string) {
	m.scans.WithLabelValues(outcome).Add(1)
}

func (m *metrics) PostsGenerated(generated, failed int) {
	m.postsGenerated.Add(float64(generated))
	m.postsFailed.Add(float64(failed))
}

func (m *metrics) PostPublished(mode, result string) {
	m.postsPublished.WithLabelValues(mode, result).Add(1)
}

func (m *metrics) StaleResponseDropped(action string) {
	m.staleResponses.WithLabelValues(action).Add(1)
}

func (m *metrics) AutopilotRun(result string) {
	m.autopilotRuns.WithLabelValues(result).Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) LiveSessions(count int) {
	m.liveBotSessions.Set(float64(count))
}
