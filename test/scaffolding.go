// Package test holds shared scaffolding for tests that run against mocks.
package test

import (
	"go.uber.org/mock/gomock"
	"post_bot/logic"
	"post_bot/shared"
	"post_bot/test/mocks"
	"strings"
)

func StubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

// StubTexts makes snippet lookups return the id, followed by the values for WithVals.
func StubTexts(mockTexts *mocks.MockITexts) {
	mockTexts.EXPECT().Get(gomock.Any()).
		DoAndReturn(func(id string) string { return id }).AnyTimes()
	mockTexts.EXPECT().WithVals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(id string, vals map[string]string) string {
			return DummyTextWithVals(id, vals)
		}).AnyTimes()
}

func DummyTextWithVals(id string, vals map[string]string) string {
	res := id
	for k, v := range vals {
		res += "\n" + k + "\t" + v
	}
	return res
}

// StubMetrics accepts every metric update. Request observers are mocks that accept Finish.
func StubMetrics(ctrl *gomock.Controller, mockMetrics *mocks.MockIMetrics) {
	newObserver := func(string) *mocks.MockIRequestObserver {
		obs := mocks.NewMockIRequestObserver(ctrl)
		obs.EXPECT().Finish().AnyTimes()
		return obs
	}
	mockMetrics.EXPECT().StartApiRequestIn(gomock.Any()).
		DoAndReturn(func(label string) logic.IRequestObserver { return newObserver(label) }).AnyTimes()
	mockMetrics.EXPECT().StartBackendRequestOut(gomock.Any()).
		DoAndReturn(func(label string) logic.IRequestObserver { return newObserver(label) }).AnyTimes()
	mockMetrics.EXPECT().ScanCompleted(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().PostsGenerated(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().PostPublished(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().StaleResponseDropped(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().AutopilotRun(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
	mockMetrics.EXPECT().LiveSessions(gomock.Any()).AnyTimes()
}

func TestConfig() *shared.Config {
	cfg := &shared.Config{}
	cfg.Backend.BaseUrl = "http://backend.test"
	cfg.ApplyDefaults()
	return cfg
}

func CheckStartsWith(prefix string) func(x any) bool {
	res := func(x any) bool {
		str, ok := x.(string)
		if !ok {
			return false
		}
		return strings.HasPrefix(str, prefix)
	}
	return res
}

func Ptr[T any](val T) *T {
	return &val
}
