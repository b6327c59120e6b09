package logic_test

import (
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"post_bot/logic"
	"post_bot/test"
	"post_bot/test/mocks"
	"testing"
)

func TestBotDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockTexts := mocks.NewMockITexts(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	test.StubLogger(mockLogger)
	test.StubTexts(mockTexts)
	test.StubMetrics(ctrl, mockMetrics)

	bd := logic.NewBotDirectory(test.TestConfig(), mockLogger, mocks.NewMockIBackendClient(ctrl),
		mocks.NewMockIRepo(ctrl), mocks.NewMockISessionManager(ctrl), mockTexts, mockMetrics)

	_, ok := bd.Peek("u1")
	assert.False(t, ok)
	assert.Equal(t, 0, bd.Count())

	first := bd.Get("u1")
	assert.Equal(t, "u1", first.UserId())
	assert.Same(t, first, bd.Get("u1"))
	peeked, ok := bd.Peek("u1")
	assert.True(t, ok)
	assert.Same(t, first, peeked)
	bd.Get("u2")
	assert.Equal(t, 2, bd.Count())

	// Untracked sessions do not show up in the count
	assert.NotSame(t, first, bd.New("u1"))
	assert.Equal(t, 2, bd.Count())

	assert.True(t, bd.Drop("u1"))
	assert.False(t, bd.Drop("u1"))
	_, ok = bd.Peek("u1")
	assert.False(t, ok)
	assert.Equal(t, 1, bd.Count())
	assert.NotSame(t, first, bd.Get("u1"))
}
