package logic_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"post_bot/dal"
	"post_bot/dto"
	"post_bot/logic"
	"post_bot/test"
	"post_bot/test/mocks"
	"testing"
	"time"
)

func setupSessionTest(t *testing.T) (*mocks.MockIRepo, *mocks.MockIBackendClient, logic.ISessionManager) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	mockBackend := mocks.NewMockIBackendClient(ctrl)
	test.StubLogger(mockLogger)
	return mockRepo, mockBackend, logic.NewSessionManager(mockLogger, mockRepo, mockBackend)
}

func Test_Session_Connect_Stores_Urn(t *testing.T) {
	mockRepo, _, sm := setupSessionTest(t)

	mockRepo.EXPECT().UpsertSession(gomock.Cond(func(x any) bool {
		sess := x.(*dal.Session)
		return sess.UserId == "u1" && sess.UserUrn == "urn:li:person:42" && !sess.AuthVerified
	})).Return(nil)

	sess, err := sm.Connect("u1", "  urn:li:person:42 ")

	assert.Nil(t, err)
	assert.True(t, sess.Connected)
	assert.Equal(t, "urn:li:person:42", sess.UserUrn)
	assert.NotNil(t, sess.ConnectedAt)
}

func Test_Session_Connect_Rejects_Blank_Urn(t *testing.T) {
	_, _, sm := setupSessionTest(t)
	_, err := sm.Connect("u1", " ")
	assert.ErrorIs(t, err, logic.ErrInvalidUrn)
}

func Test_Session_Get_And_IsConnected(t *testing.T) {
	mockRepo, _, sm := setupSessionTest(t)

	mockRepo.EXPECT().GetSession("u1").Return(&dal.Session{UserId: "u1", UserUrn: "urn:li:person:1"}, nil).Times(2)
	mockRepo.EXPECT().GetSession("u2").Return(nil, nil).Times(2)
	mockRepo.EXPECT().GetSession("u3").Return(nil, errors.New("disk on fire"))

	assert.True(t, sm.IsConnected("u1"))
	assert.False(t, sm.IsConnected("u2"))
	assert.False(t, sm.IsConnected("u3"))

	sess, err := sm.Get("u1")
	assert.Nil(t, err)
	assert.True(t, sess.Connected)
	sess, err = sm.Get("u2")
	assert.Nil(t, err)
	assert.False(t, sess.Connected)
	assert.Equal(t, "u2", sess.UserId)
}

func Test_Session_Verify_Drops_Unauthenticated(t *testing.T) {
	mockRepo, mockBackend, sm := setupSessionTest(t)

	mockBackend.EXPECT().RefreshAuth(gomock.Any(), "u1").Return(&dto.AuthRefreshResponse{Authenticated: false}, nil)
	mockRepo.EXPECT().DeleteSession("u1").Return(nil)

	sess, err := sm.Verify(context.Background(), "u1")

	assert.Nil(t, err)
	assert.False(t, sess.Connected)
}

func Test_Session_Verify_Updates_Existing(t *testing.T) {
	mockRepo, mockBackend, sm := setupSessionTest(t)

	connectedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mockBackend.EXPECT().RefreshAuth(gomock.Any(), "u1").
		Return(&dto.AuthRefreshResponse{Authenticated: true, UserUrn: test.Ptr("urn:li:person:7")}, nil)
	mockRepo.EXPECT().GetSession("u1").Return(&dal.Session{UserId: "u1", UserUrn: "old", ConnectedAt: &connectedAt}, nil)
	mockRepo.EXPECT().UpsertSession(gomock.Any()).Return(nil)

	sess, err := sm.Verify(context.Background(), "u1")

	assert.Nil(t, err)
	assert.True(t, sess.AuthVerified)
	assert.Equal(t, "urn:li:person:7", sess.UserUrn)
	assert.Equal(t, connectedAt, *sess.ConnectedAt)
	assert.NotNil(t, sess.VerifiedAt)
}

func Test_Session_Verify_Backend_Error(t *testing.T) {
	_, mockBackend, sm := setupSessionTest(t)
	berr := &logic.BackendError{Kind: logic.ErrKindTransport, Op: "auth", Message: "down"}
	mockBackend.EXPECT().RefreshAuth(gomock.Any(), "u1").Return(nil, berr)
	_, err := sm.Verify(context.Background(), "u1")
	assert.ErrorIs(t, err, berr)
}
