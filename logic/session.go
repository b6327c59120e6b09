package logic

import (
	"context"
	"fmt"
	"post_bot/dal"
	"post_bot/dto"
	"post_bot/shared"
	"strings"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_session_manager.go -package mocks post_bot/logic ISessionManager

// ISessionManager keeps track of which users have connected a LinkedIn account.
type ISessionManager interface {
	Connect(userId, userUrn string) (*dto.LinkedInSession, error)
	Disconnect(userId string) error
	IsConnected(userId string) bool
	Get(userId string) (*dto.LinkedInSession, error)
	Verify(ctx context.Context, userId string) (*dto.LinkedInSession, error)
}

type sessionManager struct {
	logger  shared.ILogger
	repo    dal.IRepo
	backend IBackendClient
}

func NewSessionManager(
	logger shared.ILogger,
	repo dal.IRepo,
	backend IBackendClient,
) ISessionManager {
	return &sessionManager{logger, repo, backend}
}

func toSessionView(userId string, sess *dal.Session) *dto.LinkedInSession {
	res := &dto.LinkedInSession{UserId: userId}
	if sess == nil {
		return res
	}
	res.Connected = true
	res.UserUrn = sess.UserUrn
	res.AuthVerified = sess.AuthVerified
	res.ConnectedAt = sess.ConnectedAt
	res.VerifiedAt = sess.VerifiedAt
	return res
}

func (sm *sessionManager) Connect(userId, userUrn string) (*dto.LinkedInSession, error) {
	userUrn = strings.TrimSpace(userUrn)
	if userUrn == "" {
		return nil, ErrInvalidUrn
	}
	now := time.Now().UTC()
	sess := &dal.Session{
		UserId:      userId,
		UserUrn:     userUrn,
		ConnectedAt: &now,
	}
	if err := sm.repo.UpsertSession(sess); err != nil {
		sm.logger.Errorf("Failed to store LinkedIn session for %s: %v", userId, err)
		return nil, err
	}
	sm.logger.Infof("User %s connected LinkedIn account %s", userId, userUrn)
	return toSessionView(userId, sess), nil
}

func (sm *sessionManager) Disconnect(userId string) error {
	if err := sm.repo.DeleteSession(userId); err != nil {
		sm.logger.Errorf("Failed to delete LinkedIn session for %s: %v", userId, err)
		return err
	}
	sm.logger.Infof("User %s disconnected LinkedIn", userId)
	return nil
}

func (sm *sessionManager) IsConnected(userId string) bool {
	sess, err := sm.repo.GetSession(userId)
	if err != nil {
		sm.logger.Warnf("Failed to load LinkedIn session for %s: %v", userId, err)
		return false
	}
	return sess != nil
}

func (sm *sessionManager) Get(userId string) (*dto.LinkedInSession, error) {
	sess, err := sm.repo.GetSession(userId)
	if err != nil {
		return nil, err
	}
	return toSessionView(userId, sess), nil
}

// Verify asks the backend whether the user's LinkedIn token still works.
// A session the backend does not recognize is dropped.
func (sm *sessionManager) Verify(ctx context.Context, userId string) (*dto.LinkedInSession, error) {

	resp, err := sm.backend.RefreshAuth(ctx, userId)
	if err != nil {
		return nil, err
	}

	if !resp.Authenticated {
		sm.logger.Infof("Backend reports no LinkedIn auth for %s; dropping session", userId)
		if err = sm.repo.DeleteSession(userId); err != nil {
			return nil, err
		}
		return toSessionView(userId, nil), nil
	}

	sess, err := sm.repo.GetSession(userId)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if sess == nil {
		sess = &dal.Session{UserId: userId, ConnectedAt: &now}
	}
	if resp.UserUrn != nil && *resp.UserUrn != "" {
		sess.UserUrn = *resp.UserUrn
	}
	sess.AuthVerified = true
	sess.VerifiedAt = &now
	if err = sm.repo.UpsertSession(sess); err != nil {
		return nil, fmt.Errorf("storing verified session: %w", err)
	}
	return toSessionView(userId, sess), nil
}
