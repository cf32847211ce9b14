package service

import (
	"context"
	"path/filepath"
	"testing"

	"ai-companion-be/internal/constant"
	"ai-companion-be/internal/dto"
	"ai-companion-be/internal/pkg/apperror"
	"ai-companion-be/internal/pkg/logger"
	"ai-companion-be/internal/repository/memory"
	"ai-companion-be/internal/repository/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) ISessionService {
	t.Helper()
	sessions := memory.NewChatSessionRepository()
	messages := memory.NewMessageRepository()
	log := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
	return NewSessionService(store.NewSessionStore(sessions, messages), nil, log)
}

func TestSessionServiceCreateAndList(t *testing.T) {
	svc := newSessionService(t)
	userId := uuid.New()

	created, err := svc.Create(context.Background(), userId, &dto.CreateChatSessionRequest{})
	require.NoError(t, err)
	assert.Equal(t, constant.DefaultSessionTitle, created.Title)
	assert.Equal(t, userId.String(), created.UserId)

	listed, err := svc.List(context.Background(), userId, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.Id, listed[0].Id)
}

func TestSessionServiceListEmpty(t *testing.T) {
	svc := newSessionService(t)

	listed, err := svc.List(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestSessionServiceUpdateOwnership(t *testing.T) {
	svc := newSessionService(t)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateChatSessionRequest{Title: "before"})
	require.NoError(t, err)
	id := uuid.MustParse(created.Id)

	updated, err := svc.Update(context.Background(), owner, id, map[string]string{"title": "after"})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)

	_, err = svc.Update(context.Background(), uuid.New(), id, map[string]string{"title": "hijack"})
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
}

func TestSessionServiceDelete(t *testing.T) {
	svc := newSessionService(t)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateChatSessionRequest{})
	require.NoError(t, err)
	id := uuid.MustParse(created.Id)

	res, err := svc.Delete(context.Background(), owner, id)
	require.NoError(t, err)
	assert.True(t, res.Deleted)

	_, err = svc.Delete(context.Background(), owner, id)
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}

func TestSessionServiceDeleteForeignSession(t *testing.T) {
	svc := newSessionService(t)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateChatSessionRequest{})
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), uuid.New(), uuid.MustParse(created.Id))
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
}
