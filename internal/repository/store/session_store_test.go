package store

import (
	"context"
	"testing"

	"ai-companion-be/internal/constant"
	"ai-companion-be/internal/entity"
	"ai-companion-be/internal/pkg/apperror"
	"ai-companion-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStores() (*SessionStore, *MessageStore) {
	sessions := memory.NewChatSessionRepository()
	messages := memory.NewMessageRepository()
	return NewSessionStore(sessions, messages), NewMessageStore(sessions, messages)
}

func TestSessionStoreCreateDefaultsTitle(t *testing.T) {
	sessionStore, _ := newTestStores()
	userId := uuid.New()

	session, err := sessionStore.Create(context.Background(), userId, "")
	require.NoError(t, err)

	assert.Equal(t, constant.DefaultSessionTitle, session.Title)
	assert.Equal(t, userId, session.UserId)
	assert.NotEqual(t, uuid.Nil, session.Id)
	assert.False(t, session.CreatedAt.IsZero())
}

func TestSessionStoreGetNotFound(t *testing.T) {
	sessionStore, _ := newTestStores()

	_, err := sessionStore.Get(context.Background(), uuid.New())
	require.Error(t, err)

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}

func TestSessionStoreListNewestFirst(t *testing.T) {
	sessionStore, _ := newTestStores()
	userId := uuid.New()

	_, err := sessionStore.Create(context.Background(), userId, "first")
	require.NoError(t, err)
	_, err = sessionStore.Create(context.Background(), userId, "second")
	require.NoError(t, err)

	sessions, err := sessionStore.List(context.Background(), &userId, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.False(t, sessions[0].CreatedAt.Before(sessions[1].CreatedAt))
}

func TestSessionStoreListRejectsNegativeLimit(t *testing.T) {
	sessionStore, _ := newTestStores()
	userId := uuid.New()

	_, err := sessionStore.List(context.Background(), &userId, -1)
	require.Error(t, err)

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidArgument, appErr.Code)
}

func TestSessionStoreListScopedToOwner(t *testing.T) {
	sessionStore, _ := newTestStores()
	owner := uuid.New()
	other := uuid.New()

	_, err := sessionStore.Create(context.Background(), owner, "mine")
	require.NoError(t, err)
	_, err = sessionStore.Create(context.Background(), other, "theirs")
	require.NoError(t, err)

	sessions, err := sessionStore.List(context.Background(), &owner, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, owner, sessions[0].UserId)
}

func TestSessionStoreUpdateAllowListsTitle(t *testing.T) {
	sessionStore, _ := newTestStores()
	userId := uuid.New()

	session, err := sessionStore.Create(context.Background(), userId, "before")
	require.NoError(t, err)

	updated, err := sessionStore.Update(context.Background(), session.Id, map[string]string{
		"title":   "after",
		"user_id": uuid.New().String(), // not mutable, silently dropped
		"bogus":   "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)

	reloaded, err := sessionStore.Get(context.Background(), session.Id)
	require.NoError(t, err)
	assert.Equal(t, "after", reloaded.Title)
	assert.Equal(t, userId, reloaded.UserId)
}

func TestSessionStoreUpdateWithoutTitleIsNoop(t *testing.T) {
	sessionStore, _ := newTestStores()
	userId := uuid.New()

	session, err := sessionStore.Create(context.Background(), userId, "keep")
	require.NoError(t, err)

	updated, err := sessionStore.Update(context.Background(), session.Id, map[string]string{
		"something": "else",
	})
	require.NoError(t, err)
	assert.Equal(t, "keep", updated.Title)
}

func TestSessionStoreDeleteCascades(t *testing.T) {
	sessionStore, messageStore := newTestStores()
	userId := uuid.New()

	session, err := sessionStore.Create(context.Background(), userId, "")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := messageStore.Save(context.Background(), &entity.Message{
			SessionId: session.Id,
			Sender:    constant.MessageSenderUser,
			Content:   entity.MessageContent{Type: constant.ContentTypeConversation, Text: "hello"},
		})
		require.NoError(t, err)
	}

	existed, err := sessionStore.Delete(context.Background(), session.Id)
	require.NoError(t, err)
	assert.True(t, existed)

	messages, err := messageStore.GetMany(context.Background(), session.Id, 0)
	require.NoError(t, err)
	assert.Empty(t, messages)

	_, err = sessionStore.Get(context.Background(), session.Id)
	require.Error(t, err)
}

func TestSessionStoreDeleteAbsentReturnsFalse(t *testing.T) {
	sessionStore, _ := newTestStores()

	existed, err := sessionStore.Delete(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, existed)
}
