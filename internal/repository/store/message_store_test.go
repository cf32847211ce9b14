package store

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"ai-companion-be/internal/constant"
	"ai-companion-be/internal/entity"
	"ai-companion-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageStoreSaveFillsIdentityAndTimestamp(t *testing.T) {
	sessionStore, messageStore := newTestStores()
	session, err := sessionStore.Create(context.Background(), uuid.New(), "")
	require.NoError(t, err)

	saved, err := messageStore.Save(context.Background(), &entity.Message{
		SessionId: session.Id,
		Sender:    constant.MessageSenderUser,
		Content:   entity.MessageContent{Type: constant.ContentTypeConversation, Text: "hi"},
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, saved.Id)
	assert.False(t, saved.Timestamp.IsZero())
}

func TestMessageStoreSaveRequiresSession(t *testing.T) {
	_, messageStore := newTestStores()

	_, err := messageStore.Save(context.Background(), &entity.Message{
		Sender:  constant.MessageSenderUser,
		Content: entity.MessageContent{Type: constant.ContentTypeConversation, Text: "hi"},
	})
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidArgument, appErr.Code)

	_, err = messageStore.Save(context.Background(), &entity.Message{
		SessionId: uuid.New(), // no such session
		Sender:    constant.MessageSenderUser,
		Content:   entity.MessageContent{Type: constant.ContentTypeConversation, Text: "hi"},
	})
	require.Error(t, err)
	appErr, ok = apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}

func TestMessageStoreFirstUserMessageSetsTitle(t *testing.T) {
	sessionStore, messageStore := newTestStores()
	session, err := sessionStore.Create(context.Background(), uuid.New(), "")
	require.NoError(t, err)
	require.Equal(t, constant.DefaultSessionTitle, session.Title)

	_, err = messageStore.Save(context.Background(), &entity.Message{
		SessionId: session.Id,
		Sender:    constant.MessageSenderUser,
		Content:   entity.MessageContent{Type: constant.ContentTypeConversation, Text: "Plan my trip to Lisbon"},
	})
	require.NoError(t, err)

	reloaded, err := sessionStore.Get(context.Background(), session.Id)
	require.NoError(t, err)
	assert.Equal(t, "Plan my trip to Lisbon", reloaded.Title)
}

func TestMessageStoreFirstUserMessageTruncatesTitle(t *testing.T) {
	sessionStore, messageStore := newTestStores()
	session, err := sessionStore.Create(context.Background(), uuid.New(), "")
	require.NoError(t, err)

	long := strings.Repeat("q", 41)
	_, err = messageStore.Save(context.Background(), &entity.Message{
		SessionId: session.Id,
		Sender:    constant.MessageSenderUser,
		Content:   entity.MessageContent{Type: constant.ContentTypeConversation, Text: long},
	})
	require.NoError(t, err)

	reloaded, err := sessionStore.Get(context.Background(), session.Id)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("q", 30)+"...", reloaded.Title)
}

func TestMessageStoreSecondMessageLeavesTitle(t *testing.T) {
	sessionStore, messageStore := newTestStores()
	session, err := sessionStore.Create(context.Background(), uuid.New(), "")
	require.NoError(t, err)

	for _, text := range []string{"first message", "second message"} {
		_, err = messageStore.Save(context.Background(), &entity.Message{
			SessionId: session.Id,
			Sender:    constant.MessageSenderUser,
			Content:   entity.MessageContent{Type: constant.ContentTypeConversation, Text: text},
		})
		require.NoError(t, err)
	}

	reloaded, err := sessionStore.Get(context.Background(), session.Id)
	require.NoError(t, err)
	assert.Equal(t, "first message", reloaded.Title)
}

func TestMessageStoreAssistantFirstMessageLeavesTitle(t *testing.T) {
	sessionStore, messageStore := newTestStores()
	session, err := sessionStore.Create(context.Background(), uuid.New(), "")
	require.NoError(t, err)

	_, err = messageStore.Save(context.Background(), &entity.Message{
		SessionId: session.Id,
		Sender:    constant.MessageSenderAssistant,
		Content:   entity.MessageContent{Type: constant.ContentTypeConversation, Text: "welcome back"},
	})
	require.NoError(t, err)

	reloaded, err := sessionStore.Get(context.Background(), session.Id)
	require.NoError(t, err)
	assert.Equal(t, constant.DefaultSessionTitle, reloaded.Title)
}

func TestMessageStoreGetManyOrderedAndLimited(t *testing.T) {
	sessionStore, messageStore := newTestStores()
	session, err := sessionStore.Create(context.Background(), uuid.New(), "")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err = messageStore.Save(context.Background(), &entity.Message{
			SessionId: session.Id,
			Sender:    constant.MessageSenderUser,
			Content:   entity.MessageContent{Type: constant.ContentTypeConversation, Text: fmt.Sprintf("msg %d", i)},
		})
		require.NoError(t, err)
	}

	messages, err := messageStore.GetMany(context.Background(), session.Id, 3)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for i := 1; i < len(messages); i++ {
		assert.False(t, messages[i].Timestamp.Before(messages[i-1].Timestamp))
	}
}

func TestMessageStoreGetManyValidation(t *testing.T) {
	_, messageStore := newTestStores()

	_, err := messageStore.GetMany(context.Background(), uuid.Nil, 10)
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidArgument, appErr.Code)

	_, err = messageStore.GetMany(context.Background(), uuid.New(), -1)
	require.Error(t, err)
	appErr, ok = apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidArgument, appErr.Code)
}

func TestMessageStoreAttachmentRoundTrip(t *testing.T) {
	sessionStore, messageStore := newTestStores()
	session, err := sessionStore.Create(context.Background(), uuid.New(), "")
	require.NoError(t, err)

	audio := []byte{0x52, 0x49, 0x46, 0x46, 0x00, 0xff}
	saved, err := messageStore.Save(context.Background(), &entity.Message{
		SessionId: session.Id,
		Sender:    constant.MessageSenderUser,
		Content: entity.MessageContent{
			Type:      constant.ContentTypeAudio,
			Text:      "spoken words",
			AudioFile: audio,
		},
	})
	require.NoError(t, err)

	reloaded, err := messageStore.GetOne(context.Background(), saved.Id)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, audio, reloaded.Content.AudioFile)
	assert.Nil(t, reloaded.Content.ImageFile)

	image := []byte{0x89, 0x50, 0x4e, 0x47}
	saved, err = messageStore.Save(context.Background(), &entity.Message{
		SessionId: session.Id,
		Sender:    constant.MessageSenderUser,
		Content: entity.MessageContent{
			Type:      constant.ContentTypeImage,
			Text:      "a caption",
			ImageFile: image,
		},
	})
	require.NoError(t, err)

	reloaded, err = messageStore.GetOne(context.Background(), saved.Id)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, image, reloaded.Content.ImageFile)
}

func TestMessageStoreGetOneAbsentIsNil(t *testing.T) {
	_, messageStore := newTestStores()

	msg, err := messageStore.GetOne(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, msg)
}
