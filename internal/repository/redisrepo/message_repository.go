package redisrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-companion-be/internal/entity"
	"ai-companion-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Key layout:
//
//	chat:message:{id}                 message record (JSON)
//	chat:session:{id}:messages       per-session index, scored by timestamp
type MessageRepository struct {
	rdb *redis.Client
}

func NewMessageRepository(rdb *redis.Client) contract.MessageRepository {
	return &MessageRepository{rdb: rdb}
}

func messageKey(id uuid.UUID) string {
	return "chat:message:" + id.String()
}

func sessionMessagesKey(sessionId uuid.UUID) string {
	return "chat:session:" + sessionId.String() + ":messages"
}

func (r *MessageRepository) Create(ctx context.Context, message *entity.Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, messageKey(message.Id), data, 0)
	pipe.ZAdd(ctx, sessionMessagesKey(message.SessionId), redis.Z{
		Score:  float64(message.Timestamp.UnixNano()),
		Member: message.Id.String(),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (r *MessageRepository) FindOne(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	data, err := r.rdb.Get(ctx, messageKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var message entity.Message
	if err := json.Unmarshal(data, &message); err != nil {
		return nil, fmt.Errorf("unmarshal message %s: %w", id, err)
	}
	return &message, nil
}

func (r *MessageRepository) FindAllBySession(ctx context.Context, sessionId uuid.UUID, limit int) ([]*entity.Message, error) {
	ids, err := r.rdb.ZRange(ctx, sessionMessagesKey(sessionId), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]*entity.Message, 0, len(ids))
	for _, idStr := range ids {
		id, err := uuid.Parse(idStr)
		if err != nil {
			continue
		}
		message, err := r.FindOne(ctx, id)
		if err != nil {
			return nil, err
		}
		if message != nil {
			messages = append(messages, message)
		}
	}
	return messages, nil
}

func (r *MessageRepository) CountBySession(ctx context.Context, sessionId uuid.UUID) (int64, error) {
	return r.rdb.ZCard(ctx, sessionMessagesKey(sessionId)).Result()
}

func (r *MessageRepository) DeleteBySession(ctx context.Context, sessionId uuid.UUID) error {
	key := sessionMessagesKey(sessionId)
	ids, err := r.rdb.ZRange(ctx, key, 0, -1).Result()
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	for _, idStr := range ids {
		pipe.Del(ctx, "chat:message:"+idStr)
	}
	pipe.Del(ctx, key)
	_, err = pipe.Exec(ctx)
	return err
}
