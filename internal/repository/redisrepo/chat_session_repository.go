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
//	chat:session:{id}              session record (JSON)
//	chat:sessions                  all sessions, scored by created_at
//	chat:user:{userId}:sessions    per-owner index, scored by created_at
//
// Sorted-set scores stand in for the (user_id, created_at) index the SQL
// backend gets from postgres.
type ChatSessionRepository struct {
	rdb *redis.Client
}

func NewChatSessionRepository(rdb *redis.Client) contract.ChatSessionRepository {
	return &ChatSessionRepository{rdb: rdb}
}

func sessionKey(id uuid.UUID) string {
	return "chat:session:" + id.String()
}

func userSessionsKey(userId uuid.UUID) string {
	return "chat:user:" + userId.String() + ":sessions"
}

const allSessionsKey = "chat:sessions"

func (r *ChatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	score := float64(session.CreatedAt.UnixNano())
	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(session.Id), data, 0)
	pipe.ZAdd(ctx, allSessionsKey, redis.Z{Score: score, Member: session.Id.String()})
	pipe.ZAdd(ctx, userSessionsKey(session.UserId), redis.Z{Score: score, Member: session.Id.String()})
	_, err = pipe.Exec(ctx)
	return err
}

func (r *ChatSessionRepository) FindOne(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	data, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session entity.ChatSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", id, err)
	}
	return &session, nil
}

func (r *ChatSessionRepository) FindAll(ctx context.Context, userId *uuid.UUID, limit int) ([]*entity.ChatSession, error) {
	index := allSessionsKey
	if userId != nil {
		index = userSessionsKey(*userId)
	}

	// Newest first: highest created_at score down.
	ids, err := r.rdb.ZRevRange(ctx, index, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	sessions := make([]*entity.ChatSession, 0, len(ids))
	for _, idStr := range ids {
		id, err := uuid.Parse(idStr)
		if err != nil {
			continue
		}
		session, err := r.FindOne(ctx, id)
		if err != nil {
			return nil, err
		}
		if session != nil {
			sessions = append(sessions, session)
		}
	}
	return sessions, nil
}

func (r *ChatSessionRepository) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	session, err := r.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}
	session.Title = title
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return r.rdb.Set(ctx, sessionKey(id), data, 0).Err()
}

func (r *ChatSessionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	session, err := r.FindOne(ctx, id)
	if err != nil {
		return false, err
	}
	if session == nil {
		return false, nil
	}

	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, sessionKey(id))
	pipe.ZRem(ctx, allSessionsKey, id.String())
	pipe.ZRem(ctx, userSessionsKey(session.UserId), id.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return true, nil
}
