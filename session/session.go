package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"chemstock/models"
)

// Store keeps login sessions in Redis. The payload carries the self-declared
// identity and role; a per-user set backs revocation of older sessions.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

type Session struct {
	Username  string      `json:"sub"`
	FullName  string      `json:"name,omitempty"`
	Role      models.Role `json:"role"`
	IssuedAt  int64       `json:"iat"`
	ExpiresAt int64       `json:"exp"`
}

func key(id string) string          { return fmt.Sprintf("chem:sess:%s", id) }
func userSetKey(user string) string { return fmt.Sprintf("chem:user_sessions:%s", user) }

func (s *Store) Create(ctx context.Context, id string, sess Session) error {
	now := time.Now()
	sess.IssuedAt = now.Unix()
	sess.ExpiresAt = now.Add(s.ttl).Unix()
	b, _ := json.Marshal(sess)
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, key(id), b, s.ttl)
	pipe.SAdd(ctx, userSetKey(sess.Username), id)
	pipe.Expire(ctx, userSetKey(sess.Username), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	b, err := s.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	sess, _ := s.Get(ctx, id)
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key(id))
	if sess != nil {
		pipe.SRem(ctx, userSetKey(sess.Username), id)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// RevokeAllForUser drops every live session of one user. Called at login so a
// fresh role claim cannot coexist with an older one.
func (s *Store) RevokeAllForUser(ctx context.Context, username string) error {
	ids, err := s.rdb.SMembers(ctx, userSetKey(username)).Result()
	if err != nil && err != redis.Nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	for _, sid := range ids {
		pipe.Del(ctx, key(sid))
	}
	pipe.Del(ctx, userSetKey(username))
	_, err = pipe.Exec(ctx)
	return err
}
