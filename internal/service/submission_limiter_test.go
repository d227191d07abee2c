package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type mockRedisEvaler struct {
	lastScript string
	lastKeys   []string
	lastArgs   []interface{}
	result     int64
	err        error
}

func (m *mockRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastScript = script
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func TestRedisSubmissionLimiterAllow(t *testing.T) {
	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisSubmissionLimiter
		if !l.Allow("u1") {
			t.Fatalf("expected fail-open for nil limiter")
		}
	})

	t.Run("empty key rejected", func(t *testing.T) {
		l := &redisSubmissionLimiter{
			client: &mockRedisEvaler{result: 1},
			window: time.Minute,
			max:    3,
			prefix: "mbti:rl:",
		}
		if l.Allow("   ") {
			t.Fatalf("expected empty key to be rejected")
		}
	})

	t.Run("allow when count within max", func(t *testing.T) {
		mock := &mockRedisEvaler{result: 3}
		l := &redisSubmissionLimiter{
			client: mock,
			window: 10 * time.Minute,
			max:    3,
			prefix: "mbti:rl:",
		}
		if !l.Allow(" User-1 ") {
			t.Fatalf("expected allow when count <= max")
		}
		if len(mock.lastKeys) != 1 || mock.lastKeys[0] != "mbti:rl:user-1" {
			t.Fatalf("unexpected key normalization, got %+v", mock.lastKeys)
		}
		if len(mock.lastArgs) != 1 || mock.lastArgs[0] != 600 {
			t.Fatalf("expected TTL seconds=600, got %+v", mock.lastArgs)
		}
		if mock.lastScript != redisSubmissionAllowScript {
			t.Fatalf("expected script to match")
		}
	})

	t.Run("deny when count exceeds max", func(t *testing.T) {
		l := &redisSubmissionLimiter{
			client: &mockRedisEvaler{result: 4},
			window: time.Minute,
			max:    3,
			prefix: "mbti:rl:",
		}
		if l.Allow("u1") {
			t.Fatalf("expected deny when count > max")
		}
	})

	t.Run("redis error fail-open", func(t *testing.T) {
		l := &redisSubmissionLimiter{
			client: &mockRedisEvaler{err: errors.New("redis down")},
			window: time.Minute,
			max:    3,
			prefix: "mbti:rl:",
		}
		if !l.Allow("u1") {
			t.Fatalf("expected fail-open on redis errors")
		}
	})
}

func TestRedisSubmissionLimiter_Miniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisSubmissionLimiter(client, time.Minute, 2)
	if !l.Allow("u1") || !l.Allow("u1") {
		t.Fatalf("expected first two submissions to pass")
	}
	if l.Allow("u1") {
		t.Fatalf("expected third submission to be limited")
	}
	if !l.Allow("u2") {
		t.Fatalf("expected other keys to be unaffected")
	}
	if ttl := mr.TTL("mbti:rl:u1"); ttl != time.Minute {
		t.Fatalf("expected window ttl of 1m, got %s", ttl)
	}

	mr.FastForward(time.Minute + time.Second)
	if !l.Allow("u1") {
		t.Fatalf("expected limiter to reset after the window")
	}
}

func TestMemorySubmissionLimiter(t *testing.T) {
	l := NewMemorySubmissionLimiter(time.Minute, 2)
	if l.Allow("") {
		t.Fatalf("expected empty key to be rejected")
	}
	if !l.Allow("u1") || !l.Allow("U1") {
		t.Fatalf("expected first two submissions to pass")
	}
	if l.Allow("u1") {
		t.Fatalf("expected third submission to be limited")
	}
	if !l.Allow("u2") {
		t.Fatalf("expected other keys to be unaffected")
	}
}

func TestMemorySubmissionLimiter_WindowExpires(t *testing.T) {
	l := NewMemorySubmissionLimiter(20*time.Millisecond, 1)
	if !l.Allow("u1") {
		t.Fatalf("expected first submission to pass")
	}
	if l.Allow("u1") {
		t.Fatalf("expected second submission to be limited")
	}
	time.Sleep(30 * time.Millisecond)
	if !l.Allow("u1") {
		t.Fatalf("expected submission after window to pass")
	}
}

func TestMemorySubmissionLimiter_DropsExpiredKeys(t *testing.T) {
	l := NewMemorySubmissionLimiter(20*time.Millisecond, 1).(*memorySubmissionLimiter)
	if !l.Allow("u1") || !l.Allow("u2") {
		t.Fatalf("expected first submissions to pass")
	}
	time.Sleep(30 * time.Millisecond)
	if !l.Allow("u3") {
		t.Fatalf("expected u3 to pass")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.hits) != 1 {
		t.Fatalf("expected expired keys to be dropped, got %d keys", len(l.hits))
	}
	if _, ok := l.hits["u3"]; !ok {
		t.Fatalf("expected u3 to be tracked")
	}
}
