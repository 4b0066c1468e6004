package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix   = "user:%s"
	EventKeyPrefix  = "event:%s"
	RosterKeyPrefix = "event:%s:roster"
)

const (
	UserTTL   = 5 * time.Minute
	EventTTL  = 10 * time.Minute
	RosterTTL = 30 * time.Second
)

func UserKey(userID string) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func EventKey(eventID string) string {
	return fmt.Sprintf(EventKeyPrefix, eventID)
}

func RosterKey(eventID string) string {
	return fmt.Sprintf(RosterKeyPrefix, eventID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID string) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateEvent(ctx context.Context, eventID string) {
	Invalidate(ctx, EventKey(eventID))
	Invalidate(ctx, RosterKey(eventID))
}

func InvalidateRoster(ctx context.Context, eventID string) {
	Invalidate(ctx, RosterKey(eventID))
}
