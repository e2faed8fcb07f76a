package redis

import (
	"context"
	"testing"

	"github.com/pawcare/vetmarket/internal/infrastructure/config"
)

func TestConnectFailsWhenServerUnreachable(t *testing.T) {
	// Port 1 is never bound in the test environment, so the ping must fail.
	_, err := Connect(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1"})
	if err == nil {
		t.Fatal("expected an error for an unreachable server")
	}
}
