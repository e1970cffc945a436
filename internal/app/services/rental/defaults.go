package rental

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"carrental/internal/app/policies"
)

var (
	// rand.IntN uses the runtime-seeded, goroutine-safe generator.
	defaultRandom policies.RandomSource = policies.RandomFunc(rand.IntN)
	defaultClock  policies.Clock        = policies.ClockFunc(time.Now)
	discardLogger                       = slog.New(slog.DiscardHandler)
)
