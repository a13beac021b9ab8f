// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csp

import "log/slog"

// Logger receives scheduler diagnostics. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
}

// defaultInboxCapacity bounds submissions waiting for the next turn.
const defaultInboxCapacity = 4096

type config struct {
	logger        Logger
	inboxCapacity int
}

func defaultConfig() config {
	return config{
		logger:        slog.Default(),
		inboxCapacity: defaultInboxCapacity,
	}
}

// Option configures a [Scheduler].
type Option func(*config)

// WithLogger sets the logger for process lifecycle events.
// A nil logger discards them.
func WithLogger(l Logger) Option {
	return func(c *config) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		c.logger = l
	}
}

// WithInboxCapacity sets how many submissions (spawns, futures, timer
// expiries) the lock-free inbox holds while waiting for the next turn.
// Further submissions spill to a locked overflow queue; submitters never wait.
// The capacity is rounded up to a power of two. It panics if n < 2.
func WithInboxCapacity(n int) Option {
	if n < 2 {
		panic("csp: inbox capacity must be at least 2")
	}
	return func(c *config) { c.inboxCapacity = n }
}
