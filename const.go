package main

import "time"

const proxySoftwareName = "goProxy"

const (
	// maxStratumMessageSize bounds how many bytes a single newline-delimited
	// message may occupy in the line buffer. Anything longer is treated as a
	// protocol violation and the offending leg is closed.
	maxStratumMessageSize = 64 * 1024

	stratumWriteTimeout = 60 * time.Second
	// stratumReadPoll is how long each blocking read waits before the loop
	// re-checks idle and shutdown conditions.
	stratumReadPoll = 60 * time.Second

	// minerIdleTimeout closes a miner leg that has been silent on its socket.
	minerIdleTimeout = 5 * time.Minute
	// sessionSweepInterval / sessionSweepIdleLimit drive the registry-wide
	// idle sweep, which catches sessions the read loop could not.
	sessionSweepInterval  = 60 * time.Second
	sessionSweepIdleLimit = 600 * time.Second

	upstreamDialTimeout = 10 * time.Second

	// maxPendingRequests bounds the per-session id correlation table so a
	// pool that never answers cannot grow it without limit.
	maxPendingRequests = 256
	pendingRequestTTL  = 2 * time.Minute

	defaultHealthCheckInterval = 30 * time.Second
	defaultHealthProbeTimeout  = 10 * time.Second
	maxConcurrentHealthProbes  = 8

	// defaultShareDifficulty credits submits that resolve before any
	// mining.set_difficulty was observed on the session.
	defaultShareDifficulty = 1.0

	// hashrateRetention is how long share records are kept; the longest
	// reporting window equals the retention horizon.
	hashrateRetention = 24 * time.Hour
)

// Stratum error codes used on the miner-facing leg.
const (
	stratumErrOther        = 20
	stratumErrUnauthorized = 24
)
