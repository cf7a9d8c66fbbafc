package host

import (
	"errors"
	"net"
	"time"
)

// ProbeInterval is the fixed pacing between startup liveness probes.
// Attempts run at 2 per second so maxAttempts = timeoutSeconds * 2 fills
// the timeout budget exactly.
const ProbeInterval = 500 * time.Millisecond

// slowStartWarnEvery is how many failed attempts pass between non-fatal
// slow-startup warnings.
const slowStartWarnEvery = 10

// ErrStartupTimeout is the dedicated failure for a host that never came
// up within the timeout budget.
var ErrStartupTimeout = errors.New("host did not become ready within the startup timeout")

// ProbeFunc is a lightweight reachability check against the bound
// address.
type ProbeFunc func(addr string) bool

// DefaultProbe dials the address. A completed TCP handshake means the
// listener is accepting connections.
func DefaultProbe(addr string) bool {
	conn, err := net.DialTimeout("tcp", addr, ProbeInterval)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// AwaitReady polls the liveness probe until the host answers or the
// attempt budget derived from timeoutSeconds runs out. The loop
// terminates the instant the probe succeeds or the budget is exhausted;
// every slowStartWarnEvery failed attempts it emits a non-fatal warning
// through warnf.
//
// sleep and probe are injectable; pass time.Sleep and DefaultProbe in
// production.
func AwaitReady(addr string, timeoutSeconds int, probe ProbeFunc, sleep func(time.Duration), warnf func(format string, args ...any)) error {
	maxAttempts := timeoutSeconds * 2
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	attempts := 0
	for {
		if probe(addr) {
			return nil
		}
		attempts++
		if attempts == maxAttempts {
			return ErrStartupTimeout
		}
		sleep(ProbeInterval)
		if attempts%slowStartWarnEvery == 0 {
			warnf("host is taking longer than expected to start (attempt %d of %d)", attempts, maxAttempts)
		}
	}
}
