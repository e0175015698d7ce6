package location

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/singleflight"
)

// DefaultTimeout bounds a single position request
const DefaultTimeout = 10 * time.Second

// ErrTimeout is reported when the locator does not answer in time
var ErrTimeout = errors.New("timeout expired")

const fetchKey = "locate"

// ErrorKind classifies a failed fetch
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindTimeout
	KindUnavailable
	KindFailed
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTimeout:
		return "timeout"
	case KindUnavailable:
		return "unavailable"
	default:
		return "failed"
	}
}

// Result is the outcome of one fetch: either Coordinates, or an error with
// its kind
type Result struct {
	Coordinates Coordinates
	Kind        ErrorKind
	Err         error
}

// OK reports whether coordinates were obtained
func (r Result) OK() bool {
	return r.Err == nil
}

// Format renders coordinates the way they are shown in the location field
func Format(c Coordinates) string {
	return fmt.Sprintf("Location fetched: %.2f, %.2f", c.Latitude, c.Longitude)
}

// Helper performs bounded, one-at-a-time position lookups
type Helper struct {
	locator Locator
	clock   quartz.Clock
	timeout time.Duration
	logger  *log.Logger

	group    singleflight.Group
	inflight atomic.Int32
}

// NewHelper creates a helper around locator. A zero timeout means DefaultTimeout.
func NewHelper(locator Locator, clock quartz.Clock, timeout time.Duration, logger *log.Logger) *Helper {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Helper{
		locator: locator,
		clock:   clock,
		timeout: timeout,
		logger:  logger.WithPrefix("location"),
	}
}

// Fetching reports whether a lookup is in flight
func (h *Helper) Fetching() bool {
	return h.inflight.Load() > 0
}

// Timeout returns the bound applied to each lookup
func (h *Helper) Timeout() time.Duration {
	return h.timeout
}

// Start begins a lookup and returns a channel that receives exactly one
// Result. The timeout is armed before Start returns. Lookups started while
// another is in flight share its request.
func (h *Helper) Start(ctx context.Context) <-chan Result {
	h.inflight.Add(1)
	out := make(chan Result, 1)

	reqCtx, cancel := context.WithCancel(ctx)
	timedOut := make(chan struct{})
	timer := h.clock.AfterFunc(h.timeout, func() { close(timedOut) })

	shared := h.group.DoChan(fetchKey, func() (any, error) {
		h.logger.Debug("Requesting position")
		return h.locator.Locate(reqCtx)
	})

	go func() {
		var res Result
		select {
		case r := <-shared:
			res = h.result(r)
		case <-timedOut:
			h.group.Forget(fetchKey)
			res = Result{Kind: KindTimeout, Err: ErrTimeout}
			h.logger.Warn("Position request timed out", "timeout", h.timeout)
		}

		timer.Stop()
		cancel()
		h.inflight.Add(-1)
		out <- res
	}()

	return out
}

// Fetch is Start followed by waiting for the result
func (h *Helper) Fetch(ctx context.Context) Result {
	return <-h.Start(ctx)
}

func (h *Helper) result(r singleflight.Result) Result {
	if r.Err != nil {
		kind := KindFailed
		if errors.Is(r.Err, ErrUnavailable) {
			kind = KindUnavailable
		}
		h.logger.Warn("Position request failed", "kind", kind, "error", r.Err)
		return Result{Kind: kind, Err: r.Err}
	}

	coords := r.Val.(Coordinates)
	h.logger.Info("Position fetched", "lat", coords.Latitude, "lon", coords.Longitude, "shared", r.Shared)
	return Result{Coordinates: coords}
}
