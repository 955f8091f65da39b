package application

import (
	"sync"
	"time"

	"github.com/bnema/vcalc/internal/ports"
)

type RepeatPhase int

const (
	RepeatIdle RepeatPhase = iota
	RepeatArmed
	RepeatSlow
	RepeatFast
)

func (p RepeatPhase) String() string {
	switch p {
	case RepeatIdle:
		return "idle"
	case RepeatArmed:
		return "armed"
	case RepeatSlow:
		return "repeating-slow"
	case RepeatFast:
		return "repeating-fast"
	default:
		return "unknown"
	}
}

type RepeatConfig struct {
	InitialDelay    time.Duration
	SlowInterval    time.Duration
	FastInterval    time.Duration
	AccelerateAfter time.Duration
}

func DefaultRepeatConfig() RepeatConfig {
	return RepeatConfig{
		InitialDelay:    500 * time.Millisecond,
		SlowInterval:    250 * time.Millisecond,
		FastInterval:    100 * time.Millisecond,
		AccelerateAfter: 1500 * time.Millisecond,
	}
}

// Repeater turns a press-and-hold into repeated calls of fire: one after
// InitialDelay, then every SlowInterval, then every FastInterval once the
// hold has been repeating for AccelerateAfter. At most one timer is pending.
//
// fire runs with the repeater locked so nothing fires after Release returns;
// it must not call back into the Repeater.
type Repeater struct {
	mu        sync.Mutex
	cfg       RepeatConfig
	scheduler ports.Scheduler
	clock     ports.Clock
	fire      func()

	phase       RepeatPhase
	timer       ports.Timer
	generation  uint64
	repeatingAt time.Time
	fireCount   int
}

func NewRepeater(cfg RepeatConfig, scheduler ports.Scheduler, clock ports.Clock, fire func()) *Repeater {
	if scheduler == nil {
		scheduler = ports.SystemScheduler{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Repeater{
		cfg:       cfg,
		scheduler: scheduler,
		clock:     clock,
		fire:      fire,
	}
}

// Press arms the repeater, cancelling a hold that is still running.
func (r *Repeater) Press() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()
	r.phase = RepeatArmed
	r.fireCount = 0
	r.scheduleLocked(r.cfg.InitialDelay)
}

func (r *Repeater) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()
	r.phase = RepeatIdle
}

func (r *Repeater) Phase() RepeatPhase {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.phase
}

func (r *Repeater) Active() bool {
	return r.Phase() != RepeatIdle
}

// Fired reports how many times the current hold has fired.
func (r *Repeater) Fired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.fireCount
}

func (r *Repeater) stopLocked() {
	r.generation++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Repeater) scheduleLocked(delay time.Duration) {
	generation := r.generation
	r.timer = r.scheduler.AfterFunc(delay, func() {
		r.tick(generation)
	})
}

func (r *Repeater) tick(generation uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if generation != r.generation || r.phase == RepeatIdle {
		return
	}

	now := r.clock.Now()
	if r.phase == RepeatArmed {
		r.phase = RepeatSlow
		r.repeatingAt = now
	}

	r.fireCount++
	if r.fire != nil {
		r.fire()
	}

	if r.phase == RepeatSlow && now.Sub(r.repeatingAt) >= r.cfg.AccelerateAfter {
		r.phase = RepeatFast
	}

	r.generation++
	if r.phase == RepeatFast {
		r.scheduleLocked(r.cfg.FastInterval)
		return
	}
	r.scheduleLocked(r.cfg.SlowInterval)
}
