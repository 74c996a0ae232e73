package reminder

import (
	"sync"
	"time"
)

// Notify delivers a reminder message. The concrete mechanism (OS
// notification, in-app popup, stdout) belongs to the host.
type Notify func(message string)

// Runner owns the single pending wake-up timer. Arming always cancels
// the previous timer first, so at most one callback is pending.
type Runner struct {
	mu    sync.Mutex
	timer *time.Timer

	sched  *Scheduler
	notify Notify
	now    func() time.Time
}

func NewRunner(sched *Scheduler, notify Notify) *Runner {
	return &Runner{sched: sched, notify: notify, now: time.Now}
}

// WithClock overrides the time source.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// Arm schedules the next firing per the settings. Disabled reminders
// only cancel whatever was pending.
func (r *Runner) Arm(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	if !enabled {
		return
	}

	now := r.now()
	r.timer = time.AfterFunc(r.sched.Next(now).Sub(now), r.fire)
}

// Stop cancels any pending firing.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Runner) fire() {
	res := r.sched.OnFire(r.now())
	if res.Action == ActionFired && r.notify != nil {
		r.notify(res.Message)
	}
	// Fired or suppressed, the reminder recurs daily.
	r.Arm(true)
}
