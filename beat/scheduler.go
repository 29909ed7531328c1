package beat

import (
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler fires a callback once per beat interval. Changing BPM re-arms
// the timer against the last fire instant so the phase carries over: no
// beat is dropped and none fires twice. Nothing is scheduled while
// stopped. The beat counter is monotonic and survives stop/start cycles.
type Scheduler struct {
	mu      sync.Mutex
	bpm     int
	playing bool
	last    time.Time // instant of the most recent fire
	next    time.Time // deadline of the armed timer
	timer   *time.Timer
	gen     uint64 // arm generation; a stale timer fire is discarded
	onBeat  func(n uint64)
	count   atomic.Uint64
	now     func() time.Time
}

// NewScheduler returns a stopped scheduler at bpm.
func NewScheduler(bpm int) *Scheduler {
	return &Scheduler{
		bpm: Clamp(bpm),
		now: time.Now,
	}
}

// OnBeat registers the per-beat callback. It runs on the timer goroutine
// and receives the beat number.
func (s *Scheduler) OnBeat(fn func(n uint64)) {
	s.mu.Lock()
	s.onBeat = fn
	s.mu.Unlock()
}

// BPM returns the current rate.
func (s *Scheduler) BPM() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bpm
}

// Playing reports whether beats are being scheduled.
func (s *Scheduler) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Count returns the number of beats fired since creation.
func (s *Scheduler) Count() uint64 {
	return s.count.Load()
}

// Start begins scheduling. The first beat fires immediately and anchors
// the phase. Calling Start while playing is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.playing {
		s.mu.Unlock()
		return
	}
	s.playing = true
	s.last = s.now()
	s.arm(Interval(s.bpm))
	fn := s.onBeat
	n := s.count.Add(1)
	s.mu.Unlock()

	if fn != nil {
		fn(n)
	}
}

// Stop cancels the timer. No beat fires after Stop returns. Calling Stop
// while stopped is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.playing {
		s.mu.Unlock()
		return
	}
	s.playing = false
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
}

// SetBPM changes the rate. While playing, the timer re-arms for
// last + newInterval; a deadline already in the past fires once
// immediately. While stopped, only the stored rate changes.
func (s *Scheduler) SetBPM(bpm int) {
	bpm = Clamp(bpm)
	s.mu.Lock()
	if bpm == s.bpm {
		s.mu.Unlock()
		return
	}
	s.bpm = bpm
	if !s.playing {
		s.mu.Unlock()
		return
	}
	d := s.last.Add(Interval(bpm)).Sub(s.now())
	if d < 0 {
		d = 0
	}
	s.arm(d)
	s.mu.Unlock()
}

// Dispose stops the scheduler and drops the callback.
func (s *Scheduler) Dispose() {
	s.Stop()
	s.mu.Lock()
	s.onBeat = nil
	s.mu.Unlock()
}

// arm schedules the next fire d from now. Caller holds mu.
func (s *Scheduler) arm(d time.Duration) {
	s.gen++
	gen := s.gen
	s.next = s.now().Add(d)
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, func() { s.fire(gen) })
}

func (s *Scheduler) fire(gen uint64) {
	s.mu.Lock()
	if !s.playing || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.last = s.now()
	s.arm(Interval(s.bpm))
	fn := s.onBeat
	n := s.count.Add(1)
	s.mu.Unlock()

	if fn != nil {
		fn(n)
	}
}
