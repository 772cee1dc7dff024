package engine

import (
	"time"

	"github.com/Seednode/quizengine/internal/events"
)

// startClock begins the per-question countdown. deadlineSeconds
// <= 0 means "no clock" (practice mode).
func (e *SessionEngine) startClock(deadlineSeconds int) {
	e.cancelClock()

	if deadlineSeconds <= 0 {
		return
	}

	e.gs.TimeRemainingSeconds = deadlineSeconds
	e.gs.IsActive = true

	stop := make(chan struct{})
	e.clock = &roundClock{stop: stop}

	go e.runClock(deadlineSeconds, stop)
}

// cancelClock halts the clock without triggering endCurrentQuestionLocked.
func (e *SessionEngine) cancelClock() {
	if e.clock == nil {
		return
	}

	close(e.clock.stop)
	e.clock = nil

	if e.gs != nil {
		e.gs.IsActive = false
	}
}

// runClock ticks once a second, handing each decrement back to the
// engine's mailbox so the mutation happens on the single serialization
// point, exactly the way the teacher's reaperLoop ticker drives
// mutations through locked Hub methods rather than touching state directly.
func (e *SessionEngine) runClock(remaining int, stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		remaining--
		r := remaining

		select {
		case e.cmds <- func() { e.onTick(stop, r) }:
		case <-stop:
			return
		}

		if r <= 0 {
			return
		}
	}
}

// onTick runs on the engine's mailbox goroutine. stop is compared against
// the live clock to discard ticks from a clock that was cancelled and
// replaced between being scheduled and being delivered.
func (e *SessionEngine) onTick(stop chan struct{}, remaining int) {
	if e.gs == nil || e.clock == nil || e.clock.stop != stop {
		return
	}

	e.gs.TimeRemainingSeconds = remaining
	e.emitLobby(events.TimeUpdate, events.TimeUpdatePayload{TimeRemaining: remaining})

	if remaining == 10 || remaining == 5 {
		e.emitLobby(events.TimeWarning, events.TimeWarningPayload{TimeRemaining: remaining})
	}

	if remaining <= 0 {
		e.clock = nil
		e.gs.IsActive = false
		e.endCurrentQuestionLocked()
	}
}
