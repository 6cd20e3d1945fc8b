package conversation

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"InvestPlanner/internal/model"
)

// Pacing holds the presentation delays of the chat front end.
type Pacing struct {
	Think    time.Duration // before the first reply of a turn
	Analyze  time.Duration // before the recommendation
	FollowUp time.Duration // before the follow-up prompt
}

// DefaultPacing returns 600ms / 1500ms / 800ms.
func DefaultPacing() Pacing {
	return Pacing{
		Think:    600 * time.Millisecond,
		Analyze:  1500 * time.Millisecond,
		FollowUp: 800 * time.Millisecond,
	}
}

// Turn is one applied transition, reported to observers after its replies are emitted.
type Turn struct {
	SessionID string
	Input     Input
	From      State
	To        State
	Replies   []model.Reply
	At        time.Time
}

// Session owns one conversation. Submit applies exactly one transition at a time, in call order.
type Session struct {
	mu        sync.Mutex
	id        string
	machine   *Machine
	state     State
	pacing    Pacing
	sleep     func(time.Duration)
	observers []func(Turn)
	now       func() time.Time
}

// NewSession starts a conversation at Welcome.
func NewSession(machine *Machine, pacing Pacing) *Session {
	return &Session{
		id:      uuid.NewString(),
		machine: machine,
		state:   NewState(),
		pacing:  pacing,
		sleep:   time.Sleep,
		now:     time.Now,
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// SetSleeper replaces time.Sleep; tests pass a recorder or a no-op.
func (s *Session) SetSleeper(fn func(time.Duration)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sleep = fn
}

// OnTurn registers an observer called after every turn.
func (s *Session) OnTurn(fn func(Turn)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Recommendation returns the current recommendation once the profile is complete.
func (s *Session) Recommendation() (model.Recommendation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Recommendation(s.state)
}

// Projection returns the SIP projection for the current profile once it is complete.
func (s *Session) Projection() (model.Projection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Projection(s.state)
}

// Open emits the greeting if the conversation has not started yet.
func (s *Session) Open(emit func(model.Reply)) []model.Reply {
	if s.State().Step != StepWelcome {
		return nil
	}
	return s.Submit(Text(""), emit)
}

// Submit applies in and emits the resulting replies in order, pausing before each one as paced.
// The lock is held for the whole turn so a second input waits until this one is finalized.
func (s *Session) Submit(in Input, emit func(model.Reply)) []model.Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.state
	next, replies := s.machine.Handle(from, in)
	s.state = next

	for i, r := range replies {
		if d := s.delay(i, r); d > 0 {
			s.sleep(d)
		}
		if emit != nil {
			emit(r)
		}
	}

	turn := Turn{SessionID: s.id, Input: in, From: from, To: next, Replies: replies, At: s.now()}
	for _, fn := range s.observers {
		fn(turn)
	}
	return replies
}

func (s *Session) delay(i int, r model.Reply) time.Duration {
	switch {
	case r.Kind == model.ReplyRecommendation:
		return s.pacing.Analyze
	case r.Kind == model.ReplyFollowUp:
		return s.pacing.FollowUp
	case i == 0:
		return s.pacing.Think
	}
	return 0
}
