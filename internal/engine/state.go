package engine

import "fmt"

// Phase is the run phase of a session.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// State tracks score, best score and phase for one session.
// Best survives Reset; Score does not.
type State struct {
	score int
	best  int
	phase Phase
}

// NewState returns a fresh playing state.
func NewState() State {
	return State{phase: PhasePlaying}
}

// Score returns the current score.
func (s *State) Score() int { return s.score }

// Best returns the highest score observed.
func (s *State) Best() int { return s.best }

// Phase returns the run phase.
func (s *State) Phase() Phase { return s.phase }

// Add credits merge points. Panics on a negative delta.
func (s *State) Add(delta int) {
	if delta < 0 {
		panic(fmt.Sprintf("engine: negative score delta %d", delta))
	}
	s.score += delta
	if s.score > s.best {
		s.best = s.score
	}
}

// End moves the session into GameOver.
func (s *State) End() {
	s.phase = PhaseGameOver
}

// Reset zeroes the score and resumes play, keeping the best score.
func (s *State) Reset() {
	s.score = 0
	s.phase = PhasePlaying
}
