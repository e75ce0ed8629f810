package components

import (
	"github.com/yohamta/donburi"
)

// ActorScore tracks one actor's match statistics
type ActorScore struct {
	ActorIndex   int
	Joined       bool // False for empty slots below a higher index
	Hits         int  // Damaging hits landed on other actors
	Eliminations int  // Actors this one finished off
	Eliminated   bool
	EliminatedAt uint64 // Step of elimination
}

// MatchData stores the current match state and scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	Scores      []ActorScore // Indexed by ActorIndex
	Finished    bool
	WinnerIndex int // -1 while undecided, -2 when nobody survived
	EndStep     uint64
}

var Match = donburi.NewComponentType[MatchData]()

// GetScore returns the score for an actor, creating it if needed
func (m *MatchData) GetScore(actorIndex int) *ActorScore {
	for len(m.Scores) <= actorIndex {
		m.Scores = append(m.Scores, ActorScore{ActorIndex: len(m.Scores)})
	}
	return &m.Scores[actorIndex]
}

// AddHit credits a damaging hit to an actor
func (m *MatchData) AddHit(actorIndex int) {
	if actorIndex < 0 {
		return
	}
	m.GetScore(actorIndex).Hits++
}

// AddElimination credits an elimination to an actor
func (m *MatchData) AddElimination(actorIndex int) {
	if actorIndex < 0 {
		return
	}
	m.GetScore(actorIndex).Eliminations++
}

// Survivors returns the indexes of actors not yet eliminated
func (m *MatchData) Survivors() []int {
	var alive []int
	for _, s := range m.Scores {
		if s.Joined && !s.Eliminated {
			alive = append(alive, s.ActorIndex)
		}
	}
	return alive
}

// Participants returns how many actors joined the match
func (m *MatchData) Participants() int {
	n := 0
	for _, s := range m.Scores {
		if s.Joined {
			n++
		}
	}
	return n
}
