package entity

// Session - is the stored state of one hot-seat match: the moves of the current round
// and the tally of the rounds already decided.
type Session struct {
	ID    string `json:"id"`
	Moves []Move `json:"moves"`
	Tally Tally  `json:"tally"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		Moves: []Move{},
	}
}
