package entity

// SessionView - is what the board UI renders after every request.
type SessionView struct {
	ID            string            `json:"id"`
	Board         [CellCount]string `json:"board"`
	Moves         []Move            `json:"moves"`
	CurrentPlayer Player            `json:"current_player"`
	Status        State             `json:"status"`
	Winner        Player            `json:"winner,omitempty"`
	Tally         Tally             `json:"tally"`
}
