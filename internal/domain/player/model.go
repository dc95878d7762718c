package player

// Player is a draft-eligible prospect. Players only participate in scoring by
// id equality; everything else is display data.
type Player struct {
	ID        string
	Name      string
	Position  string
	Team      string
	SportType string
	DraftYear int
}
