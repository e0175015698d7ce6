package scoreboard

import "fmt"

// Action is a single user intent applied to a Game by Reduce
type Action interface {
	isAction()
}

type AddPlayerAction struct {
	ID   string
	Name string
}

type RemovePlayerAction struct {
	ID string
}

type AddRoundAction struct{}

type SetScoreAction struct {
	Round  int
	Player int
	Value  int
}

type SetLocationAction struct {
	Location string
}

type ResetAction struct {
	Date string
}

func (AddPlayerAction) isAction()    {}
func (RemovePlayerAction) isAction() {}
func (AddRoundAction) isAction()     {}
func (SetScoreAction) isAction()     {}
func (SetLocationAction) isAction()  {}
func (ResetAction) isAction()        {}

// Reduce applies action to g and returns the resulting game. When an error
// is returned the game is g, untouched.
func Reduce(g Game, action Action) (Game, error) {
	switch a := action.(type) {
	case AddPlayerAction:
		return AddPlayer(g, a.ID, a.Name)
	case RemovePlayerAction:
		return RemovePlayer(g, a.ID), nil
	case AddRoundAction:
		return AddRound(g), nil
	case SetScoreAction:
		return SetScore(g, a.Round, a.Player, a.Value)
	case SetLocationAction:
		return SetLocation(g, a.Location), nil
	case ResetAction:
		return Reset(g, a.Date), nil
	default:
		return g, fmt.Errorf("unknown action %T", action)
	}
}
