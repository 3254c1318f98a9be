package core

// GameState identifies the active screen and the system set that runs under it
type GameState int

const (
	StateMainMenu GameState = iota
	StateTutorial
	StateGame
	StateEndScreen
)

var gameStateNames = [...]string{
	StateMainMenu:  "MainMenu",
	StateTutorial:  "Tutorial",
	StateGame:      "Game",
	StateEndScreen: "EndScreen",
}

// String returns the state name used by the FSM graph and UI pages
func (s GameState) String() string {
	if s < 0 || int(s) >= len(gameStateNames) {
		return "Unknown"
	}
	return gameStateNames[s]
}

// ParseGameState resolves a state name, reporting false on unknown names
func ParseGameState(name string) (GameState, bool) {
	for i, n := range gameStateNames {
		if n == name {
			return GameState(i), true
		}
	}
	return StateMainMenu, false
}
