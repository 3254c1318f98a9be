package asset

// DefaultScreenFSMConfig is the screen flow graph
// Frontend groups the menu screens so music and UI lifecycle fire once on entry and exit
const DefaultScreenFSMConfig = `
initial = "MainMenu"

# === Frontend ===

[states.Frontend]
on_enter = [
    { action = "EmitEvent", event = "EventFrontendEnter" },
]
on_exit = [
    { action = "EmitEvent", event = "EventFrontendExit" },
]

[states.MainMenu]
parent = "Frontend"
on_enter = [
    { action = "SetGameState", state = "MainMenu" },
]
transitions = [
    { trigger = "EventPlayRequest", target = "Game" },
    { trigger = "EventTutorialRequest", target = "Tutorial" },
]

[states.Tutorial]
parent = "Frontend"
on_enter = [
    { action = "SetGameState", state = "Tutorial" },
]
transitions = [
    { trigger = "EventMenuRequest", target = "MainMenu" },
]

# === Run ===

[states.Game]
on_enter = [
    { action = "SetGameState", state = "Game" },
    { action = "EmitEvent", event = "EventGameStart" },
    { action = "EmitEvent", event = "EventMusicRequest", payload = { playing = true } },
]
on_exit = [
    { action = "EmitEvent", event = "EventGameExit" },
    { action = "EmitEvent", event = "EventMusicRequest", payload = { playing = false } },
]
transitions = [
    { trigger = "EventGameOver", target = "EndScreen", guard = "PlayerDefeated" },
]

[states.EndScreen]
on_enter = [
    { action = "SetGameState", state = "EndScreen" },
    { action = "EmitEvent", event = "EventEndScreenEnter" },
]
on_exit = [
    { action = "EmitEvent", event = "EventEndScreenExit" },
]
transitions = [
    { trigger = "EventMenuRequest", target = "MainMenu" },
]
`
