package app

// NoAISlot is the slot a Brain reports when the AI hand has nothing left to play.
// The round then resolves with no AI card and the player's card deals no damage.
const NoAISlot = -1

// Log prefixes keep the operation name first, matching the RPC adapter's log lines.
const (
	opLogin     = "Login"
	opStartGame = "StartGame"
	opPlayCard  = "PlayCard"
	opNextRound = "NextRound"
	opEndGame   = "EndGame"
)
