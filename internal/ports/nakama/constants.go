package nakama

const (
	RpcLogin     = "cardgame_login"
	RpcStartGame = "cardgame_start_game"
	RpcPlayCard  = "cardgame_play_card"
	RpcNextRound = "cardgame_next_round"
	RpcEndGame   = "cardgame_end_game"
	RpcShow      = "cardgame_show"
)

// Storage location of the per-user game record. The record is owned by the user
// so Nakama scopes it to them, but only the server may write it.
const (
	userCollection = "cardgame"
	userKey        = "user"
)

// Runtime env keys read at module init.
const (
	envConfigPath = "cardgame_config_path"
)

// Notification codes for forwarded app events. Nakama reserves codes <= 0.
const (
	NotifyUserCreated   = 101
	NotifyGameStarted   = 102
	NotifyCardPlayed    = 103
	NotifyRoundResolved = 104
	NotifyGameFinished  = 105
	NotifyGameEnded     = 106
)
