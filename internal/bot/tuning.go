package bot

// Tuning holds the scoring weights used by the strategies.
type Tuning struct {
	// LowLifeThreshold enables the loss-prevention strategy when the AI life drops below it.
	LowLifeThreshold int

	BestWinScore  int
	BestLossScore int
	BestTieScore  int

	MinLossWinScore  int
	MinLossLossScore int
	MinLossTieScore  int
}

// DefaultTuning mirrors the weights the game was balanced with.
var DefaultTuning = Tuning{
	LowLifeThreshold: 2,

	BestWinScore:  3,
	BestLossScore: -2,
	BestTieScore:  -1,

	MinLossWinScore:  1,
	MinLossLossScore: -4,
	MinLossTieScore:  -1,
}
