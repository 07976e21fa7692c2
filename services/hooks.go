package services

// Hooks are the output callbacks of a match. Nil fields are skipped.
type Hooks struct {
	OnScoreChange func(score int)
	OnComboChange func(combo int)
	OnLivesChange func(lives int)
	OnGameOver    func()
	OnExpChange   func(stats ExpStats)
	OnLevelUp     func(level int, message string)
	OnStageClear  func(result MatchResult)
}

func (h Hooks) Score(n int) {
	if h.OnScoreChange != nil {
		h.OnScoreChange(n)
	}
}

func (h Hooks) Combo(n int) {
	if h.OnComboChange != nil {
		h.OnComboChange(n)
	}
}

func (h Hooks) Lives(n int) {
	if h.OnLivesChange != nil {
		h.OnLivesChange(n)
	}
}

func (h Hooks) GameOver() {
	if h.OnGameOver != nil {
		h.OnGameOver()
	}
}

func (h Hooks) Exp(stats ExpStats) {
	if h.OnExpChange != nil {
		h.OnExpChange(stats)
	}
}

func (h Hooks) LevelUp(level int, message string) {
	if h.OnLevelUp != nil {
		h.OnLevelUp(level, message)
	}
}

func (h Hooks) StageClear(r MatchResult) {
	if h.OnStageClear != nil {
		h.OnStageClear(r)
	}
}
