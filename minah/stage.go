package minah

import "strconv"

// Stage is a point in the chronometer's one-directional progression.
//
//	0          BuyingPhase: primary sale open, no trading, no distributions.
//	1..K       chronometer running; distributions 0..stage-2 are done and
//	           distribution stage-1 is the next one pending.
//	K+1        Ended: all K configured distributions are done.
//
// where K is the number of configured stage intervals. Stages only ever
// advance, one at a time.
type Stage uint32

// StageBuying is the initial stage, before the chronometer starts.
const StageBuying Stage = 0

// Started reports whether the stage is past the buying phase.
func (s Stage) Started() bool { return s != StageBuying }

// distributionIndex returns the index of the next pending distribution.
// Only meaningful once started; all index arithmetic lives here.
func (s Stage) distributionIndex() int { return int(s) - 1 }

// endedStage returns the terminal stage for a schedule of numStages
// distributions.
func endedStage(numStages int) Stage { return Stage(numStages + 1) }

// Ended reports whether s is the terminal stage of a schedule with numStages
// distributions.
func (s Stage) Ended(numStages int) bool { return s == endedStage(numStages) }

// CurrentState returns the contract's stage.
func (c *Contract) CurrentState() (Stage, error) {
	var s Stage
	ok, err := c.env.GetValue(keyState, &s)
	if err != nil {
		return StageBuying, err
	}
	if !ok {
		return StageBuying, ErrStateNotSet
	}
	return s, nil
}

// StateName returns a readable name for the contract's stage.
func (c *Contract) StateName() (string, error) {
	s, err := c.CurrentState()
	if err != nil {
		return "", err
	}
	intervals, err := c.intervals()
	if err != nil {
		return "", err
	}
	switch {
	case s == StageBuying:
		return "BuyingPhase", nil
	case s == 1:
		return "BeforeFirstRelease", nil
	case s.Ended(len(intervals)):
		return "Ended", nil
	default:
		return "Stage" + strconv.Itoa(s.distributionIndex()) + "Pending", nil
	}
}

func (c *Contract) putState(s Stage) error {
	return c.env.PutValue(keyState, s)
}
