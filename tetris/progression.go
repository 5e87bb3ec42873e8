package tetris

import "time"

// ScoreTable maps the number of rows removed at once to base points.
// Clears of more than four rows score as four.
var ScoreTable = map[int]int{
	1: 40,
	2: 100,
	3: 300,
	4: 1200,
}

const (
	linesPerLevel   = 10
	levelSpeedup    = 0.75
	softDropDivisor = 4
)

// Progress is the score panel snapshot.
type Progress struct {
	Lines int
	Score int
	Level int
}

// Progression tracks cleared lines, score and level, and the gravity
// interval that shortens with every level.
type Progression struct {
	lines    int
	score    int
	level    int
	interval time.Duration
	softDrop time.Duration
}

// NewProgression starts at level 1 with the given gravity interval.
func NewProgression(interval time.Duration) *Progression {
	return &Progression{
		level:    1,
		interval: interval,
		softDrop: interval / softDropDivisor,
	}
}

// RecordClear books lineCount rows removed in one clearing step and reports
// whether the level went up. Levels rise by at most one per call.
func (p *Progression) RecordClear(lineCount int) bool {
	if lineCount <= 0 {
		return false
	}

	p.lines += lineCount
	p.score += ScoreTable[min(lineCount, 4)] * p.level

	if p.lines/linesPerLevel < p.level {
		return false
	}

	p.level++
	p.interval = time.Duration(float64(p.interval) * levelSpeedup)
	p.softDrop = p.interval / softDropDivisor
	return true
}

// Progress returns the current lines, score and level.
func (p *Progression) Progress() Progress {
	return Progress{Lines: p.lines, Score: p.score, Level: p.level}
}

// Interval is the normal gravity interval for the current level.
func (p *Progression) Interval() time.Duration {
	return p.interval
}

// SoftDropInterval is the gravity interval while soft drop is held, a quarter of Interval.
func (p *Progression) SoftDropInterval() time.Duration {
	return p.softDrop
}
