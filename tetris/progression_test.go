package tetris_test

import (
	"testing"
	"time"

	"github.com/Valerolactone/Tetris/tetris"
	"github.com/stretchr/testify/assert"
)

func TestRecordClearScoresByLevel(t *testing.T) {
	p := tetris.NewProgression(200 * time.Millisecond)
	assert.Equal(t, tetris.Progress{Level: 1}, p.Progress())

	assert.False(t, p.RecordClear(1))
	assert.Equal(t, tetris.Progress{Lines: 1, Score: 40, Level: 1}, p.Progress())

	p.RecordClear(2)
	p.RecordClear(3)
	assert.Equal(t, tetris.Progress{Lines: 6, Score: 440, Level: 1}, p.Progress())
}

func TestRecordClearScoreTable(t *testing.T) {
	tests := []struct {
		lines int
		score int
	}{
		{1, 40},
		{2, 100},
		{3, 300},
		{4, 1200},
		{5, 1200},
	}

	for _, tt := range tests {
		p := tetris.NewProgression(time.Second)
		p.RecordClear(tt.lines)
		assert.Equal(t, tt.score, p.Progress().Score, "%d lines", tt.lines)
	}

	assert.Less(t, tetris.ScoreTable[1], tetris.ScoreTable[2])
	assert.Less(t, tetris.ScoreTable[2], tetris.ScoreTable[3])
	assert.Less(t, 4*tetris.ScoreTable[1], tetris.ScoreTable[4])
}

func TestRecordClearIgnoresEmptyClears(t *testing.T) {
	p := tetris.NewProgression(time.Second)
	assert.False(t, p.RecordClear(0))
	assert.False(t, p.RecordClear(-3))
	assert.Equal(t, tetris.Progress{Level: 1}, p.Progress())
}

func TestLevelUpSpeedsGravityOnce(t *testing.T) {
	p := tetris.NewProgression(200 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, p.SoftDropInterval())

	p.RecordClear(4)
	p.RecordClear(4)
	p.RecordClear(1)
	assert.Equal(t, 1, p.Progress().Level)
	assert.Equal(t, 200*time.Millisecond, p.Interval())

	// the tenth line crosses the threshold
	assert.True(t, p.RecordClear(1))
	assert.Equal(t, 2, p.Progress().Level)
	assert.Equal(t, 150*time.Millisecond, p.Interval())
	assert.Equal(t, 37500*time.Microsecond, p.SoftDropInterval())

	// another clear in the same tick must not scale again
	assert.False(t, p.RecordClear(2))
	assert.Equal(t, 2, p.Progress().Level)
	assert.Equal(t, 150*time.Millisecond, p.Interval())

	// level 2 doubles the points
	assert.Equal(t, 2*1200+40+40+2*100, p.Progress().Score)
}

func TestLevelRisesAtMostOncePerClear(t *testing.T) {
	p := tetris.NewProgression(time.Second)
	for range 5 {
		p.RecordClear(4)
	}
	// 20 lines: one level per clear that crossed a multiple of ten
	assert.Equal(t, 3, p.Progress().Level)
	assert.Equal(t, 562500*time.Microsecond, p.Interval())
}
