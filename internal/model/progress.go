package model

import (
	"slices"
	"time"
)

// Screen identifies where the learner is in a lesson.
type Screen string

const (
	ScreenDashboard      Screen = "dashboard"
	ScreenAllocate       Screen = "allocate"
	ScreenSimulateResult Screen = "simulate-result"
	ScreenReview         Screen = "review"
)

// ProgressionState is the learner's position in the course.
type ProgressionState struct {
	Level            int
	Completed        []int
	Screen           Screen
	HasSimulated     bool
	LastSimulationAt time.Time // zero until the first simulation
	Transitioning    bool      // a delayed switch to the dashboard is pending
}

// IsCompleted reports whether a level has been completed.
func (s ProgressionState) IsCompleted(level int) bool {
	return slices.Contains(s.Completed, level)
}

// LevelInfo names a lesson.
type LevelInfo struct {
	Number int
	Title  string
}

// Levels is the course catalog. Only level 1 has lesson content today.
var Levels = []LevelInfo{
	{1, "Build your first portfolio"},
	{2, "Reduce risk through diversification"},
	{3, "Protect your capital"},
	{4, "Advanced strategies"},
	{5, "Master investor"},
}

// TotalLevels is the length of the course.
var TotalLevels = len(Levels)
