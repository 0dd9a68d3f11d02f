package contract

import "github.com/RogueFF/shiftboard/internal/app"

type ScoreboardRequest = app.ScoreboardRequest

func NewScoreboardRequest() ScoreboardRequest {
	return app.NewScoreboardRequest()
}

type HourSummary = app.HourSummary

type HourlyRate = app.HourlyRate

type ScoreboardResponse = app.ScoreboardResponse

type DaySummary = app.DaySummary
