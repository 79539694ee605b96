package models

import (
	"strconv"
	"time"
)

// ISO-8601 with millisecond precision, always rendered in UTC ("...Z").
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// SubmitFeedbackRequest is the body of POST /submit-feedback.
type SubmitFeedbackRequest struct {
	ShareHabits     Rating `json:"shareHabits" validate:"required"`
	RecommendSurvey Rating `json:"recommendSurvey" validate:"required"`
	ResultsAccurate Rating `json:"resultsAccurate" validate:"required"`
	ResultsHelpful  Rating `json:"resultsHelpful" validate:"required"`
	PracticalSteps  Rating `json:"practicalSteps" validate:"required"`
}

// FeedbackRecord is what gets persisted to the Feedback table.
type FeedbackRecord struct {
	FeedbackID      string `json:"FeedbackID"`
	ShareHabits     Rating `json:"shareHabits"`
	RecommendSurvey Rating `json:"recommendSurvey"`
	ResultsAccurate Rating `json:"resultsAccurate"`
	ResultsHelpful  Rating `json:"resultsHelpful"`
	PracticalSteps  Rating `json:"practicalSteps"`
	Timestamp       string `json:"timestamp"`
}

// NewFeedbackRecord stamps a request with an id (Unix milliseconds) and an
// ISO-8601 timestamp, both derived from now.
func NewFeedbackRecord(req SubmitFeedbackRequest, now time.Time) *FeedbackRecord {
	return &FeedbackRecord{
		FeedbackID:      strconv.FormatInt(now.UnixMilli(), 10),
		ShareHabits:     req.ShareHabits,
		RecommendSurvey: req.RecommendSurvey,
		ResultsAccurate: req.ResultsAccurate,
		ResultsHelpful:  req.ResultsHelpful,
		PracticalSteps:  req.PracticalSteps,
		Timestamp:       now.UTC().Format(timestampLayout),
	}
}

// Item flattens the record into the attribute map written to the store.
func (f *FeedbackRecord) Item() map[string]any {
	return map[string]any{
		"FeedbackID":      f.FeedbackID,
		"shareHabits":     f.ShareHabits.Value(),
		"recommendSurvey": f.RecommendSurvey.Value(),
		"resultsAccurate": f.ResultsAccurate.Value(),
		"resultsHelpful":  f.ResultsHelpful.Value(),
		"practicalSteps":  f.PracticalSteps.Value(),
		"timestamp":       f.Timestamp,
	}
}
