package models

// QuizResult is whatever object the quiz front end posts. It has no required
// shape and is stored as-is.
type QuizResult map[string]any
