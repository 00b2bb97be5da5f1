// Package gemini implements the breakdown.Generator interface using
// Google's Gemini API. The request declares a response schema (an array
// of {topic, difficulty, studyHours} objects) so the model constrains its
// own output, but the response is still parsed and validated defensively
// before anything reaches the planner.
package gemini
