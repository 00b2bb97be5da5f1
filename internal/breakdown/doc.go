// Package breakdown provides the interface for the AI-assisted
// decomposition of a subject into sub-topics with difficulty and time
// estimates. It abstracts the details of the generative-language API
// (Gemini), so the planner never couples to a specific external service.
package breakdown
