// Package api implements the HTTP presentation boundary: handlers that
// translate requests into planner operations and render the session
// snapshot and derived view back as JSON. No state lives here; the
// planner store owns everything.
package api
