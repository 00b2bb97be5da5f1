// Package remote defines the contract for the spreadsheet-backed
// persistence endpoint: the fixed set of actions the endpoint understands,
// the Gateway interface the planner depends on, and the error taxonomy
// implementations report through.
//
// The endpoint itself is an opaque external collaborator. Every request
// names one action and carries an action-specific payload; every response
// is a success/failure envelope. Implementations make a single attempt per
// call and never retry.
package remote
