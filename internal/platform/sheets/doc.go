// Package sheets implements the remote.Gateway contract against the
// deployed Apps Script web app that fronts the planner spreadsheet.
//
// Every operation is a single POST of {"action": ..., "payload": ...} to
// one URL. The script requires a text/plain content type; sending
// application/json triggers a CORS preflight the script cannot answer.
// Responses are {status, data, message} envelopes which this package
// normalizes into data-or-error per the remote package taxonomy.
package sheets
