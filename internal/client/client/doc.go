// Package client is the low-level request/response layer of the job-board
// client.
//
// # Overview
//
// HTTPClient issues JSON requests against the job-board API, attaches the
// bearer credential it is handed (it never looks it up itself), and turns
// every non-2xx status or transport failure into a *RequestError. Typed
// helpers (ListJobs, GetJob, DeleteJob, UpdateJob, Login) sit on top of the
// generic Do call.
//
// # Error Handling
//
// A *RequestError always wraps one of the sentinel errors so callers can
// match with errors.Is: ErrUnavailable (transport failure or 5xx),
// ErrUnauthorized (401/403), ErrNotFound (404), ErrRequestFailed (other
// statuses) and ErrBadResponse (the body was not the JSON we expected).
// Use errors.As to reach the status code and the server-supplied detail.
//
// # Side effects
//
// None beyond the network call and the optional metrics. The client does not
// touch the session store or any presentation state.
package client
