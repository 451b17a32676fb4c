// Package common contains constants shared by the client layers: header
// names, API paths and the navigation routes understood by the shell.
package common

import "net/url"

const (
	AuthorizationHeader = "Authorization"
	RequestIDHeader     = "X-Request-ID"
	BearerPrefix        = "Bearer "
)

const (
	JobsPath  = "/api/jobs"
	LoginPath = "/api/users/login"
)

// Routes accepted by the shell's navigator.
const (
	RouteRoot    = "/"
	routeJob     = "/jobs/"
	routeJobEdit = "/jobs/edit/"
)

// JobPath is the API path of a single job.
func JobPath(id string) string {
	return JobsPath + "/" + url.PathEscape(id)
}

func JobRoute(id string) string {
	return routeJob + url.PathEscape(id)
}

func EditJobRoute(id string) string {
	return routeJobEdit + url.PathEscape(id)
}
