// Package services contains the client's data-synchronization and
// authentication services: the list and entity loaders, the authenticated
// mutator and the login flow.
//
// Services talk to the server through the narrow interfaces declared in
// interfaces.go and never reach for package-level state. The session store,
// navigator and logger are injected.
package services
