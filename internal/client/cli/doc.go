// Package cli provides the interactive job-board command-line client.
//
// It wires the remote data client, the session store and the services into
// a REPL. Every command maps onto a route: "/" is the job list,
// "/jobs/{id}" a job detail and "/jobs/edit/{id}" the edit form. Services
// navigate by calling App.Navigate; the REPL then renders the new route.
//
// Commands:
//   - list | l, show <id>
//   - delete <id>, edit <id> (authenticated)
//   - login, logout, status
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
