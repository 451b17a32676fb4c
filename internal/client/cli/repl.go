package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Edit(ctx context.Context, id string) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the job-board CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Prompts issued by the commands read from the
// same reader. The loop exits on EOF, when ctx is done, or when the user
// types "exit" or "quit".
//
// Commands
//
//	Always:
//	  - help             show available commands
//	  - list | l         list jobs
//	  - show <id>        show a job
//	  - status           show session state
//	  - exit | quit      leave the program
//
//	Not logged in:
//	  - login            authenticate
//
//	Logged in:
//	  - delete <id>      delete a job (asks for confirmation)
//	  - edit <id>        edit a job
//	  - logout           log out
//
// Errors returned by command handlers are ignored here; handlers print or
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("jobs %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		withID := func(fn func(context.Context, string) error) {
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				return
			}
			_ = fn(ctx, args[0])
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, show <id>, delete <id>, edit <id>, status, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, show <id>, login, status, exit")
			}

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			withID(a.Show)

		case "delete":
			withID(a.Delete)

		case "edit":
			withID(a.Edit)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
