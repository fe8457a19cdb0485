package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies it; tests provide a lightweight
// stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	VerifyEmail(ctx context.Context) error
	ResendCode(ctx context.Context) error
	Logout(ctx context.Context) error
	ReportLost(ctx context.Context) error
	ReportFound(ctx context.Context) error
	Contact(ctx context.Context) error
	Browse(ctx context.Context, resource string, mine bool) error
	Show(ctx context.Context, resource, id string) error
	Edit(ctx context.Context, resource, id string) error
	Delete(ctx context.Context, resource, id string) error
}

const helpLoggedOut = "Available commands: login, register, verify, resend, report-lost, report-found, contact, browse <lost|found>, exit"
const helpLoggedIn = "Available commands: report-lost, report-found, contact, browse <lost|found|contacts|users|matches>, mine <lost|found>, show <res> <id>, edit <lost|found> <id>, delete <res> <id>, logout, exit"

// runREPL reads a line, takes the first token as the command, and
// dispatches to methods on a. Unknown commands are reported back. The
// loop exits on scanner EOF, ctx cancellation, or "exit"/"quit".
//
// Handlers log/print their own errors; the loop ignores returned errors
// so one failed operation never takes the prompt down with it.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("strace (%s)> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "verify":
			_ = a.VerifyEmail(ctx)

		case "resend":
			_ = a.ResendCode(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "report-lost":
			_ = a.ReportLost(ctx)

		case "report-found":
			_ = a.ReportFound(ctx)

		case "contact":
			_ = a.Contact(ctx)

		case "b", "browse":
			if len(args) == 0 {
				printlnFn("Usage: browse <lost|found|contacts|users|matches>")
				continue
			}
			_ = a.Browse(ctx, args[0], false)

		case "mine":
			if len(args) == 0 {
				printlnFn("Usage: mine <lost|found>")
				continue
			}
			_ = a.Browse(ctx, args[0], true)

		case "show":
			if len(args) < 2 {
				printlnFn("Usage: show <resource> <id>")
				continue
			}
			_ = a.Show(ctx, args[0], args[1])

		case "edit":
			if len(args) < 2 {
				printlnFn("Usage: edit <lost|found> <id>")
				continue
			}
			_ = a.Edit(ctx, args[0], args[1])

		case "delete":
			if len(args) < 2 {
				printlnFn("Usage: delete <resource> <id>")
				continue
			}
			_ = a.Delete(ctx, args[0], args[1])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
