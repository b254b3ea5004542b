// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/models"
)

// PasswordEnv supplies the password when -password is not given.
const PasswordEnv = "TIMEKEEPER_PASSWORD"

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type command struct {
	usage string
	run   func(ctx context.Context, a *App, args []string) error
}

var commands = map[string]command{
	"signup":  {"signup -first NAME -last NAME -email EMAIL -username NAME [-password PASS]", runSignup},
	"login":   {"login -username NAME [-password PASS]", runLogin},
	"logout":  {"logout", runLogout},
	"clock":   {"clock", runClock},
	"entries": {"entries [-user NAME]", runEntries},
	"users":   {"users", runUsers},
	"stats":   {"stats", runStats},
	"health":  {"health", runHealth},
	"version": {"version", runVersion},
	"token":   {"token [-copy]", runToken},
	"ui":      {"ui", runUI},
}

type App struct {
	adapter adapter.ServerAdapter
	session *sessionStore
	ui      UI
	out     io.Writer

	logger *logger.Logger
}

// NewApp builds the client. ui may be nil, which disables the "ui" command.
func NewApp(serverAdapter adapter.ServerAdapter, sessionFile string, ui UI, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, errors.New("server adapter is nil")
	}
	if sessionFile == "" {
		return nil, errors.New("session file path is empty")
	}

	return &App{
		adapter: serverAdapter,
		session: newSessionStore(sessionFile),
		ui:      ui,
		out:     out,
		logger:  logger,
	}, nil
}

// Run dispatches args[0] to its subcommand. A saved session token is loaded
// first so authenticated commands need no extra flags.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.printUsage()
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	sess, err := a.session.Load()
	switch {
	case err == nil:
		a.adapter.SetToken(sess.Token)
	case !errors.Is(err, ErrNoSession):
		a.logger.Warn().Err(err).Msg("ignoring unreadable session")
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, a, args[1:])
}

func (a *App) printUsage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: timekeeper <command> [flags]")
	fmt.Fprintln(a.out)
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", commands[name].usage)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Prefer setting %s over -password: command-line flags are visible in the process list.\n", PasswordEnv)
}

func (a *App) print(s string) {
	fmt.Fprintln(a.out, s)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func passwordOrEnv(password string) string {
	if password != "" {
		return password
	}
	return os.Getenv(PasswordEnv)
}

func runSignup(ctx context.Context, a *App, args []string) error {
	var req models.SignupRequest
	fs := newFlagSet("signup")
	fs.StringVar(&req.FirstName, "first", "", "first name")
	fs.StringVar(&req.LastName, "last", "", "last name")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Password, "password", "", "password (visible in the process list, prefer "+PasswordEnv+")")
	if err := fs.Parse(args); err != nil {
		return err
	}
	req.Password = passwordOrEnv(req.Password)

	if err := a.adapter.Signup(ctx, req); err != nil {
		return err
	}

	a.print("Account created successfully. Run `timekeeper login -username " + req.Username + "` to sign in.")
	return nil
}

func runLogin(ctx context.Context, a *App, args []string) error {
	var req models.LoginRequest
	fs := newFlagSet("login")
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Password, "password", "", "password (visible in the process list, prefer "+PasswordEnv+")")
	if err := fs.Parse(args); err != nil {
		return err
	}
	req.Password = passwordOrEnv(req.Password)

	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		return err
	}

	if err = a.saveLogin(resp); err != nil {
		return err
	}

	a.print(fmt.Sprintf("Logged in as %s %s (%s)", resp.User.FirstName, resp.User.LastName, resp.User.Username))
	return nil
}

func (a *App) saveLogin(resp models.LoginResponse) error {
	return a.session.Save(session{
		Token:    resp.Token,
		Username: resp.User.Username,
		IsAdmin:  resp.User.IsAdmin,
	})
}

func runLogout(_ context.Context, a *App, _ []string) error {
	if err := a.session.Clear(); err != nil {
		return err
	}
	a.adapter.SetToken("")
	a.print("Logged out.")
	return nil
}

func runClock(ctx context.Context, a *App, _ []string) error {
	result, err := a.adapter.Clock(ctx)
	if err != nil {
		return err
	}

	a.print(renderClock(result))
	return nil
}

// runEntries lists the entries of -user, or of the logged-in user. Admins
// without -user get every entry.
func runEntries(ctx context.Context, a *App, args []string) error {
	var username string
	fs := newFlagSet("entries")
	fs.StringVar(&username, "user", "", "username")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if username == "" {
		sess, err := a.session.Load()
		if err != nil {
			return err
		}
		if !sess.IsAdmin {
			username = sess.Username
		}
	}

	var (
		entries []models.TimeEntry
		err     error
	)
	if username == "" {
		entries, err = a.adapter.Entries(ctx)
	} else {
		entries, err = a.adapter.EntriesFor(ctx, username)
	}
	if err != nil {
		return err
	}

	a.print(renderEntries(entries))
	return nil
}

func runUsers(ctx context.Context, a *App, _ []string) error {
	users, err := a.adapter.Users(ctx)
	if err != nil {
		return err
	}

	a.print(renderUsers(users))
	return nil
}

func runStats(ctx context.Context, a *App, _ []string) error {
	stats, err := a.adapter.Stats(ctx)
	if err != nil {
		return err
	}

	a.print(renderStats(stats))
	return nil
}

func runHealth(ctx context.Context, a *App, _ []string) error {
	health, err := a.adapter.Health(ctx)
	if err != nil {
		return err
	}

	a.print(fmt.Sprintf("%s: %s", health.Status, health.Message))
	return nil
}

func runVersion(ctx context.Context, a *App, _ []string) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	a.print(version)
	return nil
}

// runToken prints the saved token, or copies it to the clipboard with -copy.
func runToken(_ context.Context, a *App, args []string) error {
	var toClipboard bool
	fs := newFlagSet("token")
	fs.BoolVar(&toClipboard, "copy", false, "copy to clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token := a.adapter.Token()
	if token == "" {
		return ErrNoSession
	}

	if !toClipboard {
		a.print(token)
		return nil
	}

	if err := copyToClipboard(token); err != nil {
		return fmt.Errorf("copy token: %w", err)
	}
	a.print("Token copied to clipboard.")
	return nil
}

func runUI(ctx context.Context, a *App, _ []string) error {
	if a.ui == nil {
		return ErrNoUI
	}

	resp, err := a.ui.Run(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(resp.Token) == "" {
		return nil
	}

	return a.saveLogin(resp)
}
