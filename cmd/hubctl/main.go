package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"creativehub/config"
	"creativehub/internal/client"
	"creativehub/internal/console"
	logs "creativehub/internal/infra/log"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - login / logout / whoami: manage the stored session token
// - list / get:              read a resource collection
// - create / edit / delete:  mutate a resource through its form or list controller
// - revoke:                  revoke a certificate
// - features:                show or toggle platform modules

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	err := runSubcommand(ctx, os.Args[1], os.Args[2:])
	switch {
	case err == nil, errors.Is(err, console.ErrDeclined):
	case errors.Is(err, errReported):
		stop()
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// errReported marks an error the notifier has already shown.
var errReported = errors.New("reported")

func reported(err error) error {
	if err == nil || errors.Is(err, console.ErrDeclined) {
		return err
	}

	return errors.Wrap(errReported, err.Error())
}

// errorTally counts error toasts so a failing command knows whether the
// operator has already seen why.
type errorTally struct {
	console.Notifier
	shown int
}

func (t *errorTally) Error(msg string) {
	t.shown++
	t.Notifier.Error(msg)
}

// settle marks err as reported only when an error toast was shown; anything
// else falls through to main and is printed.
func (a *app) settle(err error) error {
	if a.tally == nil || a.tally.shown == 0 {
		return err
	}

	return reported(err)
}

type globalFlags struct {
	yes     *bool
	verbose *bool
}

func addGlobalFlags(fs *flag.FlagSet) globalFlags {
	return globalFlags{
		yes:     fs.Bool("yes", false, "Skip confirmation prompts"),
		verbose: fs.Bool("v", false, "Log requests to stderr"),
	}
}

func runSubcommand(ctx context.Context, name string, args []string) error {
	switch name {
	case "login":
		return handleLogin(ctx, args)
	case "logout":
		return handleLogout(args)
	case "whoami":
		return handleWhoami(ctx, args)
	case "list":
		return handleList(ctx, args)
	case "get":
		return handleGet(ctx, args)
	case "create":
		return handleSave(ctx, "create", args)
	case "edit":
		return handleSave(ctx, "edit", args)
	case "delete":
		return handleDelete(ctx, args)
	case "revoke":
		return handleRevoke(ctx, args)
	case "features":
		return handleFeatures(ctx, args)
	case "help", "-h", "--help":
		printUsage(os.Stdout)

		return nil
	default:
		printUsage(os.Stderr)

		return errors.Errorf("unknown subcommand %q", name)
	}
}

// app is what every subcommand needs once flags are parsed.
type app struct {
	client    *client.Client
	session   *client.Session
	notifier  console.Notifier
	tally     *errorTally
	confirmer console.Confirmer
	out       io.Writer
	logger    *slog.Logger
}

func newApp(g globalFlags) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logCfg := cfg.Env.Log
	if !*g.verbose {
		logCfg.Level = "warn"
	}
	logger, err := logs.NewWithWriter(logCfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	tokenFile := cfg.Client.TokenFile
	if tokenFile == "" {
		if tokenFile, err = client.DefaultSessionPath(); err != nil {
			return nil, err
		}
	}
	session := client.NewSession(tokenFile)
	if err := session.Hydrate(); err != nil {
		return nil, err
	}

	c, err := client.New(cfg.Client.APIBaseURL, session, client.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	var confirmer console.Confirmer = console.NewPrompt(os.Stdin, os.Stdout)
	if *g.yes {
		confirmer = console.AssumeYes
	}

	tally := &errorTally{Notifier: console.NewConsoleNotifier(os.Stdout, logger)}

	return &app{
		client:    c,
		session:   session,
		notifier:  tally,
		tally:     tally,
		confirmer: confirmer,
		out:       os.Stdout,
		logger:    logger,
	}, nil
}

// parseInterspersed lets flags follow positional arguments, e.g. "delete graphics 42 -yes".
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s flags", fs.Name())
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// assignments collects repeated -set key=value flags.
type assignments []string

func (a *assignments) String() string { return strings.Join(*a, ",") }

func (a *assignments) Set(v string) error {
	if !strings.Contains(v, "=") {
		return errors.Errorf("expected key=value, got %q", v)
	}
	*a = append(*a, v)

	return nil
}

func (a assignments) pairs() [][2]string {
	out := make([][2]string, 0, len(a))
	for _, kv := range a {
		k, v, _ := strings.Cut(kv, "=")
		out = append(out, [2]string{strings.TrimSpace(k), v})
	}

	return out
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: hubctl <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  login -email <email> -password <password>")
	fmt.Fprintln(w, "  logout")
	fmt.Fprintln(w, "  whoami")
	fmt.Fprintln(w, "  list <resource> [-search s] [-status s] [-type t] [-sort newest|oldest|price-low|price-high|rating]")
	fmt.Fprintln(w, "                  [-course id] [-module id]")
	fmt.Fprintln(w, "  get <resource> <id>")
	fmt.Fprintln(w, "  create <resource> -set key=value ...")
	fmt.Fprintln(w, "  edit <resource> <id> -set key=value ...")
	fmt.Fprintln(w, "  delete <resource> <id> [-yes]")
	fmt.Fprintln(w, "  revoke <certificate id> [-yes]")
	fmt.Fprintln(w, "  features show")
	fmt.Fprintln(w, "  features toggle <group.key> ... [-yes]")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Resources: %s\n", strings.Join(resourceNames(), ", "))
	fmt.Fprintln(w, "Use 'hubctl <command> -h' for more information about a command.")
}
