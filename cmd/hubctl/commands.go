package main

import (
	"context"
	"flag"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"creativehub/internal/client"
	"creativehub/internal/console"
	"creativehub/internal/domain/entity"

	"github.com/pkg/errors"
)

func handleLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	g := addGlobalFlags(fs)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password")
	if _, err := parseInterspersed(fs, args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("-email and -password are required for login")
	}

	a, err := newApp(g)
	if err != nil {
		return err
	}

	out, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		a.notifier.Error(client.Message(err, "Login failed"))

		return a.settle(err)
	}
	a.notifier.Success(fmt.Sprintf("Signed in as %s (%s)", out.User.Email, out.User.Role))

	return nil
}

func handleLogout(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	g := addGlobalFlags(fs)
	if _, err := parseInterspersed(fs, args); err != nil {
		return err
	}

	a, err := newApp(g)
	if err != nil {
		return err
	}
	if err := a.client.Logout(); err != nil {
		return err
	}
	a.notifier.Success("Signed out")

	return nil
}

func handleWhoami(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	g := addGlobalFlags(fs)
	if _, err := parseInterspersed(fs, args); err != nil {
		return err
	}

	a, err := newApp(g)
	if err != nil {
		return err
	}
	if a.session.Token() == "" {
		a.notifier.Info("Not signed in")

		return nil
	}

	user, err := a.client.Me(ctx)
	if err != nil {
		a.notifier.Error(client.Message(err, "Session expired, please sign in again"))

		return a.settle(err)
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s status=%s\n", user.FullName(), user.Email, user.Role, user.Status)

	return nil
}

func handleList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	g := addGlobalFlags(fs)
	search := fs.String("search", "", "Case-insensitive text filter")
	status := fs.String("status", console.FilterAll, "Status filter")
	typ := fs.String("type", console.FilterAll, "Type filter (category type, course level, user role)")
	sortBy := fs.String("sort", "", "Sort order: newest, oldest, price-low, price-high, rating")
	course := fs.String("course", "", "List the modules of a course")
	module := fs.String("module", "", "List the lessons of a module")
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return errors.New("usage: hubctl list <resource> [options]")
	}

	r, err := lookup(positional[0])
	if err != nil {
		return err
	}
	order, err := console.ParseSortOrder(*sortBy)
	if err != nil {
		return err
	}

	p := listParams{query: console.Query{Search: *search, Status: *status, Type: *typ, SortBy: order}}
	switch {
	case *course != "" && *module != "":
		return errors.New("-course and -module are mutually exclusive")
	case *course != "":
		p.parent, p.id = "course", *course
	case *module != "":
		p.parent, p.id = "module", *module
	}

	a, err := newApp(g)
	if err != nil {
		return err
	}

	return r.list(ctx, a, p)
}

func handleGet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	g := addGlobalFlags(fs)
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return errors.New("usage: hubctl get <resource> <id>")
	}

	r, err := lookup(positional[0])
	if err != nil {
		return err
	}
	a, err := newApp(g)
	if err != nil {
		return err
	}

	return r.get(ctx, a, positional[1])
}

func handleSave(ctx context.Context, mode string, args []string) error {
	fs := flag.NewFlagSet(mode, flag.ExitOnError)
	g := addGlobalFlags(fs)
	var sets assignments
	fs.Var(&sets, "set", "Field assignment key=value (repeatable)")
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}

	want := 1
	if mode == "edit" {
		want = 2
	}
	if len(positional) != want {
		if mode == "edit" {
			return errors.New("usage: hubctl edit <resource> <id> -set key=value ...")
		}

		return errors.New("usage: hubctl create <resource> -set key=value ...")
	}

	r, err := lookup(positional[0])
	if err != nil {
		return err
	}
	a, err := newApp(g)
	if err != nil {
		return err
	}

	id := ""
	if mode == "edit" {
		id = positional[1]
	}

	return r.save(ctx, a, id, sets.pairs())
}

func handleDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	g := addGlobalFlags(fs)
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return errors.New("usage: hubctl delete <resource> <id> [-yes]")
	}

	r, err := lookup(positional[0])
	if err != nil {
		return err
	}
	a, err := newApp(g)
	if err != nil {
		return err
	}

	return r.remove(ctx, a, positional[1])
}

func handleRevoke(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("revoke", flag.ExitOnError)
	g := addGlobalFlags(fs)
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return errors.New("usage: hubctl revoke <certificate id> [-yes]")
	}
	id := positional[0]

	a, err := newApp(g)
	if err != nil {
		return err
	}
	certificates := client.NewResource[entity.Certificate](a.client, "certificates")

	current, err := certificates.Get(ctx, id)
	if err != nil {
		a.notifier.Error(client.Message(err, "Failed to load certificate"))

		return a.settle(err)
	}
	if current.IsRevoked() {
		a.notifier.Info(fmt.Sprintf("Certificate %s is already revoked", current.CertificateID))

		return nil
	}

	prompt := fmt.Sprintf("Revoke certificate %s issued to %s? This cannot be undone.", current.CertificateID, current.StudentName)
	err = console.Guarded(ctx, a.confirmer, a.notifier, prompt, func(ctx context.Context) error {
		revoked, err := certificates.Transition(ctx, id, "revoke")
		if err != nil {
			a.notifier.Error(client.Message(err, "Failed to revoke certificate"))

			return a.settle(err)
		}
		a.notifier.Success("Certificate revoked successfully")

		return writeJSON(a.out, revoked)
	})

	return a.settle(err)
}

func handleFeatures(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: hubctl features show | toggle <group.key> ...")
	}

	fs := flag.NewFlagSet("features "+args[0], flag.ExitOnError)
	g := addGlobalFlags(fs)
	positional, err := parseInterspersed(fs, args[1:])
	if err != nil {
		return err
	}

	a, err := newApp(g)
	if err != nil {
		return err
	}
	panel := console.NewTogglePanel(a.client, a.confirmer, a.notifier)
	if err := panel.Load(ctx); err != nil {
		return a.settle(err)
	}

	switch args[0] {
	case "show":
		writeFlags(a, panel.Current())

		return nil
	case "toggle":
		if len(positional) == 0 {
			return errors.New("usage: hubctl features toggle <group.key> ...")
		}
		for _, ref := range positional {
			group, key, ok := strings.Cut(ref, ".")
			if !ok {
				return errors.Errorf("expected group.key, got %q", ref)
			}
			if err := panel.Toggle(group, key); err != nil {
				return err
			}
		}

		return a.settle(panel.Save(ctx))
	default:
		return errors.Errorf("unknown features command %q", args[0])
	}
}

func writeFlags(a *app, flags entity.FeatureFlags) {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tMODULE\tENABLED")
	for _, group := range entity.FeatureGroups() {
		keys := make([]string, 0, len(flags[group]))
		for key := range flags[group] {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", group, key, onOff(flags[group][key]))
		}
	}
	_ = tw.Flush()
}

func onOff(v bool) string {
	if v {
		return "on"
	}

	return "off"
}
