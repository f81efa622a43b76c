package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-notes/models"
)

type command struct {
	name    string
	args    string
	summary string
	minArgs int
	// maxArgs is -1 for variadic commands.
	maxArgs int
	run     func(ctx context.Context, a *App, args []string) (any, error)
}

var commands = []command{
	{name: "register", args: "<username> <password> [role]", summary: "create a user", minArgs: 2, maxArgs: 3, run: runRegister},
	{name: "token", summary: "request a bearer token for the given credentials", run: runToken},
	{name: "users", summary: "list users", run: func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.adapter.ListUsers(ctx)
	}},
	{name: "search-users", args: "<query>", summary: "find users whose name contains query", minArgs: 1, maxArgs: 1, run: func(ctx context.Context, a *App, args []string) (any, error) {
		return a.adapter.SearchUsers(ctx, args[0])
	}},
	{name: "user", args: "<id>", summary: "show a user", minArgs: 1, maxArgs: 1, run: withID(func(ctx context.Context, a *App, id int64, _ []string) (any, error) {
		return a.adapter.GetUser(ctx, id)
	})},
	{name: "update-user", args: "<id> [-username name] [-role role]", summary: "change a user (admin only)", minArgs: 1, maxArgs: -1, run: withID(runUpdateUser)},
	{name: "delete-user", args: "<id>", summary: "delete a user and their notes (admin only)", minArgs: 1, maxArgs: 1, run: withID(func(ctx context.Context, a *App, id int64, _ []string) (any, error) {
		return a.adapter.DeleteUser(ctx, id)
	})},
	{name: "notes", summary: "list notes visible to you", run: func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.adapter.ListNotes(ctx)
	}},
	{name: "note", args: "<id>", summary: "show a note", minArgs: 1, maxArgs: 1, run: withID(func(ctx context.Context, a *App, id int64, _ []string) (any, error) {
		return a.adapter.GetNote(ctx, id)
	})},
	{name: "create-note", args: "[-public] <text>", summary: "create a note, private unless -public is given", minArgs: 1, maxArgs: -1, run: runCreateNote},
	{name: "update-note", args: "<id> [-text text] [-private=true|false]", summary: "change your note", minArgs: 1, maxArgs: -1, run: withID(runUpdateNote)},
	{name: "delete-note", args: "<id>", summary: "delete your note", minArgs: 1, maxArgs: 1, run: withID(func(ctx context.Context, a *App, id int64, _ []string) (any, error) {
		return a.adapter.DeleteNote(ctx, id)
	})},
	{name: "tag-note", args: "<id> [tag_id...]", summary: "link tags to a note, keeping existing links", minArgs: 1, maxArgs: -1, run: withID(runTagNote)},
	{name: "tags", summary: "list tags", run: func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.adapter.ListTags(ctx)
	}},
	{name: "tag", args: "<id>", summary: "show a tag", minArgs: 1, maxArgs: 1, run: withID(func(ctx context.Context, a *App, id int64, _ []string) (any, error) {
		return a.adapter.GetTag(ctx, id)
	})},
	{name: "create-tag", args: "<name>", summary: "create a tag", minArgs: 1, maxArgs: 1, run: func(ctx context.Context, a *App, args []string) (any, error) {
		return a.adapter.CreateTag(ctx, models.TagCreate{Name: args[0]})
	}},
	{name: "upload", args: "<path>", summary: "upload a file", minArgs: 1, maxArgs: 1, run: runUpload},
	{name: "download", args: "<name> [dest]", summary: "download an uploaded file to dest or stdout", minArgs: 1, maxArgs: 2, run: runDownload},
	{name: "version", summary: "show client and server build info", run: runVersion},
}

func findCommand(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

// Usage returns the help text listing every command.
func Usage() string {
	var b strings.Builder
	b.WriteString("usage: go-notes-client [-s url] [-u username -p password | -t token] <command> [args]\n\ncommands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "  %-14s %-40s %s\n", cmd.name, cmd.args, cmd.summary)
	}
	return b.String()
}

func withID(run func(ctx context.Context, a *App, id int64, args []string) (any, error)) func(context.Context, *App, []string) (any, error) {
	return func(ctx context.Context, a *App, args []string) (any, error) {
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return run(ctx, a, id, args[1:])
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", ErrUsage, s)
	}
	return id, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func runRegister(ctx context.Context, a *App, args []string) (any, error) {
	user := models.UserCreate{Username: args[0], Password: args[1]}
	if len(args) == 3 {
		user.Role = args[2]
	}
	return a.adapter.Register(ctx, user)
}

func runToken(ctx context.Context, a *App, _ []string) (any, error) {
	return a.adapter.RequestToken(ctx)
}

func runUpdateUser(ctx context.Context, a *App, id int64, args []string) (any, error) {
	var update models.UserUpdate
	fs := newFlagSet("update-user")
	fs.StringVar(&update.Username, "username", "", "new username")
	fs.StringVar(&update.Role, "role", "", "new role")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return a.adapter.UpdateUser(ctx, id, update)
}

func runCreateNote(ctx context.Context, a *App, args []string) (any, error) {
	fs := newFlagSet("create-note")
	public := fs.Bool("public", false, "make the note visible to everyone")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() == 0 {
		return nil, fmt.Errorf("%w: note text is required", ErrUsage)
	}

	private := !*public
	return a.adapter.CreateNote(ctx, models.NoteCreate{
		Text:    strings.Join(fs.Args(), " "),
		Private: &private,
	})
}

func runUpdateNote(ctx context.Context, a *App, id int64, args []string) (any, error) {
	var update models.NoteUpdate
	fs := newFlagSet("update-note")
	fs.Func("text", "new note text", func(s string) error {
		update.Text = &s
		return nil
	})
	fs.Func("private", "true or false", func(s string) error {
		private, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		update.Private = &private
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return a.adapter.UpdateNote(ctx, id, update)
}

func runTagNote(ctx context.Context, a *App, id int64, args []string) (any, error) {
	tags := models.NoteTags{Tags: make([]int64, 0, len(args))}
	for _, arg := range args {
		tagID, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		tags.Tags = append(tags.Tags, tagID)
	}

	return a.adapter.SetNoteTags(ctx, id, tags)
}

func runUpload(ctx context.Context, a *App, args []string) (any, error) {
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return a.adapter.Upload(ctx, filepath.Base(args[0]), f)
}

func runDownload(ctx context.Context, a *App, args []string) (any, error) {
	data, err := a.adapter.Download(ctx, args[0])
	if err != nil {
		return nil, err
	}

	if len(args) == 1 {
		_, err = a.out.Write(data)
		return nil, err
	}
	if err = os.WriteFile(args[1], data, 0o644); err != nil {
		return nil, err
	}
	return map[string]any{"file": args[1], "size": len(data)}, nil
}

func runVersion(ctx context.Context, a *App, _ []string) (any, error) {
	server, err := a.adapter.Version(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]models.AppBuildInfo{"client": a.buildInfo, "server": server}, nil
}
