package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/htmldesign/dom"
	"github.com/npillmayer/htmldesign/dom/domdbg"
	"github.com/npillmayer/htmldesign/dom/markup"
	"github.com/npillmayer/htmldesign/dom/style/css"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("htmldesign.repl")
}

// session holds the state of an interactive design session.
type session struct {
	store *dom.Store
	opts  markup.Options
	out   io.Writer
}

func newSession(store *dom.Store, opts markup.Options, out io.Writer) *session {
	return &session{store: store, opts: opts, out: out}
}

type command struct {
	name  string
	usage string
	help  string
	min   int // minimum number of arguments
	max   int // maximum number of arguments, -1 for unlimited
	run   func(s *session, args []string) error
}

// help and quit are handled by Execute and have no run function.
var commands = []command{
	{"add", "add <kind> [parent]", "create an element with defaults, as a root or below parent", 1, 2, (*session).add},
	{"del", "del <id>", "delete an element and its subtree", 1, 1, (*session).del},
	{"clear", "clear", "delete all elements", 0, 0, (*session).clear},
	{"move", "move <id> [parent]", "move an element below parent, or make it a root", 1, 2, (*session).move},
	{"text", `text <id> "<text>"`, "set the text content of an element", 2, 2, (*session).text},
	{"attr", `attr <id> <key> ["<value>"]`, "set an attribute, or remove it if no value is given", 2, 3, (*session).attr},
	{"style", `style <id> <key> ["<value>"]`, "set a style property, or remove it if no value is given", 2, 3, (*session).style},
	{"css", `css <id> "<declarations>"`, "replace all styles of an element", 2, 2, (*session).css},
	{"select", "select <id>|none", "select an element", 1, 1, (*session).selectNode},
	{"info", "info [id]", "show the properties of an element (default: selected)", 0, 1, (*session).info},
	{"computed", "computed <id> <key>", "show the computed value of a style property", 2, 2, (*session).computed},
	{"show", "show", "print the element forest as a tree", 0, 0, (*session).show},
	{"dot", "dot", "print the element forest in GraphViz format", 0, 0, (*session).dot},
	{"html", "html", "print the HTML fragment", 0, 0, (*session).html},
	{"preview", "preview", "print a preview document", 0, 0, (*session).preview},
	{"export", "export [file]", "export the document to a file (default: " + markup.ExportFilename + ")", 0, 1, (*session).export},
	{"copy", "copy", "print the export document", 0, 0, (*session).copy},
	{"query", `query "<selector>"`, "list elements matching a CSS selector", 1, 1, (*session).query},
	{"import", `import "<markup>" [parent]`, "add elements from HTML markup", 1, 2, (*session).importMarkup},
	{"check", "check", "verify the integrity of the element forest", 0, 0, (*session).check},
	{"undo", "undo", "undo the last change (disabled)", 0, 0, (*session).undo},
	{"redo", "redo", "redo the last undone change (disabled)", 0, 0, (*session).undo},
	{"help", "help [command]", "show help", 0, 1, nil},
	{"quit", "quit", "leave htmldesign", 0, 0, nil},
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

var errUsage = errors.New("usage")

// Execute parses and executes a command line. Errors are reported to the
// session's output. It returns true if the session should end.
func (s *session) Execute(line string) bool {
	args := parseArgs(line)
	if len(args) == 0 {
		return false
	}
	name, args := strings.ToLower(args[0]), args[1:]
	switch name {
	case "quit", "exit":
		return true
	case "help", "?":
		s.help(args)
		return false
	}
	cmd, ok := findCommand(name)
	if !ok {
		fmt.Fprintf(s.out, "unknown command %q, type 'help' for a list of commands\n", name)
		return false
	}
	if len(args) < cmd.min || (cmd.max >= 0 && len(args) > cmd.max) {
		fmt.Fprintf(s.out, "%v: %s\n", errUsage, cmd.usage)
		return false
	}
	tracer().Debugf("command %s %v", cmd.name, args)
	if err := cmd.run(s, args); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	return false
}

// parseArgs splits a command line into arguments. Arguments are separated
// by white space, unless enclosed in double quotes. Within quotes, a
// backslash escapes the next character.
func parseArgs(line string) []string {
	var args []string
	var arg strings.Builder
	inQuotes, quoted, escaped := false, false, false
	for _, r := range line {
		switch {
		case escaped:
			arg.WriteRune(r)
			escaped = false
		case inQuotes && r == '\\':
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
			quoted = true
		case !inQuotes && (r == ' ' || r == '\t'):
			if arg.Len() > 0 || quoted {
				args = append(args, arg.String())
				arg.Reset()
				quoted = false
			}
		default:
			arg.WriteRune(r)
		}
	}
	if arg.Len() > 0 || quoted {
		args = append(args, arg.String())
	}
	return args
}

func optionalID(args []string, i int) dom.ID {
	if len(args) > i {
		return dom.ID(args[i])
	}
	return dom.NoID
}

// --- Commands --------------------------------------------------------------

func (s *session) add(args []string) error {
	id, err := s.store.AddNode(dom.Kind(args[0]), optionalID(args, 1))
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "added %s\n", id)
	return nil
}

func (s *session) del(args []string) error {
	return s.store.DeleteNode(dom.ID(args[0]))
}

func (s *session) clear(args []string) error {
	s.store.Clear()
	return nil
}

func (s *session) move(args []string) error {
	return s.store.MoveNode(dom.ID(args[0]), optionalID(args, 1))
}

func (s *session) text(args []string) error {
	return s.store.UpdateContent(dom.ID(args[0]), args[1])
}

func (s *session) attr(args []string) error {
	if len(args) == 2 {
		return s.store.RemoveAttribute(dom.ID(args[0]), args[1])
	}
	return s.store.UpdateAttribute(dom.ID(args[0]), args[1], args[2])
}

func (s *session) style(args []string) error {
	if len(args) == 2 {
		return s.store.RemoveStyle(dom.ID(args[0]), args[1])
	}
	return s.store.UpdateStyle(dom.ID(args[0]), args[1], args[2])
}

func (s *session) css(args []string) error {
	return s.store.SetStyleText(dom.ID(args[0]), args[1])
}

func (s *session) selectNode(args []string) error {
	if args[0] == "none" {
		s.store.Select(dom.NoID)
		return nil
	}
	id := dom.ID(args[0])
	if _, ok := s.store.Node(id); !ok {
		return fmt.Errorf("%w: %s", dom.ErrNoSuchNode, id)
	}
	s.store.Select(id)
	return nil
}

func (s *session) info(args []string) error {
	id := optionalID(args, 0)
	if id == dom.NoID {
		if id = s.store.Selected(); id == dom.NoID {
			return errors.New("no element selected")
		}
	}
	snap := s.store.Snapshot()
	n, ok := snap.Node(id)
	if !ok {
		return fmt.Errorf("%w: %s", dom.ErrNoSuchNode, id)
	}
	parent := string(n.Parent)
	if n.IsRoot() {
		parent = "none"
	}
	fmt.Fprintf(s.out, "%s <%s>, parent %s, %d children\n", n.ID, n.Kind, parent, n.ChildCount())
	if !n.Kind.IsVoid() {
		fmt.Fprintf(s.out, "  content:    %q\n", n.Content)
	}
	fmt.Fprintf(s.out, "  attributes: %s\n", n.Attributes.Format(" ", "="))
	fmt.Fprintf(s.out, "  styles:     %s\n", markup.StyleText(n.Styles))
	if mode, err := css.Display(snap, id); err == nil {
		fmt.Fprintf(s.out, "  display:    %s\n", mode.FullString())
	}
	if w, h, err := css.BoxSize(snap, id); err == nil {
		fmt.Fprintf(s.out, "  box:        %s × %s\n", w, h)
	}
	return nil
}

func (s *session) computed(args []string) error {
	p, err := css.ComputedProperty(s.store.Snapshot(), dom.ID(args[0]), args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s: %s\n", args[1], p)
	return nil
}

func (s *session) show(args []string) error {
	fmt.Fprint(s.out, domdbg.Outline(s.store.Snapshot()))
	return nil
}

func (s *session) dot(args []string) error {
	return domdbg.ToGraphViz(s.store.Snapshot(), s.out, nil)
}

func (s *session) html(args []string) error {
	if err := markup.RenderFragment(s.out, s.store.Snapshot()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.out)
	return err
}

func (s *session) preview(args []string) error {
	return markup.RenderDocument(s.out, s.store.Snapshot(), markup.PreviewOptions)
}

func (s *session) export(args []string) (err error) {
	filename := markup.ExportFilename
	if len(args) > 0 {
		filename = args[0]
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	snap := s.store.Snapshot()
	if err = markup.Export(f, snap, s.opts); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "exported %d elements to %s\n", snap.Len(), filename)
	return nil
}

func (s *session) copy(args []string) error {
	return markup.Export(s.out, s.store.Snapshot(), s.opts)
}

func (s *session) query(args []string) error {
	ids, err := markup.Query(s.store.Snapshot(), args[0])
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(s.out, "no match")
		return nil
	}
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = string(id)
	}
	fmt.Fprintln(s.out, strings.Join(strs, " "))
	return nil
}

func (s *session) importMarkup(args []string) error {
	ids, err := markup.Import(s.store, args[0], optionalID(args, 1))
	if len(ids) > 0 {
		strs := make([]string, len(ids))
		for i, id := range ids {
			strs[i] = string(id)
		}
		fmt.Fprintf(s.out, "imported %s\n", strings.Join(strs, " "))
	}
	return err
}

func (s *session) check(args []string) error {
	if err := s.store.CheckForest(); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "ok, %d elements\n", s.store.Len())
	return nil
}

func (s *session) undo(args []string) error {
	fmt.Fprintln(s.out, "undo/redo is not available")
	return nil
}

func (s *session) help(args []string) {
	if len(args) > 0 {
		cmd, ok := findCommand(strings.ToLower(args[0]))
		if !ok {
			fmt.Fprintf(s.out, "unknown command %q\n", args[0])
			return
		}
		fmt.Fprintf(s.out, "%s\n    %s\n", cmd.usage, cmd.help)
		return
	}
	fmt.Fprintln(s.out, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(s.out, "  %-30s %s\n", c.usage, c.help)
	}
	kinds := dom.SupportedKinds()
	strs := make([]string, len(kinds))
	for i, k := range kinds {
		strs[i] = k.String()
	}
	fmt.Fprintf(s.out, "Element kinds: %s\n", strings.Join(strs, " "))
}
