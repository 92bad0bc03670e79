/*
Command htmldesign is an interactive designer for trees of HTML elements.

Users build a forest of elements with commands like

	add div
	add p e1
	style e2 color "#ff0000"
	html

and export it as a standalone HTML document. Type "help" for a list of
commands.

Usage:

	htmldesign [-title <title>] [-trace <level>] [-history <file>]

If stdin is a terminal, the command line supports line editing and a
command history. Otherwise commands are read line by line, which makes it
possible to feed scripts to htmldesign.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/knadh/koanf"
	"github.com/mattn/go-isatty"
	"github.com/npillmayer/htmldesign/dom"
	"github.com/npillmayer/htmldesign/dom/markup"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	title := flag.String("title", markup.ExportOptions.Title, "title of exported documents")
	container := flag.String("container", markup.ExportOptions.ContainerClass, "CSS class of the content container")
	level := flag.String("trace", "Error", "trace level [Debug|Info|Error]")
	history := flag.String("history", "", "file to store the command history in")
	flag.Parse()

	conf := setupConfiguration(*title, *container, *level)
	setupTracing(conf)
	repl := newSession(dom.NewStore(), markup.OptionsFromConfig(conf), os.Stdout)

	var err error
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		err = runInteractive(repl, *history)
	} else {
		err = runScript(repl, os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "htmldesign: %v\n", err)
		os.Exit(1)
	}
}

// setupConfiguration creates a koanf-based configuration and seeds it from
// command-line flags.
func setupConfiguration(title, container, level string) *koanfadapter.KConf {
	conf := koanfadapter.New(koanf.New("."), "", nil)
	conf.Set("tracing.adapter", "go")
	conf.Set("tracingdom", level)
	conf.Set(markup.ConfigTitle, title)
	conf.Set(markup.ConfigContainer, container)
	return conf
}

// setupTracing installs Go-log tracers for all packages of htmldesign.
func setupTracing(conf schuko.Configuration) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	adapter := tracing.GetAdapterFromConfiguration(conf, "")
	selector := tracing.SelectorForAdapter(adapter)
	selector.Select("htmldesign").SetTraceLevel(tracing.TraceLevelFromString(conf.GetString("tracingdom")))
	tracing.SetTraceSelector(selector)
}

func runInteractive(repl *session, history string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "htmldesign> ",
		HistoryFile:     history,
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	fmt.Fprintln(repl.out, "HTML designer. Type 'help' for a list of commands.")
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				fmt.Fprintln(repl.out, "Use 'quit' to exit.")
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if repl.Execute(line) {
			return nil
		}
	}
}

func runScript(repl *session, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if repl.Execute(line) {
			return nil
		}
	}
	return scanner.Err()
}

func completer() *readline.PrefixCompleter {
	kinds := make([]readline.PrefixCompleterInterface, 0, len(dom.SupportedKinds()))
	for _, k := range dom.SupportedKinds() {
		kinds = append(kinds, readline.PcItem(k.String()))
	}
	items := make([]readline.PrefixCompleterInterface, 0, len(commands))
	for _, c := range commands {
		if c.name == "add" {
			items = append(items, readline.PcItem(c.name, kinds...))
			continue
		}
		items = append(items, readline.PcItem(c.name))
	}
	return readline.NewPrefixCompleter(items...)
}
