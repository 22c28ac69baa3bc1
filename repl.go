package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/isaacev/tpas/config"
	"github.com/isaacev/tpas/frontend"
	"github.com/peterh/liner"
)

const (
	historyFile = ".tpas_history"
	promptMain  = "tpas> "
	promptCont  = "....> "
)

var (
	replBanner = color.New(color.Bold).SprintFunc()
	replTree   = color.New(color.FgCyan).SprintFunc()
	replError  = color.New(color.FgRed).SprintFunc()
)

// runRepl reads statement lists from the terminal and prints the tree each
// one parses to. Names assigned in one entry stay visible in later entries
func runRepl(cfg *config.Config) error {
	color.NoColor = color.NoColor || !cfg.Diagnostics.Color

	fmt.Println(replBanner("tpas interactive parser"), "(:quit to exit, :symbols, :reset)")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	table := frontend.NewSymtab()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return nil
		}

		trimmed := strings.TrimSpace(code)

		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return nil
			case ":symbols":
				printSymtab(table)
			case ":reset":
				table = frontend.NewSymtab()
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		if trimmed == "" {
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		body, msgs := frontend.ParseInteractive(code, table, cfg.ParserOptions())

		for _, msg := range msgs.Messages() {
			fmt.Println(replError(msg.Summary()))
		}

		if len(body.Statements) > 0 {
			fmt.Println(replTree(frontend.StringifyAST(body)))
		}
	}
}

// readByParseProbe keeps prompting for continuation lines while the text
// typed so far ends inside a comment, a string or an open block
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !frontend.NeedsMoreInput(src) {
			return src, true
		}
	}
}
