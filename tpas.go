package main

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/isaacev/tpas/config"
	"github.com/isaacev/tpas/feedback"
	"github.com/isaacev/tpas/frontend"
	"github.com/isaacev/tpas/source"
	"github.com/urfave/cli"
)

var configPath string
var errorNoColor bool
var prettyMessages bool
var maxDepth int

func readSourceFiles(args []string) (files []*source.File) {
	var filenames []string

	for _, arg := range args {
		// Try to convert every argument to an absolute path, if not possible,
		// claim the file could not be found. If a path can be produced but has
		// the wrong extension, admit defeat for that argument
		if abs, err := filepath.Abs(arg); err == nil {
			if path.Ext(abs) == ".pas" {
				filenames = append(filenames, abs)
			} else {
				log.Printf("could not use '%s' with extension '%s'", abs, path.Ext(abs))
			}
		} else {
			log.Printf("could not find '%s'", arg)
		}
	}

	for _, filename := range filenames {
		buf, err := os.ReadFile(filename)
		if err != nil {
			log.Printf("could not read '%s': %v", filename, err)
			continue
		}

		files = append(files, source.NewFile(filename, string(buf)))
	}

	return files
}

// loadConfig reads the config file and lets command line flags override it
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if errorNoColor {
		cfg.Diagnostics.Color = false
	}

	if prettyMessages {
		cfg.Diagnostics.Pretty = true
	}

	if maxDepth > 0 {
		cfg.Parser.MaxDepth = maxDepth
	}

	return cfg, cfg.Validate()
}

// printMessages writes every message of a compilation to stdout, either as
// the one-line summaries or as the full source excerpts
func printMessages(cfg *config.Config, msgs []feedback.Message) {
	for _, msg := range msgs {
		if _, ok := msg.(feedback.Warning); ok && !cfg.Diagnostics.Warnings {
			continue
		}

		if cfg.Diagnostics.Pretty {
			fmt.Println(msg.Make(cfg.Diagnostics.Color))
		} else {
			fmt.Println(msg.Summary())
		}
	}
}

// digestFiles parses every file named on the command line and hands each
// tree to "after" (which may be nil). The command fails when any file had
// errors
func digestFiles(c *cli.Context, after func(*source.File, *frontend.Program, *frontend.Symtab)) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}

	failed := 0

	for _, file := range readSourceFiles(c.Args()) {
		table := frontend.NewSymtab()
		prog, msgs := frontend.Parse(file, table, cfg.ParserOptions())

		if len(msgs.Messages()) > 0 {
			fmt.Printf("# %s\n", file.Filename)
			printMessages(cfg, msgs.Messages())
		}

		if msgs.ErrorCount() > 0 {
			fmt.Printf("%d error(s) in %s\n", msgs.ErrorCount(), file.Filename)
			failed++
			continue
		}

		if after != nil {
			after(file, prog, table)
		}
	}

	if failed > 0 {
		return cli.NewExitError("", 1)
	}

	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tpas: ")

	app := cli.NewApp()
	app.Name = "tpas"
	app.Usage = "front-end for a small Pascal-like teaching language"

	commonFlags := []cli.Flag{
		cli.StringFlag{
			Name:        "config",
			Usage:       "read settings from this TOML file",
			Value:       config.DefaultFilename,
			Destination: &configPath,
		},
		cli.BoolFlag{
			Name:        "no-color",
			Usage:       "hide colors in error and warning messages",
			Destination: &errorNoColor,
		},
		cli.BoolFlag{
			Name:        "pretty",
			Usage:       "show the offending source line under each message",
			Destination: &prettyMessages,
		},
		cli.IntFlag{
			Name:        "max-depth",
			Usage:       "maximum nesting of statements and expressions",
			Destination: &maxDepth,
		},
	}

	app.Commands = []cli.Command{
		{
			Name:    "check",
			Aliases: []string{"c"},
			Usage:   "Check the syntax of file(s) and report every error found",
			Flags:   commonFlags,
			Action: func(c *cli.Context) error {
				return digestFiles(c, nil)
			},
		},
		{
			Name:    "ast",
			Aliases: []string{"a"},
			Usage:   "Print the abstract-syntax-tree of file(s)",
			Flags:   commonFlags,
			Action: func(c *cli.Context) error {
				return digestFiles(c, func(file *source.File, prog *frontend.Program, _ *frontend.Symtab) {
					fmt.Println(frontend.StringifyAST(prog))
				})
			},
		},
		{
			Name:    "symbols",
			Aliases: []string{"s"},
			Usage:   "Print the names entered while parsing file(s)",
			Flags:   commonFlags,
			Action: func(c *cli.Context) error {
				return digestFiles(c, func(file *source.File, _ *frontend.Program, table *frontend.Symtab) {
					printSymtab(table)
				})
			},
		},
		{
			Name:    "tokens",
			Aliases: []string{"t"},
			Usage:   "Print the token stream of file(s)",
			Flags:   commonFlags,
			Action: func(c *cli.Context) error {
				cfg, err := loadConfig()
				if err != nil {
					return cli.NewExitError(err.Error(), 2)
				}

				for _, file := range readSourceFiles(c.Args()) {
					toks, msgs := frontend.Tokenize(file)

					fmt.Printf("# %s\n", file.Filename)
					for _, tok := range toks {
						fmt.Printf("%4d  %-12s %-20q %v\n", tok.Line(), tok.Symbol, tok.Lexeme, tok.Value)
					}

					printMessages(cfg, msgs)
				}

				return nil
			},
		},
		{
			Name:    "repl",
			Aliases: []string{"r"},
			Usage:   "Parse statements interactively and print their trees",
			Flags:   commonFlags,
			Action: func(c *cli.Context) error {
				cfg, err := loadConfig()
				if err != nil {
					return cli.NewExitError(err.Error(), 2)
				}

				return runRepl(cfg)
			},
		},
	}

	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func printSymtab(table *frontend.Symtab) {
	for _, entry := range table.Entries() {
		fmt.Printf("%-20s %-9s line %d\n", entry.Name, entry.Kind, entry.Line)
	}
}
