package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

const versionString = "0.1.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		if terr, ok := err.(tracerr.Error); ok {
			tracerr.PrintSourceColor(terr)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "rslox",
		Usage:   "a tree-walk interpreter for the Lox language",
		Version: versionString,
		Action: func(c *cli.Context) error {
			if path := c.Args().First(); path != "" {
				return runScript(path, runOptions{})
			}
			return runREPL()
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "run a .lox script, or start the REPL with no script",
				ArgsUsage: "[script.lox]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "script path (alternative to the positional argument)",
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "dump tokens and AST before running",
					},
					&cli.BoolFlag{
						Name:  "show-tokens",
						Usage: "dump the scanned token stream",
					},
					&cli.BoolFlag{
						Name:  "show-ast",
						Usage: "dump the parsed syntax tree",
					},
				},
				Action: func(c *cli.Context) error {
					path := c.String("path")
					if path == "" {
						path = c.Args().First()
					}
					if path == "" {
						return runREPL()
					}
					return runScript(path, runOptions{
						ShowTokens: c.Bool("show-tokens") || c.Bool("debug"),
						ShowAST:    c.Bool("show-ast") || c.Bool("debug"),
					})
				},
			},
			{
				Name:  "repl",
				Usage: "start the interactive session",
				Action: func(c *cli.Context) error {
					return runREPL()
				},
			},
			{
				Name:      "check",
				Usage:     "scan, parse, and resolve a script without running it",
				ArgsUsage: "<script.lox>",
				Action: func(c *cli.Context) error {
					path := c.Args().First()
					if path == "" {
						return errors.New("rslox check: script path required")
					}
					return checkScript(path)
				},
			},
			{
				Name:      "fmt",
				Usage:     "reindent .lox sources",
				ArgsUsage: "<path>...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "w",
						Usage: "write result to source files instead of stdout",
					},
					&cli.BoolFlag{
						Name:  "check",
						Usage: "fail if any source file needs formatting",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return errors.New("rslox fmt: path required")
					}
					return fmtFiles(c.Args().Slice(), c.Bool("w"), c.Bool("check"))
				},
			},
			{
				Name:  "tool",
				Usage: "developer tools",
				Subcommands: []*cli.Command{
					{
						Name:      "gen-ast",
						Usage:     "generate syntax tree node definitions from a grammar",
						ArgsUsage: "<output dir>",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "grammar",
								Aliases: []string{"g"},
								Usage:   "grammar file (defaults to the built-in grammar)",
							},
						},
						Action: func(c *cli.Context) error {
							return genASTCommand(c.String("grammar"), c.Args().First())
						},
					},
				},
			},
		},
	}
}
