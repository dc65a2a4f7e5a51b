// Command jsonv parses, validates, and pretty-prints JSON documents.
//
// Input comes from a file path argument, the -s flag, or stdin:
//
//	jsonv document.json
//	jsonv -s '{"name": "Alice", "age": 30}'
//	cat document.json | jsonv --indent 2
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	jsonv "github.com/jsonv/go"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "jsonv",
		Usage:     "parse, validate, and pretty-print JSON documents",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "string",
				Aliases: []string{"s"},
				Usage:   "parse `JSON` given as an argument instead of a file",
			},
			&cli.IntFlag{
				Name:    "indent",
				Aliases: []string{"i"},
				Usage:   "pretty-print with `N` spaces per nesting level",
			},
			&cli.BoolFlag{
				Name:  "tokens",
				Usage: "print the token stream instead of the parsed document",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "jsonv:", err)
		var ioErr *jsonv.IOError
		if errors.As(err, &ioErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	text, err := readInput(c)
	if err != nil {
		return err
	}

	if c.Bool("tokens") {
		tokens, err := jsonv.Tokenize(text)
		if err != nil {
			return err
		}
		for _, tok := range tokens {
			switch tok.Kind {
			case jsonv.TokenString:
				fmt.Printf("%4d  %s %q\n", tok.Pos, tok.Kind, tok.Text)
			case jsonv.TokenNumber:
				fmt.Printf("%4d  %s %s\n", tok.Pos, tok.Kind, tok.Text)
			default:
				fmt.Printf("%4d  %s\n", tok.Pos, tok.Kind)
			}
		}
		return nil
	}

	v, err := jsonv.Parse(text)
	if err != nil {
		return err
	}
	fmt.Println(jsonv.Serialize(v, c.Int("indent")))
	return nil
}

// readInput selects the input source: the -s literal, a file path
// argument, or stdin.
func readInput(c *cli.Context) (string, error) {
	if c.IsSet("string") {
		return c.String("string"), nil
	}
	if c.Args().Len() > 0 {
		path := c.Args().First()
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &jsonv.IOError{Path: path, Err: err}
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", &jsonv.IOError{Path: "stdin", Err: err}
	}
	return string(data), nil
}
