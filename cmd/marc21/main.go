/*

marc21 is a command-line utility for working with MARC 21 bibliographic
data: picking a single record out of a file, listing records in line
form, counting records, validating records against the schema, and
converting between the binary and textual serializations.

*/
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli"

	marc21 "github.com/victoriamorris/marc21"
	"github.com/victoriamorris/marc21/schema"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	app := cli.NewApp()
	app.Name = "marc21"
	app.Usage = "utilities for working with MARC 21 bibliographic data"

	app.Commands = []cli.Command{
		pickCommand,
		catCommand,
		countCommand,
		validateCommand,
		convertCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("marc21")
	}
}

var pickCommand = cli.Command{
	Name:      "pick",
	Usage:     "pull a single MARC record from a file by control number",
	ArgsUsage: "<controlnum> <file>",
	Action: func(c *cli.Context) error {
		id, path := c.Args().Get(0), c.Args().Get(1)
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		rd := marc21.NewReader(file, marc21.DecodeOptions{})
		for {
			rec, diags, err := rd.Next()
			if err != nil {
				return err
			}
			if rec == nil {
				break
			}
			logDecodeDiagnostics(rec, diags)
			if rec.ControlNumber() == id {
				b, err := marc21.Encode(rec)
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(b)
				return err
			}
		}
		return fmt.Errorf("marc21: no record with control number %q in %s", id, path)
	},
}

var catCommand = cli.Command{
	Name:      "cat",
	Usage:     "print every record in a file in line form",
	ArgsUsage: "<file>",
	Action: func(c *cli.Context) error {
		return eachRecord(c.Args().Get(0), func(rec *marc21.Record) error {
			_, err := fmt.Println(rec.String())
			return err
		})
	},
}

var countCommand = cli.Command{
	Name:      "count",
	Usage:     "print the number of records in a file",
	ArgsUsage: "<file>",
	Action: func(c *cli.Context) error {
		file, err := os.Open(c.Args().Get(0))
		if err != nil {
			return err
		}
		defer file.Close()
		n, err := marc21.CountRecords(file)
		if err != nil {
			return err
		}
		fmt.Println(n)
		return nil
	},
}

var validateCommand = cli.Command{
	Name:      "validate",
	Usage:     "validate every record in a file against the schema",
	ArgsUsage: "<file>",
	Action: func(c *cli.Context) error {
		invalid := 0
		total := 0
		err := eachRecord(c.Args().Get(0), func(rec *marc21.Record) error {
			total++
			diags := schema.Validate(rec)
			if diags.Valid() {
				return nil
			}
			invalid++
			id := rec.ControlNumber()
			for category, items := range diags.ByCategory() {
				for _, d := range items {
					log.Warn().
						Str("record", id).
						Str("tag", d.Tag.String()).
						Str("category", string(category)).
						Str("severity", string(d.Severity)).
						Msg(d.Message)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		log.Info().Int("total", total).Int("invalid", invalid).Msg("validation complete")
		if invalid > 0 {
			return cli.NewExitError("", 1)
		}
		return nil
	},
}

var convertCommand = cli.Command{
	Name:      "convert",
	Usage:     "convert between binary and textual MARC 21 serializations",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		cli.BoolFlag{Name: "to-line", Usage: "binary to standard line form"},
		cli.BoolFlag{Name: "to-mrc", Usage: "binary to Aleph MRC line form"},
		cli.BoolFlag{Name: "from-line", Usage: "standard line form to binary"},
		cli.BoolFlag{Name: "from-mrc", Usage: "Aleph MRC line form to binary"},
	},
	Action: func(c *cli.Context) error {
		switch {
		case c.Bool("to-line"):
			return eachRecord(c.Args().Get(0), func(rec *marc21.Record) error {
				_, err := fmt.Println(rec.String())
				return err
			})
		case c.Bool("to-mrc"):
			return eachRecord(c.Args().Get(0), func(rec *marc21.Record) error {
				_, err := fmt.Println(rec.ToMRCString())
				return err
			})
		case c.Bool("from-line"):
			return convertFromText(c.Args().Get(0), marc21.FromString)
		case c.Bool("from-mrc"):
			return convertFromText(c.Args().Get(0), marc21.FromMRCString)
		default:
			return fmt.Errorf("marc21 convert: one of --to-line, --to-mrc, --from-line, --from-mrc is required")
		}
	},
}

func convertFromText(path string, parse func(string) (*marc21.Record, error)) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	rec, err := parse(string(b))
	if err != nil {
		return err
	}
	out, err := marc21.Encode(rec)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func eachRecord(path string, fn func(*marc21.Record) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	rd := marc21.NewReader(file, marc21.DecodeOptions{})
	for {
		rec, diags, err := rd.Next()
		if err != nil {
			return err
		}
		if rec == nil {
			return nil
		}
		logDecodeDiagnostics(rec, diags)
		if err := fn(rec); err != nil {
			return err
		}
	}
}

func logDecodeDiagnostics(rec *marc21.Record, diags []string) {
	for _, d := range diags {
		log.Warn().Str("record", rec.ControlNumber()).Msg(d)
	}
}
