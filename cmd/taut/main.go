package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/midbel/cli"
	"github.com/midbel/taut/csv"
	"github.com/midbel/taut/logic"
	"github.com/midbel/taut/table"
)

var (
	summary = "taut - truth tables for propositional logic"
	help    = ""
)

func main() {
	var (
		set  = cli.NewFlagSet("taut")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"table"}, &tableCmd)
	root.Register([]string{"tokens"}, &tokensCmd)
	root.Register([]string{"postfix"}, &postfixCmd)
	root.Register([]string{"check"}, &checkCmd)
	root.Register([]string{"export"}, &exportCmd)
	root.Register([]string{"batch"}, &batchCmd)
	root.Register([]string{"repl"}, &replCmd)

	return root
}

var tableCmd = cli.Command{
	Name:    "table",
	Alias:   []string{"eval", "print"},
	Summary: "print the truth table of an expression",
	Usage:   "table [-l] <expression>",
	Handler: &TableCommand{},
}

var tokensCmd = cli.Command{
	Name:    "tokens",
	Alias:   []string{"scan"},
	Summary: "dump the token sequence of an expression",
	Usage:   "tokens [-l] <expression>",
	Handler: &TokensCommand{},
}

var postfixCmd = cli.Command{
	Name:    "postfix",
	Alias:   []string{"rpn"},
	Summary: "print the reverse polish form of an expression",
	Usage:   "postfix [-l] <expression>",
	Handler: &PostfixCommand{},
}

var checkCmd = cli.Command{
	Name:    "check",
	Alias:   []string{"classify"},
	Summary: "tell whether an expression is a tautology, a contradiction or contingent",
	Usage:   "check [-l] <expression>",
	Handler: &CheckCommand{},
}

var exportCmd = cli.Command{
	Name:    "export",
	Summary: "write the truth table of an expression to csv, json or xml",
	Usage:   "export [-l] [-f format] [-o file] <expression>",
	Handler: &ExportCommand{},
}

var batchCmd = cli.Command{
	Name:    "batch",
	Summary: "classify every expression of a csv file",
	Usage:   "batch [-l] [-c delimiter] [-o file] <file>",
	Handler: &BatchCommand{},
}

var replCmd = cli.Command{
	Name:    "repl",
	Alias:   []string{"shell"},
	Summary: "evaluate expressions interactively",
	Usage:   "repl [-l]",
	Handler: &ReplCommand{},
}

func scanMode(legacy bool) logic.ScanMode {
	if legacy {
		return logic.ModeLegacy
	}
	return logic.ModeStrict
}

func expression(args []string) string {
	return strings.Join(args, " ")
}

type TableCommand struct {
	Legacy bool
}

func (c TableCommand) Run(args []string) error {
	set := cli.NewFlagSet("table")
	set.BoolVar(&c.Legacy, "l", false, "drop dangling operators silently")
	if err := set.Parse(args); err != nil {
		return err
	}
	tab, err := table.Generate(expression(set.Args()), scanMode(c.Legacy))
	if err != nil {
		return err
	}
	return table.EncodeText(os.Stdout).EncodeTable(tab)
}

type TokensCommand struct {
	Legacy bool
}

func (c TokensCommand) Run(args []string) error {
	set := cli.NewFlagSet("tokens")
	set.BoolVar(&c.Legacy, "l", false, "drop dangling operators silently")
	if err := set.Parse(args); err != nil {
		return err
	}
	tokens, _, err := logic.Scan(expression(set.Args()), scanMode(c.Legacy))
	if err != nil {
		return err
	}
	for i, t := range tokens {
		fmt.Fprintf(os.Stdout, "%d. %s\n", i+1, t)
	}
	return nil
}

type PostfixCommand struct {
	Legacy bool
}

func (c PostfixCommand) Run(args []string) error {
	set := cli.NewFlagSet("postfix")
	set.BoolVar(&c.Legacy, "l", false, "drop dangling operators silently")
	if err := set.Parse(args); err != nil {
		return err
	}
	tokens, _, err := logic.Scan(expression(set.Args()), scanMode(c.Legacy))
	if err != nil {
		return err
	}
	if err := logic.Validate(tokens); err != nil {
		return err
	}
	var str strings.Builder
	for i, t := range logic.Postfix(tokens) {
		if i > 0 {
			str.WriteByte(' ')
		}
		str.WriteString(t.Literal)
	}
	fmt.Fprintln(os.Stdout, str.String())
	return nil
}

type CheckCommand struct {
	Legacy bool
}

func (c CheckCommand) Run(args []string) error {
	set := cli.NewFlagSet("check")
	set.BoolVar(&c.Legacy, "l", false, "drop dangling operators silently")
	if err := set.Parse(args); err != nil {
		return err
	}
	tab, err := table.Generate(expression(set.Args()), scanMode(c.Legacy))
	if err != nil {
		return err
	}
	verdict, row := table.Classify(tab)
	fmt.Fprintln(os.Stdout, verdict)
	if verdict == table.Contingent && row != nil {
		fmt.Fprintf(os.Stdout, "satisfied by: %s\n", formatBinding(tab.Names, row))
	}
	return nil
}

func formatBinding(names []string, row *table.Row) string {
	var str strings.Builder
	for i, n := range names {
		if i > 0 {
			str.WriteByte(' ')
		}
		fmt.Fprintf(&str, "%s=%s", n, table.Label(row.Values[i]))
	}
	return str.String()
}

type ExportCommand struct {
	Legacy  bool
	Format  string
	OutFile string
}

func (c ExportCommand) Run(args []string) error {
	set := cli.NewFlagSet("export")
	set.BoolVar(&c.Legacy, "l", false, "drop dangling operators silently")
	set.StringVar(&c.Format, "f", "", "export to given format (csv, json, xml)")
	set.StringVar(&c.OutFile, "o", "", "write result to output file")
	if err := set.Parse(args); err != nil {
		return err
	}
	var encode func(io.Writer) table.Encoder
	switch c.Format {
	case "", "csv":
		encode = table.EncodeCSV
	case "json":
		encode = table.EncodeJSON
	case "xml":
		encode = table.EncodeXML
	default:
		return fmt.Errorf("%s: unsupported format", c.Format)
	}
	tab, err := table.Generate(expression(set.Args()), scanMode(c.Legacy))
	if err != nil {
		return err
	}
	w := io.Writer(os.Stdout)
	if c.OutFile != "" {
		f, err := os.Create(c.OutFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return encode(w).EncodeTable(tab)
}

type BatchCommand struct {
	Legacy    bool
	Delimiter string
	OutFile   string
}

func (c BatchCommand) Run(args []string) error {
	set := cli.NewFlagSet("batch")
	set.BoolVar(&c.Legacy, "l", false, "drop dangling operators silently")
	set.StringVar(&c.Delimiter, "c", "", "delimiter to use")
	set.StringVar(&c.OutFile, "o", "", "write result to output file")
	if err := set.Parse(args); err != nil {
		return err
	}
	r, err := os.Open(set.Arg(0))
	if err != nil {
		return err
	}
	defer r.Close()

	w := io.Writer(os.Stdout)
	if c.OutFile != "" {
		f, err := os.Create(c.OutFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	sep, err := csvSeparator(c.Delimiter)
	if err != nil {
		return err
	}
	return c.classify(r, w, sep)
}

func (c BatchCommand) classify(r io.Reader, w io.Writer, sep byte) error {
	var (
		rs = csv.NewReader(r)
		ws = csv.NewWriter(w)
	)
	rs.Comma = sep
	ws.Comma = sep
	for {
		record, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if len(record) == 0 || record[0] == "" {
			continue
		}
		expr := record[0]
		tab, err := table.Generate(expr, scanMode(c.Legacy))
		if err != nil {
			if !errors.Is(err, logic.ErrInvalid) {
				return err
			}
			if err := ws.Write([]string{expr, "invalid"}); err != nil {
				return err
			}
			continue
		}
		verdict, _ := table.Classify(tab)
		if err := ws.Write([]string{expr, verdict.String()}); err != nil {
			return err
		}
	}
	ws.Flush()
	return ws.Err()
}

func csvSeparator(str string) (byte, error) {
	switch str {
	case "comma", ",", "":
		return ',', nil
	case "semi", "semicolon", ";":
		return ';', nil
	case "tab", "\t":
		return '\t', nil
	case "colon", ":":
		return ':', nil
	default:
		return 0, fmt.Errorf("unsupported separator")
	}
}
