package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/reoring/argskema"
	"github.com/reoring/argskema/codec"
	"github.com/reoring/argskema/describe"
	"github.com/reoring/argskema/host"
	"github.com/reoring/argskema/i18n"
	"github.com/reoring/argskema/internal/gen"
	"github.com/reoring/argskema/internal/ir"
)

// CLI is the top-level command-line interface.
type CLI struct {
	Log logConfig `embed:"" group:"log" prefix:"log-"`

	Schema  string `env:"ARGSKEMA_SCHEMA"  help:"Description file (.yaml, .yml or .json)." short:"s" type:"existingfile"`
	Bundle  string `help:"Select the named document from a multi-document YAML file."`
	Program string `default:"prog-name" env:"ARGSKEMA_PROGRAM" help:"Program name used in help and version output." short:"p"`
	Lang    string `default:"en" enum:"en,ja" help:"Language of error messages."`
	Color   bool   `default:"true" help:"Color error messages." negatable:""`

	Parse   parseCmd   `cmd:"" help:"Parse tokens against the schema and print the values as JSON."`
	Options optionsCmd `cmd:"" help:"Print the option table."`
	Usage   usageCmd   `cmd:"" help:"Print the generated usage text."`
	Gen     genCmd     `cmd:"" help:"Generate dsl declarations for Go struct types."`
}

// runEnv carries the process streams into commands.
type runEnv struct {
	stdout io.Writer
	stderr io.Writer
	exit   func(int)
	logger *slog.Logger
}

// Run executes the argskema CLI. exit is called for usage errors and by the
// parse command to report the outcome of a parse.
func Run(ctx context.Context, exit func(code int), stdout, stderr io.Writer, args ...string) error {
	var cli CLI
	env := &runEnv{stdout: stdout, stderr: stderr, exit: exit}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name("argskema"),
		kong.Description("Derive command-line parsers from structure descriptions."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, stderr),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.Bind(env),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true, Summary: true}),
	)
	if err != nil {
		return err
	}
	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	env.logger = cli.Log.start(ctx, stderr)
	return ktx.Run(&cli)
}

func (c *CLI) document() (*describe.Document, error) {
	if c.Schema == "" {
		return nil, fmt.Errorf("no schema: set --schema or ARGSKEMA_SCHEMA")
	}
	if c.Bundle != "" {
		data, err := os.ReadFile(c.Schema)
		if err != nil {
			return nil, err
		}
		return describe.FromYAMLBundle(data, c.Bundle)
	}
	return describe.Load(c.Schema)
}

func (c *CLI) options(doc *describe.Document) []argskema.Option {
	return append(doc.Options(),
		argskema.WithRegistry(codec.Register(nil)),
		argskema.WithTranslator(i18n.Language(c.Lang)),
	)
}

func (c *CLI) schema() (*argskema.Schema, error) {
	doc, err := c.document()
	if err != nil {
		return nil, err
	}
	desc, err := doc.Description()
	if err != nil {
		return nil, err
	}
	return argskema.BuildSchema(desc, c.options(doc)...)
}

type parseCmd struct {
	Tokens []string `arg:"" help:"Tokens to parse; put them after --." optional:"" passthrough:""`
}

// Run parses the tokens. A schema that cannot be built is reported like any
// other argument error.
func (p *parseCmd) Run(ctx context.Context, cli *CLI, env *runEnv) error {
	doc, err := cli.document()
	if err != nil {
		return err
	}
	desc, err := doc.Description()
	if err != nil {
		return err
	}
	// kong keeps the separator that introduced the passthrough tokens.
	tokens := p.Tokens
	if len(tokens) > 0 && tokens[0] == "--" {
		tokens = tokens[1:]
	}
	env.logger.DebugContext(ctx, "parsing", slog.String("schema", desc.Name), slog.Int("tokens", len(tokens)))
	res := argskema.ParseDescription(desc, cli.Program, tokens, cli.options(doc)...)
	h := &host.Host{
		Stdout: env.stdout,
		Stderr: env.stderr,
		Exit:   env.exit,
		Logger: env.logger,
		Color:  cli.Color && !color.NoColor,
		Name:   cli.Program,
	}
	vals, ok := h.Handle(ctx, res)
	if !ok {
		return nil
	}
	return describe.EncodeValues(env.stdout, vals)
}

type optionsCmd struct {
	Format string `default:"yaml" enum:"json,yaml" help:"Output format." short:"f"`
}

func (o *optionsCmd) Run(cli *CLI, env *runEnv) error {
	s, err := cli.schema()
	if err != nil {
		return err
	}
	if o.Format == "json" {
		return describe.EncodeJSON(env.stdout, s)
	}
	return describe.EncodeYAML(env.stdout, s)
}

type usageCmd struct{}

func (usageCmd) Run(cli *CLI, env *runEnv) error {
	s, err := cli.schema()
	if err != nil {
		return err
	}
	_, err = io.WriteString(env.stdout, s.Help(cli.Program))
	return err
}

type genCmd struct {
	Dir    string   `default:"." help:"Package directory holding the types." type:"existingdir"`
	Type   []string `help:"Struct type to generate for (repeatable)." required:"" short:"t"`
	Out    string   `help:"Output file; stdout when empty." short:"o"`
	Format string   `default:"go" enum:"go,yaml" help:"Generate Go dsl code or a YAML description." short:"f"`
}

func (g *genCmd) Run(ctx context.Context, env *runEnv) error {
	pkg, err := ir.Collect(g.Dir, g.Type...)
	if err != nil {
		return err
	}
	env.logger.DebugContext(ctx, "collected", slog.String("package", pkg.Name), slog.Int("types", len(pkg.Structs)))

	var w io.Writer = env.stdout
	if g.Out != "" {
		f, err := os.Create(g.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if g.Format == "yaml" {
		for i, s := range pkg.Structs {
			if i > 0 {
				if _, err := io.WriteString(w, "---\n"); err != nil {
					return err
				}
			}
			if err := describe.EncodeDocumentYAML(w, describe.FromDescription(s.Description())); err != nil {
				return err
			}
		}
		return nil
	}
	code, err := gen.RenderFile(pkg)
	if err != nil {
		return err
	}
	_, err = w.Write(code)
	return err
}
