// Package cli implements the printerate command.
package cli

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/printerator"
	"github.com/bjaus/printerator/internal/lines"
)

type flags struct {
	config   string
	pretty   bool
	indices  bool
	flavor   string
	item     string
	format   string
	indent   string
	kind     string
	truncate int
	verbose  bool
}

// settings is the result of merging defaults, the config file and flags.
type settings struct {
	opts     printerator.Options
	flavor   printerator.Flavor
	format   string
	kind     lines.Kind
	truncate int
}

// NewCommand returns the printerate root command.
func NewCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "printerate [file...]",
		Short: "Print input lines as a list while they are read",
		Long: `printerate reads lines from the given files, or from standard input when
no file (or "-") is given, and prints them as a comma separated or bracketed
list. Lines are printed as they arrive, so the input may be endless.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &f)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "YAML file with default settings")
	fs.BoolVarP(&f.pretty, "pretty", "p", false, "one item per line inside brackets (default: on when stdout is a terminal)")
	fs.BoolVarP(&f.indices, "indices", "i", printerator.DefaultOptions().Indices, "prefix each item with its position")
	fs.StringVar(&f.flavor, "flavor", string(printerator.FlavorDisplay), "rendering flavor: debug or display")
	fs.StringVar(&f.item, "item", string(printerator.ItemFmt), "item format: fmt, json or yaml")
	fs.StringVarP(&f.format, "format", "f", "%v", "fmt directive applied to each item")
	fs.StringVar(&f.indent, "indent", "", "indent used by --pretty (default four spaces)")
	fs.StringVarP(&f.kind, "kind", "k", string(lines.String), "parse lines as string, int or float")
	fs.IntVarP(&f.truncate, "truncate", "t", 0, "cut string lines to this many columns")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug messages to stderr")
	return cmd
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	var cfg Config
	if f.config != "" {
		var err error
		if cfg, err = LoadConfig(f.config); err != nil {
			return err
		}
		log.Debug("Loaded config", "path", f.config)
	}

	out := cmd.OutOrStdout()
	s, err := resolve(cmd.Flags(), f, cfg, isTerminal(out))
	if err != nil {
		return err
	}

	inputs, closeAll, err := openInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	defer closeAll()

	readers := make([]*lines.Reader, 0, len(inputs))
	for _, in := range inputs {
		r := lines.NewReader(in.name, in.r, lines.Options{
			Kind:     s.kind,
			Truncate: s.truncate,
			OnSkip: func(line int, text string, err error) {
				log.Warn("Skipping line", "input", in.name, "line", line, "text", text, "error", err)
			},
		})
		readers = append(readers, r)
	}
	seqs := make([]iter.Seq[any], len(readers))
	for i, r := range readers {
		seqs[i] = r.All()
	}

	log.Debug("Rendering",
		"flavor", s.flavor,
		"pretty", s.opts.Pretty,
		"indices", s.opts.Indices,
		"item", s.opts.Item,
		"format", s.format,
		"inputs", len(inputs))

	p := printerator.New(lines.Concat(seqs...), s.flavor, &s.opts)
	tw := &tailWriter{w: out}
	err = p.Render(tw, s.format)
	if err == nil && tw.n > 0 && tw.last != '\n' {
		_, err = io.WriteString(tw, "\n")
	}
	if IsBrokenPipe(err) {
		log.Debug("Output closed early")
		return nil
	}
	if err != nil {
		return err
	}

	total := 0
	for _, r := range readers {
		total += r.Lines()
		if err := r.Err(); err != nil {
			return err
		}
	}
	log.Debug("Done", "lines", total, "bytes", tw.n)
	return nil
}

func resolve(fs *pflag.FlagSet, f *flags, cfg Config, terminal bool) (settings, error) {
	s := settings{
		opts: printerator.Options{
			Pretty:  terminal,
			Indices: printerator.DefaultOptions().Indices,
		},
		flavor: printerator.FlavorDisplay,
		format: "%v",
		kind:   lines.String,
	}
	flavor := string(s.flavor)
	item := string(printerator.ItemFmt)
	kind := string(s.kind)

	if cfg.Pretty != nil {
		s.opts.Pretty = *cfg.Pretty
	}
	if cfg.Indices != nil {
		s.opts.Indices = *cfg.Indices
	}
	if cfg.Flavor != "" {
		flavor = cfg.Flavor
	}
	if cfg.Item != "" {
		item = cfg.Item
	}
	if cfg.Format != "" {
		s.format = cfg.Format
	}
	if cfg.Indent != "" {
		s.opts.Indent = cfg.Indent
	}
	if cfg.Kind != "" {
		kind = cfg.Kind
	}
	if cfg.Truncate != 0 {
		s.truncate = cfg.Truncate
	}

	if fs.Changed("pretty") {
		s.opts.Pretty = f.pretty
	}
	if fs.Changed("indices") {
		s.opts.Indices = f.indices
	}
	if fs.Changed("flavor") {
		flavor = f.flavor
	}
	if fs.Changed("item") {
		item = f.item
	}
	if fs.Changed("format") {
		s.format = f.format
	}
	if fs.Changed("indent") {
		s.opts.Indent = f.indent
	}
	if fs.Changed("kind") {
		kind = f.kind
	}
	if fs.Changed("truncate") {
		s.truncate = f.truncate
	}

	var err error
	if s.flavor, err = printerator.ParseFlavor(flavor); err != nil {
		return settings{}, err
	}
	if s.opts.Item, err = printerator.ParseItemFormat(item); err != nil {
		return settings{}, err
	}
	if s.kind, err = lines.ParseKind(kind); err != nil {
		return settings{}, err
	}
	if s.truncate < 0 {
		return settings{}, fmt.Errorf("truncate must not be negative, got %d", s.truncate)
	}
	return s, nil
}

type input struct {
	name string
	r    io.Reader
}

// openInputs opens every file named in args; "-" or no args means stdin.
func openInputs(stdin io.Reader, args []string) ([]input, func(), error) {
	if len(args) == 0 {
		return []input{{name: "stdin", r: stdin}}, func() {}, nil
	}
	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
	inputs := make([]input, 0, len(args))
	for _, path := range args {
		if path == "-" {
			inputs = append(inputs, input{name: "stdin", r: stdin})
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("open input: %w", err)
		}
		files = append(files, f)
		inputs = append(inputs, input{name: path, r: f})
	}
	return inputs, closeAll, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// tailWriter remembers how much was written and the last byte.
type tailWriter struct {
	w    io.Writer
	n    int64
	last byte
}

func (t *tailWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if n > 0 {
		t.n += int64(n)
		t.last = p[n-1]
	}
	return n, err
}
