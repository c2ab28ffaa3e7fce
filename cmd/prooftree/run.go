package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gordian-engine/prooftree"
	"github.com/gordian-engine/prooftree/ptcodec"
	"github.com/gordian-engine/prooftree/ptmerkle"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitError    = 2
)

// commonFlags are accepted by every subcommand.
type commonFlags struct {
	verbose     bool
	legacyOdd   bool
	parallelism int
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "v", false, "log at debug level")
	fs.BoolVar(&c.legacyOdd, "legacy-odd", false, "rehash unpaired nodes, for roots made by older implementations")
	fs.IntVar(&c.parallelism, "parallelism", 0, "goroutines hashing each tree level (0 or 1 is sequential)")
}

func (c *commonFlags) logger(stderr io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	if c.verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))
}

func (c *commonFlags) reduceConfig() ptmerkle.ReduceConfig {
	cfg := ptmerkle.ReduceConfig{Parallelism: c.parallelism}
	if c.legacyOdd {
		cfg.OddNode = ptmerkle.OddNodeRehash
	}
	return cfg
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: prooftree root|disclose|verify [flags] PATH")
		return exitError
	}

	var err error
	code := exitOK
	switch args[0] {
	case "root":
		err = runRoot(args[1:], stdin, stdout, stderr)
	case "disclose":
		err = runDisclose(args[1:], stdin, stdout, stderr)
	case "verify":
		code, err = runVerify(args[1:], stdin, stdout, stderr)
	default:
		err = fmt.Errorf("unknown command %q", args[0])
	}

	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "prooftree:", err)
		}
		return exitError
	}
	return code
}

func runRoot(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cf commonFlags
	fs := flag.NewFlagSet("root", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	log := cf.logger(stderr)

	tree, err := loadDocument(fs.Args(), stdin)
	if err != nil {
		return err
	}

	root, err := tree.RootWith(ptmerkle.NewReducer(cf.reduceConfig()))
	if err != nil {
		return fmt.Errorf("failed to compute root: %w", err)
	}
	if root == "" {
		log.Warn("Document has no fields; it has no root")
	}

	log.Debug("Computed root", "n_leaves", tree.Len())
	_, err = fmt.Fprintln(stdout, root)
	return err
}

func runDisclose(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cf commonFlags
	var reveal string
	var framed bool
	fs := flag.NewFlagSet("disclose", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cf.register(fs)
	fs.StringVar(&reveal, "reveal", "", "comma-separated keys to keep revealed")
	fs.BoolVar(&framed, "framed", false, "write a binary frame instead of a JSON array")
	if err := fs.Parse(args); err != nil {
		return err
	}
	log := cf.logger(stderr)

	tree, err := loadDocument(fs.Args(), stdin)
	if err != nil {
		return err
	}

	var keys []string
	if reveal != "" {
		keys = strings.Split(reveal, ",")
	}

	disclosed, err := tree.Disclose(keys...)
	if err != nil {
		return fmt.Errorf("failed to disclose: %w", err)
	}
	log.Debug(
		"Disclosed document",
		"n_leaves", disclosed.Len(),
		"n_redacted", disclosed.Redacted().Count(),
	)

	if framed {
		var enc ptcodec.Encoder
		return enc.Encode(stdout, disclosed.Records())
	}

	b, err := ptcodec.MarshalRecords(disclosed.Records())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s\n", b)
	return err
}

func runVerify(args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	var cf commonFlags
	var root string
	var framed, allowDup bool
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cf.register(fs)
	fs.StringVar(&root, "root", "", "expected root (64 lowercase hex characters)")
	fs.BoolVar(&framed, "framed", false, "read a binary frame instead of a JSON array")
	fs.BoolVar(&allowDup, "allow-duplicate-positions", false, "accept records sharing a position")
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}
	if root == "" {
		return exitError, errors.New("-root is required")
	}

	b, err := readInput(fs.Args(), stdin)
	if err != nil {
		return exitError, err
	}

	var recs []prooftree.Record
	if framed {
		var dec ptcodec.Decoder
		recs, err = dec.Decode(bytes.NewReader(b))
	} else {
		recs, err = ptcodec.UnmarshalRecords(b)
	}
	if err != nil {
		return exitError, err
	}

	v := prooftree.NewVerifier(cf.logger(stderr), prooftree.VerifierConfig{
		Load:   prooftree.LoadConfig{AllowDuplicatePositions: allowDup},
		Reduce: cf.reduceConfig(),
	})
	ok, err := v.Verify(context.Background(), recs, root)
	if err != nil {
		return exitError, err
	}

	if !ok {
		fmt.Fprintln(stdout, "INVALID")
		return exitMismatch, nil
	}
	fmt.Fprintln(stdout, "OK")
	return exitOK, nil
}

func loadDocument(paths []string, stdin io.Reader) (*prooftree.Tree, error) {
	b, err := readInput(paths, stdin)
	if err != nil {
		return nil, err
	}

	var doc map[string]string
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("document must be a JSON object of string values: %w", err)
	}

	tree, err := prooftree.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build tree: %w", err)
	}
	return tree, nil
}

func readInput(paths []string, stdin io.Reader) ([]byte, error) {
	if len(paths) != 1 {
		return nil, fmt.Errorf("expected exactly one input path, got %d", len(paths))
	}

	if paths[0] == "-" {
		return io.ReadAll(stdin)
	}

	b, err := os.ReadFile(paths[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return b, nil
}
