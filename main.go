//go:build !js

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"golet/pkg/config"
	"golet/pkg/lang"
	"golet/pkg/utils"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "YAML settings file")
	jobs := flag.Int("jobs", 0, "files evaluated at once (overrides run.jobs; 0 keeps the config value)")
	verbose := flag.Bool("v", false, "log every pipeline phase to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: golet [-config file] [-jobs n] [-v] file...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "nothing to do: provide one or more source files or directories")
		flag.Usage()
		os.Exit(2)
	}
	if *jobs < 0 {
		fmt.Fprintln(os.Stderr, "-jobs must not be negative")
		os.Exit(2)
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *jobs > 0 {
		cfg.Run.Jobs = *jobs
	}

	paths, err := utils.ExpandPaths(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve inputs: %v\n", err)
		os.Exit(1)
	}

	var logOut io.Writer
	if *verbose {
		logOut = os.Stderr
	}
	results := runFiles(paths, cfg.Run.Jobs, logOut)
	if report(os.Stdout, os.Stderr, results) > 0 {
		os.Exit(1)
	}
}

// fileResult is the outcome of running one source file.
type fileResult struct {
	name   string
	source string
	value  lang.Object
	err    error
}

// runFiles evaluates every path in its own session, at most jobs at a time
// (one per CPU when jobs is 0). Results come back in the order of paths.
func runFiles(paths []string, jobs int, logOut io.Writer) []fileResult {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	results := make([]fileResult, len(paths))

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = runFile(path, logOut)
			return nil
		})
	}
	// Per-file failures live in results; the group itself never fails.
	_ = g.Wait()
	return results
}

func runFile(path string, logOut io.Writer) fileResult {
	src, err := utils.ReadSource(path)
	if err != nil {
		return fileResult{name: path, err: err}
	}

	sess := lang.NewSession()
	if logOut != nil {
		sess.Log = log.New(logOut, path+": ", 0)
	}
	sess.Feed(src.Text, false)
	value, err := sess.Run()
	if errors.Is(err, lang.ErrWaitForInput) {
		err = fmt.Errorf("unexpected end of input: %w", err)
	}
	return fileResult{name: path, source: src.Text, value: value, err: err}
}

// report writes values to out and failures to errOut and returns the
// number of failed files. Values are prefixed with the file name when more
// than one file ran.
func report(out, errOut io.Writer, results []fileResult) int {
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(errOut, "%s: %s\n", r.name, lang.FormatError(r.err, r.source))
			continue
		}
		if lang.IsNull(r.value) {
			continue
		}
		if len(results) > 1 {
			fmt.Fprintf(out, "%s: %s\n", r.name, r.value)
		} else {
			fmt.Fprintln(out, r.value)
		}
	}
	return failed
}
