package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	"golet/pkg/config"
	"golet/pkg/lang"
	"golet/pkg/repl"
)

const banner = "golet console. Type :help for commands, :quit to exit."

// lineReader is the part of *liner.State the loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// loop reads lines until EOF or :quit. A Ctrl-C abandons the pending unit.
func loop(in lineReader, d *repl.Driver, out, errOut io.Writer) {
	var unit []string
	for {
		line, err := in.Prompt(d.Prompt())
		if errors.Is(err, liner.ErrPromptAborted) {
			d.Cancel()
			unit = unit[:0]
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(errOut, "read error:", err)
			}
			fmt.Fprintln(out)
			return
		}

		reply := d.Submit(line)
		if reply.Quit {
			return
		}
		unit = append(unit, line)
		if d.Pending() {
			continue
		}
		if entry := strings.TrimSpace(strings.Join(unit, " ")); entry != "" {
			in.AppendHistory(entry)
		}
		unit = unit[:0]

		switch {
		case reply.Err != nil:
			fmt.Fprintln(errOut, reply.Output)
		case reply.Output != "":
			fmt.Fprintln(out, reply.Output)
		}
	}
}

func main() {
	configPath := flag.String("config", config.DefaultFile, "YAML settings file")
	verbose := flag.Bool("v", false, "log every pipeline phase to stderr")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	home, _ := os.UserHomeDir()
	histPath := cfg.REPL.HistoryPath(home)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
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
	}

	sess := lang.NewSession()
	if *verbose {
		sess.Log = log.New(os.Stderr, "", 0)
	}

	fmt.Println(banner)
	loop(ln, repl.NewDriver(sess, cfg.REPL), os.Stdout, os.Stderr)
}
