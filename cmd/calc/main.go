package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

func main() {
	var (
		inname, loglevel string
		with             [][2]string
		echo             bool
		depth            int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin)")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.IntVar(&depth, "depth", calc.DefaultMaxDepth, "maximum nesting of user function calls")
	flag.BoolVar(&echo, "echo", false, "print the postfix form of each expression")
	flag.StringVar(&loglevel, "loglevel", "info", "log level (debug, verbose, info, warning, error)")
	flag.Parse()
	lvl, err := log.ValidateLevel(loglevel)
	if err != nil {
		log.Fatalf("bad -loglevel: %v", err)
	}
	log.SetLogLevel(lvl)
	if depth < 1 {
		log.Fatalf("depth (%d) must be positive", depth)
	}

	sess := calc.NewSession(calc.MaxDepth(depth))
	for _, d := range with {
		if err := sess.Define(d[0], d[1]); err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
	}

	in, err := input(inname, sess)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer in.Close()
	for {
		line, err := in.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Errf("reading input: %v", err)
			}
			return
		}
		if echo && !command(line) {
			if p, err := sess.Compile(line); err == nil {
				fmt.Printf("%v : ", p)
			}
		}
		if err := sess.Exec(os.Stdout, line); err != nil {
			log.LogVf("%q: %v", line, err)
			fmt.Println(calc.Message(err))
		}
	}
}

// command reports whether line is a command rather than an expression.
func command(line string) bool {
	return line == "vars" || line == "defs" || strings.HasPrefix(line, "var ") || strings.HasPrefix(line, "def ")
}

// lineReader reads input one line at a time. ReadLine returns io.EOF at the
// end of input.
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

func input(inname string, sess *calc.Session) (lineReader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return &scanReader{bufio.NewScanner(f), f}, nil
	case term.IsTerminal(int(os.Stdin.Fd())):
		return newTTYReader(sess), nil
	default:
		return &scanReader{bufio.NewScanner(os.Stdin), nil}, nil
	}
}

type scanReader struct {
	scan *bufio.Scanner
	c    io.Closer
}

func (r *scanReader) ReadLine() (string, error) {
	if r.scan.Scan() {
		return strings.TrimSuffix(r.scan.Text(), "\r"), nil
	}
	if err := r.scan.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *scanReader) Close() error {
	if r.c == nil {
		return nil
	}
	return r.c.Close()
}

// ttyReader reads lines from a terminal with editing, history, and
// completion of names defined in the session.
type ttyReader struct {
	st *liner.State
}

func newTTYReader(sess *calc.Session) *ttyReader {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	st.SetCompleter(func(line string) []string {
		// Complete the identifier at the end of the line.
		k := strings.LastIndexAny(line, calc.Operators+"(),= ") + 1
		var r []string
		for _, name := range sess.Names() {
			if strings.HasPrefix(name, line[k:]) {
				r = append(r, line[:k]+name)
			}
		}
		return r
	})
	return &ttyReader{st}
}

func (r *ttyReader) ReadLine() (string, error) {
	line, err := r.st.Prompt("")
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}
	if line != "" {
		r.st.AppendHistory(line)
	}
	return line, nil
}

func (r *ttyReader) Close() error {
	return r.st.Close()
}
