package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

type section struct {
	name  string
	title string
	run   func(r *runner) error
}

var sections = []section{
	{"adding", "Adding — Add, nil elements, initial elements, custom types, AddRange", demoAdding},
	{"accessing", "Accessing — Get by index, ForEach, range over All", demoAccessing},
	{"querying", "Querying — Where (linear predicate scan)", demoQuerying},
	{"inserting", "Inserting — Insert(index, item)", demoInserting},
	{"removing", "Removing — Remove first occurrence, RemoveAt, out of range", demoRemoving},
	{"contains", "Contains — membership by value", demoContains},
}

// Each section covers one group of List[T] operations, in the order a reader
// meets them: build, read, query, insert, remove, test membership.
//
// Run:
//
//	go run .
//	LIST_DEMO_SECTIONS=removing,contains go run .
//	LIST_DEMO_VERBOSE=true go run .      # log capacity growth to stderr
func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)

	cfg, err := loadConfig()
	if err != nil {
		logger.Printf("[main] %v", err)
		os.Exit(1)
	}

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Printf("[main] %v", err)
		os.Exit(1)
	}
}

// run executes every enabled section in order, writing to w.
func run(cfg Config, w io.Writer, logger *log.Logger) error {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = log.Default()
	}

	r := &runner{
		out:     newSink(w, cfg.tag()),
		logger:  logger,
		verbose: cfg.Verbose,
	}

	for _, s := range sections {
		if !cfg.enabled(s.name) {
			continue
		}
		r.out.section(s.title)
		if err := s.run(r); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

// runner carries what every section needs.
type runner struct {
	out     *sink
	logger  *log.Logger
	verbose bool
}

// grower is satisfied by every *list.List[T].
type grower interface {
	OnGrow(fn func(oldCap, newCap int))
}

// watch logs reallocations of l when verbose output is on. Call it before
// the first Add so the initial allocation is reported too.
func (r *runner) watch(name string, l grower) {
	if !r.verbose {
		return
	}
	l.OnGrow(func(oldCap, newCap int) {
		r.logger.Printf("[list] %s grew cap %d → %d", name, oldCap, newCap)
	})
}
