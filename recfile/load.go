package recfile

/*
BSD 3-Clause License

Copyright (c) 2025-26, the boxtree authors

Please refer to the License file in the repository root.

*/

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/spatialkit/boxtree"
)

// progressEvery is the number of indexed records between two progress
// broadcasts of an asynchronous load.
const progressEvery = 256

// Load reads a record file synchronously.
func Load(name string) ([]*Record, error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseAll(file)
}

// Progress reports how many records an asynchronous load has indexed so far.
type Progress struct {
	Records int
}

// Loader tracks an asynchronous bulk load started by LoadInto.
type Loader struct {
	cast    *caster.Caster // broadcaster for load progress
	done    chan struct{}
	err     error
	records []*Record
}

// LoadInto parses a record file and indexes every record into the given tree.
//
// Opening the file happens synchronously; parsing and indexing run in the
// background. The loader goroutine is the sole writer of the tree, which must
// not be touched until Wait returns. Subscribers receive Progress updates
// while the load is running.
func LoadInto(t *boxtree.Tree, name string) (*Loader, error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	l := &Loader{
		cast: caster.New(nil),
		done: make(chan struct{}),
	}
	go l.run(t, file)
	return l, nil
}

// openFile opens an OS file and checks that it is a loadable record file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	return os.Open(name)
}

func (l *Loader) run(t *boxtree.Tree, file *os.File) {
	defer close(l.done)
	defer l.cast.Close()
	defer file.Close()
	scanner := bufio.NewScanner(file)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := Parse(line)
		if err != nil {
			l.err = fmt.Errorf("line %d: %w", lineno, err)
			return
		}
		if err := t.Add(rec); err != nil {
			l.err = err
			return
		}
		l.records = append(l.records, rec)
		if len(l.records)%progressEvery == 0 {
			// Slow subscribers may miss intermediate updates.
			l.cast.TryPub(Progress{Records: len(l.records)})
		}
	}
	l.err = scanner.Err()
	l.cast.Pub(Progress{Records: len(l.records)})
}

// Subscribe returns a channel of Progress updates. The channel closes when
// the load finishes. Subscribing to an already finished load yields a closed
// channel.
func (l *Loader) Subscribe() <-chan interface{} {
	ch, ok := l.cast.Sub(nil, 1)
	if !ok {
		done := make(chan interface{})
		close(done)
		return done
	}
	return ch
}

// Wait blocks until the load has finished and returns the indexed records
// and the first error encountered, if any.
func (l *Loader) Wait() ([]*Record, error) {
	<-l.done
	return l.records, l.err
}
