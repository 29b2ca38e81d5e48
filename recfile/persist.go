package recfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"
	"github.com/spatialkit/boxtree"
	"github.com/spatialkit/boxtree/geo"
)

// Store writes every record held by the index as one JSON line. Only the
// records themselves are persisted; the node structure of the index is an
// implementation detail and gets rebuilt on Restore.
//
// Returns ErrNotARecord when the index holds objects other than *Record.
func Store(w io.Writer, t *boxtree.Tree) error {
	var firstErr error
	t.SearchFunc(t.Envelope(), func(item geo.Spatial) bool {
		rec, ok := item.(*Record)
		if !ok {
			firstErr = fmt.Errorf("%w: %T", ErrNotARecord, item)
			return false
		}
		js, err := json.Marshal(rec)
		if err == nil {
			_, err = w.Write(append(js, '\n'))
		}
		if err != nil {
			firstErr = err
			return false
		}
		return true
	})
	return firstErr
}

// Restore rebuilds an index from a stream written by Store, re-inserting
// every record, and returns the tree together with the restored records.
func Restore(r io.Reader, minChildren, maxChildren int) (*boxtree.Tree, []*Record, error) {
	t, err := boxtree.New(minChildren, maxChildren)
	if err != nil {
		return nil, nil, err
	}
	var records []*Record
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec *Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if err := t.Add(rec); err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return t, records, nil
}
