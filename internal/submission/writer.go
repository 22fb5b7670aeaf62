// Package submission serializes the match relation in the contest
// submission format: a CSV table with a left_spec_id,right_spec_id
// header and no index column. This is the pipeline's output boundary.
package submission

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/transactionalblog/sigmod-contest-2020/pkg/errors"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/matching"
)

// header is the fixed two-column submission header.
var header = []string{"left_spec_id", "right_spec_id"}

// Write serializes the match relation to w. The relation itself is
// unordered; rows are sorted lexicographically only so identical runs
// produce byte-identical files.
func Write(w io.Writer, pairs []matching.Pair) error {
	sorted := make([]matching.Pair, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Left != sorted[j].Left {
			return sorted[i].Left < sorted[j].Left
		}
		return sorted[i].Right < sorted[j].Right
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return errors.WrapIO("write", "", err)
	}
	for _, pair := range sorted {
		if err := cw.Write([]string{pair.Left, pair.Right}); err != nil {
			return errors.WrapIO("write", "", err)
		}
	}
	cw.Flush()
	return errors.WrapIO("write", "", cw.Error())
}

// WriteFile writes the submission to path, creating parent directories
// as needed.
func WriteFile(path string, pairs []matching.Pair) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	if err := Write(f, pairs); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}
