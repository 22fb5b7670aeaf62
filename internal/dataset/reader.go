// Package dataset reads the contest dataset layout from the file
// system: one directory per source, one JSON file per specification,
// named by the item number. This is the pipeline's input boundary; it
// yields raw items and leaves the skip-or-abort policy to the catalog
// builder.
package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/transactionalblog/sigmod-contest-2020/pkg/errors"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/logging"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/specs"
)

// Read walks dataset/<source>/<number>.json and returns one raw item
// per specification file, in sorted directory order so runs are
// deterministic. Unreadable or unparsable files and items without the
// page-title attribute come back with HasTitle unset; only a missing
// dataset root is an error.
func Read(root string) ([]specs.Item, error) {
	sources, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapIO("read", root, errors.ErrNotFound)
		}
		return nil, errors.WrapIO("read", root, err)
	}

	var items []specs.Item
	for _, source := range sources {
		if !source.IsDir() {
			continue
		}
		sourceDir := filepath.Join(root, source.Name())
		files, err := os.ReadDir(sourceDir)
		if err != nil {
			return nil, errors.WrapIO("read", sourceDir, err)
		}

		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
				continue
			}
			number := strings.TrimSuffix(file.Name(), ".json")
			items = append(items, readItem(sourceDir, source.Name(), number, file.Name()))
		}
	}
	return items, nil
}

// readItem decodes one specification file. Failures are per-record:
// the item is returned without a title and the builder counts the drop.
func readItem(sourceDir, source, number, filename string) specs.Item {
	item := specs.Item{Source: source, Number: number}
	path := filepath.Join(sourceDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Unreadable specification file")
		return item
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Warn().
			Err(errors.WrapParse("json", path, err)).
			Msg("Unparsable specification file")
		return item
	}

	if title, ok := doc[specs.TitleAttribute].(string); ok {
		item.Title = title
		item.HasTitle = true
	}
	return item
}
