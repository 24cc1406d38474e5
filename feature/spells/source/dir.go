package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"spell-miner/core/record"
)

// DirSource reads a dump directory of JSON record documents. Record IDs
// are the slash-separated paths relative to the dump root, so the same
// dump addressed through object storage yields the same IDs.
type DirSource struct {
	root string
}

// NewDirSource validates that the dump root exists and returns a source
// over it.
func NewDirSource(root string) (*DirSource, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open dump directory %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("dump path %q is not a directory", root)
	}
	return &DirSource{root: root}, nil
}

// List enumerates every JSON document under the dump root in sorted order.
func (s *DirSource) List(ctx context.Context) ([]string, error) {
	var ids []string
	err := filepath.WalkDir(s.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		ids = append(ids, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate dump directory: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// Fetch reads and decodes one record document.
func (s *DirSource) Fetch(_ context.Context, id string) (record.Object, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(id)))
	if err != nil {
		return nil, fmt.Errorf("failed to read record %q: %w", id, err)
	}
	rec, err := record.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode record %q: %w", id, err)
	}
	return rec, nil
}
