package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/octofit/pkg/types"
)

// WriteJSONL writes one entity per line to path using the temp-file, fsync,
// rename pattern so readers never see a partial file.
func WriteJSONL(path string, entities []types.Entity) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w)
	for i, e := range entities {
		if e == nil {
			e = types.Entity{}
		}
		// Encode appends the newline.
		if err := enc.Encode(e); err != nil {
			return fail(fmt.Errorf("writing record %d: %w", i, err))
		}
	}
	if err := w.Flush(); err != nil {
		return fail(fmt.Errorf("flushing buffer: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("syncing temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ReadJSONL reads the entities in a JSONL file. Blank lines and lines that
// are not JSON objects are skipped.
func ReadJSONL(path string) ([]types.Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var out []types.Entity
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		e, err := decodeEntity(line)
		if err != nil {
			continue
		}
		out = append(out, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return out, nil
}

func decodeEntity(b []byte) (types.Entity, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var e types.Entity
	if err := dec.Decode(&e); err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("not an object")
	}
	return e, nil
}
