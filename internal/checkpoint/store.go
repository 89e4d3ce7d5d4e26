package checkpoint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// CheckpointPrefix is prepended to an output filename to derive its
// checkpoint filename.
const CheckpointPrefix = "ckpt_"

// CheckpointName derives the checkpoint filename for an output filename.
func CheckpointName(outputFilename string) string {
	return CheckpointPrefix + outputFilename
}

// Store is an insertion-ordered map of per-item results, persisted as a
// single JSON object keyed by item id. Items are appended as workers finish
// and flushed to disk at each pipeline's cadence, so a killed run can resume
// from exactly the items it already completed.
//
// All methods are safe for concurrent use.
type Store struct {
	path       string
	outputPath string
	logger     *slog.Logger

	mu      sync.RWMutex
	keys    []string
	entries map[string]json.RawMessage
	pending int // entries added since last flush

	// flushMu serializes writers of the on-disk files: concurrent flushes
	// share one temp path, so unsynchronized write+rename pairs clobber
	// each other and can publish a torn checkpoint.
	flushMu sync.Mutex
}

// Load opens the store backed by checkpointPath, reading any existing
// checkpoint. A missing file is a fresh run and yields an empty store; a
// file that exists but does not parse is a hard error, since silently
// restarting would re-spend the API budget the checkpoint was protecting.
func Load(checkpointPath, outputPath string, logger *slog.Logger) (*Store, error) {
	s := &Store{
		path:       checkpointPath,
		outputPath: outputPath,
		logger:     logger,
		entries:    make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(checkpointPath)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoint %s: %w", checkpointPath, err)
	}

	keys, entries, err := DecodeOrdered(data)
	if err != nil {
		return nil, fmt.Errorf("corrupt checkpoint %s: %w", checkpointPath, err)
	}
	s.keys = keys
	s.entries = entries

	logger.Info("Resuming from checkpoint",
		"path", checkpointPath,
		"completed_items", len(s.keys))
	return s, nil
}

// DecodeOrdered parses a JSON object preserving key order.
func DecodeOrdered(data []byte) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var keys []string
	entries := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, err
		}
		if _, dup := entries[key]; !dup {
			keys = append(keys, key)
		}
		entries[key] = raw
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return keys, entries, nil
}

// Finalized reports whether a previous run already ran to completion: the
// output exists and its checkpoint is gone. Finalize establishes exactly
// that state, and nothing else removes a checkpoint.
func Finalized(checkpointPath, outputPath string) bool {
	if _, err := os.Stat(outputPath); err != nil {
		return false
	}
	_, err := os.Stat(checkpointPath)
	return os.IsNotExist(err)
}

// Has reports whether an item id has already been completed.
func (s *Store) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[id]
	return ok
}

// Len returns the number of completed items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// Keys returns the completed item ids in insertion order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Get returns the raw entry for an id.
func (s *Store) Get(id string) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.entries[id]
	return raw, ok
}

// Put records a completed item. The value is marshaled immediately so a
// later flush cannot observe a mutated result.
func (s *Store) Put(id string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal entry %s: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[id]; !exists {
		s.keys = append(s.keys, id)
	}
	s.entries[id] = raw
	s.pending++
	return nil
}

// PutAndMaybeFlush records a completed item and flushes the checkpoint if at
// least interval entries accumulated since the last flush. An interval of 1
// flushes on every item.
func (s *Store) PutAndMaybeFlush(id string, value any, interval int) error {
	if err := s.Put(id, value); err != nil {
		return err
	}
	s.mu.RLock()
	due := s.pending >= interval
	s.mu.RUnlock()
	if due {
		return s.Flush()
	}
	return nil
}

// encode renders the store as an indented JSON object in insertion order.
func (s *Store) encode() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var buf bytes.Buffer
	buf.WriteString("{")
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n    ")
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteString(": ")

		var entry bytes.Buffer
		if err := json.Indent(&entry, s.entries[key], "    ", "    "); err != nil {
			return nil, fmt.Errorf("invalid entry %s: %w", key, err)
		}
		buf.Write(entry.Bytes())
	}
	if len(s.keys) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// Flush writes the checkpoint to disk atomically: the full object is written
// to a temp file in the same directory and renamed over the target, so the
// on-disk checkpoint is always either the previous complete state or the new
// one.
func (s *Store) Flush() error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	data, err := s.encode()
	if err != nil {
		return fmt.Errorf("failed to encode checkpoint: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create checkpoint dir: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp checkpoint: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		return fmt.Errorf("failed to rename checkpoint: %w", err)
	}

	s.mu.Lock()
	s.pending = 0
	s.mu.Unlock()

	s.logger.Debug("Checkpoint flushed", "path", s.path, "items", s.Len())
	return nil
}

// Finalize writes the completed results to the output path and then removes
// the checkpoint. The output write happens first: if the process dies between
// the two steps, the stale checkpoint only costs a harmless re-finalize on
// the next run, whereas the reverse order could lose every result.
func (s *Store) Finalize() error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	data, err := s.encode()
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	tempPath := s.outputPath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp output: %w", err)
	}
	if err := os.Rename(tempPath, s.outputPath); err != nil {
		return fmt.Errorf("failed to rename output: %w", err)
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove checkpoint %s: %w", s.path, err)
	}

	s.logger.Info("Results finalized", "output", s.outputPath, "items", s.Len())
	return nil
}

// Path returns the checkpoint file path.
func (s *Store) Path() string {
	return s.path
}

// OutputPath returns the final output file path.
func (s *Store) OutputPath() string {
	return s.outputPath
}
