package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// BlocklistRepository keeps blocked user ids as a JSON array in one file.
// Numeric ids are written as numbers, others as strings.
type BlocklistRepository struct {
	path string
	mu   sync.RWMutex
}

// NewBlocklistRepository creates a repository backed by path
func NewBlocklistRepository(path string) *BlocklistRepository {
	return &BlocklistRepository{path: path}
}

func (r *BlocklistRepository) IsBlocked(_ context.Context, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, err := r.load()
	if err != nil {
		return false, err
	}
	return indexOf(ids, userID) >= 0, nil
}

func (r *BlocklistRepository) Block(_ context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, err := r.load()
	if err != nil {
		return false, err
	}
	if indexOf(ids, userID) >= 0 {
		return false, nil
	}
	return true, r.save(append(ids, userID))
}

func (r *BlocklistRepository) Unblock(_ context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, err := r.load()
	if err != nil {
		return false, err
	}
	i := indexOf(ids, userID)
	if i < 0 {
		return false, nil
	}
	return true, r.save(append(ids[:i], ids[i+1:]...))
}

func (r *BlocklistRepository) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.load()
}

func (r *BlocklistRepository) load() ([]string, error) {
	data, err := readFile(r.path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFailed, r.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeFailed, r.path, err)
	}

	ids := make([]string, 0, len(raw))
	for _, el := range raw {
		var s string
		if err := json.Unmarshal(el, &s); err == nil {
			ids = append(ids, s)
			continue
		}
		ids = append(ids, strings.TrimSpace(string(el)))
	}
	return ids, nil
}

func (r *BlocklistRepository) save(ids []string) error {
	out := make([]interface{}, len(ids))
	for i, id := range ids {
		if n, err := strconv.ParseInt(id, 10, 64); err == nil {
			out[i] = n
		} else {
			out[i] = id
		}
	}
	if err := writeJSON(r.path, out); err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, r.path, err)
	}
	return nil
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
