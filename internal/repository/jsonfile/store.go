package jsonfile

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

type storeRecord struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (j *JSONFile) loadStores() {
	var records []storeRecord
	if !j.load(storesFile, &records) {
		j.stores = seedStores()
		j.persist(storesFile, storesToRecords(j.stores))
		j.rebuildStoreIndexLocked()
		return
	}

	j.stores = make([]entities.Store, 0, len(records))
	seen := map[string]bool{}
	for _, r := range records {
		if r.Code == "" || r.Name == "" || seen[r.Code] {
			continue
		}
		seen[r.Code] = true
		j.stores = append(j.stores, entities.Store{Code: r.Code, Name: r.Name})
	}
	sortStores(j.stores)
	j.rebuildStoreIndexLocked()
}

func storesToRecords(stores []entities.Store) []storeRecord {
	records := make([]storeRecord, 0, len(stores))
	for _, s := range stores {
		records = append(records, storeRecord{Code: s.Code, Name: s.Name})
	}
	return records
}

// codeLess orders codes numerically when both parse as numbers, so
// "99" sorts before "100"; otherwise it falls back to lexical order.
func codeLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		if na != nb {
			return na < nb
		}
		return a < b
	}
	return a < b
}

func sortStores(stores []entities.Store) {
	sort.Slice(stores, func(i, k int) bool {
		return codeLess(stores[i].Code, stores[k].Code)
	})
}

func (j *JSONFile) rebuildStoreIndexLocked() {
	index := make(map[string]entities.Store, len(j.stores))
	for _, s := range j.stores {
		index[s.Code] = s
	}
	j.storeIndex = index
}

func (j *JSONFile) persistStoresLocked() {
	j.persist(storesFile, storesToRecords(j.stores))
}

// ListStores returns all stores ordered by code, numeric-aware.
func (j *JSONFile) ListStores(_ context.Context) ([]entities.Store, error) {
	j.storesMu.Lock()
	defer j.storesMu.Unlock()

	out := make([]entities.Store, len(j.stores))
	copy(out, j.stores)
	return out, nil
}

// GetStore resolves a code through the lookup index.
func (j *JSONFile) GetStore(_ context.Context, code string) (*entities.Store, error) {
	j.storesMu.Lock()
	defer j.storesMu.Unlock()

	s, ok := j.storeIndex[code]
	if !ok {
		return nil, entities.ErrStoreNotFound
	}
	return &s, nil
}

// CreateStore validates and appends a store. Codes must be numeric
// strings and unique; the lookup index is rebuilt only after the
// durable write has been attempted.
func (j *JSONFile) CreateStore(_ context.Context, store entities.Store) (*entities.Store, error) {
	code := strings.TrimSpace(store.Code)
	name := strings.TrimSpace(store.Name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: both code and name are required", entities.ErrInvalidArgument)
	}
	if _, err := strconv.Atoi(code); err != nil {
		return nil, fmt.Errorf("%w: %q", entities.ErrStoreCodeNotNumeric, code)
	}

	j.storesMu.Lock()
	defer j.storesMu.Unlock()

	if _, exists := j.storeIndex[code]; exists {
		return nil, fmt.Errorf("%w: %q", entities.ErrStoreExists, code)
	}

	created := entities.Store{Code: code, Name: name}
	j.stores = append(j.stores, created)
	sortStores(j.stores)
	j.persistStoresLocked()
	j.rebuildStoreIndexLocked()

	j.log.Infow("store added", "code", code, "name", name)
	return &created, nil
}

// DeleteStore removes a store by code.
func (j *JSONFile) DeleteStore(_ context.Context, code string) error {
	code = strings.TrimSpace(code)

	j.storesMu.Lock()
	defer j.storesMu.Unlock()

	if _, ok := j.storeIndex[code]; !ok {
		return fmt.Errorf("%w: %q", entities.ErrStoreNotFound, code)
	}

	for idx := range j.stores {
		if j.stores[idx].Code == code {
			j.stores = append(j.stores[:idx], j.stores[idx+1:]...)
			break
		}
	}
	j.persistStoresLocked()
	j.rebuildStoreIndexLocked()

	j.log.Infow("store removed", "code", code)
	return nil
}
