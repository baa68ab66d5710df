package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Dataset is the immutable snapshot of every loaded table. It is built once
// by a loader and shared read-only between requests.
type Dataset struct {
	snapshotID uuid.UUID
	loadedAt   time.Time
	tables     map[Family]*MetricTable
}

func NewDataset(loadedAt time.Time, tables ...*MetricTable) (*Dataset, error) {
	ds := &Dataset{
		snapshotID: uuid.New(),
		loadedAt:   loadedAt.UTC(),
		tables:     make(map[Family]*MetricTable, len(tables)),
	}
	for _, t := range tables {
		if t == nil {
			continue
		}
		if _, dup := ds.tables[t.Family()]; dup {
			return nil, fmt.Errorf("table %s loaded twice", t.Family())
		}
		ds.tables[t.Family()] = t
	}
	return ds, nil
}

// GetTable resolves a table by its family key.
func (d *Dataset) GetTable(name string) (*MetricTable, error) {
	f, err := ParseFamily(name)
	if err != nil {
		return nil, err
	}
	t, ok := d.tables[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotLoaded, f)
	}
	return t, nil
}

// Families returns the loaded families, sorted.
func (d *Dataset) Families() []Family {
	out := make([]Family, 0, len(d.tables))
	for f := range d.tables {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

func (d *Dataset) SnapshotID() uuid.UUID { return d.snapshotID }

func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }
