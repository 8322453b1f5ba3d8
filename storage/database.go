package storage

import "github.com/kbanas/baza/errs"

// Database is the in-process handle owning every table, keyed by both
// name and id. Rather than a process-wide singleton, callers obtain a
// handle explicitly from New and thread it through, which keeps tests
// hermetic and avoids synchronization a single-threaded engine has no
// use for.
type Database struct {
	byName map[string]*Table
	byID   map[TableID]*Table
}

func New() *Database {
	return &Database{
		byName: make(map[string]*Table),
		byID:   make(map[TableID]*Table),
	}
}

// CreateTable registers a new, empty table named name, failing with
// DuplicateTable if one already exists under that name.
func (d *Database) CreateTable(name string) (*Table, error) {
	if _, ok := d.byName[name]; ok {
		return nil, errs.Newf(errs.DuplicateTable, "table %q already exists", name)
	}

	t := newTable(name)
	d.byName[name] = t
	d.byID[t.id] = t
	return t, nil
}

// DropTable removes a table by name. Not part of the SQL surface but
// kept for test setup/teardown convenience.
func (d *Database) DropTable(name string) {
	t, ok := d.byName[name]
	if !ok {
		return
	}
	delete(d.byName, name)
	delete(d.byID, t.id)
}

// GetTable looks up a table by name.
func (d *Database) GetTable(name string) (*Table, error) {
	if t, ok := d.byName[name]; ok {
		return t, nil
	}
	return nil, errs.Newf(errs.TableNotFound, "no such table %q", name)
}

// GetTableByID looks up a table by id.
func (d *Database) GetTableByID(id TableID) (*Table, error) {
	if t, ok := d.byID[id]; ok {
		return t, nil
	}
	return nil, errs.Newf(errs.TableNotFound, "no table with id %d", id)
}

// Tables returns every table currently registered, in no particular
// order.
func (d *Database) Tables() []*Table {
	out := make([]*Table, 0, len(d.byName))
	for _, t := range d.byName {
		out = append(out, t)
	}
	return out
}
