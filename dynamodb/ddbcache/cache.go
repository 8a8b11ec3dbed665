// Package ddbcache keeps raw DescribeTable results on disk, keyed by region and
// table name, so later commands can get typed key information without another
// round trip.
package ddbcache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned when no entry exists for a region and table.
var ErrNotFound = errors.New("table not found in cache")

const (
	keySeparator byte = 0x00
	tablePrefix       = "table"
)

// Cache is a table-description cache backed by BadgerDB.
// Writes for different tables never conflict; a second write for the same
// table replaces the first.
type Cache struct {
	db  *badger.DB
	now func() time.Time
}

// Options configures the BadgerDB cache.
type Options struct {
	// Path to the cache directory. If empty, uses in-memory mode.
	Path string
	// InMemory forces in-memory mode even if Path is set.
	InMemory bool
	// Logger for BadgerDB. If nil, logging is disabled.
	Logger badger.Logger
}

// Entry is one cached description.
type Entry struct {
	Region      string                  `json:"region"`
	CachedAt    time.Time               `json:"cachedAt"`
	Description *types.TableDescription `json:"description"`
}

// Open opens (or creates) the cache.
func Open(opts Options) (*Cache, error) {
	badgerOpts := badger.DefaultOptions(opts.Path)

	if opts.Path == "" || opts.InMemory {
		badgerOpts = badgerOpts.WithInMemory(true)
	}

	if opts.Logger != nil {
		badgerOpts = badgerOpts.WithLogger(opts.Logger)
	} else {
		badgerOpts = badgerOpts.WithLogger(nil)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return &Cache{db: db, now: time.Now}, nil
}

// Close closes the BadgerDB database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// PutTable stores desc under region and its table name.
func (c *Cache) PutTable(region string, desc *types.TableDescription) error {
	if desc == nil || aws.ToString(desc.TableName) == "" {
		return fmt.Errorf("table description has no table name")
	}
	val, err := json.Marshal(Entry{
		Region:      region,
		CachedAt:    c.now().UTC(),
		Description: desc,
	})
	if err != nil {
		return fmt.Errorf("encode table description: %w", err)
	}
	key := encodeKey(region, aws.ToString(desc.TableName))
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
}

// GetTable returns the cached entry for region and name.
func (c *Cache) GetTable(region, name string) (*Entry, error) {
	var entry Entry
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(encodeKey(region, name))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Tables lists the names of the tables cached for region, in key order.
func (c *Cache) Tables(region string) ([]string, error) {
	prefix := encodeKey(region, "")
	var names []string
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			names = append(names, string(bytes.TrimPrefix(it.Item().Key(), prefix)))
		}
		return nil
	})
	return names, err
}

// encodeKey builds [tablePrefix][sep][region][sep][name].
func encodeKey(region, name string) []byte {
	var buf bytes.Buffer
	buf.WriteString(tablePrefix)
	buf.WriteByte(keySeparator)
	buf.WriteString(region)
	buf.WriteByte(keySeparator)
	buf.WriteString(name)
	return buf.Bytes()
}
