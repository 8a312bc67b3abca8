package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/storage/buffer"
	"github.com/meguriri/miniob-2025/storage/table"
)

// Catalog is a non-persistent catalog that is designed for the executor to use.
// It handles table creation and table lookup
type Catalog struct {
	bpm         *buffer.BufferPoolManager
	tables      map[string]*Table
	tableNames  mapset.Set[string]
	// incrementation must be atomic
	nextTableId uint32
	mutex       *sync.Mutex
}

func NewCatalog(bpm *buffer.BufferPoolManager) *Catalog {
	return &Catalog{bpm, make(map[string]*Table), mapset.NewSet[string](), 0, new(sync.Mutex)}
}

// CreateTable creates a table and its heap
func (c *Catalog) CreateTable(name string, attrs []AttrInfo) (*Table, error) {
	// note: alphabets on table name is stored in lowercase
	tableName := strings.ToLower(name)
	if tableName == "" {
		return nil, fmt.Errorf("empty table name: %w", ErrSchemaFieldInvalid)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.tableNames.Contains(tableName) {
		return nil, fmt.Errorf("table %s: %w", tableName, ErrSchemaTableExist)
	}

	meta, err := NewTableMeta(atomic.AddUint32(&c.nextTableId, 1), tableName, attrs)
	if err != nil {
		return nil, err
	}
	heap, err := table.NewTableHeap(c.bpm, meta.RecordSize())
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", tableName, err)
	}

	table_ := NewTable(meta, heap)
	c.tables[tableName] = table_
	c.tableNames.Add(tableName)
	common.ShPrintf(common.DEBUG_INFO, "table created. name:%s fields:%v record size:%d\n", tableName, meta.Fields(), meta.RecordSize())
	return table_, nil
}

// FindTable returns the table or nil
func (c *Catalog) FindTable(name string) *Table {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.tables[strings.ToLower(name)]
}

// TableNames returns the table names in ascending order
func (c *Catalog) TableNames() []string {
	c.mutex.Lock()
	names := c.tableNames.ToSlice()
	c.mutex.Unlock()
	sort.Strings(names)
	return names
}
