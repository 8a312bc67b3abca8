package catalog

import (
	"errors"
	"testing"

	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/storage/buffer"
	"github.com/meguriri/miniob-2025/storage/disk"
	"github.com/meguriri/miniob-2025/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAttrs() []AttrInfo {
	return []AttrInfo{
		{Name: "id", Type: types.Integer},
		{Name: "Name", Type: types.Char, Length: 10},
		{Name: "d", Type: types.Date},
	}
}

func TestTableMetaLayout(t *testing.T) {
	meta, err := NewTableMeta(1, "T", sampleAttrs())
	require.NoError(t, err)

	assert.Equal(t, "t", meta.Name())
	assert.Equal(t, 3, meta.FieldNum())
	assert.Equal(t, uint32(18), meta.RecordSize())

	id := meta.Field("id")
	require.NotNil(t, id)
	assert.Equal(t, uint32(0), id.Offset())
	assert.Equal(t, uint32(4), id.Len())

	name := meta.Field("NAME")
	require.NotNil(t, name)
	assert.Equal(t, "name", name.Name())
	assert.Equal(t, types.Char, name.Type())
	assert.Equal(t, uint32(4), name.Offset())
	assert.Equal(t, uint32(10), name.Len())

	d := meta.FieldAt(2)
	assert.Equal(t, uint32(14), d.Offset())
	assert.Equal(t, uint32(4), d.Len())

	assert.Nil(t, meta.Field("nothing"))
	assert.Equal(t, -1, meta.FieldIndex("nothing"))
	assert.Nil(t, meta.FieldAt(3))
}

func TestTableMetaRejectsBadDefinitions(t *testing.T) {
	_, err := NewTableMeta(1, "t", nil)
	assert.True(t, errors.Is(err, ErrSchemaFieldInvalid))

	_, err = NewTableMeta(1, "t", []AttrInfo{{Name: "a", Type: types.Integer}, {Name: "A", Type: types.Float}})
	assert.True(t, errors.Is(err, ErrSchemaFieldDuplicate))

	_, err = NewTableMeta(1, "t", []AttrInfo{{Name: "c", Type: types.Char}})
	assert.True(t, errors.Is(err, ErrSchemaFieldInvalid))

	_, err = NewTableMeta(1, "t", []AttrInfo{{Name: "n", Type: types.Null}})
	assert.True(t, errors.Is(err, ErrSchemaFieldInvalid))
}

func TestCatalogCreateAndFind(t *testing.T) {
	dm := disk.NewVirtualDiskManagerImpl("catalog_test.db")
	defer dm.ShutDown()
	c := NewCatalog(buffer.NewBufferPoolManager(common.BufferPoolMaxFrameNum, dm))

	tbl, err := c.CreateTable("Users", sampleAttrs())
	require.NoError(t, err)
	assert.Equal(t, "users", tbl.Name())
	assert.Equal(t, uint32(1), tbl.Meta().TableID())

	_, err = c.CreateTable("USERS", sampleAttrs())
	assert.True(t, errors.Is(err, ErrSchemaTableExist))

	_, err = c.CreateTable("accounts", []AttrInfo{{Name: "x", Type: types.Integer}})
	require.NoError(t, err)

	assert.Same(t, tbl, c.FindTable("users"))
	assert.Nil(t, c.FindTable("orders"))
	assert.Equal(t, []string{"accounts", "users"}, c.TableNames())
}

func TestTableRecordLifecycle(t *testing.T) {
	dm := disk.NewVirtualDiskManagerImpl("catalog_test.db")
	defer dm.ShutDown()
	c := NewCatalog(buffer.NewBufferPoolManager(common.BufferPoolMaxFrameNum, dm))
	tbl, err := c.CreateTable("t", sampleAttrs())
	require.NoError(t, err)

	rec, err := tbl.MakeRecord([]types.Value{types.NewInteger(7), types.NewChar("hello world!"), types.NewChar("2020-01-15")})
	require.NoError(t, err)
	require.NoError(t, tbl.InsertRecord(rec))

	stored, err := tbl.GetRecord(rec.RID())
	require.NoError(t, err)
	assert.Equal(t, rec.Data(), stored.Data())

	name, err := stored.Field(4, 10)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello worl"), name)
	d, err := stored.Field(14, 4)
	require.NoError(t, err)
	assert.Equal(t, types.NewDate(2020, 1, 15).Data(), d)

	updated := stored.DeepCopy()
	require.NoError(t, updated.SetField(0, 4, types.NewInteger(8).Data()))
	require.NoError(t, tbl.UpdateRecord(stored, updated))
	got, err := tbl.GetRecord(rec.RID())
	require.NoError(t, err)
	assert.Equal(t, updated.Data(), got.Data())

	other, err := tbl.MakeRecord([]types.Value{types.NewInteger(1), types.NewChar("x"), types.NewDate(2021, 2, 3)})
	require.NoError(t, err)
	require.NoError(t, tbl.InsertRecord(other))
	assert.True(t, errors.Is(tbl.UpdateRecord(stored, other), ErrRIDMismatch))

	require.NoError(t, tbl.DeleteRecord(got))
	_, err = tbl.GetRecord(rec.RID())
	assert.Error(t, err)
	require.NoError(t, tbl.RestoreRecord(got))
	restored, err := tbl.GetRecord(rec.RID())
	require.NoError(t, err)
	assert.Equal(t, got.Data(), restored.Data())
}

func TestMakeRecordArity(t *testing.T) {
	dm := disk.NewVirtualDiskManagerImpl("catalog_test.db")
	defer dm.ShutDown()
	tbl, err := NewCatalog(buffer.NewBufferPoolManager(common.BufferPoolMaxFrameNum, dm)).CreateTable("t", sampleAttrs())
	require.NoError(t, err)

	_, err = tbl.MakeRecord([]types.Value{types.NewInteger(1)})
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))

	_, err = tbl.MakeRecord([]types.Value{types.NewInteger(1), types.NewChar("a"), types.NewFloat(1.5)})
	assert.True(t, errors.Is(err, types.ErrUnimplemented))
}
