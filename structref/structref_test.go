package structref_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediakit/addon-sdk/structref"
)

type record struct {
	ID    uint32
	Label string
}

func TestOwnCopiesTheRecord(t *testing.T) {
	src := record{ID: 1, Label: "a"}
	r := structref.Own(src)

	src.ID = 99
	assert.Equal(t, uint32(1), r.Get().ID, "owned ref holds a private copy")
	assert.False(t, r.Borrowed())
}

func TestNewStartsZeroed(t *testing.T) {
	r := structref.New[record]()
	assert.Equal(t, record{}, r.Get())
	assert.False(t, r.Borrowed())
}

func TestBorrowAliasesCallerStorage(t *testing.T) {
	rec := record{ID: 7}
	r := structref.Borrow(&rec)

	require.True(t, r.Borrowed())
	assert.Same(t, &rec, r.Ptr())

	r.Set(record{ID: 8, Label: "updated"})
	assert.Equal(t, uint32(8), rec.ID, "borrowed ref edits caller storage in place")
	assert.Equal(t, "updated", rec.Label)
}

func TestBorrowNilPanics(t *testing.T) {
	require.PanicsWithValue(t, "structref: borrow of a nil record", func() {
		structref.Borrow[record](nil)
	})
}

func TestSetOnOwnedReplacesCopy(t *testing.T) {
	r := structref.Own(record{ID: 1})
	before := r.Ptr()

	r.Set(record{ID: 2})
	assert.Equal(t, uint32(2), r.Get().ID)
	assert.Equal(t, uint32(1), before.ID, "previous copy is left untouched")
}

func TestAssignFollowsModeRules(t *testing.T) {
	rec := record{ID: 10}
	borrowed := structref.Borrow(&rec)
	owned := structref.Own(record{ID: 20, Label: "donor"})

	borrowed.Assign(owned)
	assert.Equal(t, uint32(20), rec.ID, "assignment to borrowed overwrites in place")

	owned2 := structref.Own(record{ID: 30})
	owned2.Assign(borrowed)
	assert.Equal(t, uint32(20), owned2.Get().ID)

	// The two refs stay independent after assignment.
	rec.ID = 99
	assert.Equal(t, uint32(20), owned2.Get().ID)
}
