package trove

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type owner struct {
	Header
	nested *nested
	log    *[]string
}

type nested struct {
	Header
	internal *internal
	log      *[]string
}

type internal struct {
	Header
	log *[]string
}

func newOwner(log *[]string) *owner {
	// the owner takes the construction ownership of nested so it will be released on owner destroy
	return Manage(&owner{nested: newNested(log), log: log})
}

func newNested(log *[]string) *nested {
	return Manage(&nested{internal: Manage(&internal{log: log}), log: log})
}

func (o *owner) Destroy() {
	*o.log = append(*o.log, "owner")
	Release(o.nested)
	o.nested = nil
}

func (n *nested) Destroy() {
	*n.log = append(*n.log, "nested")
	Release(n.internal)
	n.internal = nil
}

func (i *internal) Destroy() {
	*i.log = append(*i.log, "internal")
}

func TestBasicUsage_Owned(t *testing.T) {
	require := require.New(t)
	log := []string{}
	inUse := GetObjectsInUse()

	o := newOwner(&log)
	require.Equal(inUse+3, GetObjectsInUse())

	Release(o)
	// owner is destroyed, nested and internal are destroyed as well
	require.Equal([]string{"owner", "nested", "internal"}, log)
	require.Equal(inUse, GetObjectsInUse())
}

func TestSharedNestedOutlivesOwner(t *testing.T) {
	require := require.New(t)
	log := []string{}
	s := NewStack(DefaultConfig())

	s.Push()
	o := AutoreleaseTo(s, newOwner(&log))

	// nested is shared: claim one more ownership
	n := o.nested
	Retain(n)
	s.Pop()

	require.Equal([]string{"owner"}, log)
	require.Equal(1, n.RefCount())
	require.NotNil(n.internal)

	Release(n)
	require.Equal([]string{"owner", "nested", "internal"}, log)
}

func BenchmarkOwned(b *testing.B) {
	log := []string{}
	b.Run("basic", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Release(newOwner(&log))
			log = log[:0]
		}
	})
}
