package trove

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectsUsageTrackInDebugMode(t *testing.T) {
	require := require.New(t)
	SetDebug(true)
	defer SetDebug(false)
	inUse := GetObjectsInUse()

	probes := []*probe{}
	for i := 0; i < 10; i++ {
		probes = append(probes, newProbe("p", nil))
	}

	// one more as an example
	probes = append(probes, newProbe("p", nil))

	// release one as an example
	Release(probes[5])

	buf := bytes.NewBuffer(nil)
	PrintLeaked(buf)
	require.Contains(buf.String(), "objects constructed but not destroyed:")
	require.Contains(buf.String(), "TestObjectsUsageTrackInDebugMode")
	require.Contains(buf.String(), "9 not destroyed")
	require.Contains(buf.String(), "1 not destroyed")
	require.Contains(buf.String(), "trove.newProbe (constructor)")
	require.NotContains(buf.String(), "runtime.")
	require.NotContains(buf.String(), "trove.Manage")
	// the most leaking constructor goes first
	require.Less(strings.Index(buf.String(), "9 not destroyed"), strings.Index(buf.String(), "1 not destroyed"))

	// prints code points where objects were constructed but not destroyed
	PrintLeaked(os.Stdout)

	for i, p := range probes {
		if i != 5 {
			Release(p)
		}
	}

	// prints nothing
	buf.Reset()
	PrintLeaked(buf)
	require.Empty(buf.String())

	require.Equal(inUse, GetObjectsInUse())
}

func TestOverReleaseInDebugMode(t *testing.T) {
	require := require.New(t)
	logged := logToFile(t)
	SetDebug(true)
	defer SetDebug(false)
	inUse := GetObjectsInUse()

	p := newProbe("p", nil)
	Release(p)

	// reported, not guarded
	require.NotPanics(func() { Release(p) })
	require.Equal(2, p.destroyed)
	require.Equal(inUse, GetObjectsInUse())
	require.Empty(leaked())
	require.Contains(logged(), "over-release of *trove.probe")
}
