/*
File    : eta/object/rca_test.go
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRCA_AllocTracksObject(t *testing.T) {
	rca := NewRCA()
	obj := rca.Alloc(&Integer{Value: 1})
	assert.Equal(t, 1, rca.Len())
	assert.NotNil(t, obj)
}

func TestRCA_SentinelsNeverTracked(t *testing.T) {
	rca := NewRCA()
	rca.Alloc(NULL_OBJ)
	rca.Alloc(TRUE_OBJ)
	rca.Alloc(FALSE_OBJ)
	assert.Equal(t, 0, rca.Len())
}

func TestRCA_SweepRemovesZeroRefcount(t *testing.T) {
	rca := NewRCA()
	obj := rca.Alloc(&Integer{Value: 1})
	rca.Retain(obj)
	rca.Sweep()
	assert.Equal(t, 1, rca.Len(), "retained object survives a sweep")

	rca.Release(obj)
	rca.Sweep()
	assert.Equal(t, 0, rca.Len(), "zero-refcount object is removed by sweep")
}

func TestRCA_SweepTriggersAtThreshold(t *testing.T) {
	rca := NewRCA()
	for i := 0; i < sweepThreshold+5; i++ {
		rca.Alloc(&Integer{Value: int64(i)})
	}
	assert.Less(t, rca.Len(), sweepThreshold+5, "a sweep should have reclaimed some dead entries")
}

func TestRCA_Purge(t *testing.T) {
	rca := NewRCA()
	rca.Alloc(&Integer{Value: 1})
	rca.Retain(rca.Alloc(&Integer{Value: 2}))
	rca.Purge()
	assert.Equal(t, 0, rca.Len())
}
