package modifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticOracle struct {
	set *Set
	err error
}

func (o staticOracle) ModifiersFor(playerID string) (*Set, error) {
	return o.set, o.err
}

func TestOracle_NonFatalFailure(t *testing.T) {
	o := staticOracle{err: errors.New("modifier service down")}

	set, err := o.ModifiersFor("p1")
	assert.Nil(t, set)
	assert.Error(t, err)
}

func TestOracle_ReturnsConfiguredSet(t *testing.T) {
	want := &Set{FlatBonus: 10, Title: "Champion"}
	o := staticOracle{set: want}

	set, err := o.ModifiersFor("p1")
	assert.NoError(t, err)
	assert.Equal(t, want, set)
}
