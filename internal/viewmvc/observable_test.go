package viewmvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type clickListener interface {
	OnClick()
}

type countingListener struct {
	clicks int
}

func (l *countingListener) OnClick() { l.clicks++ }

func TestObservable_RegisterAndNotify(t *testing.T) {
	var o Observable[clickListener]
	a := &countingListener{}
	b := &countingListener{}

	o.RegisterListener(a)
	o.RegisterListener(b)
	o.RegisterListener(a)
	for _, l := range o.Listeners() {
		l.OnClick()
	}

	assert.Len(t, o.Listeners(), 2)
	assert.Equal(t, 1, a.clicks)
	assert.Equal(t, 1, b.clicks)
}

func TestObservable_Unregister(t *testing.T) {
	var o Observable[clickListener]
	a := &countingListener{}
	b := &countingListener{}
	o.RegisterListener(a)
	o.RegisterListener(b)

	o.UnregisterListener(a)
	o.UnregisterListener(&countingListener{})

	assert.Equal(t, []clickListener{b}, o.Listeners())
}

func TestObservable_SnapshotIsIndependent(t *testing.T) {
	var o Observable[clickListener]
	a := &countingListener{}
	o.RegisterListener(a)

	snapshot := o.Listeners()
	o.UnregisterListener(a)

	assert.Len(t, snapshot, 1)
	assert.Empty(t, o.Listeners())
}
