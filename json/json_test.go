package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type cell struct {
	Kind string `json:"kind"`
	Item int    `json:"item,omitempty"`
}

func TestMarshalRoundTrip(t *testing.T) {
	a := assert.New(t)
	data, err := Marshal([]cell{{Kind: "link", Item: 1}, {Kind: "terminal", Item: 2}})
	a.Nil(err)
	a.Equal(`[{"kind":"link","item":1},{"kind":"terminal","item":2}]`, string(data))

	var out []cell
	a.Nil(Unmarshal(data, &out))
	a.Equal(2, len(out))
	a.Equal("terminal", out[1].Kind)
}

func TestMarshalUnsupported(t *testing.T) {
	_, err := Marshal(make(chan int))
	assert.Error(t, err)
}

func TestPrettyMarshal(t *testing.T) {
	out := string(PrettyMarshal(map[string]int{"a": 1}))
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "1")
}
