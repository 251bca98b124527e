package libol

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyTime(t *testing.T) {
	var s string

	s = PrettyTime(59)
	assert.Equal(t, "0m59s", s, "be the same.")
	s = PrettyTime(60 + 59)
	assert.Equal(t, "1m59s", s, "be the same.")
	s = PrettyTime(3600 + 61)
	assert.Equal(t, "1h1m", s, "be the same.")
	s = PrettyTime(86400 + 3600*5 + 59)
	assert.Equal(t, "1d5h", s, "be the same.")
	s = PrettyTime(-61)
	assert.Equal(t, "-1m1s", s, "be the same.")
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "", JoinInts(nil, ", "), "be the same.")
	assert.Equal(t, "10", JoinInts([]int{10}, ", "), "be the same.")
	assert.Equal(t, "10, 20, 3", JoinInts([]int{10, 20, 3}, ", "), "be the same.")
}

type sample struct {
	Ports  int    `json:"ports" yaml:"ports"`
	Format string `json:"format" yaml:"format"`
}

func TestUnmarshalLoad(t *testing.T) {
	dir := t.TempDir()

	js := filepath.Join(dir, "switch.json")
	assert.Nil(t, os.WriteFile(js, []byte(`{"ports": 4, "format": "json"}`), 0600))
	v := &sample{}
	assert.Nil(t, UnmarshalLoad(v, js))
	assert.Equal(t, 4, v.Ports, "be the same.")
	assert.Equal(t, "json", v.Format, "be the same.")

	ym := filepath.Join(dir, "switch.yaml")
	assert.Nil(t, os.WriteFile(ym, []byte("ports: 8\nformat: yaml\n"), 0600))
	v = &sample{}
	assert.Nil(t, UnmarshalLoad(v, ym))
	assert.Equal(t, 8, v.Ports, "be the same.")
	assert.Equal(t, "yaml", v.Format, "be the same.")

	v = &sample{Ports: 2}
	assert.Nil(t, UnmarshalLoad(v, filepath.Join(dir, "missing.json")))
	assert.Equal(t, 2, v.Ports, "missing file keeps value.")

	bad := filepath.Join(dir, "bad.json")
	assert.Nil(t, os.WriteFile(bad, []byte(`{"ports":`), 0600))
	assert.NotNil(t, UnmarshalLoad(v, bad))
}
