package secret

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MovesAndWipesSource(t *testing.T) {
	src := []byte("correct horse")
	want := append([]byte(nil), src...)

	s := New(src)
	defer s.Destroy()

	assert.Equal(t, want, s.Expose())
	assert.Equal(t, make([]byte, len(want)), src, "source slice must be wiped")
	assert.Equal(t, len(want), s.Len())
	assert.True(t, s.IsAlive())
}

func TestFromString(t *testing.T) {
	s := FromString("hunter2")
	defer s.Destroy()

	assert.Equal(t, []byte("hunter2"), s.Expose())
}

func TestNew_Empty(t *testing.T) {
	s := New(nil)
	defer s.Destroy()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Expose())
	assert.True(t, s.IsAlive())
}

func TestDestroy_Idempotent(t *testing.T) {
	s := New([]byte{1, 2, 3})
	s.Destroy()

	assert.False(t, s.IsAlive())
	assert.Nil(t, s.Expose())
	assert.Equal(t, 0, s.Len())

	assert.NotPanics(t, s.Destroy)
}

func TestNilReceiver(t *testing.T) {
	var s *Bytes

	assert.Nil(t, s.Expose())
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.IsAlive())
	assert.False(t, s.Equal(s))
	assert.NotPanics(t, s.Destroy)
	assert.Equal(t, Redacted, s.String())
}

func TestClone(t *testing.T) {
	s := New([]byte("original"))
	c := s.Clone()
	defer c.Destroy()

	require.NotNil(t, c)
	assert.True(t, s.Equal(c))

	s.Destroy()
	assert.True(t, c.IsAlive(), "clone must outlive the original")
	assert.Equal(t, []byte("original"), c.Expose())
}

func TestClone_DestroyedOrNil(t *testing.T) {
	var nilBytes *Bytes
	assert.Nil(t, nilBytes.Clone())

	s := New([]byte("x"))
	s.Destroy()
	assert.Nil(t, s.Clone())
}

func TestClone_Empty(t *testing.T) {
	s := New(nil)
	defer s.Destroy()

	c := s.Clone()
	defer c.Destroy()

	require.NotNil(t, c)
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.IsAlive())
}

func TestEqual(t *testing.T) {
	a := New([]byte("same"))
	b := New([]byte("same"))
	c := New([]byte("diff"))
	d := New([]byte("longer"))
	defer a.Destroy()
	defer b.Destroy()
	defer c.Destroy()
	defer d.Destroy()

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
}

func TestEqual_DestroyedNeverEqual(t *testing.T) {
	a := New([]byte("same"))
	b := New([]byte("same"))
	defer a.Destroy()

	b.Destroy()
	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))
}

func TestRedaction(t *testing.T) {
	s := New([]byte("top-secret"))
	defer s.Destroy()

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{name: "v", format: "%v", want: Redacted},
		{name: "s", format: "%s", want: Redacted},
		{name: "x", format: "%x", want: Redacted},
		{name: "q", format: "%q", want: Redacted},
		{name: "plus v", format: "%+v", want: Redacted},
		{name: "sharp v", format: "%#v", want: "secret.Bytes{" + Redacted + "}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fmt.Sprintf(tt.format, s)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "top-secret")
		})
	}
}

func TestRedaction_JSON(t *testing.T) {
	s := New([]byte("top-secret"))
	defer s.Destroy()

	payload := struct {
		Key *Bytes `json:"key"`
	}{Key: s}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"[REDACTED]"}`, string(data))

	text, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, Redacted, string(text))
}

func TestWipe(t *testing.T) {
	b := []byte{9, 8, 7}
	Wipe(b)
	assert.Equal(t, []byte{0, 0, 0}, b)
}
