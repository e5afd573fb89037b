package iotest

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeT struct {
	*testing.T

	Buffer bytes.Buffer
}

func (t *fakeT) Logf(msg string, args ...interface{}) {
	fmt.Fprintln(&t.Buffer, fmt.Sprintf(msg, args...))
	// println to make sure it ends with a newline
}

func TestWriter(t *testing.T) {
	t.Parallel()

	fakeT := fakeT{T: t}
	w := Writer(&fakeT)
	io.WriteString(w, "package mathlib\n")
	assert.Equal(t, "package mathlib\n", fakeT.Buffer.String())
}
