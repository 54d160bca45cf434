package iocli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := New(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

// Тест ReadInput: читаем из pipe вместо os.Stdin
func TestReadInput(t *testing.T) {
	input := "user input\n"
	r, w, err := os.Pipe()
	require.NoError(t, err)

	// Пишем в pipe в отдельной горутине, имитируя ввод пользователя
	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	var out bytes.Buffer
	stdio := New(r, &out)
	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(input), result)
	assert.Equal(t, "Prompt: ", out.String())
}

func TestReadInput_LastLineWithoutNewline(t *testing.T) {
	stdio := New(strings.NewReader("first\nlast"), io.Discard)

	first, err := stdio.ReadInput("")
	require.NoError(t, err)
	last, err := stdio.ReadInput("")
	require.NoError(t, err)
	_, err = stdio.ReadInput("")

	assert.Equal(t, "first", first)
	assert.Equal(t, "last", last)
	assert.ErrorIs(t, err, io.EOF)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "yes\n", expected: true},
		{input: "Y\n", expected: true},
		{input: "no\n", expected: false},
		{input: "\n", expected: false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			stdio := New(strings.NewReader(tt.input), &out)

			ok, err := stdio.Confirm("Delete?")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.Equal(t, "Delete? (yes/no): ", out.String())
		})
	}
}

func TestWidth_NotTerminal(t *testing.T) {
	stdio := New(strings.NewReader(""), &bytes.Buffer{})

	assert.False(t, stdio.IsTerminal())
	assert.Equal(t, DefaultWidth, stdio.Width())
}
