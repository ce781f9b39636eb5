package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestChoose(t *testing.T) {
	p, out := newPrompter("2\n")

	i, err := p.Choose("Which libc do you want to use?", []string{"musl", "glibc"})
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Contains(t, out.String(), "Which libc do you want to use?")
	assert.Contains(t, out.String(), "1 : musl")
	assert.Contains(t, out.String(), "2 : glibc")
}

func TestChoose_Reprompts(t *testing.T) {
	p, out := newPrompter("0\nabc\n3\n1\n")

	i, err := p.Choose("Pick", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 3, strings.Count(out.String(), "Please enter a number between 1 and 2"))
}

func TestChoose_TooManyInvalid(t *testing.T) {
	p, _ := newPrompter(strings.Repeat("9\n", maxAttempts))

	_, err := p.Choose("Pick", []string{"a"})
	assert.Error(t, err)
}

func TestChoose_EOF(t *testing.T) {
	p, _ := newPrompter("")

	_, err := p.Choose("Pick", []string{"a"})
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestChoose_LastLineWithoutNewline(t *testing.T) {
	p, _ := newPrompter("1")

	i, err := p.Choose("Pick", []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, 0, i)
}

func TestChoose_NoOptions(t *testing.T) {
	p, _ := newPrompter("1\n")

	_, err := p.Choose("Pick", nil)
	assert.Error(t, err)
}

func TestChooseOrOther(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "listed option", input: "1\n", want: "20191109"},
		{name: "other value", input: "2\n20210930\n", want: "20210930"},
		{name: "other after empty", input: "2\n\n  20210930 \n", want: "20210930"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newPrompter(tt.input)
			got, err := p.ChooseOrOther("Which version of void linux do you want?", []string{"20191109"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "2 : other")
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "sure\n", want: false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			p, _ := newPrompter(tt.input)
			got, err := p.Confirm("Proceed?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	p, _ := newPrompter("")
	_, err := p.Confirm("Proceed?")
	assert.ErrorIs(t, err, ErrNoInput)
}
