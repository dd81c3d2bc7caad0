package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecuteRejectsArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := execute([]string{"extra"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "[ERROR] ")
	assert.Contains(t, stderr.String(), "extra")
	assert.NotContains(t, stderr.String(), "Error: ", "cobra's own error line is silenced")
	assert.Equal(t, 1, strings.Count(stderr.String(), "[ERROR]"))
}

func TestExecuteUnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := execute([]string{"--output", "x.html"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "[ERROR] unknown flag: --output")
}

func TestExecuteHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := execute([]string{"--help"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "roomboard downloads the room booking workbook")
	assert.Empty(t, stderr.String())
}
