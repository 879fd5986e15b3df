package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogWritesPrefixedMessage(t *testing.T) {
	var buf bytes.Buffer
	logg := NewLogger(&buf, "[Catalog]")

	logg.Log("imported %d products", 3)

	assert.Equal(t, "[Catalog] imported 3 products\n", buf.String())
}

func TestWithPrefixChainsPrefixes(t *testing.T) {
	var buf bytes.Buffer
	logg := NewLogger(&buf, "[Catalog]").WithPrefix("[bigbuy]")

	logg.Log("page %d", 1)

	assert.Equal(t, "[Catalog] [bigbuy] page 1\n", buf.String())
}

func TestSetPrefixAndWriterReplaceDefaults(t *testing.T) {
	var first, second bytes.Buffer
	logg := NewLogger(&first, "[Old]")

	logg.SetPrefix("[New]")
	logg.SetWriter(&second)
	logg.Log("ready")

	assert.Empty(t, first.String())
	assert.Equal(t, "[New] ready\n", second.String())
}
