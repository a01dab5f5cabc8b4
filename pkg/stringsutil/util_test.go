package stringsutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTrimmed(t *testing.T) {
	got := SplitTrimmed(" http://localhost:5173 ,, http://localhost:3000")

	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, got)
}

func TestSplitTrimmed_Empty(t *testing.T) {
	assert.Nil(t, SplitTrimmed(" , ,"))
}
