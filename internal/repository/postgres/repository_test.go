package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxLimit(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		in  int
		out int
	}{
		{in: 10, out: 10},
		{in: MAX_LIMIT, out: MAX_LIMIT},
		{in: MAX_LIMIT + 1, out: MAX_LIMIT},
		{in: 0, out: MAX_LIMIT},
		{in: -5, out: MAX_LIMIT},
	}

	for _, fix := range fixtures {
		limit := fix.in
		maxLimit(&limit)
		assert.Equal(fix.out, limit)
	}
}
