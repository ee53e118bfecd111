package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactDSN(t *testing.T) {
	cases := map[string]string{
		"postgres://user:secret@db:5432/bookrec": "postgres://***@db:5432/bookrec",
		"postgres://db:5432/bookrec":             "postgres://db:5432/bookrec",
		"host=db user=x":                         "host=db user=x",
	}
	for in, want := range cases {
		assert.Equal(t, want, RedactDSN(in))
	}
}
