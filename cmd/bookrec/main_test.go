package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Version(t *testing.T) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "bookrec version "+Version+"\n", out.String())
}

func TestRootCmd_ArgValidation(t *testing.T) {
	cases := map[string][]string{
		"search without query":     {"search"},
		"recommend without user":   {"recommend"},
		"recommend limit too high": {"recommend", "some-user", "--limit", "99"},
		"preferences set no user":  {"preferences", "set"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			cmd := rootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(args)

			assert.Error(t, cmd.Execute())
		})
	}
}

func TestPrintJSON(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, printJSON(&out, map[string]int{"total": 2}))
	assert.Equal(t, "{\n  \"total\": 2\n}\n", out.String())
}
