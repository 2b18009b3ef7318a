package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	want := []string{"migrate", "user create"}
	for _, path := range want {
		cmd, _, err := rootCmd.Find(strings.Fields(path))
		require.NoError(t, err, path)
		assert.NotNil(t, cmd.RunE, path)
	}
}

func TestUserCreate_RequiresFlags(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"user", "create", "--username", "alice"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"password" not set`)
}

