package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const memoryConfig = `
database:
  driver: memory
jwt:
  secret: test
logging:
  level: error
`

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := rootCmd()

	for _, name := range []string{"serve", "migrate", "create-teacher"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	flag := root.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "configs/config.yaml", flag.DefValue)
}

func TestMigrateRejectsMemoryDriver(t *testing.T) {
	root := rootCmd()
	root.SetArgs([]string{"migrate", "--config", writeConfig(t, memoryConfig)})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestCreateTeacherRequiresFlags(t *testing.T) {
	root := rootCmd()
	root.SetArgs([]string{"create-teacher", "--config", writeConfig(t, memoryConfig), "--email", "a@b.eg"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestCreateTeacherRejectsMemoryDriver(t *testing.T) {
	root := rootCmd()
	root.SetArgs([]string{
		"create-teacher", "--config", writeConfig(t, memoryConfig),
		"--email", "a@b.eg", "--name", "Mona", "--password", "longenough",
	})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory")
}
