package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name       string
		configFile func(t *testing.T) string
		wantErr    bool
		wantName   string
	}{
		{
			name:       "no_config_file",
			configFile: func(*testing.T) string { return "" },
			wantName:   "",
		},
		{
			name: "explicit_config_file",
			configFile: func(t *testing.T) string {
				return writeConfig(t, "identity:\n  name: annotator\n")
			},
			wantName: "annotator",
		},
		{
			name: "malformed_config_file",
			configFile: func(t *testing.T) string {
				return writeConfig(t, "identity: [name\n")
			},
			wantErr: true,
		},
		{
			name: "missing_explicit_config_file",
			configFile: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			err := readConfig(v, tt.configFile(t))

			if tt.wantErr {
				require.NotNil(t, err)
				assert.Contains(t, err.Display(), "identity.*")
				return
			}

			require.Nil(t, err)
			assert.Equal(t, tt.wantName, v.GetString("identity.name"))
		})
	}
}

func TestReadConfigFromEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NBA_IDENTITY_NAMESPACE", "webhooks")

	v := viper.New()
	require.Nil(t, readConfig(v, ""))
	assert.Equal(t, "webhooks", v.GetString("identity.namespace"))
}
