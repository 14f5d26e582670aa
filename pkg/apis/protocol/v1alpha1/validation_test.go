package v1alpha1_test

import (
	"testing"

	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	"github.com/stretchr/testify/require"
)

func TestNewConfigIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, v1alpha1.NewConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*v1alpha1.Config)
		wantErr error
	}{
		{
			name:    "negative header length",
			mutate:  func(c *v1alpha1.Config) { c.HeaderLength = -1 },
			wantErr: v1alpha1.ErrInvalidHeaderLength,
		},
		{
			name:    "unknown encoding",
			mutate:  func(c *v1alpha1.Config) { c.Encoding = "klingon" },
			wantErr: v1alpha1.ErrInvalidEncoding,
		},
		{
			name:    "unknown diff style",
			mutate:  func(c *v1alpha1.Config) { c.DiffStyle = "unified" },
			wantErr: v1alpha1.ErrInvalidDiffStyle,
		},
		{
			name:    "indent too wide",
			mutate:  func(c *v1alpha1.Config) { c.JSONIndent = v1alpha1.MaxJSONIndent + 1 },
			wantErr: v1alpha1.ErrInvalidJSONIndent,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *v1alpha1.Config) { c.LogLevel = "loud" },
			wantErr: v1alpha1.ErrInvalidLogLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := v1alpha1.NewConfig()
			tc.mutate(cfg)

			require.ErrorIs(t, cfg.Validate(), tc.wantErr)
		})
	}
}

func TestValidateEncodingAcceptsWHATWGLabels(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"utf-8", "UTF8", "latin1", "iso-8859-1", "windows-1252"} {
		require.NoError(t, v1alpha1.ValidateEncoding(label), label)
	}
}
