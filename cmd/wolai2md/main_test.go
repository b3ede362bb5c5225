// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wolai2md/internal/convert"
	"github.com/pdiddy/wolai2md/internal/secrets"
	"github.com/pdiddy/wolai2md/internal/transform"
	"github.com/pdiddy/wolai2md/internal/wolai"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Cleanup(func() { loadedSecrets = nil })

	cfg, blockID, outDir, err := loadConfig([]string{"tok", "blk", "out"})
	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.Token)
	assert.Equal(t, "blk", blockID)
	assert.Equal(t, "out", outDir)
	assert.Equal(t, wolai.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 0, cfg.API.MaxRetries)
	assert.Equal(t, convert.DefaultFilename, cfg.Output.Filename)
}

func TestLoadConfig_TokenSources(t *testing.T) {
	t.Cleanup(func() {
		loadedSecrets = nil
		viper.Set("token", "")
	})

	loadedSecrets = map[string]string{secrets.TokenKey: "from-secrets"}
	cfg, blockID, _, err := loadConfig([]string{"blk", "out"})
	require.NoError(t, err)
	assert.Equal(t, "from-secrets", cfg.Token)
	assert.Equal(t, "blk", blockID)

	viper.Set("token", "from-config")
	cfg, _, _, err = loadConfig([]string{"blk", "out"})
	require.NoError(t, err)
	assert.Equal(t, "from-config", cfg.Token)

	cfg, _, _, err = loadConfig([]string{"from-arg", "blk", "out"})
	require.NoError(t, err)
	assert.Equal(t, "from-arg", cfg.Token)
}

func TestLoadConfig_MissingToken(t *testing.T) {
	loadedSecrets = nil
	_, _, _, err := loadConfig([]string{"blk", "out"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no wolai token")
}

func TestNonEmptyArgs(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr string
	}{
		{[]string{"blk", "out"}, ""},
		{[]string{"tok", "blk", "out"}, ""},
		{[]string{"", "out"}, "the block id must not be empty"},
		{[]string{"tok", " ", "out"}, "the block id must not be empty"},
		{[]string{"blk", ""}, "the output directory must not be empty"},
		{[]string{"", "blk", "out"}, "the token must not be empty"},
	}
	for _, tt := range tests {
		err := nonEmptyArgs(rootCmd, tt.args)
		if tt.wantErr == "" {
			assert.NoError(t, err, "args %q", tt.args)
			continue
		}
		require.Error(t, err, "args %q", tt.args)
		assert.Contains(t, err.Error(), tt.wantErr)
		assert.Contains(t, err.Error(), "usage: wolai2md")
	}
}

func TestRootCommand_RejectsEmptyBlockID(t *testing.T) {
	err := rootCmd.ValidateArgs([]string{"tok", "", "out"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block id must not be empty")
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&wolai.APIError{ErrorCode: 17003}, "rejected the request"},
		{fmt.Errorf("fetching: %w", wolai.ErrTransport), "could not reach the wolai API"},
		{fmt.Errorf("block 3: %w", transform.ErrSchema), "cannot be converted"},
		{fmt.Errorf("%w: writing", convert.ErrFilesystem), "could not write the output"},
		{fmt.Errorf("fetching children of : %w", wolai.ErrEmptyBlockID), "no block id given"},
		{errors.New("other"), "other"},
	}
	for _, tt := range tests {
		assert.Contains(t, describe(tt.err), tt.want)
	}
}
