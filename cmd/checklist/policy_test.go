package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/checklist"
	main "github.com/fwojciec/checklist/cmd/checklist"
	"github.com/fwojciec/checklist/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints policy as TOML", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Policy: checklist.DefaultPolicy()}

		require.NoError(t, (&main.PolicyCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "max_prefixed_number = 500")
	})

	t.Run("writes policy file", func(t *testing.T) {
		t.Parallel()

		policy := checklist.DefaultPolicy()
		policy.MaxCards = 1200
		path := filepath.Join(t.TempDir(), "policy.toml")

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Policy: policy}

		require.NoError(t, (&main.PolicyCmd{Write: path}).Run(deps))
		assert.Contains(t, stdout.String(), "Wrote policy")

		got, err := toml.LoadPolicy(path)
		require.NoError(t, err)
		assert.Equal(t, policy, got)
	})
}
