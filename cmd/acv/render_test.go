package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/awesomecv/internal/config"
)

func TestOutputFlagName(t *testing.T) {
	for _, cmd := range []*cobra.Command{renderCmd, compileCmd, sampleCmd} {
		flag := cmd.Flags().Lookup("output")
		require.NotNil(t, flag, "%s must expose --output", cmd.Name())
		assert.Equal(t, "o", flag.Shorthand)
		assert.Nil(t, cmd.Flags().Lookup("out"))
	}
}

func TestApplyRenderDefaults(t *testing.T) {
	t.Run("fills empty fields", func(t *testing.T) {
		cfg := config.Config{}
		applyRenderDefaults(&cfg)

		assert.Equal(t, "awesome_cv", cfg.Family)
		assert.Equal(t, "resume", cfg.DocType)
		assert.Equal(t, "auto", cfg.Engine)
		assert.Equal(t, 60, cfg.TimeoutSecs)
	})

	t.Run("explicit values survive", func(t *testing.T) {
		cfg := config.Config{
			Family:      "awesome_cv",
			DocType:     "coverletter",
			Engine:      "docker",
			TimeoutSecs: 300,
		}
		applyRenderDefaults(&cfg)

		assert.Equal(t, "coverletter", cfg.DocType)
		assert.Equal(t, "docker", cfg.Engine)
		assert.Equal(t, 300, cfg.TimeoutSecs)
	})
}
