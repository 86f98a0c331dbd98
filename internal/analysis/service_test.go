package analysis

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceAnalyzeMatchesPurePipeline(t *testing.T) {
	svc, err := NewService(zerolog.Nop())
	require.NoError(t, err)

	build := completeBuild()
	got := svc.Analyze(context.Background(), build)

	assert.Equal(t, Analyze(build), got)
}

func TestServiceAnalyzeDeterministic(t *testing.T) {
	svc, err := NewService(zerolog.Nop())
	require.NoError(t, err)

	build := completeBuild()
	first := svc.Analyze(context.Background(), build)
	second := svc.Analyze(context.Background(), build)

	assert.Equal(t, first, second)
}
