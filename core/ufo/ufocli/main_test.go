package main

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/ufogleaner/core/ufo/internal/ufotest"
	"github.com/npillmayer/ufogleaner/core/ufo/plist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTracingRoutesGleanFailures(t *testing.T) {
	require.NoError(t, setupTracing("Debug"))
	defer trace2go.Teardown()
	//
	assert.Equal(t, tracing.LevelDebug, tracer().GetTraceLevel())
	var out bytes.Buffer
	tracer().SetOutput(&out)
	//
	p := ufotest.Package(map[string]interface{}{"A": "A.glif", "B": "B.glif"},
		map[string][]byte{"A.glif": ufotest.Glif("A", 'A'), "B.glif": ufotest.Corrupt})
	intp, err := newIntp(p, plist.DefaultLayerDir)
	require.NoError(t, err)
	require.NoError(t, intp.glean())
	assert.Contains(t, out.String(), `glyph "B"`, "per-glyph failures must be traced")
	assert.Contains(t, out.String(), "DEBUG", "debug traces must be enabled")
}

func TestSetupTracingHonoursLevel(t *testing.T) {
	require.NoError(t, setupTracing("Error"))
	defer trace2go.Teardown()
	//
	assert.Equal(t, tracing.LevelError, tracer().GetTraceLevel())
	var out bytes.Buffer
	tracer().SetOutput(&out)
	tracer().Infof("hidden")
	tracer().Errorf("shown")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
}
