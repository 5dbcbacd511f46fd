package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llkit/llvm"
	"llkit/profile"
	"llkit/report"
)

func TestMain(m *testing.M) {
	pterm.DisableOutput()
	report.InitReporter(report.LogLevelSilent)
	os.Exit(m.Run())
}

func loadTestProfiles(t *testing.T, content string) *profile.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "smoke.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	f, err := profile.Load(path)
	require.NoError(t, err)
	return f
}

func TestBuildSmokeModule(t *testing.T) {
	ctx := llvm.NewContext()
	defer ctx.Dispose()

	mod := buildSmokeModule(ctx, "smoke")
	require.NoError(t, mod.Verify())

	ir := mod.String()
	assert.Contains(t, ir, "define i32 @add(i32 %a, i32 %b)")
	assert.Contains(t, ir, "%sum = add i32 %a, %b")
	assert.Contains(t, ir, "call i32 @add(i32 2, i32 3)")

	main, ok := mod.GetFunction("main")
	require.True(t, ok)
	assert.Equal(t, 0, main.NumParams())
}

func TestEmitProfiles_AllFormats(t *testing.T) {
	f := loadTestProfiles(t, `
module: smoke
profiles:
  - name: object
  - name: assembly
    format: asm
    opt-level: none
  - name: bitcode
    format: bc
    output: out/smoke.bc
  - name: text
    format: ll
    triple: x86_64-linux-gnu
`)

	report.InitReporter(report.LogLevelSilent)
	require.NoError(t, emitProfiles(f.Module, f.Profiles))
	assert.False(t, report.AnyErrors())

	for _, prof := range f.Profiles {
		info, err := os.Stat(prof.OutputPath())
		require.NoError(t, err, prof.Name)
		assert.Positive(t, info.Size(), prof.Name)
	}

	bc, err := os.ReadFile(f.Profiles[2].OutputPath())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(bc, []byte("BC\xc0\xde")))

	ll, err := os.ReadFile(f.Profiles[3].OutputPath())
	require.NoError(t, err)
	assert.Contains(t, string(ll), `target triple = "x86_64-unknown-linux-gnu"`)
}

func TestEmitProfiles_ReportsFailures(t *testing.T) {
	f := loadTestProfiles(t, `
profiles:
  - name: good
    format: ll
  - name: bad
    triple: not-a-real-triple
`)

	report.InitReporter(report.LogLevelSilent)
	err := emitProfiles(f.Module, f.Profiles)
	assert.ErrorIs(t, err, llvm.ErrUnknownTarget)

	errs, _ := report.Counts()
	assert.Equal(t, 1, errs)

	_, err = os.Stat(f.Profiles[0].OutputPath())
	assert.NoError(t, err, "the other profiles still run")
}

func TestHeaderTarget(t *testing.T) {
	one := []*profile.Profile{{Triple: "x86_64-linux-gnu"}}
	assert.Equal(t, "x86_64-unknown-linux-gnu", headerTarget(one))

	host := []*profile.Profile{{}}
	assert.Equal(t, llvm.DefaultTriple(), headerTarget(host))

	assert.Equal(t, "2 profiles", headerTarget([]*profile.Profile{{}, {}}))
}

func TestTargetLines(t *testing.T) {
	llvm.InitializeAll()

	lines := targetLines()
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.NotEmpty(t, line[0])
	}
}
