package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llkit/llvm"
)

func writeProfile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const tomlProfiles = `
module = "smoke"

[[profiles]]
name = "debug"
opt-level = "O0"
format = "ll"

[[profiles]]
name = "release"
triple = "x86_64-unknown-linux-gnu"
cpu = "x86-64"
opt-level = "aggressive"
reloc = "pic"
code-model = "small"
format = "asm"
output = "out/release.s"
default = true
`

const yamlProfiles = `
profiles:
  - name: host
  - name: bitcode
    format: bc
    output: /tmp/llkit.bc
`

func TestLoad_TOML(t *testing.T) {
	path := writeProfile(t, "smoke.toml", tomlProfiles)

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "smoke", f.Module)
	require.Len(t, f.Profiles, 2)

	prof, err := f.Select("")
	require.NoError(t, err)
	assert.Equal(t, "release", prof.Name)

	opts, err := prof.Options()
	require.NoError(t, err)
	assert.Equal(t, llvm.EmitOptions{
		Triple:    "x86_64-unknown-linux-gnu",
		CPU:       "x86-64",
		OptLevel:  llvm.CodeGenLevelAggressive,
		Reloc:     llvm.RelocPIC,
		CodeModel: llvm.CodeModelSmall,
		FileType:  llvm.AssemblyFile,
	}, opts)

	assert.Equal(t, FormatAsm, prof.OutputFormat())
	assert.Equal(t, filepath.Join(filepath.Dir(path), "out", "release.s"), prof.OutputPath())

	debug, err := f.Select("debug")
	require.NoError(t, err)
	assert.Equal(t, FormatIR, debug.OutputFormat())
	assert.Equal(t, filepath.Join(filepath.Dir(path), "smoke.ll"), debug.OutputPath())

	opts, err = debug.Options()
	require.NoError(t, err)
	assert.Equal(t, llvm.CodeGenLevelNone, opts.OptLevel)
}

func TestLoad_YAML(t *testing.T) {
	path := writeProfile(t, "demo.yaml", yamlProfiles)

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", f.Module, "module defaults to the file name")

	prof, err := f.Select("")
	require.NoError(t, err)
	assert.Equal(t, "host", prof.Name, "the first profile is used without a default")

	opts, err := prof.Options()
	require.NoError(t, err)
	assert.Equal(t, llvm.EmitOptions{}, opts)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "demo.o"), prof.OutputPath())

	bc, err := f.Select("bitcode")
	require.NoError(t, err)
	assert.Equal(t, FormatBitcode, bc.OutputFormat())
	assert.Equal(t, "/tmp/llkit.bc", bc.OutputPath())

	_, err = f.Select("missing")
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"no profiles", "a.toml", `module = "x"`},
		{"unnamed profile", "b.yaml", "profiles:\n  - triple: x86_64\n"},
		{"duplicate names", "c.yaml", "profiles:\n  - name: a\n  - name: a\n"},
		{"two defaults", "d.yaml", "profiles:\n  - name: a\n    default: true\n  - name: b\n    default: true\n"},
		{"bad opt level", "e.yaml", "profiles:\n  - name: a\n    opt-level: O9\n"},
		{"bad reloc", "f.yaml", "profiles:\n  - name: a\n    reloc: sometimes\n"},
		{"bad format", "g.yaml", "profiles:\n  - name: a\n    format: exe\n"},
		{"bad syntax", "h.toml", "[[profiles]\n"},
		{"bad extension", "i.json", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeProfile(t, tt.file, tt.content))
			assert.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFormat(t *testing.T) {
	for name, want := range formatNames {
		got, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}
}
