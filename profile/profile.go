package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"llkit/llvm"
)

// ErrInvalidProfile is returned when a profile file is malformed.
var ErrInvalidProfile = errors.New("invalid profile")

// Format is the kind of output a profile produces.
type Format int

// Enumeration of the output formats.
const (
	FormatObj Format = iota
	FormatAsm
	FormatBitcode
	FormatIR
)

var formatNames = map[string]Format{
	"obj": FormatObj,
	"asm": FormatAsm,
	"bc":  FormatBitcode,
	"ll":  FormatIR,
}

var formatExts = []string{".o", ".s", ".bc", ".ll"}

// ParseFormat converts the name of an output format to its value.  The empty
// string selects object files.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatObj, nil
	}

	if f, ok := formatNames[s]; ok {
		return f, nil
	}

	return 0, fmt.Errorf("unknown output format `%s`", s)
}

// Ext returns the file extension of the format.
func (f Format) Ext() string {
	return formatExts[f]
}

func (f Format) String() string {
	return strings.TrimPrefix(f.Ext(), ".")
}

// -----------------------------------------------------------------------------

// fileData is a profile file as it is encoded in TOML or YAML.
type fileData struct {
	Module   string     `toml:"module" yaml:"module"`
	Profiles []*Profile `toml:"profiles" yaml:"profiles"`
}

// File is a loaded and validated profile file.
type File struct {
	// Path is the path the file was loaded from.
	Path string

	// Module is the name of the module emitted by the profiles.
	Module string

	Profiles []*Profile
}

// Profile is one code generation configuration.
type Profile struct {
	Name      string `toml:"name" yaml:"name"`
	Triple    string `toml:"triple" yaml:"triple"`
	CPU       string `toml:"cpu" yaml:"cpu"`
	Features  string `toml:"features" yaml:"features"`
	OptLevel  string `toml:"opt-level" yaml:"opt-level"`
	Reloc     string `toml:"reloc" yaml:"reloc"`
	CodeModel string `toml:"code-model" yaml:"code-model"`
	Format    string `toml:"format" yaml:"format"`
	Output    string `toml:"output" yaml:"output"`
	Default   bool   `toml:"default" yaml:"default"`

	// The directory relative output paths are resolved against.
	dir string

	// The name of the module, used for the default output path.
	module string
}

// Load reads the profile file at path.  The encoding is selected by the file
// extension: `.toml`, `.yaml` or `.yml`.
func Load(path string) (*File, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fd := &fileData{}
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		err = toml.Unmarshal(buff, fd)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(buff, fd)
	default:
		return nil, fmt.Errorf("%w: unsupported file extension `%s`", ErrInvalidProfile, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProfile, err)
	}

	f := &File{Path: path, Module: fd.Module, Profiles: fd.Profiles}
	if err := f.validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// validate checks that the file contents are valid.
func (f *File) validate() error {
	if f.Module == "" {
		f.Module = strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
	}

	if len(f.Profiles) == 0 {
		return fmt.Errorf("%w: %s must provide at least one profile", ErrInvalidProfile, f.Path)
	}

	names := make(map[string]struct{})
	defaultName := ""
	for i, prof := range f.Profiles {
		if prof == nil || prof.Name == "" {
			return fmt.Errorf("%w: profile %d has no name", ErrInvalidProfile, i)
		}

		if _, ok := names[prof.Name]; ok {
			return fmt.Errorf("%w: multiple profiles named `%s`", ErrInvalidProfile, prof.Name)
		}
		names[prof.Name] = struct{}{}

		if prof.Default {
			if defaultName != "" {
				return fmt.Errorf("%w: both `%s` and `%s` are marked default", ErrInvalidProfile, defaultName, prof.Name)
			}

			defaultName = prof.Name
		}

		if _, err := prof.Options(); err != nil {
			return fmt.Errorf("%w: profile `%s`: %s", ErrInvalidProfile, prof.Name, err)
		}

		if _, err := ParseFormat(prof.Format); err != nil {
			return fmt.Errorf("%w: profile `%s`: %s", ErrInvalidProfile, prof.Name, err)
		}

		prof.dir = filepath.Dir(f.Path)
		prof.module = f.Module
	}

	return nil
}

// Select returns the profile named name.  If name is empty, the profile marked
// default is selected or, if there is none, the first profile.
func (f *File) Select(name string) (*Profile, error) {
	if name == "" {
		for _, prof := range f.Profiles {
			if prof.Default {
				return prof, nil
			}
		}

		return f.Profiles[0], nil
	}

	for _, prof := range f.Profiles {
		if prof.Name == name {
			return prof, nil
		}
	}

	return nil, fmt.Errorf("%s has no profile `%s`", f.Path, name)
}

// -----------------------------------------------------------------------------

// Options converts the profile into the options used to emit a module.
func (p *Profile) Options() (llvm.EmitOptions, error) {
	opts := llvm.EmitOptions{
		Triple:   p.Triple,
		CPU:      p.CPU,
		Features: p.Features,
	}

	var err error
	if p.OptLevel != "" {
		if opts.OptLevel, err = llvm.ParseOptLevel(p.OptLevel); err != nil {
			return opts, err
		}
	}

	if p.Reloc != "" {
		if opts.Reloc, err = llvm.ParseRelocMode(p.Reloc); err != nil {
			return opts, err
		}
	}

	if p.CodeModel != "" {
		if opts.CodeModel, err = llvm.ParseCodeModel(p.CodeModel); err != nil {
			return opts, err
		}
	}

	format, err := ParseFormat(p.Format)
	if err != nil {
		return opts, err
	}

	if format == FormatAsm {
		opts.FileType = llvm.AssemblyFile
	}

	return opts, nil
}

// OutputFormat returns the output format of the profile.
func (p *Profile) OutputFormat() Format {
	// Validated on load.
	f, _ := ParseFormat(p.Format)
	return f
}

// OutputPath returns the path the profile writes its output to.  Relative
// paths are relative to the profile file.
func (p *Profile) OutputPath() string {
	out := p.Output
	if out == "" {
		out = p.module + p.OutputFormat().Ext()
	}

	if filepath.IsAbs(out) {
		return out
	}

	return filepath.Join(p.dir, out)
}
