package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"llkit/llvm"
	"llkit/profile"
	"llkit/report"
)

// buildSmokeModule builds a module named name in ctx holding `add`, which sums
// two i32 parameters, and `main`, which returns `add(2, 3)`.
func buildSmokeModule(ctx *llvm.Context, name string) *llvm.Module {
	mod := ctx.NewModule(name)
	mod.SetSourceFileName(name)

	b := ctx.NewBuilder()
	defer b.Dispose()

	i32 := ctx.Int32Type()

	addType := ctx.FunctionType(i32, []llvm.Type{i32, i32}, false)
	add := mod.AddFunction("add", addType)
	b.PositionAtEnd(ctx.AppendBasicBlock(add, "entry"))

	lhs, rhs := add.Param(0), add.Param(1)
	lhs.SetName("a")
	rhs.SetName("b")
	sum := b.BuildAdd(lhs, rhs)
	sum.SetName("sum")
	b.BuildRet(sum)

	mainType := ctx.FunctionType(i32, nil, false)
	main := mod.AddFunction("main", mainType)
	b.PositionAtEnd(ctx.AppendBasicBlock(main, "entry"))

	args := []llvm.Value{ctx.ConstInt(i32, 2, false), ctx.ConstInt(i32, 3, false)}
	result := b.BuildCall(addType, add, args, "result")
	b.BuildRet(result)

	return mod
}

// emitProfile builds the smoke module in its own context and writes it out as
// configured by prof.
func emitProfile(moduleName string, prof *profile.Profile) error {
	opts, err := prof.Options()
	if err != nil {
		return err
	}

	ctx := llvm.NewContext()
	defer ctx.Dispose()

	mod := buildSmokeModule(ctx, moduleName)
	if err := mod.Verify(); err != nil {
		return err
	}

	outPath := prof.OutputPath()
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	switch prof.OutputFormat() {
	case profile.FormatBitcode:
		setModuleTarget(mod, opts)
		if !mod.WriteBitcodeToFile(outPath) {
			return fmt.Errorf("failed to write bitcode to `%s`", outPath)
		}

		return nil
	case profile.FormatIR:
		setModuleTarget(mod, opts)
		return mod.WriteIRToFile(outPath)
	default:
		return mod.Emit(opts, outPath)
	}
}

// setModuleTarget records the profile's triple on modules written without
// going through a target machine.
func setModuleTarget(mod *llvm.Module, opts llvm.EmitOptions) {
	if opts.Triple != "" {
		mod.SetTarget(llvm.NormalizeTriple(opts.Triple))
	}
}

// emitProfiles emits every profile in profs concurrently: each one gets its
// own LLVM context.  Failures are reported under the profile's name and the
// first error is returned.
func emitProfiles(moduleName string, profs []*profile.Profile) error {
	g := &errgroup.Group{}
	g.SetLimit(runtime.NumCPU())

	for _, prof := range profs {
		g.Go(func() error {
			defer report.CatchErrors(prof.Name)

			if err := emitProfile(moduleName, prof); err != nil {
				report.ReportError(prof.Name, err)
				return err
			}

			report.ReportInfo(prof.Name, "wrote %s", prof.OutputPath())
			return nil
		})
	}

	return g.Wait()
}

// headerTarget describes the targets of profs for the header.
func headerTarget(profs []*profile.Profile) string {
	if len(profs) > 1 {
		return fmt.Sprintf("%d profiles", len(profs))
	}

	if profs[0].Triple != "" {
		return llvm.NormalizeTriple(profs[0].Triple)
	}

	return llvm.DefaultTriple()
}
