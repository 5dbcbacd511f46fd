package cmd

import (
	"os"

	"llkit/common"
	"llkit/llvm"
	"llkit/profile"
	"llkit/report"

	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `llkit` CLI utility.
func Execute() {
	// set up the argument parser and all its commands and arguments
	cli := olive.NewCLI("llkit", "llkit drives the LLVM code generator through safe bindings", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false, report.LogLevelNames)
	logLvlArg.SetDefaultValue("verbose")

	cli.AddSubcommand("triple", "print the host target triple and CPU", false)
	cli.AddSubcommand("targets", "list the registered code generator targets", false)

	emitCmd := cli.AddSubcommand("emit", "build the smoke module and emit it per profile", true)
	emitCmd.AddPrimaryArg("profile-file", "the path to the profile file", false)
	emitCmd.AddStringArg("profile", "p", "the name of the profile to emit", false)
	emitCmd.AddFlag("all", "a", "emit every profile in the file concurrently")

	cli.AddSubcommand("version", "print the llkit version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	report.InitReporter(report.ParseLogLevel(result.Arguments["loglevel"].(string)))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "triple":
		execTripleCommand()
	case "targets":
		execTargetsCommand()
	case "emit":
		execEmitCommand(subResult)
	case "version":
		report.PrintInfoMessage("llkit Version", common.Version)
	}
}

// execTripleCommand prints information about the host.
func execTripleCommand() {
	report.PrintInfoMessage("Triple", llvm.DefaultTriple())
	report.PrintInfoMessage("CPU", llvm.HostCPUName())

	if features := llvm.HostCPUFeatures(); features != "" {
		report.PrintInfoMessage("Features", features)
	}
}

// execTargetsCommand lists every target compiled into LLVM.
func execTargetsCommand() {
	llvm.InitializeAll()

	for _, line := range targetLines() {
		report.PrintInfoMessage(line[0], line[1])
	}
}

// targetLines returns the name and description of each registered target.
func targetLines() [][2]string {
	var lines [][2]string
	for it := llvm.Targets(); it.Next(); {
		target := it.Item()
		lines = append(lines, [2]string{target.Name(), target.Description()})
	}

	return lines
}

// execEmitCommand executes the emit subcommand and handles all errors.
func execEmitCommand(result *olive.ArgParseResult) {
	path := common.ProfileFileName
	if arg, ok := result.PrimaryArg(); ok {
		path = arg
	}

	name := ""
	if arg, ok := result.Arguments["profile"]; ok {
		name = arg.(string)
	}

	report.ReportBeginPhase("Loading")
	f, err := profile.Load(path)
	if err != nil {
		report.ReportFatal("failed to load profiles: %s", err)
	}

	var profs []*profile.Profile
	if result.HasFlag("all") {
		profs = f.Profiles
	} else {
		prof, err := f.Select(name)
		if err != nil {
			report.ReportFatal(err.Error())
		}

		profs = append(profs, prof)
	}
	report.ReportEndPhase()

	report.ReportHeader(common.Version, headerTarget(profs))

	report.ReportBeginPhase("Emitting")
	err = emitProfiles(f.Module, profs)
	report.ReportFinished()

	// Panics recovered while emitting are only counted by the reporter.
	if err != nil || report.AnyErrors() {
		os.Exit(1)
	}
}
