package tools

import (
	"flag"
)

const (
	CommandObj2Hmap = "obj2hmap"
	CommandHmap2Obj = "hmap2obj"
	CommandVerify   = "verify"
)

type FlagsGlobal struct {
	Help    *bool `json:"help"`
	Version *bool `json:"version"`
}

type ConverterFlags struct {
	SridIn       *int     `json:"srid_in"`
	SridOut      *int     `json:"srid_out"`
	ZOffset      *float64 `json:"zoffset"`
	Folder       *bool    `json:"folder"`
	Recursive    *bool    `json:"recursive"`
	Silent       *bool    `json:"silent"`
	LogTimestamp *bool    `json:"timestamp"`
	Help         *bool    `json:"help"`
	Version      *bool    `json:"version"`
}

type FlagsForCommandObj2Hmap struct {
	ConverterFlags
	// Positional leftovers carrying the historical loose parameter surface:
	// input/output paths, axis keyword, encoding keyword, dimensions, corners.
	Args []string
}

type FlagsForCommandHmap2Obj struct {
	ConverterFlags
	Absolute *bool `json:"absolute"`
	Args     []string
}

type FlagsForCommandVerify struct {
	ConverterFlags
	Workdir *string `json:"workdir"`
	Args    []string
}

func ParseFlagsGlobal() FlagsGlobal {
	help := defineBoolFlag("help", "h", false, "Displays this help.")
	version := defineBoolFlag("version", "v", false, "Displays the version of hmap_converter.")

	flag.Parse()

	return FlagsGlobal{
		Help:    help,
		Version: version,
	}
}

func ParseFlagsForCommandObj2Hmap(args []string) FlagsForCommandObj2Hmap {
	flagCommand := flag.NewFlagSet("command-obj2hmap", flag.ExitOnError)

	converterFlags := defineConverterFlags(flagCommand)

	flagCommand.Parse(args)

	return FlagsForCommandObj2Hmap{
		ConverterFlags: converterFlags,
		Args:           flagCommand.Args(),
	}
}

func ParseFlagsForCommandHmap2Obj(args []string) FlagsForCommandHmap2Obj {
	flagCommand := flag.NewFlagSet("command-hmap2obj", flag.ExitOnError)

	converterFlags := defineConverterFlags(flagCommand)
	absolute := defineBoolFlagCommand(flagCommand, "absolute", "a", false, "Remaps elevation against the full 16 bit sample range instead of the discovered min/max, preserving absolute scale across tiles of the same map.")

	flagCommand.Parse(args)

	return FlagsForCommandHmap2Obj{
		ConverterFlags: converterFlags,
		Absolute:       absolute,
		Args:           flagCommand.Args(),
	}
}

func ParseFlagsForCommandVerify(args []string) FlagsForCommandVerify {
	flagCommand := flag.NewFlagSet("command-verify", flag.ExitOnError)

	converterFlags := defineConverterFlags(flagCommand)
	workdir := defineStringFlagCommand(flagCommand, "workdir", "w", "", "Scratch folder for the intermediate round-trip files. Defaults to the system temp folder.")

	flagCommand.Parse(args)

	return FlagsForCommandVerify{
		ConverterFlags: converterFlags,
		Workdir:        workdir,
		Args:           flagCommand.Args(),
	}
}

func defineConverterFlags(flagCommand *flag.FlagSet) ConverterFlags {
	sridIn := defineIntFlagCommand(flagCommand, "srid-in", "", 0, "EPSG srid code of input mesh vertices. 0 disables reprojection.")
	sridOut := defineIntFlagCommand(flagCommand, "srid-out", "", 0, "EPSG srid code to reproject mesh vertices into before gridding. 0 disables reprojection.")
	zOffset := defineFloat64FlagCommand(flagCommand, "zoffset", "z", 0, "Offset to apply to the displacement coordinate of every vertex.")
	folder := defineBoolFlagCommand(flagCommand, "folder", "f", false, "Enables processing of all mesh files from the input folder. Input must be a folder if specified.")
	recursive := defineBoolFlagCommand(flagCommand, "recursive", "r", false, "Enables recursive lookup for mesh files inside subfolders.")
	silent := defineBoolFlagCommand(flagCommand, "silent", "s", false, "Use to suppress all the non-error messages.")
	logTimestamp := defineBoolFlagCommand(flagCommand, "timestamp", "t", false, "Adds timestamp to log messages.")
	help := defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help.")
	version := defineBoolFlagCommand(flagCommand, "version", "v", false, "Displays the version of hmap_converter.")

	return ConverterFlags{
		SridIn:       sridIn,
		SridOut:      sridOut,
		ZOffset:      zOffset,
		Folder:       folder,
		Recursive:    recursive,
		Silent:       silent,
		LogTimestamp: logTimestamp,
		Help:         help,
		Version:      version,
	}
}

func defineBoolFlag(name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flag.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name {
		flag.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineStringFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flagCommand.StringVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineIntFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue int, usage string) *int {
	var output int
	flagCommand.IntVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.IntVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineFloat64FlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue float64, usage string) *float64 {
	var output float64
	flagCommand.Float64Var(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.Float64Var(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineBoolFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flagCommand.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}
