package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/terrain-map/hmap_converter/internal/converter"
	"github.com/terrain-map/hmap_converter/internal/converters/elevation/offset_elevation_corrector"
	"github.com/terrain-map/hmap_converter/internal/converters/proj4_coordinate_converter"
	"github.com/terrain-map/hmap_converter/pkg"
	"github.com/terrain-map/hmap_converter/tools"
)

const VERSION = "1.0.0"

const logo = `
 _                                                         _
| |__  _ __ ___   __ _ _ __     ___ ___  _ ____   __ _ __ | |_ ___ _ __
| '_ \| '_ ' _ \ / _' | '_ \   / __/ _ \| '_ \ \ / / (_)_ \| __/ _ \ '__|
| | | | | | | | | (_| | |_) | | (_| (_) | | | \ V /|  __/ |  ||  __/ |
|_| |_|_| |_| |_|\__,_| .__/   \___\___/|_| |_|\_/  \___|_| \__\___|_|
                      |_|  terrain mesh <-> heightmap converter
`

func main() {
	log.SetPrefix("[hmap_converter] ")
	log.SetFlags(log.LUTC | log.Ldate | log.Lmicroseconds | log.Lshortfile)

	flagsGlobal := tools.ParseFlagsGlobal()

	args := flag.Args()
	if len(args) == 0 {
		if *flagsGlobal.Help {
			showHelp()
			return
		}
		if *flagsGlobal.Version {
			printVersion()
			return
		}
		log.Fatal("Please specify a subcommand [obj2hmap|hmap2obj|verify].")
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case tools.CommandObj2Hmap:
		mainCommandObj2Hmap(args)
	case tools.CommandHmap2Obj:
		mainCommandHmap2Obj(args)
	case tools.CommandVerify:
		mainCommandVerify(args)
	default:
		log.Fatalf("Unrecognized command [%q]. Command must be one of [obj2hmap|hmap2obj|verify]", cmd)
	}
}

func mainCommandObj2Hmap(args []string) {
	flags := tools.ParseFlagsForCommandObj2Hmap(args)

	if *flags.Help {
		showHelpObj2Hmap()
		return
	}
	if *flags.Version {
		printVersion()
		return
	}
	applyLoggingFlags(flags.ConverterFlags)

	opts := optionsFromConverterFlags(flags.ConverterFlags, tools.CommandObj2Hmap)
	opts.Obj2HmapOptions = &converter.Obj2HmapOptions{Encoding: converter.EncodingU16}
	tools.DeriveObj2HmapParams(flags.Args, opts)

	if msg, res := validateOptionsForCommandObj2Hmap(opts); !res {
		log.Fatal("Error parsing input parameters: " + msg)
	}

	err := pkg.NewObj2HmapConverter(
		tools.NewStandardFileFinder(),
		proj4_coordinate_converter.NewProj4CoordinateConverter(),
		offset_elevation_corrector.NewOffsetElevationCorrector(opts.ZOffset),
	).RunConversion(opts)

	if err != nil {
		log.Fatal("Error while converting: ", err)
	}
	tools.LogOutput("Conversion Completed")
}

func mainCommandHmap2Obj(args []string) {
	flags := tools.ParseFlagsForCommandHmap2Obj(args)

	if *flags.Help {
		showHelpHmap2Obj()
		return
	}
	if *flags.Version {
		printVersion()
		return
	}
	applyLoggingFlags(flags.ConverterFlags)

	opts := optionsFromConverterFlags(flags.ConverterFlags, tools.CommandHmap2Obj)
	opts.Hmap2ObjOptions = &converter.Hmap2ObjOptions{Absolute: *flags.Absolute}
	tools.DeriveHmap2ObjParams(flags.Args, opts)

	if msg, res := validateOptionsForCommandHmap2Obj(opts); !res {
		log.Fatal("Error parsing input parameters: " + msg)
	}

	err := pkg.NewHmap2ObjConverter().RunConversion(opts)

	if err != nil {
		log.Fatal("Error while converting: ", err)
	}
	tools.LogOutput("Conversion Completed")
}

func mainCommandVerify(args []string) {
	flags := tools.ParseFlagsForCommandVerify(args)

	if *flags.Help {
		showHelpVerify()
		return
	}
	if *flags.Version {
		printVersion()
		return
	}
	applyLoggingFlags(flags.ConverterFlags)

	opts := optionsFromConverterFlags(flags.ConverterFlags, tools.CommandVerify)
	opts.Obj2HmapOptions = &converter.Obj2HmapOptions{Encoding: converter.EncodingU16}
	opts.VerifyOptions = &converter.VerifyOptions{Workdir: *flags.Workdir}
	tools.DeriveVerifyParams(flags.Args, opts)

	if msg, res := validateOptionsForCommandVerify(opts); !res {
		log.Fatal("Error parsing input parameters: " + msg)
	}

	err := pkg.NewVerifier(tools.NewStandardFileFinder()).RunConversion(opts)

	if err != nil {
		log.Fatal("Error while verifying: ", err)
	}
	tools.LogOutput("Verification Completed")
}

func applyLoggingFlags(flags tools.ConverterFlags) {
	if *flags.Silent {
		tools.DisableLogger()
	} else {
		printLogo()
	}
	if !*flags.LogTimestamp {
		tools.DisableLoggerTimestamp()
	}
}

func optionsFromConverterFlags(flags tools.ConverterFlags, command string) *converter.Options {
	return &converter.Options{
		SridIn:           *flags.SridIn,
		SridOut:          *flags.SridOut,
		ZOffset:          *flags.ZOffset,
		FolderProcessing: *flags.Folder,
		Recursive:        *flags.Recursive,
		Command:          command,
	}
}

// Validates the obj2hmap options, checking that the declared paths can be
// opened, the grid dimensions are all set and exactly one displacement axis
// was selected.
func validateOptionsForCommandObj2Hmap(opts *converter.Options) (string, bool) {
	if msg, res := validateInputOutput(opts, "Wavefront mesh", "heightmap"); !res {
		return msg, false
	}
	return validateGridParams(opts.Obj2HmapOptions)
}

func validateOptionsForCommandHmap2Obj(opts *converter.Options) (string, bool) {
	// The heightmap leg converts one file at a time; accepting -folder here
	// would validate a directory pair and then fail opening it as a file.
	if opts.FolderProcessing {
		return "Folder processing is not supported by hmap2obj", false
	}
	if msg, res := validateInputOutput(opts, "heightmap", "Wavefront mesh"); !res {
		return msg, false
	}

	cmdOpts := opts.Hmap2ObjOptions
	for _, n := range cmdOpts.GridSize {
		if n < 1 {
			return "The heightmap size parameter is invalid", false
		}
	}
	if msg, res := validateCorners(cmdOpts.BoxCornersFound, cmdOpts.BoxCorners); !res {
		return msg, false
	}
	return "", true
}

func validateOptionsForCommandVerify(opts *converter.Options) (string, bool) {
	if !tools.CanOpenForRead(opts.Input) && !opts.FolderProcessing {
		return "The input Wavefront mesh file was not opened", false
	}
	if _, err := os.Stat(opts.Input); os.IsNotExist(err) {
		return "Input file/folder not found", false
	}
	return validateGridParams(opts.Obj2HmapOptions)
}

func validateInputOutput(opts *converter.Options, inputKind, outputKind string) (string, bool) {
	if opts.FolderProcessing {
		if info, err := os.Stat(opts.Input); err != nil || !info.IsDir() {
			return "Input folder not found", false
		}
		if info, err := os.Stat(opts.Output); err != nil || !info.IsDir() {
			return "Output folder not found", false
		}
		return "", true
	}

	if !tools.CanOpenForRead(opts.Input) {
		return "The input " + inputKind + " file was not opened", false
	}
	if !tools.CanOpenForWrite(opts.Output) {
		return "The output " + outputKind + " file was not opened", false
	}
	return "", true
}

func validateGridParams(cmdOpts *converter.Obj2HmapOptions) (string, bool) {
	for _, n := range cmdOpts.GridSize {
		if n < 1 {
			return "The heightmap size parameter is invalid", false
		}
	}
	if _, ok := cmdOpts.DisplacementAxis(); !ok {
		return "The heightmap displacement axis parameter is invalid", false
	}
	if msg, res := validateCorners(cmdOpts.BoxCornersFound, cmdOpts.BoxCorners); !res {
		return msg, false
	}
	return "", true
}

func validateCorners(found int, corners [6]float64) (string, bool) {
	if found == 0 {
		return "", true
	}
	if found != 6 {
		return fmt.Sprintf("The bounding box needs 6 corner components, got %d", found), false
	}
	for i := 0; i < 3; i++ {
		if corners[i] >= corners[i+3] {
			return "The bounding box corners are degenerate or inverted", false
		}
	}
	return "", true
}

func printLogo() {
	fmt.Println(logo)
}

func showHelp() {
	printLogo()
	fmt.Println("***")
	fmt.Println("hmap_converter converts Wavefront mesh terrain into binary/text heightmaps and back.")
	printVersion()
	fmt.Println("***")
	fmt.Println("")
	fmt.Println("Subcommands: obj2hmap, hmap2obj, verify. Run a subcommand with -help for its usage.")
	fmt.Println("")
	fmt.Println("Command line flags: ")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

func showHelpObj2Hmap() {
	printLogo()
	fmt.Println("obj2hmap - converts a Wavefront mesh file into a heightmap file")
	fmt.Println("")
	fmt.Println("hmap_converter obj2hmap [flags] OBJ HMAP x|y|z SIZE_X SIZE_Y SIZE_Z [TYPE] [CORNERS...]")
	fmt.Println("OBJ        - the input mesh file (.obj or .ply)")
	fmt.Println("HMAP       - the output heightmap file")
	fmt.Println("x y z      - the axis carrying the displacement value of the heightmap")
	fmt.Println("SIZE_XYZ   - the three integer dimensions of the heightmap grid")
	fmt.Println("TYPE       - one of u8 u16 u32 f32 tu8 tu16 tu32 tf32 (default u16)")
	fmt.Println("CORNERS    - optional six floats fixing the bounding box, low corner before high")
	fmt.Println("")
	fmt.Println("Example:")
	fmt.Println("hmap_converter obj2hmap terrain.obj terrain.r16 y 4097 0xFFFF 4097")
}

func showHelpHmap2Obj() {
	printLogo()
	fmt.Println("hmap2obj - converts a binary 16 bit heightmap file into a Wavefront mesh file")
	fmt.Println("")
	fmt.Println("hmap_converter hmap2obj [flags] HMAP OBJ SIZE_X SIZE_Y [CORNERS...] [--absolute]")
	fmt.Println("HMAP       - the input heightmap file")
	fmt.Println("OBJ        - the output mesh file")
	fmt.Println("SIZE_XY    - the two integer dimensions of the heightmap grid")
	fmt.Println("CORNERS    - optional six floats fixing the target box, low corner before high")
	fmt.Println("--absolute - remap elevation against the full 16 bit range instead of min/max")
	fmt.Println("")
	fmt.Println("Example:")
	fmt.Println("hmap_converter hmap2obj terrain.r16 terrain.obj 4096 4096")
}

func showHelpVerify() {
	printLogo()
	fmt.Println("verify - round-trips a mesh through the u16 heightmap encoding and reports drift")
	fmt.Println("")
	fmt.Println("hmap_converter verify [flags] OBJ x|y|z SIZE_X SIZE_Y SIZE_Z")
}

func printVersion() {
	fmt.Println("v." + VERSION)
}
