package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/steamkit/enums/enum"
	"github.com/steamkit/enums/internal/compiler"
	"github.com/steamkit/enums/internal/exc"
	"github.com/steamkit/enums/internal/fs"
	"github.com/steamkit/enums/internal/gogen"
	"github.com/steamkit/enums/internal/idl"
)

type opts struct {
	Roots    []string
	Output   string
	Package  string
	Families []string
	Flags    []string
	Verbose  bool
	Describe []string
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) int {
	op := &opts{}
	flags := pflag.NewFlagSet("enumgen", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringSliceVar(&op.Roots, "root", []string{"."}, "Root search paths for definition files.")
	flags.StringVar(&op.Output, "output", "-", "Output file or - for STDOUT.")
	flags.StringVar(&op.Package, "package", "", "Package name of the generated file. Defaults to the package the definitions declare.")
	flags.StringArrayVar(&op.Families, "family", nil, "Glob selecting families to generate. May be repeated.")
	flags.StringSliceVar(&op.Flags, "flags", nil, "Families to treat as flags when the definition format cannot say so.")
	flags.BoolVar(&op.Verbose, "verbose", false, "Log debug output.")
	flags.StringArrayVar(&op.Describe, "describe", nil, "Decode FAMILY=VALUE against the families in the given definition files instead of generating code. May be repeated.")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	targets := flags.Args()

	log, err := newLogger(op.Verbose)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	defer func() { _ = log.Sync() }()

	if len(targets) == 0 {
		fmt.Fprintln(stderr, "no definition files given")
		flags.PrintDefaults()
		return 2
	}

	mf := make(fs.FileSystemMulti, 0, len(op.Roots)+1)
	for _, root := range op.Roots {
		absRoot, errAbs := filepath.Abs(root)
		if errAbs != nil {
			fmt.Fprintln(stderr, errAbs.Error())
			return 1
		}
		rf, err := fs.NewFileSystemLocal(absRoot)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		mf = append(mf, rf)
	}
	df, err := compiler.NewDefaultFS(os.LookupEnv)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	mf = append(mf, df)

	c, err := compiler.New(
		compiler.OptionWithLookupEnv(os.LookupEnv),
		compiler.OptionWithFS(mf),
		compiler.OptionWithLogger(log.Named("compiler")),
	)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	out, err := c.Compile(ctx, &idl.CompileRequest{
		Files:        targets,
		Families:     op.Families,
		FlagFamilies: op.Flags,
	})
	if err != nil {
		printErr(stderr, err)
		return 1
	}

	if len(op.Describe) > 0 {
		r, err := registryFromImage(out.Image)
		if err != nil {
			printErr(stderr, err)
			return 1
		}
		status := 0
		for _, arg := range op.Describe {
			if err := describe(stdout, r, arg); err != nil {
				fmt.Fprintln(stderr, err.Error())
				status = 1
			}
		}
		return status
	}

	fileName := gogen.DefaultFileName
	if op.Output != "-" {
		fileName = filepath.Base(op.Output)
	}
	gen, err := gogen.New(gogen.OptionWithLogger(log.Named("gogen"))).Generate(ctx, &idl.GenerateRequest{
		Package:  op.Package,
		FileName: fileName,
		Image:    out.Image,
		Sources:  targets,
	})
	if err != nil {
		printErr(stderr, err)
		return 1
	}

	for _, f := range gen.Files {
		if op.Output == "-" {
			fmt.Fprint(stdout, f.Content)
			continue
		}
		absOut, err := filepath.Abs(op.Output)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		dir, err := fs.NewFileSystemLocal(filepath.Dir(absOut))
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		if err := dir.Write(ctx, "/"+f.Name, f.Content); err != nil {
			printErr(stderr, err)
			return 1
		}
		log.Info("wrote generated source",
			zap.String("file", absOut),
			zap.Int("families", len(out.Image.Families)))
	}
	return 0
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	log, err := config.Build()
	if err != nil {
		return nil, err
	}
	return log.Named("enumgen"), nil
}

func printErr(w io.Writer, err error) {
	var me compiler.MultiException
	if errors.As(err, &me) {
		for _, e := range me {
			fmt.Fprintln(w, e.Error())
		}
		return
	}
	fmt.Fprintln(w, err.Error())
}

// registryFromImage builds the registry the generated code would declare,
// straight from compiled definitions.
func registryFromImage(image *idl.Image) (*enum.Registry, error) {
	descriptors := make([]enum.Descriptor, 0, len(image.Families))
	for _, f := range image.Families {
		members := make([]enum.Member[int32], 0, len(f.Members))
		for _, m := range f.Members {
			members = append(members, enum.Member[int32]{Name: m.Name, Value: int32(m.Value)})
		}
		if f.Kind == idl.FamilyKindFlags {
			ff, err := enum.BuildFlagFamily(f.Name, members...)
			if err != nil {
				return nil, err
			}
			descriptors = append(descriptors, ff)
			continue
		}
		family, err := enum.BuildFamily(f.Name, members...)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, family)
	}
	return enum.NewRegistry(descriptors...)
}

// describe decodes one FAMILY=VALUE argument. VALUE may be written in any
// base strconv accepts and may use the full unsigned 32-bit range.
func describe(w io.Writer, r *enum.Registry, arg string) error {
	family, raw, ok := strings.Cut(arg, "=")
	if !ok || family == "" || raw == "" {
		return exc.New(exc.Location{URI: arg}, exc.CodeInvalidPattern, "expected FAMILY=VALUE")
	}
	n, err := strconv.ParseInt(raw, 0, 64)
	if err != nil || n < math.MinInt32 || n > math.MaxUint32 {
		return exc.New(exc.Location{URI: family}, exc.CodeValueOutOfRange, fmt.Sprintf("%q is not a 32-bit integer", raw))
	}
	v := int32(uint32(n))
	text, err := r.Describe(family, v)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, text)
	ff, err := r.FlagFamily(family)
	if err != nil {
		return nil
	}
	for _, m := range ff.Decompose(v) {
		fmt.Fprintf(w, "  0x%08x %s\n", uint32(m.Value), m.Name)
	}
	if unknown := uint32(ff.Unknown(v)); unknown != 0 {
		fmt.Fprintf(w, "  0x%08x (unknown)\n", unknown)
	}
	return nil
}
