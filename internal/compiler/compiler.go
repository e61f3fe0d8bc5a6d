package compiler

import (
	"context"
	"runtime"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/steamkit/enums/internal/exc"
	"github.com/steamkit/enums/internal/idl"
	"github.com/steamkit/enums/internal/iter"
	"github.com/steamkit/enums/internal/target"
)

type Option func(c *compiler) error

func OptionWithFS(fs idl.FileSystem) Option {
	return func(c *compiler) error {
		c.FS = fs
		return nil
	}
}

func OptionWithLookupEnv(lookupEnv func(string) (string, bool)) Option {
	return func(c *compiler) error {
		c.LookupENV = lookupEnv
		return nil
	}
}

// OptionWithExcReporter installs the factory that creates the Reporter for
// each Compile call.
func OptionWithExcReporter(factory func() exc.Reporter) Option {
	return func(c *compiler) error {
		c.NewReporter = factory
		return nil
	}
}

func OptionWithLogger(logger *zap.Logger) Option {
	return func(c *compiler) error {
		c.Logger = logger
		return nil
	}
}

func OptionWithMaxConcurrency(n int) Option {
	return func(c *compiler) error {
		c.MaxConcurrency = n
		return nil
	}
}

func New(opts ...Option) (idl.Compiler, error) {
	c := &compiler{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.LookupENV == nil {
		c.LookupENV = func(string) (string, bool) { return "", false }
	}
	if c.FS == nil {
		dfs, err := NewDefaultFS(c.LookupENV)
		if err != nil {
			return nil, err
		}
		c.FS = dfs
	}
	if c.MaxConcurrency == 0 {
		max := runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if max > cpus {
			max = cpus
		}
		c.MaxConcurrency = max
	}
	if c.Semaphore == nil {
		c.Semaphore = semaphore.NewWeighted(int64(c.MaxConcurrency))
	}
	if c.NewReporter == nil {
		c.NewReporter = func() exc.Reporter { return exc.NewReporter(nil) }
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.SubCompilers == nil {
		c.SubCompilers = DefaultSubCompilers()
	}
	return c, nil
}

type compiler struct {
	LookupENV      func(string) (string, bool)
	FS             idl.FileSystem
	MaxConcurrency int
	Semaphore      *semaphore.Weighted
	NewReporter    func() exc.Reporter
	Logger         *zap.Logger
	SubCompilers   map[idl.FileKind]SubCompiler
}

func (self *compiler) Compile(ctx context.Context, req *idl.CompileRequest) (*idl.CompileResponse, error) {
	reporter := self.NewReporter()
	filter, ferr := familyFilter(req.Families)
	if ferr != nil {
		return nil, reporter.Report(ferr)
	}
	files := make([]idl.File, 0, len(req.Files))
	for _, f := range req.Files {
		uri, nerr := target.Normalize(f)
		if nerr != nil {
			return nil, reporter.Report(nerr)
		}
		in, err := self.FS.Open(ctx, uri)
		if err != nil {
			if e, ok := err.(exc.Exception); ok {
				return nil, reporter.Report(e)
			}
			return nil, reporter.Report(exc.WrapUnknown(exc.Location{URI: uri}, err))
		}
		for _, inf := range in {
			if inf.Kind(ctx) == idl.FileKindNone {
				continue
			}
			files = append(files, inf)
		}
	}

	// buffered so that workers never block once Compile has returned early
	results := make(chan fileResult, len(files))
	for _, file := range files {
		go func(file idl.File) {
			module, err := self.compileFile(ctx, reporter, file)
			results <- fileResult{module, err}
		}(file)
	}

	modules := make([]*idl.Module, 0, len(files))
	var firstErr error
	for x := 0; x < len(files); x = x + 1 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case result := <-results:
			if result.err != nil {
				if firstErr == nil {
					firstErr = result.err
				}
				continue
			}
			if result.module != nil {
				modules = append(modules, result.module)
			}
		}
	}
	sort.Slice(modules, func(i, j int) bool {
		return modules[i].URI < modules[j].URI
	})

	final := &idl.Image{}
	flagged := make(map[string]bool, len(req.FlagFamilies))
	for _, name := range req.FlagFamilies {
		flagged[name] = true
	}
	var all []*idl.Family
	for _, mod := range modules {
		if final.Package == "" {
			final.Package = mod.Package
		} else if mod.Package != "" && mod.Package != final.Package {
			self.Logger.Warn("ignoring package name from later definition file",
				zap.String("uri", mod.URI),
				zap.String("package", mod.Package),
				zap.String("using", final.Package))
		}
		for _, family := range mod.Families {
			if flagged[family.Name] {
				family.Kind = idl.FamilyKindFlags
			}
			all = append(all, family)
		}
		self.Logger.Debug("compiled definition file",
			zap.String("uri", mod.URI),
			zap.Int("families", len(mod.Families)))
	}
	selected, err := iter.Collect(ctx, iter.NewIteratorFilter(iter.NewSlice(all), filter))
	if err != nil {
		return nil, err
	}
	final.Families = selected
	check(final, reporter)

	caught, warnings := reporter.Split()
	for _, e := range warnings {
		self.Logger.Warn(e.Message(), zap.String("code", e.Code()), zap.String("location", e.Location().String()))
	}
	if len(caught) > 0 {
		return &idl.CompileResponse{
			Image: final,
		}, MultiException(caught)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return &idl.CompileResponse{
		Image: final,
	}, nil
}

func (self *compiler) compileFile(ctx context.Context, reporter exc.Reporter, file idl.File) (*idl.Module, error) {
	if err := self.Semaphore.Acquire(ctx, 1); err != nil {
		return nil, exc.WrapUnknown(exc.Location{URI: file.Path(ctx)}, err)
	}
	defer self.Semaphore.Release(1)
	sc := self.SubCompilers[file.Kind(ctx)]
	if sc == nil {
		e := exc.New(exc.Location{URI: file.Path(ctx)}, exc.CodeUnsupportedFileFormat, "Unsupported file format")
		return nil, reporter.Report(e)
	}
	return sc.CompileFile(ctx, reporter, file)
}

func familyFilter(patterns []string) (idl.Filter[*idl.Family], exc.Exception) {
	filters := make([]idl.Filter[*idl.Family], 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, exc.Wrap(exc.Location{URI: pattern}, exc.CodeInvalidPattern, err)
		}
		filters = append(filters, iter.FilterFunc[*idl.Family](func(ctx context.Context, f *idl.Family) bool {
			return g.Match(f.Name)
		}))
	}
	return iter.Any(filters...), nil
}

type fileResult struct {
	module *idl.Module
	err    error
}

type MultiException []exc.Exception

func (self MultiException) Error() string {
	var b strings.Builder
	for _, err := range self[:len(self)-1] {
		b.WriteString(err.Error())
		b.WriteString("; ")
	}
	b.WriteString(self[len(self)-1].Error())
	return b.String()
}
