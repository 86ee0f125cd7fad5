package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"

	"github.com/phyten/brackx/internal/config"
	"github.com/phyten/brackx/internal/engine"
	"github.com/phyten/brackx/internal/engine/opts"
	"github.com/phyten/brackx/internal/output"
	"github.com/phyten/brackx/internal/termcolor"
	"github.com/phyten/brackx/internal/util"
	"github.com/phyten/brackx/internal/web"
)

const (
	exitBalanced = 0
	exitBroken   = 1
	exitUsage    = 2
)

func main() {
	log.SetFlags(0)
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		os.Exit(serveCmd(os.Args[2:]))
	}
	os.Exit(checkCmd(os.Args[1:], os.Stdout))
}

// stringsFlag collects repeated flag values.
type stringsFlag []string

func (s *stringsFlag) String() string { return strings.Join(*s, ",") }

func (s *stringsFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func checkCmd(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("brackx", flag.ContinueOnError)

	var paths, excludes, pathRegex stringsFlag
	fs.Var(&paths, "path", "file or directory to check (repeatable; default: root)")
	fs.Var(&excludes, "exclude", "glob to skip, matched against relative path and base name (repeatable)")
	fs.Var(&pathRegex, "path-regex", "only check files whose relative path matches (repeatable)")
	var (
		excludeTypical = fs.Bool("exclude-typical", true, "skip typical noise dirs (.git, node_modules, vendor, ...)")
		maxFileBytes   = fs.Int("max-file-bytes", 0, "skip files larger than N bytes (0=unlimited)")
		jobs           = fs.Int("jobs", 0, "max parallel workers (0=auto)")
		root           = fs.String("root", "", "scan root (default: current dir)")
		outputFmt      = fs.String("output", "", "text|table|tsv|json|ndjson|csv|md")
		color          = fs.String("color", "", "auto|always|never")
		fields         = fs.String("fields", "", "comma-separated columns for table/tsv/csv/md output")
		sortSpec       = fs.String("sort", "", "sort keys, e.g. -status,file or location")
		quiet          = fs.Bool("quiet", false, "suppress the balanced message")
		configPath     = fs.String("config", "", "config file (overrides discovery)")
		noConfig       = fs.Bool("no-config", false, "skip config file discovery")
		noProgress     = fs.Bool("no-progress", false, "disable progress/ETA")
		forceProg      = fs.Bool("progress", false, "force progress even when piped")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	// positional arguments are additional roots
	paths = append(paths, fs.Args()...)

	layers, uiLayers, err := configLayers(*root, *configPath, *noConfig)
	if err != nil {
		log.Print(err)
		return exitUsage
	}

	// Flags always win, so they go in as the last layer. Only flags the
	// user actually set participate.
	flagEngine := config.EngineConfig{}
	flagUI := config.UIConfig{}
	if len(paths) > 0 {
		v := []string(paths)
		flagEngine.Paths = &v
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "exclude":
			v := []string(excludes)
			flagEngine.Excludes = &v
		case "path-regex":
			v := []string(pathRegex)
			flagEngine.PathRegex = &v
		case "exclude-typical":
			flagEngine.ExcludeTypical = excludeTypical
		case "max-file-bytes":
			flagEngine.MaxFileBytes = maxFileBytes
		case "jobs":
			if *jobs != 0 {
				flagEngine.Jobs = jobs
			}
		case "root":
			flagEngine.Root = root
		case "output":
			flagEngine.Output = outputFmt
		case "color":
			flagEngine.Color = color
		case "fields":
			flagUI.Fields = fields
		case "sort":
			flagUI.Sort = sortSpec
		case "quiet":
			flagUI.Quiet = quiet
		}
	})
	layers = append(layers, flagEngine)
	uiLayers = append(uiLayers, flagUI)

	base := config.EngineSettingsFromOptions(opts.Defaults("."))
	eng := config.MergeEngine(base, layers...)
	ui := config.MergeUI(config.DefaultUISettings(), uiLayers...)

	options := opts.Defaults(".")
	eng.ApplyToOptions(&options)
	options.Progress = util.ShouldShowProgress(*forceProg, *noProgress)
	if err := opts.NormalizeAndValidate(&options); err != nil {
		log.Print(err)
		return exitUsage
	}

	format, err := opts.NormalizeOutput(eng.Output)
	if err != nil {
		log.Print(err)
		return exitUsage
	}
	mode, err := termcolor.ParseMode(eng.Color)
	if err != nil {
		log.Print(err)
		return exitUsage
	}
	env := termcolor.EnvMap(os.Environ())
	if mode == termcolor.ModeAuto {
		mode = termcolor.DetectMode(os.Stdout, env)
	}
	colorOn := termcolor.Enabled(mode, os.Stdout)
	profile := termcolor.DetectProfile(env)

	spec, err := ParseSortSpec(ui.Sort)
	if err != nil {
		log.Print(err)
		return exitUsage
	}
	sel, err := output.ResolveFields(ui.Fields)
	if err != nil {
		log.Print(err)
		return exitUsage
	}

	res, err := engine.Run(options)
	if err != nil {
		log.Print(err)
		return exitUsage
	}
	ApplySort(res.Items, spec)

	switch format {
	case "json":
		err = output.WriteJSON(stdout, res)
	case "ndjson":
		err = output.WriteNDJSON(stdout, res.Items)
	case "tsv":
		err = output.WriteTSV(stdout, res.Items, sel)
	case "csv":
		err = output.WriteCSV(stdout, res.Items, sel)
	case "md":
		err = output.WriteMarkdownTable(stdout, res.Items, sel)
	case "table":
		err = output.WriteTable(stdout, res.Items, sel, colorOn, profile)
	default: // text
		err = output.WriteText(stdout, res, output.TextOptions{
			ShowFiles: res.Checked != 1,
			Quiet:     ui.Quiet,
			Color:     colorOn,
			Profile:   profile,
		})
	}
	if err != nil {
		log.Print(err)
		return exitUsage
	}

	reportErrors(res)
	if !res.AllBalanced() || res.ErrorCount > 0 {
		return exitBroken
	}
	return exitBalanced
}

// configLayers loads the file and environment layers, in precedence order
// (file first, environment second). Flags are appended by the caller.
func configLayers(rootFlag, explicitPath string, skipFile bool) ([]config.EngineConfig, []config.UIConfig, error) {
	var layers []config.EngineConfig
	var uiLayers []config.UIConfig

	if !skipFile {
		explicit := strings.TrimSpace(explicitPath)
		if explicit == "" {
			explicit = os.Getenv("BRACKX_CONFIG")
		}
		home, _ := os.UserHomeDir()
		path, _, err := config.Find(rootFlag, explicit, os.Getenv("XDG_CONFIG_HOME"), home)
		if err != nil {
			return nil, nil, err
		}
		if path != "" {
			cfg, err := config.Load(path)
			if err != nil {
				return nil, nil, err
			}
			layers = append(layers, cfg.Engine)
			uiLayers = append(uiLayers, cfg.UI)
		}
	}

	envCfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return nil, nil, err
	}
	layers = append(layers, envCfg.Engine)
	uiLayers = append(uiLayers, envCfg.UI)
	return layers, uiLayers, nil
}

func reportErrors(res *engine.Result) {
	if res.ErrorCount == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "%d error(s) while reading files:\n", res.ErrorCount)
	for _, e := range res.Errors {
		file := e.File
		if file == "" {
			file = "(unknown file)"
		}
		fmt.Fprintf(os.Stderr, "  %s [%s] %s\n", file, e.Stage, e.Message)
	}
}

func serveCmd(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	var (
		port = fs.Int("p", 8080, "port")
		root = fs.String("root", ".", "scan root")
		open = fs.Bool("open", false, "open the UI in the default browser")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	def := opts.Defaults(*root)
	mux := http.NewServeMux()
	web.Register(mux)
	mux.HandleFunc("/api/check", apiCheckHandler(def))

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		log.Print(err)
		return exitBroken
	}
	url := fmt.Sprintf("http://localhost:%d/", ln.Addr().(*net.TCPAddr).Port)
	log.Printf("brackx serve listening on %s (root=%s)", url, mustAbs(*root))
	if *open {
		go func() {
			if err := browser.OpenURL(url); err != nil {
				log.Printf("failed to open browser: %v", err)
			}
		}()
	}
	if err := http.Serve(ln, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Print(err)
		return exitBroken
	}
	return exitBalanced
}

func mustAbs(p string) string {
	a, _ := filepath.Abs(p)
	return a
}
