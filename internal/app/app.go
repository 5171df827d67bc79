package app

import (
	"fmt"
	"io"
	"os"

	"shoplist/internal/assistant"
	"shoplist/internal/catalog"
	"shoplist/internal/config"
	"shoplist/internal/speech"
	"shoplist/internal/storage/sqlite"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type runtime struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	lang       string

	cfg     config.Config
	catalog *catalog.Catalog
}

func Main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

func Execute() error {
	return newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute()
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	rt := &runtime{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:          "shoplist",
		Short:        "Voice-style shopping list assistant",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runREPL(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&rt.configPath, "config", "", "config file (default config.yaml or $SHOPLIST_CONFIG)")
	root.PersistentFlags().StringVar(&rt.lang, "lang", "", "recognition language, e.g. es-ES")

	root.AddCommand(
		replCmd(rt),
		listenCmd(rt),
		interpretCmd(rt),
		categorizeCmd(rt),
		substitutesCmd(rt),
		catalogCmd(rt),
	)
	return root
}

func (rt *runtime) setup() error {
	if rt.configPath != "" {
		if err := os.Setenv("SHOPLIST_CONFIG", rt.configPath); err != nil {
			return err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if rt.lang != "" {
		tag, err := speech.MatchLanguage(rt.lang)
		if err != nil {
			return err
		}
		cfg.Language = tag.String()
		cfg.LanguageTag = tag
	}
	configureLogging(cfg, rt.errOut)

	rt.catalog = catalog.Default()
	if cfg.CatalogPath != "" {
		c, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		rt.catalog = c
	}
	rt.cfg = cfg
	log.Debugf("config ready lang=%s history=%t interim=%t catalog=%q",
		cfg.LanguageTag, cfg.HistoryEnabled, cfg.InterimResults, cfg.CatalogPath)
	return nil
}

// newSession builds a controller, with an in-memory history when enabled.
// The returned close func releases the history database.
func (rt *runtime) newSession() (*shell, func(), error) {
	opts := []assistant.Option{assistant.WithLanguage(rt.cfg.LanguageTag)}

	var history *sqlite.History
	closeFn := func() {}
	if rt.cfg.HistoryEnabled {
		db, err := sqlite.InitDB(sqlite.MemoryPath)
		if err != nil {
			return nil, nil, fmt.Errorf("init history: %w", err)
		}
		history = sqlite.NewHistory(db)
		opts = append(opts, assistant.WithRecorder(history))
		closeFn = func() { _ = db.Close() }
	}

	sh := &shell{
		ctl:          assistant.New(rt.catalog, opts...),
		history:      history,
		historyLimit: rt.cfg.HistoryLimit,
		out:          rt.out,
	}
	return sh, closeFn, nil
}
