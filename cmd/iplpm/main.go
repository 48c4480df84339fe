package main

import (
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gaissmai/iplpm/internal/compare"
	"github.com/gaissmai/iplpm/internal/config"
	"github.com/gaissmai/iplpm/internal/metrics"
)

var (
	cfgFile           string
	logLevel          string
	envPrefix         = "IPLPM"
	defaultConfigName = ".iplpm"
	opts              config.Options
	v                 = viper.New()
	json              = jsoniter.ConfigCompatibleWithStandardLibrary
)

// rootCmd runs the demo: build both structures, look up the probes, time them.
var rootCmd = &cobra.Command{
	Use:   "iplpm",
	Short: "Longest prefix match on IPv4 with a radix trie and a prefix tree",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		initConfig(cmd)
		return opts.Validate()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd)
	},
	SilenceUsage: true,
}

// initConfig use config file and ENV variables if set.
func initConfig(cmd *cobra.Command) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal(err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(defaultConfigName)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cfgErr := v.ReadInConfig()

	bindFlags(cmd, v)

	initLogger()

	if cfgErr != nil {
		// a missing default config file is fine
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(cfgErr, &notFound) {
			log.Errorf("Read config error: %v", cfgErr)
		}
	}
}

func initLogger() {
	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		ll = log.ErrorLevel
	}
	log.SetLevel(ll)
	log.SetFormatter(&log.TextFormatter{DisableColors: false, FullTimestamp: true, PadLevelText: true, DisableQuote: true})
}

func dumpConfig(opts *config.Options) {
	configAsJSON, err := json.MarshalIndent(opts, "", "    ")
	if err != nil {
		panic(fmt.Sprintf("error dumping config: %v", err))
	}
	log.Debugf("Using configuration:\n%s", configAsJSON)
}

// bindFlags applies the viper value to every flag not set on the command line.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	fs := cmd.Flags()
	fs.VisitAll(func(f *pflag.Flag) {
		envVarSuffix := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(f.Name))
		_ = v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix))

		if f.Changed || !v.IsSet(f.Name) {
			return
		}

		switch val := v.Get(f.Name).(type) {
		case []string:
			_ = fs.Set(f.Name, strings.Join(val, ","))
		case []any:
			for _, elem := range val {
				_ = fs.Set(f.Name, fmt.Sprint(elem))
			}
		case bool, uint, string, int32, int16, int8, int, uint32, uint64, int64, float64, float32:
			_ = fs.Set(f.Name, fmt.Sprintf("%v", val))
		default:
			b, err := json.Marshal(&val)
			if err != nil {
				log.Fatalf("can't parse flag %s into json with value %v got error %s", f.Name, val, err)
				return
			}
			_ = fs.Set(f.Name, string(b))
		}
	})
}

func initFlags() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is $HOME/%s.yaml)", defaultConfigName))
	pf.StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warning, error")
	pf.StringVar(&opts.RoutesFile, "routes", "", "YAML route file (default: config key 'table' or the demo table)")
	pf.IntVar(&opts.Generated, "generated", config.DefaultGenerated, "number of generated route triples in the demo table")
	pf.BoolVar(&opts.Reference, "reference", true, "cross-check every lookup against a bart.Table")

	rootCmd.Flags().StringSliceVar(&opts.Probes, "probes", config.DefaultProbes, "addresses to look up")
	rootCmd.Flags().IntVar(&opts.Iterations, "iterations", config.DefaultIterations, "lookups per structure in the timing run")
	rootCmd.Flags().StringVar(&opts.PerfAddr, "perf-addr", config.DefaultPerfAddr, "address for the timing run")

	rootCmd.AddCommand(lookupCmd, dumpCmd, serveCmd)
	initDumpFlags()
	initServeFlags()
}

func main() {
	initFlags()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadRoutes returns the routes from the route file, the config key
// 'table' or the demo table, in this order, and whether it is the demo table.
func loadRoutes() ([]config.RouteSpec, bool, error) {
	switch {
	case opts.RoutesFile != "":
		specs, err := config.LoadRoutesFile(opts.RoutesFile)
		return specs, false, err
	case v.IsSet("table"):
		specs, err := config.DecodeRoutes(v.Get("table"))
		return specs, false, err
	default:
		return config.DemoRoutes(opts.Generated), true, nil
	}
}

// newComparator loads the routes and inserts them, reg may be nil.
func newComparator(reg prometheus.Registerer) (*compare.Comparator[string], []config.RouteSpec, bool, error) {
	dumpConfig(&opts)

	specs, demo, err := loadRoutes()
	if err != nil {
		return nil, nil, false, err
	}

	routes, err := config.ParseRoutes(specs)
	if err != nil {
		return nil, nil, false, err
	}

	cmpOpts := []compare.Option{compare.WithReference(opts.Reference)}
	if reg != nil {
		cmpOpts = append(cmpOpts, compare.WithMetrics(metrics.New(reg)))
	}

	cmp := compare.New[string](cmpOpts...)
	if err := cmp.Insert(routes); err != nil {
		return nil, nil, false, err
	}

	log.WithField("routes", len(routes)).Info("route table loaded")
	return cmp, specs, demo, nil
}
