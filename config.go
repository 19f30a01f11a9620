package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/creativechain/ccoin/internal/ccoinlog"
)

const (
	defaultConfigFilename = "ccoind.conf"
	defaultDataDirname    = "data"
	defaultLogDirname     = "logs"
	defaultLogLevel       = "info"
)

var (
	defaultHomeDir    = appDataDir("ccoind", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(defaultHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for ccoind.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	HomeDir     string `long:"homedir" description:"Directory to store data and logs"`
	DataDir     string `short:"b" long:"datadir" description:"Directory to store blocks and chain state"`
	LogDir      string `long:"logdir" description:"Directory to log output"`

	TestNet3 bool `long:"testnet" description:"Use the test network"`
	RegTest  bool `long:"regtest" description:"Use the regression test network"`
	SimNet   bool `long:"simnet" description:"Use a simulation network, local to this process"`

	Listeners []string `long:"listen" description:"Add an interface/port to listen for connections"`

	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- Alternatively, the levels can be specified as subsystem=level, e.g. sync=debug"`

	Profile    string `long:"profile" description:"Enable HTTP profiling on given port -- NOTE port must be between 1024 and 65536"`
	CPUProfile string `long:"cpuprofile" description:"Path for a CPU profile -- NOTE accepted but not used; this build writes no CPU profile"`

	DropAddrIndex bool `long:"dropaddrindex" description:"Deletes the address-based transaction index from the database on start up, and then exits"`
	DropTxIndex   bool `long:"droptxindex" description:"Deletes the hash-based transaction index from the database on start up, and then exits"`
	DropCfIndex   bool `long:"dropcfindex" description:"Deletes the index used for committed filtering (CF) support from the database on start up, and then exits"`

	RPCUser string `long:"rpcuser" description:"Username for RPC connections"`
	RPCPass string `long:"rpcpass" description:"Password for RPC connections"`

	activeNet *params
}

// serviceOptions defines the service-related options used to differentiate
// between running the daemon as a service or interactively.
type serviceOptions struct {
	ServiceCommand string `short:"s" long:"service" description:"Service command {install, remove, start, stop}"`
}

// defaultConfig returns a config struct populated with defaults before any
// file or flag parsing happens.
func defaultConfig() *config {
	return &config{
		ConfigFile: defaultConfigFile,
		HomeDir:    defaultHomeDir,
		DataDir:    defaultDataDir,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}
}

// loadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file, overwriting defaults with any specified options
//  4. Parse CLI options again, overwriting or adding any specified options
//
// The above results in ccoind functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options. Command line options always take
// precedence.
func loadConfig() (*config, []string, error) {
	preCfg := defaultConfig()
	preParser := flags.NewParser(preCfg, flags.Default)
	_, err := preParser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
		}
		return nil, nil, err
	}

	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	if preCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, version())
		os.Exit(0)
	}

	cfg := preCfg
	if cfg.ConfigFile == defaultConfigFile {
		if _, err := os.Stat(cfg.ConfigFile); os.IsNotExist(err) {
			if err := createDefaultConfigFile(cfg.ConfigFile); err != nil {
				fmt.Fprintf(os.Stderr, "Error creating a default config file: %v\n", err)
			}
		}
	}

	if err := flags.IniParse(cfg.ConfigFile, cfg); err != nil {
		if _, ok := err.(*os.PathError); !ok {
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
	}

	parser := flags.NewParser(cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
		}
		return nil, nil, err
	}

	numNets := 0
	cfg.activeNet = &mainNetParams
	if cfg.TestNet3 {
		numNets++
		cfg.activeNet = &testNet3Params
	}
	if cfg.RegTest {
		numNets++
		cfg.activeNet = &regressionNetParams
	}
	if cfg.SimNet {
		numNets++
		cfg.activeNet = &simNetParams
	}
	if numNets > 1 {
		return nil, nil, fmt.Errorf("the testnet, regtest, and simnet params " +
			"can't be used together -- choose one of the three")
	}
	activeNetParams = cfg.activeNet

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(cfg.LogDir, 0700); err != nil {
		return nil, nil, err
	}

	if err := ccoinlog.InitLogRotator(filepath.Join(cfg.LogDir, "ccoind.log")); err != nil {
		return nil, nil, err
	}
	for _, pair := range strings.Split(cfg.DebugLevel, ",") {
		subsystem, level, found := strings.Cut(pair, "=")
		if !found {
			ccoinlog.SetLogLevels(pair)
			continue
		}
		ccoinlog.SetLogLevel(strings.ToUpper(subsystem), level)
	}

	return cfg, remainingArgs, nil
}

// createDefaultConfigFile writes a minimal config file at destinationPath,
// populated with a randomly generated rpc username and password.
func createDefaultConfigFile(destinationPath string) error {
	if err := os.MkdirAll(filepath.Dir(destinationPath), 0700); err != nil {
		return err
	}

	randomBytes := make([]byte, 20)
	if _, err := rand.Read(randomBytes); err != nil {
		return err
	}
	generatedRPCUser := base64.StdEncoding.EncodeToString(randomBytes)

	if _, err := rand.Read(randomBytes); err != nil {
		return err
	}
	generatedRPCPass := base64.StdEncoding.EncodeToString(randomBytes)

	contents := fmt.Sprintf("rpcuser=%s\nrpcpass=%s\n", generatedRPCUser, generatedRPCPass)
	return os.WriteFile(destinationPath, []byte(contents), 0600)
}
