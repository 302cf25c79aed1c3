package cmd

import (
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/batchsim/sim"
	"github.com/inference-sim/batchsim/sim/workload"
)

var (
	// Simulation configuration
	logLevel       string  // Log verbosity level
	configFile     string  // Optional YAML config (overrides the flags below)
	policyName     string  // Batch-composition policy: simple or dynamic
	preemption     bool    // Enable mid-flight preemption checks
	sloFactor      float64 // Uniform SLO factor multiplier on the base latency
	maxBatchSize   int     // Maximum batch size for scheduling
	offlineNumReqs int     // Number of requests in the offline setting (0 = live loop)

	// Request sources
	runtimesFile  string  // Throughput profile CSV (bsize, mean_runtime_ms)
	traceFile     string  // Arrival-time trace CSV
	sloFile       string  // CSV with per-request slo factors and arrival times
	varyTrace     string  // Trace variation: compress or multi-user
	compressRatio float64 // Compression ratio for trace compression
	numUsers      int     // Number of users for the multi-user variation
	seed          int64   // Seed for synthetic Poisson arrivals
	rate          float64 // Synthetic arrival rate (requests per ms)
	numReqs       int     // Number of synthetic requests

	outputFile string // Path for the finished-requests JSON dump
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "batchsim",
	Short: "Discrete-event simulator for SLO-aware batch scheduling",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the batch scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := &sim.SimConfig{
			Policy:         policyName,
			Preemption:     preemption,
			MaxBatchSize:   maxBatchSize,
			SLOFactor:      sloFactor,
			OfflineNumReqs: offlineNumReqs,
		}
		if configFile != "" {
			cfg, err = sim.LoadSimConfig(configFile)
			if err != nil {
				logrus.Fatalf("unable to read sim config: %v", err)
			}
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}

		profile, err := sim.LoadThroughputProfile(runtimesFile)
		if err != nil {
			logrus.Fatalf("unable to read throughput profile: %v", err)
		}
		if err := profile.Validate(cfg.MaxBatchSize); err != nil {
			logrus.Fatalf("invalid throughput profile: %v", err)
		}

		requests, err := buildRequests(cfg, profile)
		if err != nil {
			logrus.Fatalf("unable to build request set: %v", err)
		}
		logrus.Infof("Loaded %d requests", len(requests))

		logrus.Infof("Starting simulation with policy: %s, preemption: %v, slo_factor: %g, max_batch_size: %d",
			cfg.Policy, cfg.Preemption, cfg.SLOFactor, cfg.MaxBatchSize)
		startTime := time.Now()

		policy := sim.NewPolicy(cfg.Policy, cfg.MaxBatchSize, profile)
		engine := sim.NewEngine(profile, policy, cfg.Preemption, requests)
		if cfg.OfflineNumReqs > 0 {
			engine.RunOffline()
		} else {
			engine.Run()
		}

		if outputFile != "" {
			if err := engine.Finished.WriteJSON(outputFile); err != nil {
				logrus.Fatalf("unable to write finished requests: %v", err)
			}
			logrus.Infof("Finished requests written to %s", outputFile)
		}

		sim.Summarize(engine.Finished).Print()
		logrus.Infof("Simulation complete in %v (%d iterations).", time.Since(startTime), engine.Iterations())
	},
}

// buildRequests assembles the request set from the configured source:
// an SLO CSV, an arrival-time trace (optionally varied), or synthetic
// Poisson arrivals when no file is given.
func buildRequests(cfg *sim.SimConfig, profile sim.ThroughputProfile) ([]*sim.Request, error) {
	if sloFile != "" {
		logrus.Infof("Reading SLO factors and arrival times from %s", sloFile)
		specs, err := workload.LoadSLOFile(sloFile)
		if err != nil {
			return nil, err
		}
		return workload.BuildRequestsFromSpecs(specs, profile, cfg.OfflineNumReqs), nil
	}

	var arrivals []float64
	var err error
	if traceFile != "" {
		arrivals, err = workload.LoadArrivalTimes(traceFile)
		if err != nil {
			return nil, err
		}
		switch varyTrace {
		case "compress":
			arrivals, err = workload.CompressTrace(arrivals, compressRatio)
			logrus.Infof("Generated compressed trace with ratio: %g", compressRatio)
		case "multi-user":
			arrivals, err = workload.OverlayUsers(arrivals, numUsers)
			logrus.Infof("Generated multi-user trace with %d users", numUsers)
		}
		if err != nil {
			return nil, err
		}
	} else {
		rng := rand.New(rand.NewSource(seed))
		arrivals, err = workload.PoissonArrivals(rng, rate, numReqs)
		if err != nil {
			return nil, err
		}
		logrus.Infof("Generated %d Poisson arrivals at rate %g req/ms", numReqs, rate)
	}
	return workload.BuildRequests(arrivals, cfg.SLOFactor, profile, cfg.OfflineNumReqs), nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&configFile, "config", "", "YAML simulation config (overrides policy flags)")

	// Scheduling configuration
	runCmd.Flags().StringVar(&policyName, "policy", "simple", "Batch-composition policy (simple, dynamic)")
	runCmd.Flags().BoolVar(&preemption, "preemption", false, "Enable preemption")
	runCmd.Flags().Float64Var(&sloFactor, "slo-factor", 5.0, "SLO factor multiplier for base latency")
	runCmd.Flags().IntVar(&maxBatchSize, "max-batch-size", 16, "Maximum batch size for scheduling")
	runCmd.Flags().IntVar(&offlineNumReqs, "offline-num-reqs", 0, "Number of requests in the offline setting (0 = live event loop)")

	// Request sources
	runCmd.Flags().StringVar(&runtimesFile, "runtimes", "runtimes_by_batch_size.csv", "Throughput profile CSV (bsize, mean_runtime_ms)")
	runCmd.Flags().StringVar(&traceFile, "trace", "", "Arrival-time trace CSV")
	runCmd.Flags().StringVar(&sloFile, "slo-csv", "", "CSV with per-request slo factors and arrival times")
	runCmd.Flags().StringVar(&varyTrace, "vary-trace", "compress", "Trace variation (compress, multi-user)")
	runCmd.Flags().Float64Var(&compressRatio, "compress-ratio", 0.3, "Compression ratio for trace compression")
	runCmd.Flags().IntVar(&numUsers, "num-users", 10, "Number of users for the multi-user trace")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for synthetic request generation")
	runCmd.Flags().Float64Var(&rate, "rate", 0.01, "Synthetic arrival rate (requests per ms)")
	runCmd.Flags().IntVar(&numReqs, "num-reqs", 100, "Number of synthetic requests")

	runCmd.Flags().StringVar(&outputFile, "output", "", "Path for the finished-requests JSON dump")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
