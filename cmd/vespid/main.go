// Command vespid reads a DIMACS CNF instance, runs CDCL search, and reports
// the result on stdout following the DIMACS solver convention. Grounded on
// the teacher's main.go (flag.Parse into a config struct, an errors-from-run
// pattern), extended with the flag set SPEC_FULL.md's external-interfaces
// section calls for.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/vespidsat/vespid/internal/frat"
	"github.com/vespidsat/vespid/internal/sat"
	"github.com/vespidsat/vespid/parsers"
)

var (
	flagCPUProfile = flag.Bool("cpuprof", false, "save pprof CPU profile to cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save pprof memory profile to memprof")

	flagPolarityLean = flag.Float64("polarity-lean", sat.DefaultConfig.PolarityLean,
		"probability that an undecided atom with no saved phase is decided true")
	flagRandomBias = flag.Float64("random-bias", sat.DefaultConfig.RandomDecisionBias,
		"probability that a decision's polarity is chosen uniformly at random")
	flagPhaseSaving = flag.Bool("phase-saving", sat.DefaultConfig.PhaseSaving,
		"reuse an atom's last assigned value as its decision polarity")
	flagVSIDS = flag.String("vsids", sat.DefaultConfig.VSIDSVariant.String(),
		"activity bump variant: MiniSAT or Chaff")
	flagStoppingCriteria = flag.String("stopping-criteria", sat.DefaultConfig.StoppingCriteria.String(),
		"conflict analysis stopping rule: FirstUIP or None")
	flagMinimize = flag.Bool("minimize", sat.DefaultConfig.Minimize,
		"enable recursive self-subsumption minimization of learnt clauses")
	flagPreprocessing = flag.Bool("preprocessing", sat.DefaultConfig.Preprocessing,
		"eliminate pure literals before search starts")

	flagRestarts = flag.Bool("restarts", sat.DefaultConfig.EnableRestarts, "enable Luby/LBD restarts")
	flagLubyUnit = flag.Int64("luby-unit", sat.DefaultConfig.LubyUnit, "base unit of the Luby restart sequence")

	flagReduction = flag.Bool("reduction", sat.DefaultConfig.EnableReduction, "enable periodic clause database reduction")
	flagReductionInterval = flag.Int64("reduction-interval", sat.DefaultConfig.ReductionConflictInterval,
		"conflicts between reduction passes")
	flagLBDBound = flag.Int("lbd-bound", sat.DefaultConfig.LBDBound, "LBD at or below which a learnt clause is never reduced")

	flagMaxConflicts = flag.Int64("max-conflicts", sat.DefaultConfig.MaxConflicts, "conflict budget, <0 for unlimited")
	flagTimeout      = flag.Duration("timeout", 0, "wall-clock search budget, 0 for unlimited")

	flagFRAT      = flag.String("frat", "", "write an FRAT proof trace to this path")
	flagUnsatCore = flag.Bool("unsat-core", false, "print the key of the clause found conflicting at decision level 0 on unsat")
)

type cliConfig struct {
	instanceFile string
	solver       sat.Config
	cpuProfile   bool
	memProfile   bool
	fratPath     string
	unsatCore    bool
}

func parseVSIDS(s string) (sat.VSIDSVariant, error) {
	switch s {
	case "MiniSAT":
		return sat.MiniSAT, nil
	case "Chaff":
		return sat.Chaff, nil
	default:
		return 0, fmt.Errorf("unknown -vsids %q (want MiniSAT or Chaff)", s)
	}
}

func parseStoppingCriteria(s string) (sat.StoppingCriteria, error) {
	switch s {
	case "FirstUIP":
		return sat.FirstUIP, nil
	case "None":
		return sat.NoStoppingCriteria, nil
	default:
		return 0, fmt.Errorf("unknown -stopping-criteria %q (want FirstUIP or None)", s)
	}
}

func parseConfig() (*cliConfig, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}

	vsids, err := parseVSIDS(*flagVSIDS)
	if err != nil {
		return nil, err
	}
	stopping, err := parseStoppingCriteria(*flagStoppingCriteria)
	if err != nil {
		return nil, err
	}

	cfg := sat.DefaultConfig
	cfg.PolarityLean = *flagPolarityLean
	cfg.RandomDecisionBias = *flagRandomBias
	cfg.PhaseSaving = *flagPhaseSaving
	cfg.VSIDSVariant = vsids
	cfg.StoppingCriteria = stopping
	cfg.Minimize = *flagMinimize
	cfg.Preprocessing = *flagPreprocessing
	cfg.EnableRestarts = *flagRestarts
	cfg.LubyUnit = *flagLubyUnit
	cfg.EnableReduction = *flagReduction
	cfg.ReductionConflictInterval = *flagReductionInterval
	cfg.LBDBound = *flagLBDBound
	cfg.MaxConflicts = *flagMaxConflicts
	if *flagTimeout > 0 {
		cfg.Timeout = *flagTimeout
	} else {
		cfg.Timeout = -1
	}

	return &cliConfig{
		instanceFile: flag.Arg(0),
		solver:       cfg,
		cpuProfile:   *flagCPUProfile,
		memProfile:   *flagMemProfile,
		fratPath:     *flagFRAT,
		unsatCore:    *flagUnsatCore,
	}, nil
}

// run loads the instance, solves it, and reports the outcome. It returns the
// DIMACS solver exit code (10 sat, 20 unsat, 0 unknown) alongside any error
// that prevented a result from being produced at all.
func run(cfg *cliConfig) (int, error) {
	fw, err := frat.Create(cfg.fratPath)
	if err != nil {
		return 0, fmt.Errorf("could not open frat trace: %s", err)
	}
	defer fw.Flush()

	s := sat.NewSolver(cfg.solver, fw.Callbacks())

	if err := parsers.LoadDIMACS(cfg.instanceFile, s); err != nil {
		return 0, fmt.Errorf("could not parse instance: %s", err)
	}

	fmt.Printf("c variables: %d\n", s.NumVariables())
	fmt.Printf("c clauses:   %d\n", s.NumConstraints())

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", s.TotalConflicts, float64(s.TotalConflicts)/elapsed.Seconds())
	fmt.Printf("c restarts:   %d\n", s.TotalRestarts)
	fmt.Printf("c decisions:  %d\n", s.TotalDecisions)

	switch status {
	case sat.True:
		fmt.Println("s SATISFIABLE")
		printModel(s.Model())
		return 10, nil
	case sat.False:
		fmt.Println("s UNSATISFIABLE")
		if cfg.unsatCore {
			printUnsatCore(s.UnsatCore())
		}
		return 20, nil
	default:
		fmt.Println("s UNKNOWN")
		return 0, nil
	}
}

func printModel(model []bool) {
	fmt.Print("v ")
	for a, v := range model {
		if a == int(sat.ReservedAtom) {
			continue
		}
		if v {
			fmt.Printf("%d ", a)
		} else {
			fmt.Printf("-%d ", a)
		}
	}
	fmt.Println("0")
}

func printUnsatCore(core []sat.ClauseKey) {
	fmt.Printf("c unsat core: %d clauses\n", len(core))
	for _, key := range core {
		fmt.Printf("c   %s\n", key)
	}
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	code, err := run(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	os.Exit(code)
}
