package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pkg/errors"

	bp "github.com/sharnoff/backprop"
	"github.com/sharnoff/backprop/activations"
	_ "github.com/sharnoff/backprop/errfuncs"
)

const (
	statusFrequency int = 100
	hiddenSize      int = 3
)

var (
	configPath = flag.String("config", "", "path to a JSON training config (default: built-in)")
	savePath   = flag.String("save", "xor save", "directory to save the trained network to")
	verbose    = flag.Bool("v", false, "log every iteration")
)

func dataset() *bp.PatternSet {
	ps, err := bp.Data([][][]float64{
		{{0, 0}, {0}},
		{{0, 1}, {1}},
		{{1, 0}, {1}},
		{{1, 1}, {0}},
	})
	if err != nil {
		panic(err)
	}

	return ps
}

func config() (bp.TrainConfig, error) {
	if *configPath != "" {
		return bp.LoadConfig(*configPath)
	}

	c := bp.DefaultConfig()
	c.MaxIterations = 5000
	threshold := 0.005
	c.IrreducibleError = &threshold
	c.WeightSeed = 1
	return c, nil
}

func setup(c bp.TrainConfig) (*bp.Network, error) {
	net, err := bp.New(2)
	if err != nil {
		return nil, err
	}

	if err = net.AddLayer(hiddenSize, activations.Sigmoid()); err != nil {
		return nil, errors.Wrapf(err, "Failed to add hidden layer")
	}

	if err = net.AddLayer(1, activations.Sigmoid()); err != nil {
		return nil, errors.Wrapf(err, "Failed to add output layer")
	}

	c.Initialize(net)
	return net, nil
}

func train(ctx context.Context, logger *slog.Logger, c bp.TrainConfig, net *bp.Network) error {
	proc, err := c.Backprop()
	if err != nil {
		return err
	}

	args, err := c.ManagerArgs()
	if err != nil {
		return err
	}

	args.LearnData = dataset()
	args.CheckData = dataset()
	args.IsCorrect = bp.CorrectRound
	args.Logger = logger
	args.Listeners = []bp.Listener{func(e bp.LearningEvent) {
		if e.Kind == bp.PerformanceCalculated && e.State.Iteration%statusFrequency == 0 {
			fmt.Printf("%d, %v, %v\n", e.State.Iteration, e.State.TotalError, e.State.Performance)
		}
	}}

	m, err := bp.NewManager(net, proc, args)
	if err != nil {
		return err
	}

	fmt.Println("Iteration, Total Error, Check Percent")
	if err = m.Run(ctx); err != nil {
		return err
	}

	fmt.Println("Done training!", m.Snapshot().StopMessage)
	return nil
}

func test(net *bp.Network) error {
	ps := dataset()
	for i := 0; i < ps.Size(); i++ {
		p := ps.At(i)
		outs, err := net.Forward(p.Input())
		if err != nil {
			return err
		}

		fmt.Printf("%v → %v (expected %v)\n", p.Input(), outs, p.Expected())
	}

	return nil
}

func run() error {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c, err := config()
	if err != nil {
		return err
	}

	fmt.Println("Setting up network...")
	net, err := setup(c)
	if err != nil {
		return errors.Wrapf(err, "Failed to set up network")
	}

	if err = train(ctx, logger, c, net); err != nil {
		return errors.Wrapf(err, "Training failed")
	}

	if err = test(net); err != nil {
		return err
	}

	fmt.Println("Saving...")
	if err = net.Save(*savePath, true); err != nil {
		return err
	}

	fmt.Println("Loading...")
	if net, err = bp.Load(*savePath); err != nil {
		return err
	}

	return test(net)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
