package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	bp "github.com/sharnoff/backprop"
	"github.com/sharnoff/backprop/activations"
	"github.com/sharnoff/backprop/errfuncs"
	"github.com/sharnoff/backprop/initializers"
)

func data() *bp.PatternSet {
	return bp.NewPatternSet(
		bp.NewPattern([]float64{-1, -1}, []float64{0}),
		bp.NewPattern([]float64{-1, 1}, []float64{0}),
		bp.NewPattern([]float64{1, -1}, []float64{0}),
		bp.NewPattern([]float64{1, 1}, []float64{1}),
	)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	fmt.Print("Setting up network...")
	net, err := bp.New(2)
	if err != nil {
		panic(err.Error())
	}
	if err = net.AddLayer(1, activations.Sigmoid()); err != nil {
		panic(err.Error())
	}
	net.InitializeWeights(initializers.Uniform().Seed(1))
	net.InitializeBiases(0)
	fmt.Println("Done!")

	learningRate, maxEons := 0.5, 300

	proc, err := bp.NewBackprop(learningRate, 0)
	if err != nil {
		panic(err.Error())
	}

	m, err := bp.NewManager(net, proc, bp.ManagerArgs{
		LearnData: data(),
		ErrorFunc: errfuncs.MSE(),
		Stops:     []bp.StopCondition{bp.MaxIterations(maxEons)},
		Logger:    logger,
		Listeners: []bp.Listener{func(e bp.LearningEvent) {
			if e.Kind == bp.IterationProcessed && e.State.Iteration%30 == 0 {
				fmt.Printf("%d, %v\n", e.State.Iteration, e.State.TotalError)
			}
		}},
	})
	if err != nil {
		panic(err.Error())
	}

	fmt.Printf("starting training for %d eons\n", maxEons)
	if err = m.Run(context.Background()); err != nil {
		fmt.Printf("%s\n", err)
		return
	}
	fmt.Println("Done training... performing final tests")

	d := data()
	for d.HasNext() {
		p, _ := d.Next()
		outs, err := net.Forward(p.Input())
		if err != nil {
			fmt.Printf("%s\n", err)
			return
		}
		fmt.Printf("%v → %v\n", p.Expected(), outs)
	}
}
