// Package main provides the MLP explorer CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/config"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/dataset"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/nn"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/parallel"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/server"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/train"
	"github.com/pkg/errors"
)

const version = "v0.1.0-dev"

func usage() {
	fmt.Println("Interactive Neural Networks - MLP explorer")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Train a network on kiki/bouba (or -config dataset) and print predictions")
	fmt.Println("  sweep      Train one network per seed in parallel and compare them")
	fmt.Println("  serve      Serve the network editor API")
	fmt.Println("")
	fmt.Println("Run 'mlpexplorer <command> -h' for command flags.")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("mlpexplorer %s\n", version)
	case "train":
		err = runTrain(os.Args[2:])
	case "sweep":
		err = runSweep(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads path, or returns the defaults when path is empty.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	steps := fs.Int("steps", 0, "Training steps (0 = config value)")
	lr := fs.Float64("lr", 0, "Learning rate (0 = config value)")
	seed := fs.Int64("seed", 0, "Initialization seed (0 = config value)")
	logEvery := fs.Int("log-every", 20, "Print the loss every N steps")
	valRatio := fs.Float64("val", 0, "Fraction of shuffled samples held out for validation (0 = none)")
	_ = fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *lr > 0 {
		cfg.Training.LearningRate = *lr
	}
	if *seed != 0 {
		cfg.Network.Seed = *seed
	}
	cfg.Training.LogEvery = *logEvery

	data, err := cfg.LoadDataset()
	if err != nil {
		return err
	}
	var val *dataset.Dataset
	if *valRatio != 0 {
		if data, val, err = data.Shuffled(nn.NewRand(cfg.Network.Seed)).Split(*valRatio); err != nil {
			return err
		}
	}
	model, err := nn.NewMLPWithConfig(cfg.Network)
	if err != nil {
		return err
	}
	trainer, err := train.NewTrainer(model, cfg.Training, log.New(os.Stdout, "", 0))
	if err != nil {
		return err
	}

	fmt.Printf("Network: MLP(%d, %v), %d parameters\n", model.NumInputs(), model.Sizes(), model.NumParameters())
	fmt.Printf("Training: %s, lr=%.4f, loss=%s, dataset %q (%d samples)\n\n",
		trainer.Config().Optimizer, trainer.Config().LearningRate, trainer.Config().Loss, data.Name, data.Len())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	history, err := trainer.Fit(ctx, data, *steps)
	if err != nil {
		return err
	}

	fmt.Printf("\nTrained %d steps in %v: final loss %.6f (best %.6f)\n\n",
		len(history.Losses), time.Since(start).Round(time.Millisecond), history.Final(), history.Best())

	correct := 0
	for _, s := range data.Samples {
		pred := model.PredictFloats(s.Features).Data
		if (pred > 0) == (s.Target > 0) {
			correct++
		}
		fmt.Printf("  %-14s target %+.1f  predicted %+.4f\n", s.Name, s.Target, pred)
	}
	fmt.Printf("\nAccuracy: %d/%d\n", correct, data.Len())

	if val != nil {
		loss, err := trainer.Evaluate(val.Inputs(), val.Targets())
		if err != nil {
			return err
		}
		fmt.Printf("Validation: %d samples, loss %.6f\n", val.Len(), loss)
	}
	return nil
}

func runSweep(args []string) error {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	numSeeds := fs.Int("seeds", 16, "Number of seeds (1..N)")
	steps := fs.Int("steps", 0, "Training steps per seed (0 = config value)")
	workers := fs.Int("workers", parallel.DefaultConfig().Workers, "Concurrent trainings")
	_ = fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	data, err := cfg.LoadDataset()
	if err != nil {
		return err
	}

	if *numSeeds < 1 {
		return errors.Errorf("-seeds must be positive, got %d", *numSeeds)
	}
	seeds := make([]int64, *numSeeds)
	for i := range seeds {
		seeds[i] = int64(i + 1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := train.Sweep(ctx, cfg.Network, cfg.Training, data, seeds, *steps, parallel.Config{Workers: *workers})
	if err != nil {
		return err
	}

	converged := 0
	for _, r := range results {
		if r.Correct == r.Samples {
			converged++
		}
		fmt.Printf("  seed %3d  loss %.6f  best %.6f  correct %d/%d\n", r.Seed, r.Loss, r.Best, r.Correct, r.Samples)
	}
	fmt.Printf("\n%d/%d seeds classify every sample (%v)\n",
		converged, len(results), time.Since(start).Round(time.Millisecond))
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	addr := fs.String("addr", "", "Listen address (empty = config value)")
	_ = fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	data, err := cfg.LoadDataset()
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr, "mlpexplorer: ", log.LstdFlags)
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(cfg, data, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Printf("listening on %s", cfg.Server.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Println("shutting down")
	return srv.Shutdown(shutdownCtx)
}
