// Command ineq computes inequality statistics over a CSV of observations.
//
// The input is one observation per row: a value, optionally followed by a
// weight column when -weighted is set. The measures to compute come from a
// yaml suite configuration, or from a built-in suite (Gini coefficient plus
// Kolm-Pollak and Atkinson EDE and index) when no configuration is given.
//
// Example:
//
//	ineq -input incomes.csv -weighted -epsilon 0.5
//	ineq -config suite.yaml -input exposures.csv
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ahrav/go-ineq/infrastructure/measures"
	"github.com/ahrav/go-ineq/internal/application"
	"github.com/ahrav/go-ineq/internal/ports"
)

func main() {
	configPath := flag.String("config", "", "path to a measure suite yaml; empty uses the built-in suite")
	inputPath := flag.String("input", "-", "csv of observations, one value[,weight] per row; - reads stdin")
	weighted := flag.Bool("weighted", false, "treat the second csv column as observation weights")
	epsilon := flag.Float64("epsilon", 0.5, "aversion parameter for the built-in suite")
	flag.Parse()

	if err := run(*configPath, *inputPath, *weighted, *epsilon); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, inputPath string, weighted bool, epsilon float64) error {
	values, weights, err := readObservations(inputPath, weighted)
	if err != nil {
		return err
	}

	suite, err := buildSuite(configPath, epsilon)
	if err != nil {
		return err
	}

	evaluator, err := application.NewBatchEvaluator(suite, 0)
	if err != nil {
		return err
	}
	results, err := evaluator.Evaluate(context.Background(), []application.Sample{
		{Values: values, Weights: weights},
	})
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	for j, m := range suite {
		p.Printf("%s\t%.6f\n", m.Name(), results[0][j])
	}
	return nil
}

// buildSuite loads the configured measure suite, or assembles the built-in
// one when no configuration path is given.
func buildSuite(configPath string, epsilon float64) ([]ports.Measure, error) {
	if configPath == "" {
		return defaultSuite(epsilon)
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open suite configuration: %w", err)
	}
	defer f.Close()

	config, err := application.LoadSuite(f)
	if err != nil {
		return nil, err
	}
	return config.BuildMeasures(application.NewDefaultMeasureRegistry())
}

func defaultSuite(epsilon float64) ([]ports.Measure, error) {
	gini, err := measures.NewGiniMeasure("gini", measures.GiniConfig{})
	if err != nil {
		return nil, err
	}
	atkinsonEDE, err := measures.NewAtkinsonMeasure("atkinson_ede", measures.AtkinsonConfig{
		Statistic: measures.StatisticEDE,
		Epsilon:   epsilon,
	})
	if err != nil {
		return nil, err
	}
	atkinsonIndex, err := measures.NewAtkinsonMeasure("atkinson_index", measures.AtkinsonConfig{
		Statistic: measures.StatisticIndex,
		Epsilon:   epsilon,
	})
	if err != nil {
		return nil, err
	}
	kpEDE, err := measures.NewKolmPollakMeasure("kolm_pollak_ede", measures.KolmPollakConfig{
		Statistic: measures.StatisticEDE,
		Epsilon:   &epsilon,
	})
	if err != nil {
		return nil, err
	}
	kpIndex, err := measures.NewKolmPollakMeasure("kolm_pollak_index", measures.KolmPollakConfig{
		Statistic: measures.StatisticIndex,
		Epsilon:   &epsilon,
	})
	if err != nil {
		return nil, err
	}
	return []ports.Measure{gini, atkinsonEDE, atkinsonIndex, kpEDE, kpIndex}, nil
}

// readObservations parses the input csv into parallel value and weight
// slices. The returned weights slice is nil when the input is unweighted.
func readObservations(path string, weighted bool) (values, weights []float64, err error) {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = 1
	if weighted {
		reader.FieldsPerRecord = 2
	}

	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read input: %w", err)
		}
		line++

		v, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: invalid value %q: %w", line, record[0], err)
		}
		values = append(values, v)

		if weighted {
			w, err := strconv.ParseFloat(record[1], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: invalid weight %q: %w", line, record[1], err)
			}
			weights = append(weights, w)
		}
	}
	return values, weights, nil
}
