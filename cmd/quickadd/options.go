package main

import (
	"fmt"

	"smart-quick-add/internal/category"
	"smart-quick-add/internal/datetime"
	"smart-quick-add/internal/detector"
	"smart-quick-add/internal/quickadd"
	"smart-quick-add/internal/quickadd/usecase"
	"smart-quick-add/pkg/datemath"
	"smart-quick-add/pkg/log"
	"smart-quick-add/pkg/postag"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	timezone   string
	categories string
	engine     string
	tagger     string
	verbose    bool
}

func (o options) logger() log.Logger {
	if !o.verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, Stderr: true})
}

// useCase wires the parser the same way the API does, minus the server.
func (o options) useCase() (quickadd.UseCase, error) {
	l := o.logger()

	dateParser, err := datemath.NewEngine(o.engine, o.timezone)
	if err != nil {
		return nil, fmt.Errorf("date engine: %w", err)
	}
	tagger, err := postag.New(o.tagger)
	if err != nil {
		return nil, err
	}
	categories, err := category.NewFromConfig(o.categories)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}

	return usecase.New(
		detector.New(tagger, l),
		datetime.New(dateParser, l),
		categories,
		usecase.Config{},
		l,
	), nil
}
