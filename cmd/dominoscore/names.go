package main

import (
	"fmt"

	"github.com/lox/dominoscore/internal/config"
)

type NamesCmd struct{}

func (c *NamesCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	for _, name := range cfg.Game.Names {
		fmt.Println(name)
	}
	return nil
}
