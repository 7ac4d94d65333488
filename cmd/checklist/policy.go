package main

import (
	"fmt"

	"github.com/fwojciec/checklist/toml"
)

// Run executes the policy command.
func (c *PolicyCmd) Run(deps *Dependencies) error {
	if c.Write == "" {
		return toml.EncodePolicy(deps.Stdout, deps.Policy)
	}

	if err := toml.WritePolicy(c.Write, deps.Policy); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote policy to %s\n", c.Write)
	return nil
}
