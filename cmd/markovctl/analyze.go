package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const noteReducible = "chain is reducible: stationary distribution and reversibility are undefined"

// analysisReport is the document printed by the analyze command.
type analysisReport struct {
	States      int        `yaml:"states" json:"states"`
	Labels      []string   `yaml:"labels,omitempty" json:"labels,omitempty"`
	Irreducible bool       `yaml:"irreducible" json:"irreducible"`
	Aperiodic   bool       `yaml:"aperiodic" json:"aperiodic"`
	Reversible  *bool      `yaml:"reversible,omitempty" json:"reversible,omitempty"`
	Stationary  []float64  `yaml:"stationary,omitempty" json:"stationary,omitempty"`
	Note        string     `yaml:"note,omitempty" json:"note,omitempty"`
	Components  [][]string `yaml:"components" json:"components"`
}

func newAnalyzeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze FILE",
		Short: "Report structural and spectral properties of a chain",
		Long: `Loads FILE and prints irreducibility, aperiodicity and the communicating
classes. For irreducible chains the stationary distribution and reversibility
are included as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := g.chainOptions(cmd)
			if err != nil {
				return err
			}
			f, err := loadChainFile(args[0])
			if err != nil {
				return err
			}
			c, err := f.model(opts...)
			if err != nil {
				return err
			}

			r := analysisReport{
				States:      c.NumStates(),
				Labels:      f.Labels,
				Irreducible: c.IsIrreducible(),
				Aperiodic:   c.IsAperiodic(),
			}
			for _, comp := range c.Components() {
				names := make([]string, len(comp))
				for i, s := range comp {
					names[i] = f.label(s)
				}
				r.Components = append(r.Components, names)
			}

			if !r.Irreducible {
				r.Note = noteReducible
				return encode(cmd.OutOrStdout(), g.format, r)
			}
			if r.Stationary, err = c.StationaryDistribution(); err != nil {
				return fmt.Errorf("stationary distribution: %w", err)
			}
			rev, err := c.IsReversible()
			if err != nil {
				return fmt.Errorf("reversibility: %w", err)
			}
			r.Reversible = &rev

			return encode(cmd.OutOrStdout(), g.format, r)
		},
	}
}
