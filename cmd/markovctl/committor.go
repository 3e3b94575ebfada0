package main

import (
	"github.com/spf13/cobra"
)

const (
	directionForward  = "forward"
	directionBackward = "backward"
)

// committorReport is the document printed by the committor command.
type committorReport struct {
	Direction string    `yaml:"direction" json:"direction"`
	From      []int     `yaml:"from" json:"from"`
	To        []int     `yaml:"to" json:"to"`
	Committor []float64 `yaml:"committor" json:"committor"`
}

func newCommittorCmd(g *globalFlags) *cobra.Command {
	var (
		from, to []int
		backward bool
	)
	cmd := &cobra.Command{
		Use:   "committor FILE",
		Short: "Compute committor probabilities between two state sets",
		Long: `Prints, for every state, the probability that the chain reaches the --to set
before the --from set (forward), or with --backward the probability that it
last came from --from rather than --to. Backward committors need an
irreducible chain.`,
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

			r := committorReport{Direction: directionForward, From: from, To: to}
			if backward {
				r.Direction = directionBackward
				r.Committor, err = c.BackwardCommittors(from, to)
			} else {
				r.Committor, err = c.ForwardCommittors(from, to)
			}
			if err != nil {
				return err
			}

			return encode(cmd.OutOrStdout(), g.format, r)
		},
	}

	cmd.Flags().IntSliceVar(&from, "from", nil, "Source set A (comma-separated state indices)")
	cmd.Flags().IntSliceVar(&to, "to", nil, "Target set B (comma-separated state indices)")
	cmd.Flags().BoolVar(&backward, "backward", false, "Compute backward committors")

	return cmd
}
