package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/markov/builder"
)

type generateFlags struct {
	states int
	seed   int64
	p      float64
	perms  int
	lazy   float64
}

// kinds maps generator names to constructors.
var kinds = map[string]func(f generateFlags) builder.Constructor{
	"cycle":            func(f generateFlags) builder.Constructor { return builder.Cycle(f.states) },
	"complete":         func(f generateFlags) builder.Constructor { return builder.Complete(f.states) },
	"random-walk":      func(f generateFlags) builder.Constructor { return builder.RandomWalk(f.states, f.p) },
	"random":           func(f generateFlags) builder.Constructor { return builder.Random(f.states) },
	"random-sparse":    func(f generateFlags) builder.Constructor { return builder.RandomSparse(f.states, f.p) },
	"random-symmetric": func(f generateFlags) builder.Constructor { return builder.RandomSymmetric(f.states, f.perms) },
}

func kindNames() string {
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

func newGenerateCmd(g *globalFlags) *cobra.Command {
	f := generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate KIND",
		Short: "Write a generated transition matrix",
		Long: fmt.Sprintf(`Writes a transition matrix in the analyze input format.

Kinds: %s.`, kindNames()),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mk, ok := kinds[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q (want one of: %s)", args[0], kindNames())
			}
			ctor := mk(f)
			if f.lazy > 0 {
				ctor = builder.Lazy(ctor, f.lazy)
			}

			m, err := builder.BuildMatrix(ctor, builder.WithSeed(f.seed))
			if err != nil {
				return err
			}

			return encode(cmd.OutOrStdout(), g.format, chainFile{Transitions: m.ToRows()})
		},
	}

	cmd.Flags().IntVarP(&f.states, "states", "n", 4, "Number of states")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "Seed for random kinds")
	cmd.Flags().Float64Var(&f.p, "p", 0.5, "Step probability (random-walk) or edge density (random-sparse)")
	cmd.Flags().IntVar(&f.perms, "perms", 3, "Permutations averaged by random-symmetric")
	cmd.Flags().Float64Var(&f.lazy, "lazy", 0, "Mix in alpha·I with this alpha (0 disables)")

	return cmd
}
