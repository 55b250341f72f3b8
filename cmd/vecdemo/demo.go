package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wilhasse/govec/elem"
	"github.com/wilhasse/govec/scope"
	"github.com/wilhasse/govec/vec"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the vector-of-vectors example",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := newRuntimeEnv(cfg)
		defer env.report()
		return runDemo(cmd.OutOrStdout(), env.vectorOptions(cfg))
	},
}

// runDemo builds three int vectors, stores clones of them in a nested
// vector, then prints every nested element. vec2 is released by hand before
// the scope ends; the scope releasing it again is a no-op.
func runDemo(out io.Writer, opts []vec.Option) error {
	fmt.Fprintln(out, "Beginning of the program")
	err := scope.Run(func(s *scope.Scope) error {
		var ints [3]*vec.Vector[int]
		for i := range ints {
			v, err := elem.NewInts(opts...)
			if err != nil {
				return err
			}
			ints[i] = scope.Keep(s, v)
		}
		vec1, vec2, vec3 := ints[0], ints[1], ints[2]

		for _, step := range []struct {
			v *vec.Vector[int]
			x int
		}{{vec1, 1}, {vec1, 1}, {vec1, 3}, {vec2, 2}, {vec2, 2}, {vec2, 3}, {vec3, 3}} {
			if err := step.v.Push(step.x); err != nil {
				return err
			}
		}

		nested, err := elem.NewNested[int](opts...)
		if err != nil {
			return err
		}
		scope.Keep(s, nested)

		for i := 0; i < 10; i++ {
			if err := nested.Push(vec1); err != nil {
				return err
			}
			if err := nested.Push(vec2); err != nil {
				return err
			}
		}
		vec2.Release()

		if err := vec1.Replace(0, 10); err != nil {
			return err
		}
		if err := nested.Replace(0, vec3); err != nil {
			return err
		}
		nested.ForEach(func(v *vec.Vector[int]) {
			fmt.Fprint(out, formatInts(v))
		})
		return nil
	}, scope.WithLogger(logger))
	fmt.Fprintln(out, "End of the program")
	return err
}

func formatInts(v *vec.Vector[int]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vector size: %d\n", v.Len())
	for _, x := range v.All() {
		fmt.Fprintf(&b, "%d ", x)
	}
	b.WriteString("\n")
	return b.String()
}
