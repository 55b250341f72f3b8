package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wilhasse/govec/elem"
	"github.com/wilhasse/govec/scope"
	"github.com/wilhasse/govec/ut"
	"github.com/wilhasse/govec/vec"
)

// selfTest is one randomized check run against fresh vectors.
type selfTest struct {
	name string
	run  func(t *testEnv, s *scope.Scope) error
}

type testEnv struct {
	rnd  *ut.Rand
	opts []vec.Option
}

var defaultTests = []selfTest{
	{"push_sequence", testPushSequence},
	{"push_random", testPushRandom},
	{"insert_random", testInsertRandom},
	{"pop_all", testPopAll},
	{"clear", testClear},
	{"strings_copy", testStringsCopy},
	{"strings_random", testStringsRandom},
	{"clone_independent", testCloneIndependent},
}

var (
	testsFlag string
	seedFlag  uint64
	listFlag  bool
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run randomized container checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFlag {
			for _, tc := range defaultTests {
				fmt.Fprintln(cmd.OutOrStdout(), tc.name)
			}
			return nil
		}
		seed := cfg.Selftest.Seed
		if cmd.Flags().Changed("seed") {
			seed = seedFlag
		}
		names := cfg.Selftest.Tests
		if testsFlag != "" {
			names = resolveTests(testsFlag)
		}
		tests, err := selectTests(names)
		if err != nil {
			return err
		}
		env := newRuntimeEnv(cfg)
		defer env.report()
		return runSelfTests(cmd.OutOrStdout(), tests, seed, env.vectorOptions(cfg))
	},
}

func init() {
	selftestCmd.Flags().StringVar(&testsFlag, "tests", "", "Comma-separated tests to run (default all)")
	selftestCmd.Flags().Uint64Var(&seedFlag, "seed", 0, "Random seed (0 uses the default seed)")
	selftestCmd.Flags().BoolVar(&listFlag, "list", false, "List available tests")
}

func resolveTests(flagValue string) []string {
	parts := strings.Split(flagValue, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

func selectTests(names []string) ([]selfTest, error) {
	if len(names) == 0 {
		return defaultTests, nil
	}
	byName := make(map[string]selfTest, len(defaultTests))
	for _, tc := range defaultTests {
		byName[tc.name] = tc
	}
	out := make([]selfTest, 0, len(names))
	for _, name := range names {
		tc, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown test %q", name)
		}
		out = append(out, tc)
	}
	return out, nil
}

func runSelfTests(out io.Writer, tests []selfTest, seed uint64, opts []vec.Option) error {
	rnd := ut.NewRand(seed)
	failed := 0
	for _, tc := range tests {
		fmt.Fprintf(out, "TEST: %s\n", tc.name)
		err := runOne(tc, &testEnv{rnd: rnd, opts: opts})
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL: %s: %v\n", tc.name, err)
			logger.Error("self test failed", zap.String("test", tc.name), zap.Uint64("seed", seed), zap.Error(err))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d tests failed", failed, len(tests))
	}
	fmt.Fprintln(out, "All tests have been completed successfully")
	return nil
}

// runOne runs tc in its own scope and turns assertion panics into errors.
func runOne(tc selfTest, env *testEnv) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ae, ok := r.(*ut.AssertionError); ok {
				err = ae
				return
			}
			panic(r)
		}
	}()
	return scope.Run(func(s *scope.Scope) error {
		return tc.run(env, s)
	}, scope.WithLogger(logger))
}

func check(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return fmt.Errorf(format, args...)
}

func (t *testEnv) ints(s *scope.Scope) (*vec.Vector[int], error) {
	v, err := elem.NewInts(t.opts...)
	if err != nil {
		return nil, err
	}
	return scope.Keep(s, v), nil
}

func (t *testEnv) byteStrings(s *scope.Scope) (*vec.Vector[[]byte], error) {
	v, err := elem.NewStrings(t.opts...)
	if err != nil {
		return nil, err
	}
	return scope.Keep(s, v), nil
}

func pushAll(v *vec.Vector[int], values []int) error {
	for _, x := range values {
		if err := v.Push(x); err != nil {
			return err
		}
	}
	return nil
}

func expectInts(v *vec.Vector[int], want []int) error {
	if v.Len() != len(want) {
		return fmt.Errorf("len=%d, want %d", v.Len(), len(want))
	}
	for i, x := range want {
		if got := v.At(i); got != x {
			return fmt.Errorf("at(%d)=%d, want %d", i, got, x)
		}
	}
	return nil
}

func testPushSequence(t *testEnv, s *scope.Scope) error {
	v, err := t.ints(s)
	if err != nil {
		return err
	}
	values := []int{124, 125, 643, 12, 1425, 51, 34, 562, 12, 432, 523}
	if err := pushAll(v, values); err != nil {
		return err
	}
	return expectInts(v, values)
}

func testPushRandom(t *testEnv, s *scope.Scope) error {
	v, err := t.ints(s)
	if err != nil {
		return err
	}
	values := make([]int, 150)
	for i := range values {
		values[i] = t.rnd.Int31()
	}
	if err := pushAll(v, values); err != nil {
		return err
	}
	return expectInts(v, values)
}

func testInsertRandom(t *testEnv, s *scope.Scope) error {
	v, err := t.ints(s)
	if err != nil {
		return err
	}
	start, end := t.rnd.Int31(), t.rnd.Int31()
	if err := v.Insert(0, start); err != nil {
		return err
	}
	limit := t.rnd.Interval(50, 500)
	for i := 0; i < limit; i++ {
		if err := v.Insert(t.rnd.Interval(1, v.Len()), t.rnd.Int31()); err != nil {
			return err
		}
	}
	if err := v.Insert(v.Len(), end); err != nil {
		return err
	}
	if err := check(v.At(0) == start && v.Front() == start, "front=%d, want %d", v.Front(), start); err != nil {
		return err
	}
	return check(v.At(v.Len()-1) == end && v.Back() == end, "back=%d, want %d", v.Back(), end)
}

func testPopAll(t *testEnv, s *scope.Scope) error {
	v, err := t.ints(s)
	if err != nil {
		return err
	}
	if err := check(!v.Pop() && v.Empty(), "pop on empty vector succeeded"); err != nil {
		return err
	}
	limit := t.rnd.Interval(50, 500)
	for i := 0; i < limit; i++ {
		if err := v.Push(i); err != nil {
			return err
		}
	}
	popped := 0
	for v.Pop() {
		popped++
	}
	return check(popped == limit && v.Empty(), "popped %d of %d", popped, limit)
}

func testClear(t *testEnv, s *scope.Scope) error {
	v, err := t.ints(s)
	if err != nil {
		return err
	}
	limit := t.rnd.Interval(50, 500)
	for i := 0; i < limit; i++ {
		if err := v.Push(i); err != nil {
			return err
		}
	}
	v.Clear()
	return check(!v.Pop() && v.Empty(), "vector not empty after clear")
}

func testStringsCopy(t *testEnv, s *scope.Scope) error {
	v, err := t.byteStrings(s)
	if err != nil {
		return err
	}
	str := []byte("//*CHAR* VECTOR*//")
	if err := v.Push(str); err != nil {
		return err
	}
	if err := check(bytes.Equal(v.At(0), str) && bytes.Equal(v.Back(), str), "stored copy differs"); err != nil {
		return err
	}
	str[0] = 'p'
	if err := check(!bytes.Equal(v.Front(), str), "vector shares the caller's bytes"); err != nil {
		return err
	}
	return check(v.Pop() && v.Empty(), "pop failed")
}

func testStringsRandom(t *testEnv, s *scope.Scope) error {
	v, err := t.byteStrings(s)
	if err != nil {
		return err
	}
	words := make([][]byte, t.rnd.Interval(300, 600))
	for i := range words {
		word := make([]byte, t.rnd.Interval(2, 15))
		for k := range word {
			word[k] = byte(t.rnd.Interval('A', 'Z'))
		}
		words[i] = word
		if err := v.Push(word); err != nil {
			return err
		}
	}
	for i, w := range words {
		if err := check(bytes.Equal(v.At(i), w), "word %d differs", i); err != nil {
			return err
		}
		w[0]++
	}
	for i, w := range words {
		if err := check(!bytes.Equal(v.At(i), w), "word %d follows caller", i); err != nil {
			return err
		}
	}
	return nil
}

func testCloneIndependent(t *testEnv, s *scope.Scope) error {
	v, err := t.ints(s)
	if err != nil {
		return err
	}
	values := make([]int, t.rnd.Interval(1, 64))
	for i := range values {
		values[i] = t.rnd.Int31()
	}
	if err := pushAll(v, values); err != nil {
		return err
	}
	c, err := v.Clone()
	if err != nil {
		return err
	}
	scope.Keep(s, c)
	if err := expectInts(c, values); err != nil {
		return err
	}
	if err := c.Replace(0, values[0]+1); err != nil {
		return err
	}
	return expectInts(v, values)
}
