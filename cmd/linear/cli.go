package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/erni27/linear"
)

// NewCLI returns the linear root command. newLogger is called once
// before any subcommand runs, with the value of the --debug flag.
func NewCLI(newLogger func(debug bool) (*zap.Logger, error)) *cobra.Command {
	var logger *zap.Logger

	rootCmd := &cobra.Command{
		Use:   "linear",
		Short: "Exercise linear data structures",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
			debug, err := cmd.Flags().GetBool("debug")
			if err != nil {
				return err
			}
			logger, err = newLogger(debug)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	rootCmd.PersistentFlags().Bool("debug", false, "Use a development logger")

	queueCmd := &cobra.Command{
		Use:   "queue ITEM...",
		Short: "Enqueue items into a circular queue and drain it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseInts(args)
			if err != nil {
				return err
			}
			capacity, err := cmd.Flags().GetInt("capacity")
			if err != nil {
				return err
			}
			if capacity <= 0 {
				return fmt.Errorf("invalid capacity %d", capacity)
			}
			runQueue(logger, capacity, items)
			return nil
		},
	}
	queueCmd.Flags().Int("capacity", linear.DefaultCapacity, "Queue capacity")

	listCmd := &cobra.Command{
		Use:   "list ITEM...",
		Short: "Build a linked list, edit it and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseInts(args)
			if err != nil {
				return err
			}
			deletes, err := cmd.Flags().GetIntSlice("delete")
			if err != nil {
				return err
			}
			reverse, err := cmd.Flags().GetBool("reverse")
			if err != nil {
				return err
			}
			l := runList(logger, items, deletes, reverse)
			fmt.Fprintln(cmd.OutOrStdout(), l)
			return nil
		},
	}
	listCmd.Flags().IntSlice("delete", nil, "Items to delete, first occurrence each")
	listCmd.Flags().Bool("reverse", false, "Reverse the list after deleting")

	stackCmd := &cobra.Command{
		Use:   "stack ITEM...",
		Short: "Push items onto the stacks and pop them back",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseInts(args)
			if err != nil {
				return err
			}
			capacity, err := cmd.Flags().GetInt("capacity")
			if err != nil {
				return err
			}
			if capacity <= 0 {
				return fmt.Errorf("invalid capacity %d", capacity)
			}
			runStack(logger, capacity, items)
			return nil
		},
	}
	stackCmd.Flags().Int("capacity", linear.DefaultCapacity, "Capacity of the queue backed stack")

	addCmd := &cobra.Command{
		Use:   "add A B",
		Short: "Add two non-negative integers digit by digit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid addend %q: %w", args[0], err)
			}
			b, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid addend %q: %w", args[1], err)
			}
			sum := linear.NewIntList(a).Add(linear.NewIntList(b))
			logger.Info("add",
				zap.Uint64("a", a),
				zap.Uint64("b", b),
				zap.Stringer("sum", sum),
				zap.Int("digits", sum.Len()),
			)
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}

	rootCmd.AddCommand(queueCmd, listCmd, stackCmd, addCmd)
	return rootCmd
}

func parseInts(args []string) ([]int, error) {
	items := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid item %q: %w", arg, err)
		}
		items = append(items, v)
	}
	return items, nil
}

func runQueue(logger *zap.Logger, capacity int, items []int) {
	q := linear.NewCircularQueue[int](linear.WithCapacityOption(capacity))
	for _, item := range items {
		ok := q.Enqueue(item)
		logger.Info("enqueue", zap.Int("item", item), zap.Bool("ok", ok), zap.Int("len", q.Len()))
		logger.Debug("buffer", zap.Stringer("queue", q))
	}
	for !q.IsEmpty() {
		front, _ := q.Front()
		end, _ := q.End()
		q.Dequeue()
		logger.Info("dequeue", zap.Int("item", front), zap.Int("end", end), zap.Int("len", q.Len()))
		logger.Debug("buffer", zap.Stringer("queue", q))
	}
}

func runList(logger *zap.Logger, items, deletes []int, reverse bool) *linear.LinkedList[int] {
	l := linear.NewLinkedList(items...)
	for _, v := range deletes {
		ok := l.Delete(v)
		logger.Info("delete", zap.Int("item", v), zap.Bool("ok", ok), zap.Int("len", l.Len()))
	}
	if reverse {
		l.Reverse()
	}
	fields := []zap.Field{zap.Stringer("list", l), zap.Int("len", l.Len())}
	if mid := l.MidPoint(); mid != nil {
		fields = append(fields, zap.Int("midpoint", mid.Value))
	}
	logger.Info("list", fields...)
	return l
}

func runStack(logger *zap.Logger, capacity int, items []int) {
	var (
		s  linear.Stack[int]
		ms linear.MinStack[int]
	)
	sq := linear.NewStackUsingQueue[int](linear.WithCapacityOption(capacity))
	for _, item := range items {
		s.Push(item)
		ms.Push(item)
		if !sq.Push(item) {
			logger.Warn("queue backed stack is full", zap.Int("item", item), zap.Int("capacity", capacity))
		}
	}
	for !s.IsEmpty() {
		m, _ := ms.Min()
		item, _ := s.Pop()
		ms.Pop()
		logger.Info("pop", zap.Int("item", item), zap.Int("min", m), zap.Int("len", s.Len()))
	}
	for !sq.IsEmpty() {
		item, _ := sq.Pop()
		logger.Info("pop queue backed", zap.Int("item", item), zap.Int("len", sq.Len()))
	}
	logger.Info("space", zap.Int("stack", s.Space()), zap.Int("queue backed", sq.Space()))
}
