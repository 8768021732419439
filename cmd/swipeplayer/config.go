package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ytget/swipeplayer/internal/config"
)

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Configuration keys to describe")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	lo.Must0(configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

// configCmd groups configuration helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration keys and defaults",
}

// configInfoCmd lists configuration fields with their defaults and environment names
var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))
		asJSON := lo.Must(cmd.Flags().GetBool("json"))

		fields, err := selectFields(keys)
		handleErr(err)

		if asJSON {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}
		for i, field := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Print(describeField(field))
		}
	},
}

// selectFields returns the named fields, or all of them, sorted by key
func selectFields(keys []string) ([]config.Field, error) {
	fields := lo.Values(config.Default)
	if len(keys) > 0 {
		fields = make([]config.Field, 0, len(keys))
		for _, key := range keys {
			field, ok := config.Default[key]
			if !ok {
				return nil, fmt.Errorf("unknown key %s", key)
			}
			fields = append(fields, field)
		}
	}

	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return fields, nil
}

// envName returns the environment variable overriding key
func envName(key string) string {
	return strings.ToUpper(config.EnvPrefix + "_" + config.EnvKeyReplacer.Replace(key))
}

func describeField(field config.Field) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", field.Key)
	fmt.Fprintf(&b, "  %s\n", field.Description)
	fmt.Fprintf(&b, "  default: %v\n", field.Value)
	fmt.Fprintf(&b, "  env:     %s\n", envName(field.Key))
	return b.String()
}
