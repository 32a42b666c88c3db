package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/quest/pkg/codec"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/session"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Write an adventure record as YAML or JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		var data []byte
		err = a.Manager.Do(cmd.Context(), args[0], func(_ context.Context, sess *session.Session) error {
			var err error
			data, err = encode(sess.Adventure(), format)
			return err
		})
		if err != nil {
			return err
		}

		if output == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		return os.WriteFile(output, data, 0644)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Store an adventure record read from a YAML or JSON file",
	Long:  `Reads an adventure record and saves it, replacing any stored adventure with the same ID. Files ending in .json are read as JSON, anything else as YAML.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		adv, err := decode(data, args[0])
		if err != nil {
			return err
		}

		if err := a.Import(cmd.Context(), adv); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%d nodes)\n", adv.ID, len(adv.Nodes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	exportCmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or json")
	exportCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
}

func encode(adv *domain.Adventure, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return codec.EncodeYAML(adv)
	case "json":
		return codec.EncodeJSON(adv)
	}
	return nil, fmt.Errorf("unknown format %q (want yaml or json)", format)
}

func decode(data []byte, name string) (*domain.Adventure, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return codec.DecodeJSON(data)
	}
	return codec.DecodeYAML(data)
}
