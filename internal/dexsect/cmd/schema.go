package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

// DexsectConfig represents configuration for the tool
type DexsectConfig struct {
	Debug   bool  `json:"debug" jsonschema:"title=Debug,description=Enable debug logging"`
	Entries []int `json:"entries" jsonschema:"title=Entry Points,description=Extra entry point addresses in code units"`
	NoColor bool  `json:"noColor" jsonschema:"title=No Color,description=Disable terminal colors"`
}

var schemaCmd = &cobra.Command{
	Use:    "schema",
	Short:  "Generate JSON schemas for configuration and output",
	Long:   "Generate JSON schemas for the tool configuration and the blocks JSON output",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		reflector := new(jsonschema.Reflector)
		doc := map[string]*jsonschema.Schema{
			"config": reflector.Reflect(&DexsectConfig{}),
			"blocks": reflector.Reflect(&BlocksOutput{}),
		}
		bts, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal schema: %w", err)
		}
		fmt.Println(string(bts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
