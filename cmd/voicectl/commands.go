package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"voicesalon/config"
	"voicesalon/services/salondata"
	"voicesalon/services/voiceai"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "voicectl",
		Short:         "Manage the salon's voice agent tools",
		SilenceUsage: true,
	}
	root.AddCommand(newToolsCmd(), newVapiCmd(), newElevenLabsCmd())
	return root
}

func newToolsCmd() *cobra.Command {
	tools := &cobra.Command{Use: "tools", Short: "Inspect the tool catalog"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every tool with its method and path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMETHOD\tPATH\tREQUIRED")
			for _, d := range voiceai.Definitions() {
				var required []string
				for name, p := range d.Parameters {
					if p.Required {
						required = append(required, name)
					}
				}
				slices.Sort(required)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Name, d.Method, d.Path, strings.Join(required, ","))
			}
			return w.Flush()
		},
	}

	var out, baseURL string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the agent configuration with absolute tool URLs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if baseURL == "" {
				baseURL = config.AppConfig.APIBaseURL
			}
			agent := voiceai.BuildAgentConfig(baseURL, config.AppConfig.SalonName, salonArea())
			b, err := json.MarshalIndent(agent, "", "  ")
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(append(b, '\n'))
				return err
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d tools to %s\n", len(agent.ExternalFunctions), out)
			return nil
		},
	}
	export.Flags().StringVar(&out, "out", "vapi-config.json", "output file, - for stdout")
	export.Flags().StringVar(&baseURL, "base-url", "", "public API URL (defaults to API_BASE_URL)")

	tools.AddCommand(list, export)
	return tools
}

func newVapiCmd() *cobra.Command {
	vapi := &cobra.Command{Use: "vapi", Short: "Vapi.ai assistant management"}
	sync := &cobra.Command{
		Use:   "sync",
		Short: "Replace the assistant's tools with the current catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.AppConfig
			client := voiceai.NewVapiClient(cfg.VapiBaseURL, cfg.VapiAPIKey, cfg.VapiAssistantID, nil)
			tools := voiceai.VapiToolsFor(voiceai.Definitions(), strings.TrimRight(cfg.APIBaseURL, "/")+"/api/vapi/webhook")
			if err := client.SyncAssistant(cmd.Context(), tools); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Synced %d tools to assistant %s\n", len(tools), cfg.VapiAssistantID)
			return nil
		},
	}
	vapi.AddCommand(sync)
	return vapi
}

func newElevenLabsCmd() *cobra.Command {
	el := &cobra.Command{Use: "elevenlabs", Short: "ElevenLabs agent management"}
	check := &cobra.Command{
		Use:   "check",
		Short: "Verify the API key and agent id",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.AppConfig
			client := voiceai.NewElevenLabsClient(cfg.ElevenLabsBaseURL, cfg.ElevenLabsAPIKey, cfg.ElevenLabsAgentID, nil)
			info, err := client.Agent(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Agent %s (%s) is reachable\n", info.Name, client.AgentID())
			return nil
		},
	}
	el.AddCommand(check)
	return el
}

// salonArea reads the neighborhood from the data directory for the prompts.
func salonArea() string {
	dir, _ := salondata.Load(config.AppConfig.DataDir, zap.NewNop())
	return dir.Schedule.Location.Area()
}
