// Command voicectl manages the voice agents that call this API: it lists and
// exports the tool catalog, pushes it to Vapi and checks the ElevenLabs agent.
package main

import (
	"os"

	"voicesalon/config"
)

func main() {
	config.LoadConfig()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
