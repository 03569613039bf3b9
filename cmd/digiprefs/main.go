// digiprefs inspects and edits the main window preferences of the graph digitizer
package main

import (
	"os"

	"github.com/iiroan/digiprefs/cmd/digiprefs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
