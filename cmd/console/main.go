package main

import (
	"flag"
	"fmt"
	"os"

	"fleetd/cmd/console/ui"
	"fleetd/network"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	var (
		server   = flag.String("server", "http://127.0.0.1:9400", "Control plane base URL")
		token    = flag.String("token", "", "Bearer token (shared secret)")
		username = flag.String("user", "", "Operator username (alternative to -token)")
		password = flag.String("pass", "", "Operator password")
	)
	flag.Parse()

	client := network.NewClient(*server, *token)
	if *token == "" {
		if *username == "" || *password == "" {
			fmt.Fprintln(os.Stderr, "provide -token, or -user and -pass to log in")
			os.Exit(1)
		}
		if err := client.Login(*username, *password); err != nil {
			fmt.Fprintln(os.Stderr, "login failed:", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(ui.NewRootModel(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "console error:", err)
		os.Exit(1)
	}
}
