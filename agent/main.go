package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"fleetd/agent/internal/config"
	"fleetd/agent/internal/logger"
	"fleetd/network"
)

func main() {
	var (
		cfgPath = flag.String("config", "agent.yaml", "Path to configuration file")
		name    = flag.String("name", "", "Override agent name")
		token   = flag.String("token", "", "Override API token")
	)
	flag.Parse()

	cfg := config.Init(*cfgPath)
	if *name != "" {
		cfg.Name = *name
	}
	if *token != "" {
		cfg.Token = *token
	}
	if err := logger.Init(cfg.LogPath); err != nil {
		fmt.Fprintln(os.Stderr, "cannot open log file:", err)
		return
	}
	if cfg.Token == "" {
		logger.Errorf("no API token configured, set agent.token or -token")
		return
	}

	client := network.NewClient(cfg.ServerURL, cfg.Token)
	logger.Infof("agent %s polling %s every %ds", cfg.Name, cfg.ServerURL, cfg.FreqSec)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(cfg.FreqSec) * time.Second)
	defer ticker.Stop()

	poll(client, cfg)
	for {
		select {
		case <-ticker.C:
			poll(client, cfg)
		case <-stop:
			logger.Infof("agent stopping")
			return
		}
	}
}

// poll performs one cycle: check in, then drain at most one pending
// command and report its output.
func poll(client *network.Client, cfg config.AppConfig) {
	ping := measurePing(client)
	if err := client.Checkin(cfg.Name, localAddress(cfg.ServerURL), cfg.FreqSec, ping); err != nil {
		logger.Errorf("check-in failed: %v", err)
		return
	}

	order, err := client.FetchOrder(cfg.Name)
	if err != nil {
		logger.Errorf("order fetch failed: %v", err)
		return
	}
	if order.CommandID == nil {
		return
	}

	logger.Infof("executing command %d", *order.CommandID)
	output := run(order.CommandText)
	if err := client.StoreResponse(cfg.Name, *order.CommandID, output); err != nil {
		logger.Errorf("response upload failed: %v", err)
	}
}

// run executes the payload through the platform shell with a hard
// timeout. The claim already removed the command server-side, so a
// failure here is reported in the response text rather than retried.
func run(text string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", text)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", text)
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Sprintf("%s\nerror: %v", out, err)
	}
	return string(out)
}

// measurePing times a /ping round trip.
func measurePing(client *network.Client) string {
	start := time.Now()
	resp, err := client.HTTP.Get(client.BaseURL + "/ping")
	if err != nil {
		return "unreachable"
	}
	resp.Body.Close()
	return time.Since(start).Round(time.Millisecond).String()
}

// localAddress reports the interface address used to reach the server.
func localAddress(serverURL string) string {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "unknown"
	}
	conn, err := net.Dial("udp", u.Host)
	if err != nil {
		return "unknown"
	}
	defer conn.Close()
	host, _, _ := net.SplitHostPort(conn.LocalAddr().String())
	return host
}
