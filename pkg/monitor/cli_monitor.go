package monitor

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// CLIMonitor writes every message crossing the gateway to the terminal, one
// line per exchange side, so an operator can follow all conversations in one
// place regardless of channel.
type CLIMonitor struct {
	writer io.Writer
}

func NewCLIMonitor() *CLIMonitor {
	return &CLIMonitor{writer: os.Stdout}
}

func (m *CLIMonitor) Start() error {
	rule := strings.Repeat("-", 64)
	fmt.Fprintln(m.writer, rule)
	fmt.Fprintln(m.writer, "HR desk monitor active - all channel traffic will appear here")
	fmt.Fprintln(m.writer, rule)
	return nil
}

func (m *CLIMonitor) Stop() error {
	return nil
}

// OnMessage prints one traffic line. Multi-line replies (field prompts, help
// text, policy answers) are flattened so each exchange stays one line.
func (m *CLIMonitor) OnMessage(msg MonitorMessage) {
	content := strings.ReplaceAll(msg.Content, "\n", " | ")

	var line string
	if msg.MessageType == "ASSISTANT" {
		line = fmt.Sprintf("[bot -> %s/%s] %s", msg.ChannelID, msg.Username, content)
	} else {
		line = fmt.Sprintf("[%s/%s] %s", msg.ChannelID, msg.Username, content)
	}

	// Gray timestamp prefix.
	fmt.Fprintf(m.writer, "\033[90m[%s]\033[0m %s\n",
		msg.Timestamp.Format("2006-01-02 15:04:05"), line)
}
