// Package console implements the local interactive channel: lines read from
// stdin become utterances, replies print to stdout.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/user"
	"sync"

	"hrdesk/pkg/api"
	"hrdesk/pkg/utils"
)

const channelID = "console"

type Channel struct {
	in  io.Reader
	out io.Writer

	done     chan struct{}
	stopOnce sync.Once
}

func New() *Channel {
	return &Channel{
		in:   os.Stdin,
		out:  os.Stdout,
		done: make(chan struct{}),
	}
}

func (c *Channel) ID() string { return channelID }

func (c *Channel) Start(ctx api.ChannelContext) error {
	session := api.SessionContext{
		ChannelID: channelID,
		UserID:    "local",
		ChatID:    "local",
		Username:  localUsername(),
	}

	go func() {
		scanner := bufio.NewScanner(c.in)
		fmt.Fprint(c.out, "> ")
		for scanner.Scan() {
			select {
			case <-c.done:
				return
			default:
			}
			line := scanner.Text()
			if line == "" {
				fmt.Fprint(c.out, "> ")
				continue
			}
			ctx.OnMessage(channelID, &api.UnifiedMessage{
				Session: session,
				Content: line,
				TraceID: utils.GenerateID(),
			})
		}
	}()
	return nil
}

func (c *Channel) Stop() error {
	c.stopOnce.Do(func() { close(c.done) })
	return nil
}

func (c *Channel) Send(session api.SessionContext, message string) error {
	_, err := fmt.Fprintf(c.out, "%s\n> ", message)
	return err
}

func localUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
