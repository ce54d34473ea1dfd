package plain

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/soulnest/soulnest/internal/widget"
	"github.com/soulnest/soulnest/pkg/logger"
)

// Run reads one message per line from in until EOF or ctx ends. Every
// submission is sent on its own goroutine; results come back to this loop,
// which alone owns the session. The greeting is rendered from its own
// goroutine after greetDelay, so the client's renderer must be safe for
// concurrent use. After EOF, Run waits for the greeting and for outstanding
// exchanges before returning.
func Run(ctx context.Context, in io.Reader, client *widget.Client, greetDelay time.Duration) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	completions := make(chan widget.Result)
	greeted := make(chan bool, 1)
	go func() { greeted <- client.GreetAfter(ctx, greetDelay) }()

	var sess widget.Session
	inflight := 0
	inputDone := false

	for {
		if inputDone && inflight == 0 && greeted == nil {
			select {
			case err := <-scanErr:
				return err
			default:
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-greeted:
			greeted = nil

		case line, ok := <-lines:
			if !ok {
				lines = nil
				inputDone = true
				continue
			}
			pending, ok := client.Submit(line)
			if !ok {
				continue
			}
			inflight++
			current := sess
			go func() {
				res := pending.Do(ctx, current)
				select {
				case completions <- res:
				case <-ctx.Done():
				}
			}()

		case res := <-completions:
			inflight--
			sess = client.Complete(sess, res)
			logger.Debug(logger.WIDGET, "Exchange finished with %s, %d in flight", res.Status, inflight)
		}
	}
}
