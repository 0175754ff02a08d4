package audit

import (
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"github.com/sirupsen/logrus"
)

// Trigger fires the downstream inventory-refresh command at run end. The
// command is started asynchronously and its result is not awaited.
type Trigger struct {
	cmdline string
	log     *logrus.Entry
}

func NewTrigger(cmdline string) Trigger {
	return Trigger{
		cmdline: cmdline,
		log:     logrus.WithField("name", "refresh-trigger"),
	}
}

// Fire starts the configured command. An empty command line is a no-op.
func (t Trigger) Fire() error {
	if t.cmdline == "" {
		return nil
	}

	parts, err := shellquote.Split(t.cmdline)
	if err != nil {
		return fmt.Errorf("invalid refresh command: %w", err)
	}
	if len(parts) == 0 {
		return nil
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start refresh command: %w", err)
	}

	t.log.Infof("fired inventory refresh: %s", t.cmdline)

	// Reap the child; the outcome is intentionally ignored.
	go func() { _ = cmd.Wait() }()

	return nil
}
