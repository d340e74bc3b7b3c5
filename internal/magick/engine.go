package magick

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Engine runs a chain of operations over an image file and returns whatever
// the engine printed on stdout. Implementations block until the invocation
// finishes; a started invocation is never cancelled.
type Engine interface {
	Apply(src, dst string, ops ...Op) (stdout string, err error)
}

// ConvertEngine runs operations through the ImageMagick command line tool
// (magick or convert, whichever was found on the system).
type ConvertEngine struct {
	Binary string
	Log    *logrus.Logger
}

func NewConvertEngine(binary string, log *logrus.Logger) *ConvertEngine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ConvertEngine{Binary: binary, Log: log}
}

func (e *ConvertEngine) Apply(src, dst string, ops ...Op) (string, error) {
	args := make([]string, 0, 2+4*len(ops))
	args = append(args, src)
	for _, op := range ops {
		args = append(args, op...)
	}
	args = append(args, dst)

	cmdText := e.Binary + " " + strings.Join(args, " ")
	e.logger().Infof("run: %s", cmdText)

	cmd := exec.Command(e.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	out := strings.TrimSpace(stdout.String())
	errText := strings.TrimSpace(stderr.String())
	if out != "" {
		e.logger().Infof("stdout: %s", out)
	}
	if errText != "" {
		e.logger().Warnf("stderr: %s", errText)
	}

	if runErr != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			code = exitErr.ExitCode()
		}
		return out, &RunError{Cmd: cmdText, ExitCode: code, Stderr: errText, Err: runErr}
	}
	return out, nil
}

func (e *ConvertEngine) logger() *logrus.Logger {
	if e.Log != nil {
		return e.Log
	}
	return logrus.StandardLogger()
}
