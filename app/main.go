package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/umputun/go-flags"

	"github.com/codedrop/codedrop/app/code"
	"github.com/codedrop/codedrop/app/external"
	"github.com/codedrop/codedrop/app/journal"
	"github.com/codedrop/codedrop/app/rotation"
	"github.com/codedrop/codedrop/app/transfer"
)

var opts struct {
	// secret is not flag-required so --version works without it; validateOpts
	// rejects an empty secret before any code generation
	Secret  string        `short:"s" long:"secret" env:"CODEDROP_SECRET" description:"shared secret, identical on both sides"`
	Modulo  int64         `short:"m" long:"modulo" env:"CODEDROP_MODULO" default:"60" description:"code rotation window, seconds"`
	Timeout time.Duration `long:"timeout" env:"CODEDROP_TIMEOUT" default:"15m" description:"timeout for a single tool invocation"`
	Out     string        `short:"o" long:"out" env:"CODEDROP_OUT" default:"." description:"directory for received items"`

	Tool struct {
		Command    string   `long:"cmd" env:"CMD" default:"wormhole" description:"transfer tool command"`
		SendArgs   []string `long:"send-arg" env:"SEND_ARGS" env-delim:"," description:"extra argument for send invocations, repeatable"`
		RecvArgs   []string `long:"recv-arg" env:"RECV_ARGS" env-delim:"," description:"extra argument for receive invocations, repeatable"`
		OutputFlag string   `long:"output-flag" env:"OUTPUT_FLAG" description:"tool flag to receive under an explicit name, empty if unsupported"`
	} `group:"tool" namespace:"tool" env-namespace:"CODEDROP_TOOL"`

	Encoder string `long:"encoder" env:"CODEDROP_ENCODER" default:"mnencode" description:"mnemonic encoder command"`
	Journal string `long:"journal" env:"CODEDROP_JOURNAL" description:"sqlite journal file, empty disables journaling"`

	Dbg     bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version and exit"`

	Args struct {
		Paths []string `positional-arg-name:"path"`
	} `positional-args:"yes"`
}

var revision = "unknown"

// exit codes per failure class
const (
	exitExternal = 1 // transfer tool or encoder failed
	exitConfig   = 2
	exitBoundary = 3
	exitProtocol = 4 // desynchronized peer or corrupted content
)

var errConfig = errors.New("bad configuration")

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(exitConfig)
	}
	if opts.Version {
		fmt.Printf("codedrop %s\n", revision)
		os.Exit(0)
	}

	setupLog(opts.Dbg)
	log.Printf("[INFO] codedrop %s", revision)

	if err := run(); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(exitCode(err))
	}
}

func run() error {
	if err := validateOpts(); err != nil {
		return err
	}

	// the base timestamp is captured once, all codes of this run derive
	// from it even if the run takes many seconds
	base := rotation.CaptureBase()
	if err := rotation.CheckBoundary(base, opts.Modulo); err != nil {
		var bErr *rotation.BoundaryError
		if errors.As(err, &bErr) {
			log.Printf("[WARN] started too close to a window change, safe to retry in %ds", bErr.Wait)
		}
		return err
	}

	runner := external.Runner{Timeout: opts.Timeout}
	gen := code.Generator{
		Secret:  opts.Secret,
		Modulo:  opts.Modulo,
		Base:    base,
		Encoder: external.Encoder{Command: opts.Encoder, Commander: runner},
	}
	tool := external.Tool{
		Command:    opts.Tool.Command,
		SendArgs:   opts.Tool.SendArgs,
		RecvArgs:   opts.Tool.RecvArgs,
		OutputFlag: opts.Tool.OutputFlag,
		Commander:  runner,
	}

	rec, err := makeRecorder()
	if err != nil {
		return err
	}
	defer func() {
		if err := rec.Close(); err != nil {
			log.Printf("[WARN] failed to close journal: %v", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	window := rotation.Window(base, opts.Modulo)
	if len(opts.Args.Paths) > 0 {
		log.Printf("[INFO] sending %d paths, window %d", len(opts.Args.Paths), window)
		rec.Begin("send", window)
		err = transfer.Sender{Coder: gen, Tool: tool, Rec: rec}.Run(ctx, opts.Args.Paths)
	} else {
		log.Printf("[INFO] receiving into %s, window %d", opts.Out, window)
		rec.Begin("receive", window)
		err = transfer.Receiver{Coder: gen, Tool: tool, Rec: rec, Dir: opts.Out}.Run(ctx)
	}
	if err != nil {
		rec.End("failed")
		return err
	}
	rec.End("ok")
	return nil
}

func validateOpts() error {
	if strings.TrimSpace(opts.Secret) == "" {
		return fmt.Errorf("%w: secret is required", errConfig)
	}
	if opts.Modulo < rotation.MinModulo {
		return fmt.Errorf("%w: modulo %d below minimum %d", errConfig, opts.Modulo, rotation.MinModulo)
	}
	if opts.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", errConfig)
	}
	if opts.Tool.Command == "" || opts.Encoder == "" {
		return fmt.Errorf("%w: tool and encoder commands are required", errConfig)
	}
	return nil
}

// recorder is what a run needs from the journal.
type recorder interface {
	transfer.Recorder
	Begin(role string, window int64)
	End(status string)
	Close() error
}

func makeRecorder() (recorder, error) {
	if opts.Journal == "" {
		return journal.Nop{}, nil
	}
	j, err := journal.New(opts.Journal)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errConfig, err)
	}
	return j, nil
}

func exitCode(err error) int {
	var bErr *rotation.BoundaryError
	switch {
	case errors.As(err, &bErr):
		return exitBoundary
	case errors.Is(err, transfer.ErrProtocol), errors.Is(err, transfer.ErrIntegrity):
		return exitProtocol
	case errors.Is(err, errConfig):
		return exitConfig
	}
	return exitExternal
}

func setupLog(dbg bool) {
	if dbg {
		log.Setup(log.Debug, log.CallerFile, log.CallerFunc, log.Msec, log.LevelBraces)
		return
	}
	log.Setup(log.Msec, log.LevelBraces)
}
