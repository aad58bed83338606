package main

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"github.com/microgroove/sequencer/ai"
	"github.com/microgroove/sequencer/console"
	"github.com/microgroove/sequencer/input"
	"github.com/microgroove/sequencer/midi"
	"github.com/microgroove/sequencer/playback"
	"github.com/microgroove/sequencer/sequencer"
)

// isTerminal returns true if stdin is a terminal (TTY).
func isTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// cryptoEntropy draws machine randomness from crypto/rand. Machines
// don't need cryptographic strength, but crypto/rand is already in the
// standard library and saves seeding a PRNG by hand.
type cryptoEntropy struct{}

func (cryptoEntropy) RandomU64() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.BigEndian.Uint64(buf[:])
}

// processBatchInput reads and executes commands from reader.
// Returns (success, shouldExit) where success indicates no errors occurred
// and shouldExit indicates if an explicit exit command was found.
func processBatchInput(ctx context.Context, reader io.Reader, h *console.Handler) (bool, bool) {
	scanner := bufio.NewScanner(reader)
	hadErrors := false
	shouldExit := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			fmt.Println(line)
			continue
		}
		if strings.ToLower(line) == "exit" || strings.ToLower(line) == "quit" {
			shouldExit = true
			continue
		}

		fmt.Println(">", line)
		if err := h.ProcessCommand(ctx, line); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			hadErrors = true
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return false, shouldExit
	}
	return !hadErrors, shouldExit
}

// selectPort prompts interactively when there's more than one candidate
// and we're not running in batch mode; otherwise it picks index 0.
func selectPort(kind string, ports []string, inBatchMode bool) (int, error) {
	if len(ports) == 0 {
		return 0, fmt.Errorf("no MIDI %s ports found", kind)
	}

	fmt.Printf("Available MIDI %s ports:\n", kind)
	for i, port := range ports {
		fmt.Printf("  %d: %s\n", i, port)
	}

	if len(ports) == 1 || inBatchMode {
		fmt.Printf("\nUsing %s port 0: %s\n\n", kind, ports[0])
		return 0, nil
	}

	fmt.Print("\n")
	rl, err := readline.New(fmt.Sprintf("Select MIDI %s port (0-%d): ", kind, len(ports)-1))
	if err != nil {
		return 0, fmt.Errorf("error creating readline: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		return 0, fmt.Errorf("error reading input: %w", err)
	}

	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || idx < 0 || idx >= len(ports) {
		return 0, fmt.Errorf("invalid port selection: %s", line)
	}
	fmt.Printf("Using %s port %d: %s\n\n", kind, idx, ports[idx])
	return idx, nil
}

func main() {
	scriptFile := flag.String("script", "", "execute commands from file")
	inPortFlag := flag.Int("in-port", -1, "MIDI input port to listen for clock/transport on (-1 to skip clock input)")
	flag.Parse()

	inBatchMode := *scriptFile != "" || !isTerminal()

	outPorts, err := midi.ListPorts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing MIDI output ports: %v\n", err)
		os.Exit(1)
	}
	outIndex, err := selectPort("output", outPorts, inBatchMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	midiOut, err := midi.Open(outIndex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening MIDI output port: %v\n", err)
		os.Exit(1)
	}
	defer midiOut.Close()

	seq := sequencer.New()
	mapper := input.NewMapper(seq)
	entropy := cryptoEntropy{}
	engine := playback.New(midiOut, seq)

	aiClient, err := ai.NewFromEnv()
	if err != nil {
		fmt.Println("AI assist unavailable (set ANTHROPIC_API_KEY to enable the 'ai' command).")
		aiClient = nil
	}
	cmdHandler := console.New(mapper, entropy, aiClient)

	var listener *midi.Listener
	if *inPortFlag >= 0 {
		startTime := time.Now()
		listener, err = midi.OpenListener(*inPortFlag, func(ev midi.Event) {
			switch ev.Kind {
			case midi.EventClock:
				engine.HandleClockTick(uint64(time.Since(startTime).Microseconds()))
			case midi.EventStart:
				seq.StartPlaying()
			case midi.EventStop:
				seq.StopPlaying()
			case midi.EventContinue:
				seq.ContinuePlaying()
			default:
				_ = midiOut.SendRaw(ev.Raw)
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening MIDI input port: %v\n", err)
			os.Exit(1)
		}
		defer listener.Close()
		fmt.Printf("Listening for clock/transport on input port %d.\n", *inPortFlag)
	} else {
		fmt.Println("No MIDI input port selected: driving the internal clock instead.")
		go runInternalClock(seq, engine)
	}

	var cleanupOnce sync.Once
	cleanup := func() {
		cleanupOnce.Do(func() {
			if listener != nil {
				listener.Close()
			}
			midiOut.Close()
		})
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down gracefully...")
		cleanup()
		os.Exit(0)
	}()

	fmt.Println("Sequencer ready. Type 'help' for commands, 'quit' to exit.")
	fmt.Println()

	ctx := context.Background()

	if *scriptFile != "" {
		f, err := os.Open(*scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script file: %v\n", err)
			os.Exit(2)
		}
		defer f.Close()

		success, shouldExit := processBatchInput(ctx, f, cmdHandler)
		if shouldExit {
			cleanup()
			if success {
				os.Exit(0)
			}
			os.Exit(1)
		}
		fmt.Println("\nScript completed. Sequencer keeps running. Press Ctrl+C to exit.")
		select {}
	}

	if isTerminal() {
		if err := cmdHandler.ReadLoop(ctx, os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading commands: %v\n", err)
			os.Exit(1)
		}
	} else {
		success, shouldExit := processBatchInput(ctx, os.Stdin, cmdHandler)
		if shouldExit {
			cleanup()
			if success {
				os.Exit(0)
			}
			os.Exit(1)
		}
		fmt.Println("\nBatch commands completed. Sequencer keeps running. Press Ctrl+C to exit.")
		select {}
	}

	fmt.Println("Goodbye!")
}

// runInternalClock drives the scheduler from the host clock at the
// default tick duration when no external MIDI clock input is wired in,
// so the sequencer is still audible standalone.
func runInternalClock(seq *sequencer.Sequencer, engine *playback.Engine) {
	seq.StartPlaying()
	startTime := time.Now()
	ticker := time.NewTicker(time.Duration(sequencer.DefaultTickDurationUs) * time.Microsecond)
	defer ticker.Stop()
	for range ticker.C {
		engine.HandleClockTick(uint64(time.Since(startTime).Microseconds()))
	}
}
