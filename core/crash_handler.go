package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// emergencyReset leaves the alternate screen, shows the cursor and clears attributes
const emergencyReset = "\x1b[0m\x1b[?25h\x1b[?1049l"

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
	crashHooks  []func()

	// Overridden in tests
	crashOutput io.Writer = os.Stderr
	crashReset  io.Writer = os.Stdout
	exit                  = os.Exit
)

// RegisterScreen hands the active screen to the crash handler; nil clears it
func RegisterScreen(s tcell.Screen) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashScreen = s
}

// OnCrash registers cleanup that runs before the stack trace is printed
func OnCrash(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashHooks = append(crashHooks, fn)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen := crashScreen
	hooks := crashHooks
	crashScreen = nil
	crashHooks = nil
	crashMu.Unlock()

	// Terminal cleanup if available
	if screen != nil {
		screen.Fini()
	} else {
		fmt.Fprint(crashReset, emergencyReset)
	}

	for _, fn := range hooks {
		runHook(fn)
	}

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}

// runHook keeps a failing cleanup from hiding the original crash
func runHook(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
