package main

import (
	"fmt"
	"log"
	"os"

	"github.com/slickdexic/layers-kernel/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("layers-kernel %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("layers-kernel - geometry kernel server for the Layers annotation editor")
			fmt.Println()
			fmt.Println("Usage: layers-kernel [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  LAYERS_KERNEL_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("It computes layer bounds, hit tests, and arrow geometry for an")
			fmt.Println("annotation editor front end; configure it in your MCP client.")
			return
		}
	}

	// Configure logging to stderr (stdout is for the protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("LAYERS_KERNEL_LOG_LEVEL") == "debug" {
		log.Printf("layers-kernel v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(os.Stdin, os.Stdout)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
