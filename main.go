package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"toyviewer/config"
	"toyviewer/rendering/rlview"
)

var (
	configPath string
	port       int
	webDir     string
)

func init() {
	// raylib must run on the main thread
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCommand()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "toyviewer",
		Short: "Interactive toy house viewer",
		Long: `toyviewer - Interactive toy house viewer

Orbits a camera around a toy house, a doll and a teddy bear.
Hover a part to highlight it, click it to see its name.

Without a subcommand the browser viewer is served.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "settings.json", "Settings file (.json, .yaml, .yml)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser viewer over HTTP and websockets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	serveCmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides settings)")
	serveCmd.Flags().StringVar(&webDir, "web", "", "Directory holding index.html and static/ (overrides settings)")
	root.AddCommand(serveCmd)

	nativeCmd := &cobra.Command{
		Use:   "native",
		Short: "Open the viewer in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNative()
		},
	}
	root.AddCommand(nativeCmd)

	return root
}

func loadSettings() (config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if port > 0 {
		settings.Server.Port = port
	}
	if webDir != "" {
		settings.Server.WebDir = webDir
	}
	return settings, nil
}

func runServe(ctx context.Context) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	fmt.Println("=== Toy House Viewer ===")
	fmt.Printf("Scene: %d stars, orbit radius %.1f\n", settings.Scene.StarCount, settings.Orbit.Radius)
	fmt.Printf("Frame interval: %v\n", settings.Server.UpdateInterval())

	return NewServer(settings).ListenAndServe(ctx)
}

func runNative() error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	fmt.Println("=== Toy House Viewer (Native) ===")
	fmt.Printf("Window: %dx%d\n", settings.Viewer.Width, settings.Viewer.Height)
	fmt.Println("\nControls:")
	fmt.Println("  Mouse: Hover to highlight, click to show the part name")
	fmt.Println("  ESC: Exit")

	return rlview.Run(settings)
}
