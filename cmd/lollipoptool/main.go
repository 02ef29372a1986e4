// lollipoptool renders, hit-tests and shows the axes lollipop without a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/lollipop/internal/config"
	"github.com/Faultbox/lollipop/internal/engine/debug"
	"github.com/Faultbox/lollipop/internal/host"
	"github.com/Faultbox/lollipop/internal/logger"
	"github.com/Faultbox/lollipop/internal/lollipop"
	"github.com/Faultbox/lollipop/internal/termview"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "render":
		err = cmdRender(args)
	case "pick":
		err = cmdPick(args)
	case "faces":
		cmdFaces()
	case "term":
		err = cmdTerm(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lollipoptool - axes lollipop utility

Usage:
  lollipoptool <command> [options]

Commands:
  render [-o file.png] [-size N] [view]   Render one frame to PNG
  pick -x X -y Y [-size N] [view]         Print the face under a point
  faces                                   Print the face table
  term [view]                             Interactive terminal viewer

View options:
  -yaw, -pitch, -roll DEG   Orientation in degrees
  -face LABEL               Look straight at a face (+X, -X, +Y, -Y, +Z, -Z)

Examples:
  lollipoptool render -o cube.png -size 200 -yaw 30 -pitch -20
  lollipoptool pick -x 100 -y 100 -size 200 -face +X
  lollipoptool term -yaw 45`)
}

// viewFlags holds the orientation options shared by all commands.
type viewFlags struct {
	yaw, pitch, roll *float64
	face             *string
	fontSize         *float64
}

func addViewFlags(fs *flag.FlagSet) viewFlags {
	return viewFlags{
		yaw:      fs.Float64("yaw", 0, "Rotation about Y in degrees"),
		pitch:    fs.Float64("pitch", 0, "Rotation about X in degrees"),
		roll:     fs.Float64("roll", 0, "Rotation about Z in degrees"),
		face:     fs.String("face", "", "Face to look at, overrides angles"),
		fontSize: fs.Float64("font-size", 0, "Label font size in pixels"),
	}
}

// widgetConfig merges the view flags into the default widget settings.
func (v viewFlags) widgetConfig() (config.WidgetConfig, error) {
	cfg := config.Default().Widget
	cfg.Yaw = float32(*v.yaw)
	cfg.Pitch = float32(*v.pitch)
	cfg.Roll = float32(*v.roll)
	if *v.face != "" {
		id, err := lollipop.ParseFaceID(*v.face)
		if err != nil {
			return cfg, err
		}
		cfg.Yaw, cfg.Pitch = id.ViewAngles()
		cfg.Roll = 0
	}
	if *v.fontSize > 0 {
		cfg.FontSize = *v.fontSize
	}
	return cfg, nil
}

func (v viewFlags) controller() (*host.Controller, error) {
	cfg, err := v.widgetConfig()
	if err != nil {
		return nil, err
	}
	return host.NewController(cfg, logger.Named("tool"))
}

func cmdRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	out := fs.String("o", "", "Output PNG path (default: timestamped name in -dir)")
	dir := fs.String("dir", config.Default().Snapshot.OutputDir, "Output directory for generated names")
	size := fs.Int("size", lollipop.DefaultSize, "Image width and height in pixels")
	view := addViewFlags(fs)
	fs.Parse(args)

	ctrl, err := view.controller()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	img, _ := ctrl.Frame(*size, *size)

	sw := debug.NewSnapshotWriter(*dir, config.Default().Snapshot.Prefix)
	path := *out
	if path == "" {
		path, err = sw.Save(img)
	} else {
		err = sw.SaveTo(img, path)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Rendered: %s (%dx%d)\n", path, *size, *size)
	return nil
}

func cmdPick(args []string) error {
	fs := flag.NewFlagSet("pick", flag.ExitOnError)
	x := fs.Float64("x", -1, "Point X in pixels")
	y := fs.Float64("y", -1, "Point Y in pixels")
	size := fs.Int("size", lollipop.DefaultSize, "Viewport width and height in pixels")
	view := addViewFlags(fs)
	fs.Parse(args)

	if *x < 0 || *y < 0 {
		return fmt.Errorf("usage: lollipoptool pick -x X -y Y [-size N]")
	}

	ctrl, err := view.controller()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	ctrl.Frame(*size, *size)
	id, ok := ctrl.Widget().FaceAt(float32(*x), float32(*y))
	if !ok {
		fmt.Println("none")
		return nil
	}
	fmt.Printf("%s (id %d)\n", id, int(id))
	return nil
}

func cmdFaces() {
	fmt.Printf("%-3s %-5s %-4s %-12s %s\n", "ID", "LABEL", "AXIS", "VERTICES", "COLOR")
	for _, f := range lollipop.Faces() {
		c := lollipop.FaceColor(f)
		fmt.Printf("%-3d %-5s %-4s %-12s #%02x%02x%02x\n",
			int(f.ID), f.ID, f.Axis, fmt.Sprint(f.Vertices),
			uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5))
	}

	fmt.Println()
	fmt.Println("Vertices:")
	for i, v := range lollipop.CubeVertices() {
		fmt.Printf("  %d  %s\n", i, formatVec(v))
	}
}

func formatVec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%+.1f, %+.1f, %+.1f)", v[0], v[1], v[2])
}

func cmdTerm(args []string) error {
	fs := flag.NewFlagSet("term", flag.ExitOnError)
	logFile := fs.String("log-file", "", "Write logs to this file")
	debugLog := fs.Bool("debug", false, "Enable debug logging")
	view := addViewFlags(fs)
	fs.Parse(args)

	// stdout belongs to the terminal UI
	level := "info"
	if *debugLog {
		level = "debug"
	}
	fileCfg := logger.FileConfig{}
	if *logFile != "" {
		fileCfg = logger.DefaultFileConfig(*logFile)
	}
	if err := logger.InitWithFileConfig(level, fileCfg, false); err != nil {
		return err
	}
	defer logger.Sync()

	cfg := config.Default()
	w, err := view.widgetConfig()
	if err != nil {
		return err
	}
	cfg.Widget = w

	v, err := termview.New(cfg, nil, logger.Named("term"))
	if err != nil {
		return err
	}
	defer v.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := v.Run(ctx); err != nil {
		logger.Error("terminal viewer error", zap.Error(err))
		return err
	}
	return nil
}
