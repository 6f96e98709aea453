package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oxygene76/geometry/pkg/geometry"
)

const (
	appName = "geomcalc"
	version = "v1.0.0"

	defaultAngleUnit = "radians"
)

var (
	cfgFile string
	verbose bool

	// Flags shared by the transform commands
	inputKind     string
	axisOrigin    string
	axisDirection string
	angleValue    float64
	planeOrigin   string
	planeNormal   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Command-line calculator for geometry JSON values",
	Long: `geomcalc applies geometric transformations to values in the compact
JSON form used by the geometry library: vectors and points are number
arrays, axes and planes are small objects. Input is read from a file
argument or from stdin, and the transformed value is written to stdout
as JSON.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return nil
	},
}

// rotateCmd rotates a vector or point around an axis
var rotateCmd = &cobra.Command{
	Use:   "rotate [file]",
	Short: "Rotate a vector or point around an axis",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		axis, err := parseAxis(axisOrigin, axisDirection)
		if err != nil {
			return err
		}
		angle := angleInRadians(angleValue)

		return transformInput(args, func(v geometry.Vector3d) interface{} {
			return v.RotateAround(axis, angle)
		}, func(p geometry.Point3d) interface{} {
			return p.RotateAround(axis, angle)
		})
	},
}

// mirrorCmd reflects a vector or point across a plane
var mirrorCmd = &cobra.Command{
	Use:   "mirror [file]",
	Short: "Mirror a vector or point across a plane",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plane, err := parsePlane(planeOrigin, planeNormal)
		if err != nil {
			return err
		}

		return transformInput(args, func(v geometry.Vector3d) interface{} {
			return v.MirrorAcross(plane)
		}, func(p geometry.Point3d) interface{} {
			return p.MirrorAcross(plane)
		})
	},
}

// normalizeCmd converts a vector into a unit direction
var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Normalize a vector into a unit direction",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}

		var v geometry.Vector3d
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("failed to parse input: %w", err)
		}

		direction, ok := v.Direction()
		if !ok {
			return fmt.Errorf("cannot normalize the zero vector")
		}
		return writeOutput(direction)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.geomcalc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().Bool("indent", false, "indent JSON output")
	rootCmd.PersistentFlags().String("angle-unit", "", "unit for --angle: radians or degrees")

	viper.BindPFlag("indent_output", rootCmd.PersistentFlags().Lookup("indent"))
	viper.BindPFlag("angle_unit", rootCmd.PersistentFlags().Lookup("angle-unit"))

	for _, cmd := range []*cobra.Command{rotateCmd, mirrorCmd} {
		cmd.Flags().StringVar(&inputKind, "kind", "vector", "input kind: vector or point")
	}

	rotateCmd.Flags().StringVar(&axisOrigin, "axis-origin", "0,0,0", "axis origin point as x,y,z")
	rotateCmd.Flags().StringVar(&axisDirection, "axis-direction", "0,0,1", "axis direction as x,y,z")
	rotateCmd.Flags().Float64Var(&angleValue, "angle", 0, "rotation angle")

	mirrorCmd.Flags().StringVar(&planeOrigin, "plane-origin", "0,0,0", "plane origin point as x,y,z")
	mirrorCmd.Flags().StringVar(&planeNormal, "plane-normal", "0,0,1", "plane normal as x,y,z")

	rootCmd.AddCommand(rotateCmd)
	rootCmd.AddCommand(mirrorCmd)
	rootCmd.AddCommand(normalizeCmd)
}

// initConfig reads the configuration file and environment variables
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to find home directory: %w", err)
		}
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".geomcalc")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("angle_unit", defaultAngleUnit)
	viper.SetDefault("indent_output", false)

	viper.SetEnvPrefix("GEOMCALC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	} else if verbose {
		log.Printf("Using config file: %s", filepath.Clean(viper.ConfigFileUsed()))
	}

	return nil
}

// transformInput decodes the input as the configured kind, applies the
// matching transform and writes the result
func transformInput(args []string, vectorFn func(geometry.Vector3d) interface{}, pointFn func(geometry.Point3d) interface{}) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	switch inputKind {
	case "vector":
		var v geometry.Vector3d
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("failed to parse input: %w", err)
		}
		return writeOutput(vectorFn(v))
	case "point":
		var p geometry.Point3d
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("failed to parse input: %w", err)
		}
		return writeOutput(pointFn(p))
	default:
		return fmt.Errorf("unknown input kind %q (expected vector or point)", inputKind)
	}
}

// readInput returns the JSON bytes from the file argument or stdin
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		if verbose {
			log.Printf("Reading input from stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

// writeOutput marshals the value to stdout, honoring the indent setting
func writeOutput(value interface{}) error {
	var (
		data []byte
		err  error
	)
	if viper.GetBool("indent_output") {
		data, err = json.MarshalIndent(value, "", "  ")
	} else {
		data, err = json.Marshal(value)
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	fmt.Println(string(data))
	return nil
}

// parseTriple parses an x,y,z flag value into its three components
func parseTriple(s string) (x, y, z float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected x,y,z but got %q", s)
	}
	components := make([]float64, 3)
	for i, part := range parts {
		components[i], err = strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid component %q in %q: %w", part, s, err)
		}
	}
	return components[0], components[1], components[2], nil
}

// parseAxis builds an axis from origin and direction flag values
func parseAxis(origin, direction string) (geometry.Axis3d, error) {
	ox, oy, oz, err := parseTriple(origin)
	if err != nil {
		return geometry.Axis3d{}, fmt.Errorf("invalid axis origin: %w", err)
	}
	dx, dy, dz, err := parseTriple(direction)
	if err != nil {
		return geometry.Axis3d{}, fmt.Errorf("invalid axis direction: %w", err)
	}
	d, ok := geometry.NewVector3d(dx, dy, dz).Direction()
	if !ok {
		return geometry.Axis3d{}, fmt.Errorf("axis direction must be nonzero")
	}
	return geometry.NewAxis3d(geometry.NewPoint3d(ox, oy, oz), d), nil
}

// parsePlane builds a plane from origin and normal flag values
func parsePlane(origin, normal string) (geometry.Plane3d, error) {
	ox, oy, oz, err := parseTriple(origin)
	if err != nil {
		return geometry.Plane3d{}, fmt.Errorf("invalid plane origin: %w", err)
	}
	nx, ny, nz, err := parseTriple(normal)
	if err != nil {
		return geometry.Plane3d{}, fmt.Errorf("invalid plane normal: %w", err)
	}
	n, ok := geometry.NewVector3d(nx, ny, nz).Direction()
	if !ok {
		return geometry.Plane3d{}, fmt.Errorf("plane normal must be nonzero")
	}
	return geometry.PlaneFromPointAndNormal(geometry.NewPoint3d(ox, oy, oz), n), nil
}

// angleInRadians converts the angle flag to radians per the configured unit
func angleInRadians(angle float64) float64 {
	if viper.GetString("angle_unit") == "degrees" {
		return angle * math.Pi / 180
	}
	return angle
}

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
