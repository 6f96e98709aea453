package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxygene76/geometry/pkg/geometry"
)

// batchCmd applies one precomputed rotation to a stream of vectors
var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Rotate a JSONL stream of vectors with one precomputed transform",
	Long: `batch reads one JSON vector per line, builds the rotation matrix a
single time and applies it to every vector, writing one transformed
vector per line. This is the streaming counterpart of the rotate
command for large inputs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		axis, err := parseAxis(axisOrigin, axisDirection)
		if err != nil {
			return err
		}
		rotation := geometry.RotationAround(axis, angleInRadians(angleValue))

		in := os.Stdin
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open input file: %w", err)
			}
			defer f.Close()
			in = f
		}

		out := bufio.NewWriter(os.Stdout)
		defer out.Flush()

		count := 0
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}

			var v geometry.Vector3d
			if err := json.Unmarshal(line, &v); err != nil {
				return fmt.Errorf("failed to parse line %d: %w", count+1, err)
			}

			rotated, err := json.Marshal(rotation.RotateVector(v))
			if err != nil {
				return fmt.Errorf("failed to encode line %d: %w", count+1, err)
			}
			if _, err := out.Write(rotated); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			if err := out.WriteByte('\n'); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			count++
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if verbose {
			log.Printf("Rotated %d vectors", count)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&axisOrigin, "axis-origin", "0,0,0", "axis origin point as x,y,z")
	batchCmd.Flags().StringVar(&axisDirection, "axis-direction", "0,0,1", "axis direction as x,y,z")
	batchCmd.Flags().Float64Var(&angleValue, "angle", 0, "rotation angle")

	rootCmd.AddCommand(batchCmd)
}
