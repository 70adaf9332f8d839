/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/prosolvesimulation-blip/prosolvesimulation/InputParameters"
	"github.com/prosolvesimulation-blip/prosolvesimulation/mesh/readers"
	"github.com/prosolvesimulation-blip/prosolvesimulation/scene"
)

// SceneCmd represents the scene command
var SceneCmd = &cobra.Command{
	Use:   "scene [mesh files]",
	Short: "Build a renderable scene from mesh files",
	Long: `
Extracts named element groups from one or more mesh files, extrudes beam and
shell groups per the geometry parameters file, and writes the merged scene
payload as JSON.

prosolve scene -I params.yaml -o scene.json model.msh`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		paramsFile, _ := cmd.Flags().GetString("paramsFile")
		outFile, _ := cmd.Flags().GetString("out")
		indent, _ := cmd.Flags().GetBool("indent")
		if prof, _ := cmd.Flags().GetBool("cpuprofile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}

		params := &InputParameters.GeometryParameters{}
		if len(paramsFile) != 0 {
			data, err := os.ReadFile(paramsFile)
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			if err := params.Parse(data); err != nil {
				fmt.Printf("error parsing %s: %s\n", paramsFile, err.Error())
				os.Exit(1)
			}
			params.Print()
		}

		sc, err := scene.Build(readers.NewProvider(), args, params)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}

		payload := sc.Payload()
		var data []byte
		if indent {
			data, err = payload.MarshalIndent()
		} else {
			data, err = payload.MarshalCompact()
		}
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}

		if len(outFile) == 0 {
			fmt.Println(string(data))
			return
		}
		if err := os.WriteFile(outFile, data, 0644); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("scene written to %s (%d points, %d groups, %d skipped)\n",
			outFile, payload.NumPoints, payload.NumGroups, len(payload.Skipped))
	},
}

func init() {
	rootCmd.AddCommand(SceneCmd)
	SceneCmd.Flags().StringP("paramsFile", "I", "", "geometry parameters file (YAML)")
	SceneCmd.Flags().StringP("out", "o", "", "output JSON file, stdout when empty")
	SceneCmd.Flags().Bool("indent", false, "indent the JSON output")
	SceneCmd.Flags().Bool("cpuprofile", false, "write a CPU profile for this run")
}
