package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .iconsty.yaml config file",
	Long:  `Create a .iconsty.yaml configuration file in the current directory with the Font Awesome 4 layout.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".iconsty.yaml"); err == nil && !force {
			return fmt.Errorf(".iconsty.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".iconsty.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .iconsty.yaml")
		return nil
	},
}

const defaultConfig = `# iconsty configuration
# Docs: https://github.com/yacobolo/iconsty

verbose: false

inputs:
  stylesheets:
    - "input/fontawesome_reduced.css"
  compat: input/backward_cap.txt
  template: input/template.sty
  strict-compat: false     # drop aliases whose target is not a stylesheet icon

output: output/fontawesome.sty
parser: tdewolff           # tdewolff | douceur

render:
  order: codepoint         # codepoint | source
  group-size: 10
  left-delim: "<<"
  right-delim: ">>"

names:
  selector-prefix: "fa-"
  macro-prefix: '\fa'
  csname-prefix: "faicon@"
  font-command: '\FA'

metadata:
  vcs-command: [git, describe, --long, --dirty, --tags]
  host-command: [uname, -a]
  date-layout: "2006-01-02 15:04"

check:
  strict: false
  output-format: issues    # issues | summary | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
