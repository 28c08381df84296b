package main

import (
	"fmt"
	"os"
	"sort"
	"text/template"

	"github.com/keshon/gitlet/internal/command"

	_ "github.com/keshon/gitlet/internal/command/add"
	_ "github.com/keshon/gitlet/internal/command/branch"
	_ "github.com/keshon/gitlet/internal/command/checkout"
	_ "github.com/keshon/gitlet/internal/command/commit"
	_ "github.com/keshon/gitlet/internal/command/find"
	_ "github.com/keshon/gitlet/internal/command/global-log"
	_ "github.com/keshon/gitlet/internal/command/help"
	_ "github.com/keshon/gitlet/internal/command/init"
	_ "github.com/keshon/gitlet/internal/command/log"
	_ "github.com/keshon/gitlet/internal/command/merge"
	_ "github.com/keshon/gitlet/internal/command/reset"
	_ "github.com/keshon/gitlet/internal/command/rm"
	_ "github.com/keshon/gitlet/internal/command/rm-branch"
	_ "github.com/keshon/gitlet/internal/command/show"
	_ "github.com/keshon/gitlet/internal/command/status"
	_ "github.com/keshon/gitlet/internal/command/verify"
)

func main() {
	tplBytes, err := os.ReadFile("README.md.tmpl")
	if err != nil {
		fmt.Printf("Failed to read template: %v\n", err)
		os.Exit(1)
	}

	tpl, err := template.New("readme").Parse(string(tplBytes))
	if err != nil {
		fmt.Printf("Failed to parse template: %v\n", err)
		os.Exit(1)
	}

	commands := command.AllCommands()

	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})

	sections := ""
	for _, cmd := range commands {
		sections += fmt.Sprintf(
			"### %s\n```\n%s\n%s\n```\n\n",
			cmd.Name(),
			cmd.Usage(),
			cmd.Help(),
		)
	}

	data := map[string]string{
		"CommandSections": sections,
	}

	outFile, err := os.Create("README.md")
	if err != nil {
		fmt.Printf("Failed to create README.md: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	if err := tpl.Execute(outFile, data); err != nil {
		fmt.Printf("Failed to render template: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("README.md generated successfully")
}
