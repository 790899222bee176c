package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// todoFlagAliases maps short spellings accepted by the todo commands to
// their canonical flag names. Aliases do not show up in help output.
var todoFlagAliases = map[string]string{
	"desc": "description",
	"prio": "priority",
}

func addTodoFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), todoFlagAliases)
	}
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if canonical, ok := aliases[name]; ok {
			name = canonical
		}
		return normalize(f, name)
	})
}
