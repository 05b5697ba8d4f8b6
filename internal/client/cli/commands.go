package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iudanet/snipkeeper/internal/models"
)

// Provider возвращает открытый Cli. Вызывается только из RunE,
// когда конфигурация уже прочитана.
type Provider func() *Cli

// Commands строит дерево команд клиента
func Commands(app Provider) []*cobra.Command {
	return []*cobra.Command{
		sourcesCommand(app),
		resolveModeCommand(app),
		syncCommand(app),
		statusCommand(app),
		listCommand(app),
		getCommand(app),
		expandCommand(app),
		addCommand(app),
		editCommand(app),
		deleteCommand(app),
		watchCommand(app),
		eventsCommand(app),
		relayCommand(app),
	}
}

func sourcesCommand(app Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage snippet sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runSourcesList(cmd.Context())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List sources in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runSourcesList(cmd.Context())
		},
	})

	var name string
	add := &cobra.Command{
		Use:   "add <id> <kind>",
		Short: "Add a source (local, relay, gdrive, s3, git) with the lowest priority",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runSourcesAdd(cmd.Context(), models.Source{ID: args[0], Kind: args[1], Name: name})
		},
	}
	add.Flags().StringVar(&name, "name", "", "Display name")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a source and forget its cached snippets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runSourcesRemove(cmd.Context(), args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "move <id> <position>",
		Short: "Change source priority (1 is right after the default source)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			return app().runSourcesMove(cmd.Context(), args[0], position)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "select-folder <id> <folder>",
		Short: "Choose the folder a source syncs from",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runSourcesSelectFolder(cmd.Context(), args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "signin <id>",
		Short: "Sign in to a source provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runSourcesSignIn(cmd.Context(), args[0])
		},
	})

	return cmd
}

func resolveModeCommand(app Provider) *cobra.Command {
	return &cobra.Command{
		Use:       "resolve-mode <priority|usage_first>",
		Short:     "Choose how duplicate triggers are resolved",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(models.ResolvePriority), string(models.ResolveUsageFirst)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runResolveMode(cmd.Context(), args[0])
		},
	}
}

func syncCommand(app Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Fetch every source and rebuild the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runSync(cmd.Context())
		},
	}
}

func statusCommand(app Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last sync summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runStatus(cmd.Context())
		},
	}
}

func listCommand(app Provider) *cobra.Command {
	var opts ListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog snippets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runList(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Where, "where", "", `Filter expression, e.g. '"mail" in tags && source == "team"'`)
	cmd.Flags().StringVar(&opts.Trigger, "trigger", "", "Show every candidate for a trigger in selection order")
	return cmd
}

func getCommand(app Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a snippet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runGet(cmd.Context(), args[0])
		},
	}
}

func expandCommand(app Provider) *cobra.Command {
	var opts ExpandOptions
	cmd := &cobra.Command{
		Use:   "expand [trigger]",
		Short: "Print the expansion of a trigger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Trigger = args[0]
			}
			return app().runExpand(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringArrayVar(&opts.Vars, "var", nil, "Variable value name=value (repeatable)")
	cmd.Flags().StringVar(&opts.ID, "id", "", "Expand this snippet instead of the resolved winner")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Print the chosen snippet and its source")
	return cmd
}

// snippetFlags регистрирует общие флаги add и edit
func snippetFlags(cmd *cobra.Command, in *SnippetInput) {
	flags := cmd.Flags()
	flags.String("trigger", "", "Trigger text")
	flags.String("content", "", "Snippet content")
	flags.String("type", "", "Content type (plaintext, markdown, html, latex)")
	flags.String("description", "", "Description")
	flags.StringVar(&in.File, "file", "", "Read content from a file")
	flags.StringSliceVar(&in.Tags, "tag", nil, "Tag (repeatable)")
	flags.StringArrayVar(&in.Variables, "variable", nil, "Variable declaration name[=default] (repeatable)")
	flags.StringSliceVar(&in.Targets, "to", nil, "Source to write to (repeatable)")
	flags.Bool("no-sync", false, "Do not refresh the catalog after writing")
}

// readSnippetFlags заполняет только явно заданные флаги
func readSnippetFlags(cmd *cobra.Command, in *SnippetInput) {
	flags := cmd.Flags()
	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	in.Trigger = str("trigger")
	in.Content = str("content")
	in.ContentType = str("type")
	in.Description = str("description")
	in.TagsSet = flags.Changed("tag")
	in.VariablesSet = flags.Changed("variable")
	noSync, _ := flags.GetBool("no-sync")
	in.Sync = !noSync
}

func addCommand(app Provider) *cobra.Command {
	var in SnippetInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a snippet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			readSnippetFlags(cmd, &in)
			return app().runSnippetAdd(cmd.Context(), in)
		},
	}
	snippetFlags(cmd, &in)
	return cmd
}

func editCommand(app Provider) *cobra.Command {
	var in SnippetInput
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a snippet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			readSnippetFlags(cmd, &in)
			return app().runSnippetEdit(cmd.Context(), args[0], in)
		},
	}
	snippetFlags(cmd, &in)
	return cmd
}

func deleteCommand(app Provider) *cobra.Command {
	var (
		from   []string
		noSync bool
	)
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a snippet from its sources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runSnippetDelete(cmd.Context(), args[0], from, !noSync)
		},
	}
	cmd.Flags().StringSliceVar(&from, "from", nil, "Source to delete from (default: every source holding it)")
	cmd.Flags().BoolVar(&noSync, "no-sync", false, "Do not refresh the catalog after deleting")
	return cmd
}

func watchCommand(app Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the catalog up to date until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runWatch(cmd.Context())
		},
	}
}

func eventsCommand(app Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Print catalog events published by any snipkeeper process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runEvents(cmd.Context())
		},
	}
}

func relayCommand(app Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Account and folders on a snipkeeper folder server",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "register <source>",
		Short: "Create an account on the folder server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runRegister(cmd.Context(), args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "login <source>",
		Short: "Sign in to the folder server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runLogin(cmd.Context(), args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "whoami <source>",
		Short: "Show the folder server session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runWhoAmI(cmd.Context(), args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "logout <source>",
		Short: "Sign out from the folder server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runLogout(cmd.Context(), args[0])
		},
	})

	folders := &cobra.Command{
		Use:   "folders <source>",
		Short: "List shared folders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runFoldersList(cmd.Context(), args[0])
		},
	}
	folders.AddCommand(&cobra.Command{
		Use:   "create <source> <name>",
		Short: "Create a shared folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runFoldersCreate(cmd.Context(), args[0], args[1])
		},
	})
	folders.AddCommand(&cobra.Command{
		Use:   "share <source> <folder-id> <username>",
		Short: "Give another user access to a folder",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runFoldersShare(cmd.Context(), args[0], args[1], args[2])
		},
	})
	cmd.AddCommand(folders)

	return cmd
}
