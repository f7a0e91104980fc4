package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alfredtools/launchkit/internal/core/domain"
	"github.com/alfredtools/launchkit/internal/scriptfilter"
)

var sshCmd = &cobra.Command{
	Use:   "ssh [query]",
	Short: "Rank SSH hosts from ~/.ssh/config for Alfred",
	Long: `Ranks the Host entries of the SSH client config against the query and
prints them as a Script Filter whose action is an ssh command. Without a
query every host is listed in config order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSSH,
}

func init() {
	rootCmd.AddCommand(sshCmd)
}

func runSSH(cmd *cobra.Command, args []string) error {
	if services.Hosts == nil || services.HostMatcher == nil {
		return errors.New("ssh pipeline not configured")
	}

	filter := scriptfilter.New()
	hosts, err := services.Hosts.Hosts(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			filter.AddPlaceholder("No SSH config found", "Nothing to launch from ~/.ssh/config")
		} else {
			filter.AddPlaceholder("Error loading SSH hosts", err.Error())
		}
		return filter.Write(cmd.OutOrStdout())
	}

	for _, sh := range services.HostMatcher.Match(hosts, queryArg(args)) {
		addr := sh.Host.Addr()
		filter.Add(scriptfilter.Item{
			Title:    sh.Host.Alias,
			Subtitle: addr,
			Arg:      sh.Host.SSHCommand(),
			Valid:    true,
			Mods: map[string]scriptfilter.Mod{
				"cmd": {Valid: true, Arg: addr, Subtitle: "Copy " + addr + " to clipboard"},
			},
		})
	}
	if filter.Empty() {
		filter.AddPlaceholder("No SSH hosts found", "Try a different search term")
	}
	return filter.Write(cmd.OutOrStdout())
}
