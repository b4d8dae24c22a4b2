/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/

// Package netdiag runs network diagnostics through whichever of several
// equivalent host programs is installed.
package netdiag

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/RespectNoodles/HelpBox/pkg/exitcode"
	"github.com/RespectNoodles/HelpBox/pkg/logger"
	"github.com/RespectNoodles/HelpBox/pkg/tools"
	"mvdan.cc/sh/v3/syntax"
)

// DefaultMTUHost is probed by mtu-test when no host is given.
const DefaultMTUHost = "1.1.1.1"

// Action is one diagnostic: its candidate commands and how to run them.
type Action struct {
	Name    string
	Summary string
	Reason  string
	// Templates hold one %s for the shell-quoted host when HostArg is set.
	Templates   []string
	HostArg     bool
	DefaultHost string
	Destructive bool
	Prompt      string
}

// Candidates builds the candidate list for an already quoted host.
func (a Action) Candidates(quotedHost string) tools.CandidateList {
	out := make(tools.CandidateList, len(a.Templates))
	for i, t := range a.Templates {
		if a.HostArg {
			out[i] = fmt.Sprintf(t, quotedHost)
		} else {
			out[i] = t
		}
	}
	return out
}

var actions = []Action{
	{
		Name:      "ping",
		Summary:   "Check reachability of a host",
		Reason:    "Sending four ICMP echo requests.",
		Templates: []string{"ping -c 4 %s"},
		HostArg:   true,
	},
	{
		Name:      "trace",
		Summary:   "Trace the route to a host",
		Reason:    "Tracing the network path hop by hop.",
		Templates: []string{"mtr --report %s", "traceroute %s", "tracepath %s"},
		HostArg:   true,
	},
	{
		Name:      "dns-test",
		Summary:   "Resolve a host name",
		Reason:    "Querying DNS for the host.",
		Templates: []string{"dig %s", "nslookup %s", "host %s"},
		HostArg:   true,
	},
	{
		Name:      "speed",
		Summary:   "Measure bandwidth",
		Reason:    "Running a bandwidth test against a public server.",
		Templates: []string{"speedtest-cli --simple", "speedtest", "fast"},
	},
	{
		Name:        "flush-dns",
		Summary:     "Flush the local DNS cache",
		Reason:      "Clearing cached DNS answers; lookups will be slower briefly.",
		Templates:   []string{"resolvectl flush-caches", "systemd-resolve --flush-caches", "dscacheutil -flushcache", "nscd -i hosts"},
		Destructive: true,
		Prompt:      "Flush the DNS cache? [y/N] ",
	},
	{
		Name:        "restart-network",
		Summary:     "Restart networking",
		Reason:      "Restarting the network stack; connections will drop.",
		Templates:   []string{"nmcli networking off && nmcli networking on", "systemctl restart NetworkManager", "service networking restart"},
		Destructive: true,
		Prompt:      "Restart networking? Active connections will drop. [y/N] ",
	},
	{
		Name:        "mtu-test",
		Summary:     "Probe the path MTU",
		Reason:      "Sending non-fragmentable 1500-byte frames to find the path MTU.",
		Templates:   []string{"ping -M do -s 1472 -c 3 %s", "tracepath -n %s"},
		HostArg:     true,
		DefaultHost: DefaultMTUHost,
	},
}

// Actions returns every diagnostic in display order.
func Actions() []Action {
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// Lookup finds an action by name.
func Lookup(name string) (Action, bool) {
	for _, a := range actions {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

// Confirmer asks the operator a yes/no question.
type Confirmer func(prompt string) bool

// Diagnostics wires actions to the resolver, runner and confirmation prompt.
type Diagnostics struct {
	Resolver *tools.Resolver
	Runner   *tools.Runner
	Confirm  Confirmer
}

// Run resolves the first installed candidate for action, asks for
// confirmation when the action is disruptive, and runs it with the command
// always shown. The tool's exit status is returned as-is.
func (d *Diagnostics) Run(ctx context.Context, name, host string) (int, error) {
	a, ok := Lookup(name)
	if !ok {
		return exitcode.Failure, fmt.Errorf("unknown network action %q", name)
	}

	quoted := ""
	if a.HostArg {
		if host == "" {
			host = a.DefaultHost
		}
		if host == "" {
			return exitcode.Failure, fmt.Errorf("%s requires a host", a.Name)
		}
		var err error
		if quoted, err = QuoteHost(host); err != nil {
			return exitcode.Failure, err
		}
	}

	picked, err := d.Resolver.Require(a.Name, a.Candidates(quoted))
	if err != nil {
		logger.Warn("no diagnostic command available", logger.String("action", a.Name), logger.Err(err))
		return exitcode.Failure, err
	}

	if a.Destructive {
		if d.Confirm == nil || !d.Confirm(a.Prompt) {
			if err := ctx.Err(); err != nil {
				return exitcode.Failure, err
			}
			logger.Info("operator declined", logger.String("action", a.Name))
			return exitcode.Failure, &tools.DeclinedError{Action: a.Name}
		}
	}

	return d.Runner.RunLogged(ctx, picked, a.Reason)
}

// QuoteHost validates a host argument and quotes it for sh. Hosts starting
// with '-' would be read as options, and braces would collide with template
// placeholders, so both are rejected.
func QuoteHost(host string) (string, error) {
	if strings.HasPrefix(host, "-") {
		return "", fmt.Errorf("invalid host %q: must not start with '-'", host)
	}
	for _, r := range host {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == '{' || r == '}' {
			return "", fmt.Errorf("invalid host %q", host)
		}
	}
	quoted, err := syntax.Quote(host, syntax.LangPOSIX)
	if err != nil {
		return "", fmt.Errorf("invalid host %q: %w", host, err)
	}
	return quoted, nil
}
