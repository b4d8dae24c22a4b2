/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package ops

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"
)

// CommandGroup represents the operational classification of commands
type CommandGroup string

const (
	GroupCatalog CommandGroup = "catalog" // list, search, info, presets, tui, export, import
	GroupTools   CommandGroup = "tools"   // install, update, verify
	GroupSystem  CommandGroup = "system"  // doctor, setup, net, self-update
	GroupSupport CommandGroup = "support" // version
)

// CommandCategory refines a group
type CommandCategory string

const (
	CategoryDiscovery   CommandCategory = "discovery"
	CategoryTransfer    CommandCategory = "transfer"
	CategoryLifecycle   CommandCategory = "lifecycle"
	CategoryDiagnostics CommandCategory = "diagnostics"
	CategoryEnvironment CommandCategory = "environment"
	CategoryInformation CommandCategory = "information"
)

// GroupInfo is a group with its help heading.
type GroupInfo struct {
	Group CommandGroup
	Title string
}

// Groups returns the command groups in help display order.
func Groups() []GroupInfo {
	return []GroupInfo{
		{GroupCatalog, "Catalog Commands"},
		{GroupTools, "Tool Lifecycle Commands"},
		{GroupSystem, "System Commands"},
		{GroupSupport, "Support Commands"},
	}
}

// CommandRegistration represents a registered command with its classification
type CommandRegistration struct {
	Name        string
	Group       CommandGroup
	Category    CommandCategory
	Command     *cobra.Command
	Description string
}

// Registry manages command classifications and registrations
type Registry struct {
	mu         sync.RWMutex
	commands   map[string]*CommandRegistration
	groupIndex map[CommandGroup][]*CommandRegistration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands:   make(map[string]*CommandRegistration),
		groupIndex: make(map[CommandGroup][]*CommandRegistration),
	}
}

// Global registry instance
var globalRegistry = NewRegistry()

// GetRegistry returns the global command registry
func GetRegistry() *Registry {
	return globalRegistry
}

// RegisterCommandWithTaxonomy registers a command with its group and category
func RegisterCommandWithTaxonomy(name string, group CommandGroup, category CommandCategory, cmd *cobra.Command, description string) error {
	return GetRegistry().Register(name, group, category, cmd, description)
}

// Register adds a command to the registry
func (r *Registry) Register(name string, group CommandGroup, category CommandCategory, cmd *cobra.Command, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %s already registered", name)
	}

	registration := &CommandRegistration{
		Name:        name,
		Group:       group,
		Category:    category,
		Command:     cmd,
		Description: description,
	}

	r.commands[name] = registration
	r.groupIndex[group] = append(r.groupIndex[group], registration)

	return nil
}

// GetCommand returns a registered command by name
func (r *Registry) GetCommand(name string) (*CommandRegistration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetCommandsByGroup returns the commands in a group sorted by name
func (r *Registry) GetCommandsByGroup(group CommandGroup) []*CommandRegistration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*CommandRegistration, len(r.groupIndex[group]))
	copy(out, r.groupIndex[group])
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// GetAllCommands returns all registered commands
func (r *Registry) GetAllCommands() map[string]*CommandRegistration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*CommandRegistration)
	for k, v := range r.commands {
		result[k] = v
	}
	return result
}
