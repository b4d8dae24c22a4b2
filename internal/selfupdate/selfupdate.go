// Package selfupdate pulls the toolbox deployment forward when it is a clean git checkout.
package selfupdate

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"mvdan.cc/sh/v3/syntax"

	"github.com/RespectNoodles/HelpBox/pkg/exitcode"
	"github.com/RespectNoodles/HelpBox/pkg/logger"
	"github.com/RespectNoodles/HelpBox/pkg/tools"
)

// Prompt is shown before pulling.
const Prompt = "Repo is clean. Run 'git pull' to self-update? [y/N] "

// Outcome describes what Run did.
type Outcome int

const (
	Pulled Outcome = iota
	SkippedNotRepo
	SkippedDirty
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Pulled:
		return "pulled"
	case SkippedNotRepo:
		return "Self-update skipped (not a git repository)."
	case SkippedDirty:
		return "Self-update skipped (working tree not clean)."
	case Cancelled:
		return "Self-update cancelled."
	default:
		return "unknown"
	}
}

// RepoState is the result of inspecting the deployment root.
type RepoState struct {
	IsRepo bool
	Clean  bool
	Branch string
	Dirty  []string
}

// Inspect opens the repository rooted at root and reports whether the
// working tree has staged or unstaged changes. Repositories enclosing root
// are not considered: only root/.git counts.
func Inspect(root string) (RepoState, error) {
	repo, err := git.PlainOpen(root)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return RepoState{}, nil
	}
	if err != nil {
		return RepoState{}, fmt.Errorf("failed to open repository at %s: %w", root, err)
	}

	state := RepoState{IsRepo: true}
	if head, err := repo.Head(); err == nil {
		state.Branch = head.Name().Short()
	}

	wt, err := repo.Worktree()
	if err != nil {
		return state, fmt.Errorf("failed to open worktree: %w", err)
	}
	st, err := wt.Status()
	if err != nil {
		return state, fmt.Errorf("failed to read worktree status: %w", err)
	}
	for path, s := range st {
		if s.Staging != git.Unmodified || s.Worktree != git.Unmodified {
			state.Dirty = append(state.Dirty, path)
		}
	}
	state.Clean = len(state.Dirty) == 0
	return state, nil
}

// Updater runs git pull for the deployment root through the logged runner.
type Updater struct {
	Root    string
	Runner  *tools.Runner
	Confirm func(prompt string) bool
}

// Run returns the outcome and the exit status to report. Skips and a
// declined prompt are not failures.
func (u *Updater) Run(ctx context.Context) (Outcome, int, error) {
	state, err := Inspect(u.Root)
	if err != nil {
		return SkippedNotRepo, exitcode.Failure, err
	}
	if !state.IsRepo {
		logger.Debug("self-update: no repository", logger.String("root", u.Root))
		return SkippedNotRepo, exitcode.Success, nil
	}
	if !state.Clean {
		logger.Debug("self-update: dirty worktree", logger.Strings("paths", state.Dirty))
		return SkippedDirty, exitcode.Success, nil
	}
	if u.Confirm == nil || !u.Confirm(Prompt) {
		return Cancelled, exitcode.Success, nil
	}

	quoted, err := syntax.Quote(u.Root, syntax.LangPOSIX)
	if err != nil {
		return Cancelled, exitcode.Failure, fmt.Errorf("cannot quote root %q: %w", u.Root, err)
	}
	code, err := u.Runner.RunLogged(ctx, "git -C "+quoted+" pull", "Pulling the latest toolbox from its git remote.")
	return Pulled, code, err
}
