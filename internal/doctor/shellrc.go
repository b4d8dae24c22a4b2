package doctor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/RespectNoodles/HelpBox/pkg/logger"
	"github.com/RespectNoodles/HelpBox/pkg/safeio"
)

// DefaultTheme is the prompt theme used when none is given.
const DefaultTheme = "minimal"

// Themes lists the accepted prompt themes.
var Themes = []string{"minimal", "vivid", "high-contrast"}

// initMarker identifies lines that source the toolbox shell integration.
const initMarker = "shell/init.sh"

const backupStamp = "20060102150405"

// ValidateTheme rejects themes other than Themes.
func ValidateTheme(theme string) error {
	for _, t := range Themes {
		if t == theme {
			return nil
		}
	}
	return fmt.Errorf("unknown theme %q (choose one of: %s)", theme, strings.Join(Themes, ", "))
}

// DetectShellRC picks ~/.zshrc when shell mentions zsh, else ~/.bashrc.
func DetectShellRC(shell, home string) string {
	if strings.Contains(shell, "zsh") {
		return filepath.Join(home, ".zshrc")
	}
	return filepath.Join(home, ".bashrc")
}

// SetupAction describes what InstallOrUpdate did.
type SetupAction string

const (
	SetupUnchanged SetupAction = "unchanged"
	SetupReplaced  SetupAction = "replaced"
	SetupAppended  SetupAction = "appended"
)

// SetupResult reports the outcome of InstallOrUpdate.
type SetupResult struct {
	Path       string
	Line       string
	Action     SetupAction
	BackupPath string
}

// ShellIntegration maintains the single source line in a shell rc file.
type ShellIntegration struct {
	RCPath   string
	InitPath string
	Now      func() time.Time
}

// NewShellIntegration targets rcPath and sources initPath.
func NewShellIntegration(rcPath, initPath string) *ShellIntegration {
	return &ShellIntegration{RCPath: rcPath, InitPath: initPath, Now: time.Now}
}

// SourceLine is the exact line written for theme.
func (s *ShellIntegration) SourceLine(theme string) string {
	return fmt.Sprintf(`source "%s" --theme %s`, s.InitPath, theme)
}

// InstallOrUpdate makes the rc file source the integration with theme.
// A file already containing the line is left alone. Otherwise the first
// line sourcing shell/init.sh is replaced (later ones are dropped) or the
// line is appended, the existing file is copied to <file>.bak-<timestamp>,
// and the new content is written atomically.
func (s *ShellIntegration) InstallOrUpdate(theme string) (SetupResult, error) {
	if err := ValidateTheme(theme); err != nil {
		return SetupResult{}, err
	}
	line := s.SourceLine(theme)
	result := SetupResult{Path: s.RCPath, Line: line}

	// #nosec G304 -- the operator's own shell rc file
	data, err := os.ReadFile(s.RCPath)
	exists := err == nil
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return result, fmt.Errorf("failed to read %s: %w", s.RCPath, err)
	}
	content := string(data)

	if strings.Contains(content, line) {
		result.Action = SetupUnchanged
		logger.Debug("shell integration already present", logger.String("path", s.RCPath))
		return result, nil
	}

	lines := splitLines(content)
	updated, replaced := rewriteLines(lines, line)
	result.Action = SetupAppended
	if replaced {
		result.Action = SetupReplaced
	}

	if exists {
		backup, err := s.backup()
		if err != nil {
			return result, fmt.Errorf("failed to back up %s: %w", s.RCPath, err)
		}
		result.BackupPath = backup
	}

	target := s.RCPath
	if exists {
		// dotfile managers symlink rc files; write through the link
		if resolved, err := filepath.EvalSymlinks(s.RCPath); err == nil {
			target = resolved
		}
	}
	if err := safeio.WriteFileAtomic(target, []byte(strings.Join(updated, "\n")+"\n")); err != nil {
		return result, fmt.Errorf("failed to write %s: %w", target, err)
	}
	logger.Info("shell integration updated",
		logger.String("path", s.RCPath),
		logger.String("action", string(result.Action)),
		logger.String("backup", result.BackupPath))
	return result, nil
}

func rewriteLines(lines []string, line string) ([]string, bool) {
	out := make([]string, 0, len(lines)+2)
	replaced := false
	for _, l := range lines {
		if strings.Contains(l, initMarker) {
			if !replaced {
				out = append(out, line)
				replaced = true
			}
			continue
		}
		out = append(out, l)
	}
	if !replaced {
		if n := len(out); n > 0 && strings.TrimSpace(out[n-1]) != "" {
			out = append(out, "")
		}
		out = append(out, line)
	}
	return out, replaced
}

func (s *ShellIntegration) backup() (string, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	base := fmt.Sprintf("%s.bak-%s", s.RCPath, now().Format(backupStamp))
	candidate := base
	for i := 1; ; i++ {
		err := safeio.CopyFile(s.RCPath, candidate)
		if err == nil {
			logger.Debug("backup written", logger.String("path", candidate))
			return candidate, nil
		}
		if !errors.Is(err, safeio.ErrExists) || i > 100 {
			return "", err
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
